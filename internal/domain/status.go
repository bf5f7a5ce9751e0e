package domain

// ProjectStatus enumerates the lifecycle states of a teaching project.
type ProjectStatus string

const (
	StatusProposal     ProjectStatus = "proposal"
	StatusInProgress   ProjectStatus = "in_progress"
	StatusInContinuing ProjectStatus = "in_continuing"
	StatusCompleted    ProjectStatus = "completed"
	StatusArchived     ProjectStatus = "archived"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case StatusProposal, StatusInProgress, StatusInContinuing, StatusCompleted, StatusArchived:
		return true
	}
	return false
}

// Label returns the human-readable status text used in audit entries.
func (s ProjectStatus) Label() string {
	switch s {
	case StatusProposal:
		return "Proposal"
	case StatusInProgress:
		return "In progress"
	case StatusInContinuing:
		return "In continuation"
	case StatusCompleted:
		return "Completed"
	case StatusArchived:
		return "Archived"
	default:
		return string(s)
	}
}

// HistoryAction enumerates the mutation kinds recorded in the audit trail.
type HistoryAction string

const (
	ActionCreated                     HistoryAction = "created"
	ActionTitleUpdated                HistoryAction = "title_updated"
	ActionDescriptionUpdated          HistoryAction = "description_updated"
	ActionGeneralObjectiveUpdated     HistoryAction = "general_objective_updated"
	ActionSpecificObjectivesUpdated   HistoryAction = "specific_objectives_updated"
	ActionAssignmentsUpdated          HistoryAction = "assignments_updated"
	ActionParticipantsUpdated         HistoryAction = "participants_updated"
	ActionResponsibleChanged          HistoryAction = "responsible_changed"
	ActionStatusChanged               HistoryAction = "status_changed"
	ActionContinuationCreated         HistoryAction = "continuation_created"
	ActionContinuationSettingsUpdated HistoryAction = "continuation_settings_updated"
	ActionAttachmentAdded             HistoryAction = "attachment_added"
	ActionAttachmentRemoved           HistoryAction = "attachment_removed"
)

// AttachmentKindFormalDocument gates the transition to Completed: a project
// needs at least one non-deleted attachment of this kind to complete.
const AttachmentKindFormalDocument = "formal_document"
