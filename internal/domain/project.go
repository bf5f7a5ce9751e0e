package domain

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewProject builds a fresh aggregate in the Proposal state.
func NewProject(title string, termID, responsibleID uuid.UUID, description, generalObjective, specificObjectives string) (*Project, error) {
	const op = "project.new"
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ValidationError(op, "title is required")
	}
	if termID == uuid.Nil {
		return nil, InvalidArgumentError(op, "term id is required")
	}
	if responsibleID == uuid.Nil {
		return nil, InvalidArgumentError(op, "responsible staff id is required")
	}
	return &Project{
		ID:                 uuid.New(),
		Title:              title,
		Description:        strings.TrimSpace(description),
		GeneralObjective:   strings.TrimSpace(generalObjective),
		SpecificObjectives: strings.TrimSpace(specificObjectives),
		Status:             StatusProposal,
		TermID:             termID,
		ResponsibleID:      responsibleID,
		Revision:           1,
		CreatedAt:          time.Now(),
	}, nil
}

func (p *Project) touch() {
	now := time.Now()
	p.UpdatedAt = &now
}

func (p *Project) UpdateTitle(title string) error {
	const op = "project.update_title"
	title = strings.TrimSpace(title)
	if title == "" {
		return ValidationError(op, "title is required")
	}
	p.Title = title
	p.touch()
	return nil
}

func (p *Project) UpdateDescription(description string) {
	p.Description = strings.TrimSpace(description)
	p.touch()
}

func (p *Project) UpdateGeneralObjective(objective string) {
	p.GeneralObjective = strings.TrimSpace(objective)
	p.touch()
}

func (p *Project) UpdateSpecificObjectives(objectives string) {
	p.SpecificObjectives = strings.TrimSpace(objectives)
	p.touch()
}

// ChangeResponsible rejects a no-op change rather than ignoring it.
func (p *Project) ChangeResponsible(newID uuid.UUID) error {
	const op = "project.change_responsible"
	if newID == uuid.Nil {
		return InvalidArgumentError(op, "responsible staff id is required")
	}
	if newID == p.ResponsibleID {
		return InvalidArgumentError(op, "staff member is already responsible for this project")
	}
	p.ResponsibleID = newID
	p.touch()
	return nil
}

// SetAssignments fully replaces the staff-assignment reference set.
func (p *Project) SetAssignments(ids []uuid.UUID) error {
	const op = "project.set_assignments"
	seen := make(map[uuid.UUID]bool, len(ids))
	rows := make([]*ProjectAssignment, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			return InvalidArgumentError(op, "staff assignment id cannot be empty")
		}
		if seen[id] {
			return InvalidArgumentError(op, "duplicate staff assignment id "+id.String())
		}
		seen[id] = true
		rows = append(rows, &ProjectAssignment{ProjectID: p.ID, StaffAssignmentID: id})
	}
	p.Assignments = rows
	p.touch()
	return nil
}

// AssignmentIDs returns the current staff-assignment reference set, sorted.
func (p *Project) AssignmentIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(p.Assignments))
	for _, row := range p.Assignments {
		ids = append(ids, row.StaffAssignmentID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	return ids
}

// SetParticipants fully replaces the roster from plain names, minting a new
// identity for every entry.
func (p *Project) SetParticipants(names []string) error {
	const op = "project.set_participants"
	seen := make(map[string]bool, len(names))
	rows := make([]*ProjectParticipant, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return InvalidArgumentError(op, "participant name cannot be empty")
		}
		key := strings.ToLower(name)
		if seen[key] {
			return InvalidArgumentError(op, "duplicate participant name "+name)
		}
		seen[key] = true
		rows = append(rows, &ProjectParticipant{ID: uuid.New(), ProjectID: p.ID, Name: name})
	}
	p.Participants = rows
	p.touch()
	return nil
}

// ParticipantNames returns the current roster names, sorted case-insensitively.
func (p *Project) ParticipantNames() []string {
	names := make([]string, 0, len(p.Participants))
	for _, row := range p.Participants {
		names = append(names, row.Name)
	}
	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})
	return names
}

// ChangeStatus is a no-op when the status is unchanged and fails once the
// project is archived. The orchestration layer applies stricter rules on top
// (a completed project cannot leave Completed there).
func (p *Project) ChangeStatus(next ProjectStatus) error {
	const op = "project.change_status"
	if !next.Valid() {
		return InvalidArgumentError(op, "unknown status "+string(next))
	}
	if next == p.Status {
		return nil
	}
	if p.Status == StatusArchived {
		return InvalidTransitionError(op, "archived projects cannot change status")
	}
	p.Status = next
	p.touch()
	return nil
}

// SetContinuationOf links this project to its predecessor. A project can be
// linked to a predecessor only once.
func (p *Project) SetContinuationOf(predecessorID uuid.UUID) error {
	const op = "project.set_continuation_of"
	if predecessorID == uuid.Nil {
		return InvalidArgumentError(op, "predecessor id is required")
	}
	if predecessorID == p.ID {
		return InvalidArgumentError(op, "a project cannot continue itself")
	}
	if p.ContinuationOf != nil {
		return InvalidArgumentError(op, "project is already a continuation of another project")
	}
	p.ContinuationOf = &predecessorID
	p.touch()
	return nil
}

// MarkContinuedBy records the single successor link. The successor must live
// in a different term; term ordering is validated by the orchestrator, which
// is what keeps the continuation chain linear and acyclic.
func (p *Project) MarkContinuedBy(successorID, successorTermID uuid.UUID) error {
	const op = "project.mark_continued_by"
	if successorID == uuid.Nil {
		return InvalidArgumentError(op, "successor id is required")
	}
	if successorID == p.ID {
		return InvalidArgumentError(op, "a project cannot be continued by itself")
	}
	if successorTermID == p.TermID {
		return InvalidArgumentError(op, "a continuation must target a different term")
	}
	if p.ContinuedBy != nil {
		return InvalidArgumentError(op, "project already has a continuation")
	}
	p.ContinuedBy = &successorID
	p.touch()
	return nil
}
