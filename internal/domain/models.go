package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Term is an academic period a project is scheduled within. Owned by the
// catalog; the project core only reads it.
type Term struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Code      string    `gorm:"column:code;not null;uniqueIndex" json:"code"`
	Name      string    `gorm:"column:name" json:"name"`
	StartDate time.Time `gorm:"column:start_date;not null" json:"start_date"`
	EndDate   time.Time `gorm:"column:end_date;not null" json:"end_date"`
	Active    bool      `gorm:"column:active;not null;default:true" json:"active"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (Term) TableName() string { return "term" }

// Subject is a catalog entry referenced by staff assignments.
type Subject struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Code      string    `gorm:"column:code;not null" json:"code"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (Subject) TableName() string { return "subject" }

// User is a staff member or administrator.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	Email     string    `gorm:"column:email;not null;uniqueIndex" json:"email"`
	Role      string    `gorm:"column:role;not null;default:'staff'" json:"role"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (User) TableName() string { return "app_user" }

// StaffAssignment links a staff member to a subject within a term. Projects
// hold weak references to these rows; the catalog owns them.
type StaffAssignment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TermID    uuid.UUID `gorm:"type:uuid;not null;index" json:"term_id"`
	Term      *Term     `gorm:"foreignKey:TermID;references:ID" json:"term,omitempty"`
	SubjectID uuid.UUID `gorm:"type:uuid;not null;index" json:"subject_id"`
	Subject   *Subject  `gorm:"foreignKey:SubjectID;references:ID" json:"subject,omitempty"`
	StaffID   uuid.UUID `gorm:"type:uuid;not null;index" json:"staff_id"`
	Staff     *User     `gorm:"foreignKey:StaffID;references:ID" json:"staff,omitempty"`
	Active    bool      `gorm:"column:active;not null;default:true" json:"active"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (StaffAssignment) TableName() string { return "staff_assignment" }

// Label renders the denormalized subject/staff text used in audit entries.
func (a *StaffAssignment) Label() string {
	subject := ""
	if a.Subject != nil {
		subject = a.Subject.Name
	}
	staff := ""
	if a.Staff != nil {
		staff = a.Staff.Name
	}
	switch {
	case subject != "" && staff != "":
		return subject + " / " + staff
	case subject != "":
		return subject
	case staff != "":
		return staff
	default:
		return a.ID.String()
	}
}

// Project is the aggregate root. Participants and assignment links are owned
// children; term, responsible and staff-assignment ids are weak references.
type Project struct {
	ID                 uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	Title              string        `gorm:"column:title;not null;index:idx_project_term_title" json:"title"`
	Description        string        `gorm:"column:description" json:"description"`
	GeneralObjective   string        `gorm:"column:general_objective" json:"general_objective"`
	SpecificObjectives string        `gorm:"column:specific_objectives" json:"specific_objectives"`
	Status             ProjectStatus `gorm:"column:status;not null;default:'proposal';index" json:"status"`
	TermID             uuid.UUID     `gorm:"type:uuid;not null;index:idx_project_term_title" json:"term_id"`
	ResponsibleID      uuid.UUID     `gorm:"type:uuid;not null;index" json:"responsible_id"`
	ContinuationOf     *uuid.UUID    `gorm:"type:uuid;index" json:"continuation_of,omitempty"`
	ContinuedBy        *uuid.UUID    `gorm:"type:uuid" json:"continued_by,omitempty"`
	Revision           int           `gorm:"column:revision;not null;default:1" json:"revision"`
	CreatedAt          time.Time     `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt          *time.Time    `gorm:"column:updated_at" json:"updated_at,omitempty"`

	Participants []*ProjectParticipant `gorm:"constraint:OnDelete:CASCADE;foreignKey:ProjectID;references:ID" json:"participants,omitempty"`
	Assignments  []*ProjectAssignment  `gorm:"constraint:OnDelete:CASCADE;foreignKey:ProjectID;references:ID" json:"assignments,omitempty"`
}

func (Project) TableName() string { return "project" }

// ProjectParticipant is a roster entry fully owned by its project. It is only
// created, renamed or removed through the project's reconciliation operation.
type ProjectParticipant struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index" json:"project_id"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (ProjectParticipant) TableName() string { return "project_participant" }

// ProjectAssignment is a join row holding one staff-assignment reference of
// the project's assignment set.
type ProjectAssignment struct {
	ProjectID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"project_id"`
	StaffAssignmentID uuid.UUID `gorm:"type:uuid;primaryKey" json:"staff_assignment_id"`
}

func (ProjectAssignment) TableName() string { return "project_staff_assignment" }

// ProjectHistory is an append-only audit record of a single mutation. It is
// written once after a successful mutation and never updated or deleted.
type ProjectHistory struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID uuid.UUID      `gorm:"type:uuid;not null;index" json:"project_id"`
	ActorID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"actor_id"`
	Action    HistoryAction  `gorm:"column:action;not null;index" json:"action"`
	OldValue  string         `gorm:"column:old_value" json:"old_value,omitempty"`
	NewValue  string         `gorm:"column:new_value" json:"new_value,omitempty"`
	Note      string         `gorm:"column:note" json:"note,omitempty"`
	Details   datatypes.JSON `gorm:"column:details;type:jsonb" json:"details,omitempty"`
	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
}

func (ProjectHistory) TableName() string { return "project_history" }

// ProjectAttachment holds file metadata for a project. Upload mechanics live
// elsewhere; the core only counts non-deleted formal documents as the
// completion gate.
type ProjectAttachment struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID uuid.UUID      `gorm:"type:uuid;not null;index" json:"project_id"`
	Kind      string         `gorm:"column:kind;not null;index" json:"kind"`
	FileName  string         `gorm:"column:file_name;not null" json:"file_name"`
	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (ProjectAttachment) TableName() string { return "project_attachment" }
