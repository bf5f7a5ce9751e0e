package projects

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/edurealm/projects-backend/internal/data/db"
	"github.com/edurealm/projects-backend/internal/domain"
	"github.com/edurealm/projects-backend/internal/platform/logger"
)

type ProjectRepo interface {
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*domain.Project, error)
	ListByTerm(ctx context.Context, tx *gorm.DB, termID uuid.UUID) ([]*domain.Project, error)
	ListByResponsible(ctx context.Context, tx *gorm.DB, responsibleID, termID uuid.UUID) ([]*domain.Project, error)
	ListByStaffAssignment(ctx context.Context, tx *gorm.DB, staffAssignmentID uuid.UUID) ([]*domain.Project, error)
	ListByPredecessor(ctx context.Context, tx *gorm.DB, predecessorID uuid.UUID) ([]*domain.Project, error)
	TitleExistsInTerm(ctx context.Context, tx *gorm.DB, title string, termID, excludeID uuid.UUID) (bool, error)

	Create(ctx context.Context, tx *gorm.DB, row *domain.Project) error
	Update(ctx context.Context, tx *gorm.DB, row *domain.Project) error
	UpdateBasicFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]interface{}) error
}

type projectRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProjectRepo(gdb *gorm.DB, baseLog *logger.Logger) ProjectRepo {
	return &projectRepo{db: gdb, log: baseLog.With("repo", "ProjectRepo")}
}

func (r *projectRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*domain.Project, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil {
		return nil, nil
	}
	var row domain.Project
	err := t.WithContext(ctx).
		Preload("Participants").
		Preload("Assignments").
		First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, db.MapError("project_repo.get_by_id", err)
	}
	return &row, nil
}

func (r *projectRepo) ListByTerm(ctx context.Context, tx *gorm.DB, termID uuid.UUID) ([]*domain.Project, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*domain.Project
	if termID == uuid.Nil {
		return out, nil
	}
	if err := t.WithContext(ctx).
		Preload("Participants").
		Preload("Assignments").
		Where("term_id = ?", termID).
		Order("created_at ASC").
		Find(&out).Error; err != nil {
		return nil, db.MapError("project_repo.list_by_term", err)
	}
	return out, nil
}

func (r *projectRepo) ListByResponsible(ctx context.Context, tx *gorm.DB, responsibleID, termID uuid.UUID) ([]*domain.Project, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*domain.Project
	if responsibleID == uuid.Nil {
		return out, nil
	}
	q := t.WithContext(ctx).
		Preload("Participants").
		Preload("Assignments").
		Where("responsible_id = ?", responsibleID)
	if termID != uuid.Nil {
		q = q.Where("term_id = ?", termID)
	}
	if err := q.Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, db.MapError("project_repo.list_by_responsible", err)
	}
	return out, nil
}

func (r *projectRepo) ListByStaffAssignment(ctx context.Context, tx *gorm.DB, staffAssignmentID uuid.UUID) ([]*domain.Project, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*domain.Project
	if staffAssignmentID == uuid.Nil {
		return out, nil
	}
	if err := t.WithContext(ctx).
		Preload("Participants").
		Preload("Assignments").
		Joins("JOIN project_staff_assignment psa ON psa.project_id = project.id").
		Where("psa.staff_assignment_id = ?", staffAssignmentID).
		Order("project.created_at ASC").
		Find(&out).Error; err != nil {
		return nil, db.MapError("project_repo.list_by_staff_assignment", err)
	}
	return out, nil
}

func (r *projectRepo) ListByPredecessor(ctx context.Context, tx *gorm.DB, predecessorID uuid.UUID) ([]*domain.Project, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*domain.Project
	if predecessorID == uuid.Nil {
		return out, nil
	}
	if err := t.WithContext(ctx).
		Preload("Participants").
		Preload("Assignments").
		Where("continuation_of = ?", predecessorID).
		Order("created_at ASC").
		Find(&out).Error; err != nil {
		return nil, db.MapError("project_repo.list_by_predecessor", err)
	}
	return out, nil
}

func (r *projectRepo) TitleExistsInTerm(ctx context.Context, tx *gorm.DB, title string, termID, excludeID uuid.UUID) (bool, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var count int64
	q := t.WithContext(ctx).
		Model(&domain.Project{}).
		Where("term_id = ? AND LOWER(title) = LOWER(?)", termID, title)
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, db.MapError("project_repo.title_exists_in_term", err)
	}
	return count > 0, nil
}

func (r *projectRepo) Create(ctx context.Context, tx *gorm.DB, row *domain.Project) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if row == nil {
		return nil
	}
	if err := t.WithContext(ctx).Create(row).Error; err != nil {
		return db.MapError("project_repo.create", err)
	}
	return nil
}

// Update persists the aggregate and reconciles its owned children. The write
// is revision-guarded: a stale in-memory copy fails with a conflict instead
// of silently overwriting a concurrent update.
func (r *projectRepo) Update(ctx context.Context, tx *gorm.DB, row *domain.Project) error {
	const op = "project_repo.update"
	t := tx
	if t == nil {
		t = r.db
	}
	if row == nil {
		return nil
	}

	prevRevision := row.Revision
	res := t.WithContext(ctx).
		Model(&domain.Project{}).
		Where("id = ? AND revision = ?", row.ID, prevRevision).
		Updates(map[string]interface{}{
			"title":               row.Title,
			"description":         row.Description,
			"general_objective":   row.GeneralObjective,
			"specific_objectives": row.SpecificObjectives,
			"status":              row.Status,
			"responsible_id":      row.ResponsibleID,
			"continuation_of":     row.ContinuationOf,
			"continued_by":        row.ContinuedBy,
			"updated_at":          row.UpdatedAt,
			"revision":            prevRevision + 1,
		})
	if res.Error != nil {
		return db.MapError(op, res.Error)
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := t.WithContext(ctx).
			Model(&domain.Project{}).
			Where("id = ?", row.ID).
			Count(&count).Error; err != nil {
			return db.MapError(op, err)
		}
		if count == 0 {
			return domain.NotFoundError(op, "project not found")
		}
		return domain.ConflictError(op, "project was modified concurrently")
	}
	row.Revision = prevRevision + 1

	// Assignment set: full replace.
	if err := t.WithContext(ctx).
		Where("project_id = ?", row.ID).
		Delete(&domain.ProjectAssignment{}).Error; err != nil {
		return db.MapError(op, err)
	}
	if len(row.Assignments) > 0 {
		for _, a := range row.Assignments {
			a.ProjectID = row.ID
		}
		if err := t.WithContext(ctx).Create(&row.Assignments).Error; err != nil {
			return db.MapError(op, err)
		}
	}

	// Participants: delete absentees, upsert the rest.
	keep := make([]uuid.UUID, 0, len(row.Participants))
	for _, pt := range row.Participants {
		pt.ProjectID = row.ID
		keep = append(keep, pt.ID)
	}
	q := t.WithContext(ctx).Where("project_id = ?", row.ID)
	if len(keep) > 0 {
		q = q.Where("id NOT IN ?", keep)
	}
	if err := q.Delete(&domain.ProjectParticipant{}).Error; err != nil {
		return db.MapError(op, err)
	}
	if len(row.Participants) > 0 {
		if err := t.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns([]string{"name"}),
			}).
			Create(&row.Participants).Error; err != nil {
			return db.MapError(op, err)
		}
	}
	return nil
}

func (r *projectRepo) UpdateBasicFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]interface{}) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil || len(updates) == 0 {
		return nil
	}
	if err := t.WithContext(ctx).
		Model(&domain.Project{}).
		Where("id = ?", id).
		Updates(updates).Error; err != nil {
		return db.MapError("project_repo.update_basic_fields", err)
	}
	return nil
}
