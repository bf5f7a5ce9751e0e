package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/edurealm/projects-backend/internal/data/db"
	"github.com/edurealm/projects-backend/internal/domain"
	"github.com/edurealm/projects-backend/internal/platform/logger"
)

type StaffAssignmentRepo interface {
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*domain.StaffAssignment, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*domain.StaffAssignment, error)
	ListByStaffAndTerm(ctx context.Context, tx *gorm.DB, staffID, termID uuid.UUID) ([]*domain.StaffAssignment, error)
}

type staffAssignmentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStaffAssignmentRepo(gdb *gorm.DB, baseLog *logger.Logger) StaffAssignmentRepo {
	return &staffAssignmentRepo{db: gdb, log: baseLog.With("repo", "StaffAssignmentRepo")}
}

func (r *staffAssignmentRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*domain.StaffAssignment, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	rows, err := r.GetByIDs(ctx, tx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (r *staffAssignmentRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*domain.StaffAssignment, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*domain.StaffAssignment
	if len(ids) == 0 {
		return out, nil
	}
	if err := t.WithContext(ctx).
		Preload("Subject").
		Preload("Staff").
		Where("id IN ?", ids).
		Find(&out).Error; err != nil {
		return nil, db.MapError("staff_assignment_repo.get_by_ids", err)
	}
	return out, nil
}

func (r *staffAssignmentRepo) ListByStaffAndTerm(ctx context.Context, tx *gorm.DB, staffID, termID uuid.UUID) ([]*domain.StaffAssignment, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*domain.StaffAssignment
	if staffID == uuid.Nil || termID == uuid.Nil {
		return out, nil
	}
	err := t.WithContext(ctx).
		Preload("Subject").
		Preload("Staff").
		Where("staff_id = ? AND term_id = ?", staffID, termID).
		Find(&out).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, db.MapError("staff_assignment_repo.list_by_staff_and_term", err)
	}
	return out, nil
}
