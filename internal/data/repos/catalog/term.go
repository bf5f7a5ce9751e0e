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

type TermRepo interface {
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*domain.Term, error)
	GetByCode(ctx context.Context, tx *gorm.DB, code string) (*domain.Term, error)
	ListActive(ctx context.Context, tx *gorm.DB) ([]*domain.Term, error)
}

type termRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTermRepo(gdb *gorm.DB, baseLog *logger.Logger) TermRepo {
	return &termRepo{db: gdb, log: baseLog.With("repo", "TermRepo")}
}

func (r *termRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*domain.Term, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil {
		return nil, nil
	}
	var row domain.Term
	err := t.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, db.MapError("term_repo.get_by_id", err)
	}
	return &row, nil
}

func (r *termRepo) GetByCode(ctx context.Context, tx *gorm.DB, code string) (*domain.Term, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if code == "" {
		return nil, nil
	}
	var row domain.Term
	err := t.WithContext(ctx).First(&row, "code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, db.MapError("term_repo.get_by_code", err)
	}
	return &row, nil
}

func (r *termRepo) ListActive(ctx context.Context, tx *gorm.DB) ([]*domain.Term, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*domain.Term
	if err := t.WithContext(ctx).
		Where("active = ?", true).
		Order("start_date ASC").
		Find(&out).Error; err != nil {
		return nil, db.MapError("term_repo.list_active", err)
	}
	return out, nil
}
