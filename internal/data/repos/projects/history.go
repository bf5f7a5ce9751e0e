package projects

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/edurealm/projects-backend/internal/data/db"
	"github.com/edurealm/projects-backend/internal/domain"
	"github.com/edurealm/projects-backend/internal/platform/logger"
)

// HistoryRepo persists the append-only audit trail. There is deliberately no
// update or delete surface.
type HistoryRepo interface {
	Append(ctx context.Context, tx *gorm.DB, row *domain.ProjectHistory) error
	AppendMany(ctx context.Context, tx *gorm.DB, rows []*domain.ProjectHistory) error
	ListByProject(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) ([]*domain.ProjectHistory, error)
	ListByProjectAndAction(ctx context.Context, tx *gorm.DB, projectID uuid.UUID, action domain.HistoryAction) ([]*domain.ProjectHistory, error)
	ListByActor(ctx context.Context, tx *gorm.DB, actorID uuid.UUID) ([]*domain.ProjectHistory, error)
}

type historyRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewHistoryRepo(gdb *gorm.DB, baseLog *logger.Logger) HistoryRepo {
	return &historyRepo{db: gdb, log: baseLog.With("repo", "HistoryRepo")}
}

func (r *historyRepo) Append(ctx context.Context, tx *gorm.DB, row *domain.ProjectHistory) error {
	if row == nil {
		return nil
	}
	return r.AppendMany(ctx, tx, []*domain.ProjectHistory{row})
}

func (r *historyRepo) AppendMany(ctx context.Context, tx *gorm.DB, rows []*domain.ProjectHistory) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(rows) == 0 {
		return nil
	}
	if err := t.WithContext(ctx).Create(&rows).Error; err != nil {
		return db.MapError("history_repo.append_many", err)
	}
	return nil
}

func (r *historyRepo) ListByProject(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) ([]*domain.ProjectHistory, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*domain.ProjectHistory
	if projectID == uuid.Nil {
		return out, nil
	}
	if err := t.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&out).Error; err != nil {
		return nil, db.MapError("history_repo.list_by_project", err)
	}
	return out, nil
}

func (r *historyRepo) ListByProjectAndAction(ctx context.Context, tx *gorm.DB, projectID uuid.UUID, action domain.HistoryAction) ([]*domain.ProjectHistory, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*domain.ProjectHistory
	if projectID == uuid.Nil || action == "" {
		return out, nil
	}
	if err := t.WithContext(ctx).
		Where("project_id = ? AND action = ?", projectID, action).
		Order("created_at DESC").
		Find(&out).Error; err != nil {
		return nil, db.MapError("history_repo.list_by_project_and_action", err)
	}
	return out, nil
}

func (r *historyRepo) ListByActor(ctx context.Context, tx *gorm.DB, actorID uuid.UUID) ([]*domain.ProjectHistory, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*domain.ProjectHistory
	if actorID == uuid.Nil {
		return out, nil
	}
	if err := t.WithContext(ctx).
		Where("actor_id = ?", actorID).
		Order("created_at DESC").
		Find(&out).Error; err != nil {
		return nil, db.MapError("history_repo.list_by_actor", err)
	}
	return out, nil
}
