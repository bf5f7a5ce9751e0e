package catalog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/edurealm/projects-backend/internal/data/db"
	"github.com/edurealm/projects-backend/internal/domain"
	"github.com/edurealm/projects-backend/internal/platform/logger"
)

// AttachmentRepo exposes the attachment-count collaborator. The lifecycle
// core only consults the count as the gate for completing a project.
type AttachmentRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *domain.ProjectAttachment) error
	SoftDeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error
	CountActiveByKind(ctx context.Context, tx *gorm.DB, projectID uuid.UUID, kind string) (int64, error)
}

type attachmentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAttachmentRepo(gdb *gorm.DB, baseLog *logger.Logger) AttachmentRepo {
	return &attachmentRepo{db: gdb, log: baseLog.With("repo", "AttachmentRepo")}
}

func (r *attachmentRepo) Create(ctx context.Context, tx *gorm.DB, row *domain.ProjectAttachment) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if row == nil {
		return nil
	}
	if err := t.WithContext(ctx).Create(row).Error; err != nil {
		return db.MapError("attachment_repo.create", err)
	}
	return nil
}

func (r *attachmentRepo) SoftDeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(ids) == 0 {
		return nil
	}
	if err := t.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&domain.ProjectAttachment{}).Error; err != nil {
		return db.MapError("attachment_repo.soft_delete_by_ids", err)
	}
	return nil
}

func (r *attachmentRepo) CountActiveByKind(ctx context.Context, tx *gorm.DB, projectID uuid.UUID, kind string) (int64, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if projectID == uuid.Nil || kind == "" {
		return 0, nil
	}
	var count int64
	if err := t.WithContext(ctx).
		Model(&domain.ProjectAttachment{}).
		Where("project_id = ? AND kind = ?", projectID, kind).
		Count(&count).Error; err != nil {
		return 0, db.MapError("attachment_repo.count_active_by_kind", err)
	}
	return count, nil
}
