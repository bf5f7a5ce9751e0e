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

type UserRepo interface {
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*domain.User, error)
	Exists(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error)
}

type userRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserRepo(gdb *gorm.DB, baseLog *logger.Logger) UserRepo {
	return &userRepo{db: gdb, log: baseLog.With("repo", "UserRepo")}
}

func (r *userRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*domain.User, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil {
		return nil, nil
	}
	var row domain.User
	err := t.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, db.MapError("user_repo.get_by_id", err)
	}
	return &row, nil
}

func (r *userRepo) Exists(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil {
		return false, nil
	}
	var count int64
	if err := t.WithContext(ctx).
		Model(&domain.User{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, db.MapError("user_repo.exists", err)
	}
	return count > 0, nil
}
