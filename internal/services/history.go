package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/edurealm/projects-backend/internal/data/repos/projects"
	"github.com/edurealm/projects-backend/internal/domain"
	"github.com/edurealm/projects-backend/internal/platform/dbctx"
	"github.com/edurealm/projects-backend/internal/platform/logger"
)

// HistoryInput describes one audit entry to record.
type HistoryInput struct {
	ProjectID uuid.UUID
	ActorID   uuid.UUID
	Action    domain.HistoryAction
	OldValue  string
	NewValue  string
	Note      string
	Details   map[string]interface{}
}

// HistoryService is the audit recorder: it mints identity and timestamp for
// every entry and appends it. Entries are never updated or deleted.
type HistoryService interface {
	Record(dbc dbctx.Context, in HistoryInput) (*domain.ProjectHistory, error)
	ListByProject(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) ([]*domain.ProjectHistory, error)
	ListByProjectAndAction(ctx context.Context, tx *gorm.DB, projectID uuid.UUID, action domain.HistoryAction) ([]*domain.ProjectHistory, error)
	ListByActor(ctx context.Context, tx *gorm.DB, actorID uuid.UUID) ([]*domain.ProjectHistory, error)
}

type historyService struct {
	db          *gorm.DB
	log         *logger.Logger
	historyRepo projects.HistoryRepo
}

func NewHistoryService(gdb *gorm.DB, baseLog *logger.Logger, historyRepo projects.HistoryRepo) HistoryService {
	return &historyService{
		db:          gdb,
		log:         baseLog.With("service", "HistoryService"),
		historyRepo: historyRepo,
	}
}

func (s *historyService) Record(dbc dbctx.Context, in HistoryInput) (*domain.ProjectHistory, error) {
	const op = "history_service.record"
	if in.ProjectID == uuid.Nil {
		return nil, domain.InvalidArgumentError(op, "project id is required")
	}
	if in.ActorID == uuid.Nil {
		return nil, domain.InvalidArgumentError(op, "actor id is required")
	}
	if in.Action == "" {
		return nil, domain.InvalidArgumentError(op, "action is required")
	}

	row := &domain.ProjectHistory{
		ID:        uuid.New(),
		ProjectID: in.ProjectID,
		ActorID:   in.ActorID,
		Action:    in.Action,
		OldValue:  in.OldValue,
		NewValue:  in.NewValue,
		Note:      in.Note,
		CreatedAt: time.Now(),
	}
	if len(in.Details) > 0 {
		raw, err := json.Marshal(in.Details)
		if err != nil {
			return nil, domain.Wrap(domain.CodeInternal, op, fmt.Errorf("marshal details: %w", err))
		}
		row.Details = datatypes.JSON(raw)
	}

	if err := s.historyRepo.Append(dbc.Ctx, dbc.Tx, row); err != nil {
		s.log.Error("append history entry failed", "error", err, "project_id", in.ProjectID, "action", in.Action)
		return nil, err
	}
	return row, nil
}

func (s *historyService) ListByProject(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) ([]*domain.ProjectHistory, error) {
	return s.historyRepo.ListByProject(ctx, tx, projectID)
}

func (s *historyService) ListByProjectAndAction(ctx context.Context, tx *gorm.DB, projectID uuid.UUID, action domain.HistoryAction) ([]*domain.ProjectHistory, error) {
	return s.historyRepo.ListByProjectAndAction(ctx, tx, projectID, action)
}

func (s *historyService) ListByActor(ctx context.Context, tx *gorm.DB, actorID uuid.UUID) ([]*domain.ProjectHistory, error) {
	return s.historyRepo.ListByActor(ctx, tx, actorID)
}
