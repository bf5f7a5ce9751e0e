package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/edurealm/projects-backend/internal/data/db"
	"github.com/edurealm/projects-backend/internal/data/repos/catalog"
	"github.com/edurealm/projects-backend/internal/data/repos/projects"
	"github.com/edurealm/projects-backend/internal/domain"
	"github.com/edurealm/projects-backend/internal/platform/dbctx"
	"github.com/edurealm/projects-backend/internal/platform/logger"
	"github.com/edurealm/projects-backend/internal/requestdata"
)

type CreateProjectInput struct {
	Title              string
	Description        string
	GeneralObjective   string
	SpecificObjectives string
	TermID             uuid.UUID
	StaffAssignmentIDs []uuid.UUID
	ParticipantNames   []string
}

type AdminCreateProjectInput struct {
	CreateProjectInput
	ResponsibleID uuid.UUID
}

// UpdateProjectInput carries partial updates: nil pointers and nil slices
// leave the corresponding field untouched.
type UpdateProjectInput struct {
	ProjectID          uuid.UUID
	Title              *string
	Description        *string
	GeneralObjective   *string
	SpecificObjectives *string
	ResponsibleID      *uuid.UUID
	StaffAssignmentIDs []uuid.UUID
	Participants       []domain.ParticipantInput
}

type ChangeStatusInput struct {
	ProjectID uuid.UUID
	Status    domain.ProjectStatus
}

// ContinueProjectInput creates a successor project in a later term. Title and
// responsible fall back to the source project's when omitted; a nil
// participant list copies the source roster.
type ContinueProjectInput struct {
	ProjectID          uuid.UUID
	TargetTermID       uuid.UUID
	Title              *string
	ResponsibleID      *uuid.UUID
	StaffAssignmentIDs []uuid.UUID
	ParticipantNames   []string
}

// ProjectService orchestrates the project lifecycle: it validates against the
// catalog collaborators, drives aggregate mutations, and appends one audit
// entry per mutation. Every use case runs inside a single transaction so the
// aggregate write and its audit entries commit or fail together.
type ProjectService interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	Create(ctx context.Context, in CreateProjectInput) (*domain.Project, error)
	CreateAsAdmin(ctx context.Context, in AdminCreateProjectInput) (*domain.Project, error)
	Update(ctx context.Context, in UpdateProjectInput) (*domain.Project, error)
	UpdateAsAdmin(ctx context.Context, in UpdateProjectInput) (*domain.Project, error)
	ChangeStatus(ctx context.Context, in ChangeStatusInput) (*domain.Project, error)
	Continue(ctx context.Context, in ContinueProjectInput) (*domain.Project, error)
}

type projectService struct {
	db             *gorm.DB
	log            *logger.Logger
	runner         db.TxRunner
	projectRepo    projects.ProjectRepo
	history        HistoryService
	termRepo       catalog.TermRepo
	assignmentRepo catalog.StaffAssignmentRepo
	userRepo       catalog.UserRepo
	attachmentRepo catalog.AttachmentRepo
}

func NewProjectService(
	gdb *gorm.DB,
	baseLog *logger.Logger,
	runner db.TxRunner,
	projectRepo projects.ProjectRepo,
	history HistoryService,
	termRepo catalog.TermRepo,
	assignmentRepo catalog.StaffAssignmentRepo,
	userRepo catalog.UserRepo,
	attachmentRepo catalog.AttachmentRepo,
) ProjectService {
	return &projectService{
		db:             gdb,
		log:            baseLog.With("service", "ProjectService"),
		runner:         runner,
		projectRepo:    projectRepo,
		history:        history,
		termRepo:       termRepo,
		assignmentRepo: assignmentRepo,
		userRepo:       userRepo,
		attachmentRepo: attachmentRepo,
	}
}

func (s *projectService) actor(ctx context.Context) (*requestdata.RequestData, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, domain.PermissionError("project_service.actor", "no authenticated actor in context")
	}
	return rd, nil
}

func (s *projectService) Get(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	const op = "project_service.get"
	p, err := s.projectRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.NotFoundError(op, "project not found")
	}
	return p, nil
}

func (s *projectService) Create(ctx context.Context, in CreateProjectInput) (*domain.Project, error) {
	rd, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	return s.create(ctx, in, rd.UserID, rd.UserID, true)
}

func (s *projectService) CreateAsAdmin(ctx context.Context, in AdminCreateProjectInput) (*domain.Project, error) {
	const op = "project_service.create_as_admin"
	rd, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	if !rd.IsAdmin() {
		return nil, domain.PermissionError(op, "administrator role required")
	}
	if in.ResponsibleID == uuid.Nil {
		return nil, domain.InvalidArgumentError(op, "responsible staff id is required")
	}
	return s.create(ctx, in.CreateProjectInput, in.ResponsibleID, rd.UserID, false)
}

func (s *projectService) create(ctx context.Context, in CreateProjectInput, responsibleID, actorID uuid.UUID, requireOwnership bool) (*domain.Project, error) {
	const op = "project_service.create"
	var out *domain.Project
	err := s.runner.InTx(ctx, func(dbc dbctx.Context) error {
		term, err := s.termRepo.GetByID(dbc.Ctx, dbc.Tx, in.TermID)
		if err != nil {
			return err
		}
		if term == nil {
			return domain.NotFoundError(op, "term not found")
		}
		if !term.Active {
			return domain.ValidationError(op, "term is not active")
		}

		title := strings.TrimSpace(in.Title)
		if title == "" {
			return domain.ValidationError(op, "title is required")
		}
		taken, err := s.projectRepo.TitleExistsInTerm(dbc.Ctx, dbc.Tx, title, term.ID, uuid.Nil)
		if err != nil {
			return err
		}
		if taken {
			return domain.ValidationError(op, "a project with this title already exists in the term")
		}

		if responsibleID != actorID {
			ok, err := s.userRepo.Exists(dbc.Ctx, dbc.Tx, responsibleID)
			if err != nil {
				return err
			}
			if !ok {
				return domain.NotFoundError(op, "responsible staff not found")
			}
		}

		var ownedBy *uuid.UUID
		if requireOwnership {
			ownedBy = &actorID
		}
		if _, err := s.validateAssignments(dbc, op, in.StaffAssignmentIDs, term.ID, ownedBy); err != nil {
			return err
		}

		p, err := domain.NewProject(title, term.ID, responsibleID, in.Description, in.GeneralObjective, in.SpecificObjectives)
		if err != nil {
			return err
		}
		if len(in.StaffAssignmentIDs) > 0 {
			if err := p.SetAssignments(in.StaffAssignmentIDs); err != nil {
				return err
			}
		}
		if len(in.ParticipantNames) > 0 {
			if err := p.SetParticipants(in.ParticipantNames); err != nil {
				return err
			}
		}

		if err := s.projectRepo.Create(dbc.Ctx, dbc.Tx, p); err != nil {
			return err
		}
		if _, err := s.history.Record(dbc, HistoryInput{
			ProjectID: p.ID,
			ActorID:   actorID,
			Action:    domain.ActionCreated,
			NewValue:  p.Title,
			Note:      "created in term " + term.Code,
		}); err != nil {
			return err
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("project created", "project_id", out.ID, "term_id", out.TermID)
	return out, nil
}

func (s *projectService) Update(ctx context.Context, in UpdateProjectInput) (*domain.Project, error) {
	return s.update(ctx, in, false)
}

func (s *projectService) UpdateAsAdmin(ctx context.Context, in UpdateProjectInput) (*domain.Project, error) {
	return s.update(ctx, in, true)
}

func (s *projectService) update(ctx context.Context, in UpdateProjectInput, asAdmin bool) (*domain.Project, error) {
	const op = "project_service.update"
	rd, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	if asAdmin && !rd.IsAdmin() {
		return nil, domain.PermissionError(op, "administrator role required")
	}

	var out *domain.Project
	err = s.runner.InTx(ctx, func(dbc dbctx.Context) error {
		p, err := s.projectRepo.GetByID(dbc.Ctx, dbc.Tx, in.ProjectID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.NotFoundError(op, "project not found")
		}
		if !asAdmin && !rd.IsResponsibleFor(p) {
			return domain.PermissionError(op, "only the responsible staff member can update this project")
		}

		locked := p.Status == domain.StatusCompleted || p.Status == domain.StatusArchived
		if locked && (in.ResponsibleID != nil || in.StaffAssignmentIDs != nil || in.Participants != nil) {
			return domain.ValidationError(op, "responsible staff, assignments and participants cannot change once the project is "+p.Status.Label())
		}

		var entries []HistoryInput

		if in.Title != nil {
			title := strings.TrimSpace(*in.Title)
			if title != p.Title {
				taken, err := s.projectRepo.TitleExistsInTerm(dbc.Ctx, dbc.Tx, title, p.TermID, p.ID)
				if err != nil {
					return err
				}
				if taken {
					return domain.ValidationError(op, "a project with this title already exists in the term")
				}
				old := p.Title
				if err := p.UpdateTitle(title); err != nil {
					return err
				}
				entries = append(entries, HistoryInput{Action: domain.ActionTitleUpdated, OldValue: old, NewValue: p.Title})
			}
		}
		if in.Description != nil {
			if next := strings.TrimSpace(*in.Description); next != p.Description {
				old := p.Description
				p.UpdateDescription(next)
				entries = append(entries, HistoryInput{Action: domain.ActionDescriptionUpdated, OldValue: old, NewValue: p.Description})
			}
		}
		if in.GeneralObjective != nil {
			if next := strings.TrimSpace(*in.GeneralObjective); next != p.GeneralObjective {
				old := p.GeneralObjective
				p.UpdateGeneralObjective(next)
				entries = append(entries, HistoryInput{Action: domain.ActionGeneralObjectiveUpdated, OldValue: old, NewValue: p.GeneralObjective})
			}
		}
		if in.SpecificObjectives != nil {
			if next := strings.TrimSpace(*in.SpecificObjectives); next != p.SpecificObjectives {
				old := p.SpecificObjectives
				p.UpdateSpecificObjectives(next)
				entries = append(entries, HistoryInput{Action: domain.ActionSpecificObjectivesUpdated, OldValue: old, NewValue: p.SpecificObjectives})
			}
		}

		if in.ResponsibleID != nil && *in.ResponsibleID != p.ResponsibleID {
			newUser, err := s.userRepo.GetByID(dbc.Ctx, dbc.Tx, *in.ResponsibleID)
			if err != nil {
				return err
			}
			if newUser == nil {
				return domain.NotFoundError(op, "new responsible staff not found")
			}
			oldLabel := p.ResponsibleID.String()
			if oldUser, err := s.userRepo.GetByID(dbc.Ctx, dbc.Tx, p.ResponsibleID); err != nil {
				return err
			} else if oldUser != nil {
				oldLabel = oldUser.Name
			}
			if err := p.ChangeResponsible(*in.ResponsibleID); err != nil {
				return err
			}
			entries = append(entries, HistoryInput{Action: domain.ActionResponsibleChanged, OldValue: oldLabel, NewValue: newUser.Name})
		}

		if in.StaffAssignmentIDs != nil {
			rows, err := s.validateAssignments(dbc, op, in.StaffAssignmentIDs, p.TermID, nil)
			if err != nil {
				return err
			}
			oldIDs := p.AssignmentIDs()
			if !equalUUIDs(oldIDs, sortedUUIDs(in.StaffAssignmentIDs)) {
				oldRows, err := s.assignmentRepo.GetByIDs(dbc.Ctx, dbc.Tx, oldIDs)
				if err != nil {
					return err
				}
				if err := p.SetAssignments(in.StaffAssignmentIDs); err != nil {
					return err
				}
				entries = append(entries, HistoryInput{
					Action:   domain.ActionAssignmentsUpdated,
					OldValue: assignmentLabels(oldRows),
					NewValue: assignmentLabels(rows),
				})
			}
		}

		if in.Participants != nil {
			before := p.ParticipantNames()
			res, err := p.SyncParticipants(in.Participants)
			if err != nil {
				return err
			}
			after := p.ParticipantNames()
			if res.Changed() || !equalStrings(before, after) {
				entries = append(entries, HistoryInput{
					Action:   domain.ActionParticipantsUpdated,
					OldValue: strings.Join(before, ", "),
					NewValue: strings.Join(after, ", "),
					Note:     fmt.Sprintf("%d added, %d renamed, %d removed", res.Created, res.Updated, res.Deleted),
					Details: map[string]interface{}{
						"created": res.Created,
						"updated": res.Updated,
						"deleted": res.Deleted,
					},
				})
			}
		}

		if len(entries) == 0 {
			out = p
			return nil
		}
		if err := s.projectRepo.Update(dbc.Ctx, dbc.Tx, p); err != nil {
			return err
		}
		for _, e := range entries {
			e.ProjectID = p.ID
			e.ActorID = rd.UserID
			if _, err := s.history.Record(dbc, e); err != nil {
				return err
			}
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ChangeStatus applies a lifecycle transition. On top of the aggregate's own
// rule (archived is terminal) the orchestrator refuses to leave Completed,
// and completing a project requires at least one formal document attachment.
// A successful completion cascades to every continuation descendant.
func (s *projectService) ChangeStatus(ctx context.Context, in ChangeStatusInput) (*domain.Project, error) {
	const op = "project_service.change_status"
	rd, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	if !in.Status.Valid() {
		return nil, domain.InvalidArgumentError(op, "unknown status "+string(in.Status))
	}

	var out *domain.Project
	err = s.runner.InTx(ctx, func(dbc dbctx.Context) error {
		p, err := s.projectRepo.GetByID(dbc.Ctx, dbc.Tx, in.ProjectID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.NotFoundError(op, "project not found")
		}
		if !rd.IsAdmin() && !rd.IsResponsibleFor(p) {
			return domain.PermissionError(op, "only the responsible staff member can change the project status")
		}
		if p.Status == domain.StatusCompleted {
			return domain.ValidationError(op, "completed projects cannot change status")
		}
		if in.Status == p.Status {
			out = p
			return nil
		}
		if in.Status == domain.StatusCompleted {
			count, err := s.attachmentRepo.CountActiveByKind(dbc.Ctx, dbc.Tx, p.ID, domain.AttachmentKindFormalDocument)
			if err != nil {
				return err
			}
			if count == 0 {
				return domain.ValidationError(op, "completing a project requires at least one formal document attachment")
			}
		}

		prev := p.Status
		if err := p.ChangeStatus(in.Status); err != nil {
			return err
		}
		if err := s.projectRepo.Update(dbc.Ctx, dbc.Tx, p); err != nil {
			return err
		}
		if _, err := s.history.Record(dbc, HistoryInput{
			ProjectID: p.ID,
			ActorID:   rd.UserID,
			Action:    domain.ActionStatusChanged,
			OldValue:  prev.Label(),
			NewValue:  p.Status.Label(),
		}); err != nil {
			return err
		}

		if in.Status == domain.StatusCompleted {
			visited := map[uuid.UUID]bool{p.ID: true}
			if err := s.cascadeComplete(dbc, rd.UserID, p, visited); err != nil {
				return err
			}
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// cascadeComplete transitions every continuation descendant of trigger to
// Completed, one audit entry per affected project. The visited set guards
// against cycles even though term ordering already rules them out.
func (s *projectService) cascadeComplete(dbc dbctx.Context, actorID uuid.UUID, trigger *domain.Project, visited map[uuid.UUID]bool) error {
	children, err := s.projectRepo.ListByPredecessor(dbc.Ctx, dbc.Tx, trigger.ID)
	if err != nil {
		return err
	}
	for _, child := range children {
		if visited[child.ID] {
			continue
		}
		visited[child.ID] = true
		if child.Status == domain.StatusCompleted {
			continue
		}
		prev := child.Status
		if err := child.ChangeStatus(domain.StatusCompleted); err != nil {
			return err
		}
		if err := s.projectRepo.Update(dbc.Ctx, dbc.Tx, child); err != nil {
			return err
		}
		if _, err := s.history.Record(dbc, HistoryInput{
			ProjectID: child.ID,
			ActorID:   actorID,
			Action:    domain.ActionStatusChanged,
			OldValue:  prev.Label(),
			NewValue:  domain.StatusCompleted.Label(),
			Note:      "completed automatically with project " + trigger.ID.String(),
			Details:   map[string]interface{}{"cascade_from": trigger.ID.String()},
		}); err != nil {
			return err
		}
		if err := s.cascadeComplete(dbc, actorID, child, visited); err != nil {
			return err
		}
	}
	return nil
}

// Continue carries a project forward into a later term as a linked successor.
func (s *projectService) Continue(ctx context.Context, in ContinueProjectInput) (*domain.Project, error) {
	const op = "project_service.continue"
	rd, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}

	var successor *domain.Project
	err = s.runner.InTx(ctx, func(dbc dbctx.Context) error {
		src, err := s.projectRepo.GetByID(dbc.Ctx, dbc.Tx, in.ProjectID)
		if err != nil {
			return err
		}
		if src == nil {
			return domain.NotFoundError(op, "project not found")
		}
		if src.ContinuedBy != nil {
			return domain.ValidationError(op, "project already has a continuation")
		}
		if !rd.IsAdmin() && !rd.IsResponsibleFor(src) {
			return domain.PermissionError(op, "only the responsible staff member can continue this project")
		}

		srcTerm, err := s.termRepo.GetByID(dbc.Ctx, dbc.Tx, src.TermID)
		if err != nil {
			return err
		}
		if srcTerm == nil {
			return domain.NotFoundError(op, "source term not found")
		}
		tgtTerm, err := s.termRepo.GetByID(dbc.Ctx, dbc.Tx, in.TargetTermID)
		if err != nil {
			return err
		}
		if tgtTerm == nil {
			return domain.NotFoundError(op, "target term not found")
		}
		if !tgtTerm.Active {
			return domain.ValidationError(op, "target term is not active")
		}
		if tgtTerm.ID == srcTerm.ID {
			return domain.ValidationError(op, "continuation must target a different term")
		}
		if !tgtTerm.StartDate.After(srcTerm.StartDate) {
			return domain.ValidationError(op, "target term must start after the source term")
		}

		title := src.Title
		if in.Title != nil {
			if next := strings.TrimSpace(*in.Title); next != "" {
				title = next
			}
		}
		taken, err := s.projectRepo.TitleExistsInTerm(dbc.Ctx, dbc.Tx, title, tgtTerm.ID, uuid.Nil)
		if err != nil {
			return err
		}
		if taken {
			return domain.ValidationError(op, "a project with this title already exists in the target term")
		}

		responsibleID := src.ResponsibleID
		if in.ResponsibleID != nil && *in.ResponsibleID != uuid.Nil {
			ok, err := s.userRepo.Exists(dbc.Ctx, dbc.Tx, *in.ResponsibleID)
			if err != nil {
				return err
			}
			if !ok {
				return domain.NotFoundError(op, "new responsible staff not found")
			}
			responsibleID = *in.ResponsibleID
		}

		if _, err := s.validateAssignments(dbc, op, in.StaffAssignmentIDs, tgtTerm.ID, nil); err != nil {
			return err
		}

		succ, err := domain.NewProject(title, tgtTerm.ID, responsibleID, src.Description, src.GeneralObjective, src.SpecificObjectives)
		if err != nil {
			return err
		}
		if err := succ.SetContinuationOf(src.ID); err != nil {
			return err
		}
		if len(in.StaffAssignmentIDs) > 0 {
			if err := succ.SetAssignments(in.StaffAssignmentIDs); err != nil {
				return err
			}
		}
		names := in.ParticipantNames
		if names == nil {
			names = src.ParticipantNames()
		}
		if len(names) > 0 {
			if err := succ.SetParticipants(names); err != nil {
				return err
			}
		}

		prevStatus := src.Status
		if err := src.MarkContinuedBy(succ.ID, tgtTerm.ID); err != nil {
			return err
		}
		if err := src.ChangeStatus(domain.StatusInContinuing); err != nil {
			return err
		}

		if err := s.projectRepo.Create(dbc.Ctx, dbc.Tx, succ); err != nil {
			return err
		}
		if err := s.projectRepo.Update(dbc.Ctx, dbc.Tx, src); err != nil {
			return err
		}

		if _, err := s.history.Record(dbc, HistoryInput{
			ProjectID: src.ID,
			ActorID:   rd.UserID,
			Action:    domain.ActionContinuationCreated,
			OldValue:  srcTerm.Code,
			NewValue:  tgtTerm.Code,
			Note:      fmt.Sprintf("continued as %q in term %s", succ.Title, tgtTerm.Code),
		}); err != nil {
			return err
		}
		if _, err := s.history.Record(dbc, HistoryInput{
			ProjectID: src.ID,
			ActorID:   rd.UserID,
			Action:    domain.ActionStatusChanged,
			OldValue:  prevStatus.Label(),
			NewValue:  src.Status.Label(),
		}); err != nil {
			return err
		}
		if _, err := s.history.Record(dbc, HistoryInput{
			ProjectID: succ.ID,
			ActorID:   rd.UserID,
			Action:    domain.ActionCreated,
			NewValue:  succ.Title,
			Note:      fmt.Sprintf("continuation of %q from term %s", src.Title, srcTerm.Code),
		}); err != nil {
			return err
		}
		if !equalStrings(src.ParticipantNames(), succ.ParticipantNames()) {
			if _, err := s.history.Record(dbc, HistoryInput{
				ProjectID: succ.ID,
				ActorID:   rd.UserID,
				Action:    domain.ActionContinuationSettingsUpdated,
				OldValue:  strings.Join(src.ParticipantNames(), ", "),
				NewValue:  strings.Join(succ.ParticipantNames(), ", "),
				Note:      "participant roster differs from the continued project",
			}); err != nil {
				return err
			}
		}

		successor = succ
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("project continued", "source_id", in.ProjectID, "successor_id", successor.ID)
	return successor, nil
}

// validateAssignments checks every referenced staff assignment: it must
// exist, belong to the given term and be active. When ownedBy is set, each
// assignment must also belong to that staff member.
func (s *projectService) validateAssignments(dbc dbctx.Context, op string, ids []uuid.UUID, termID uuid.UUID, ownedBy *uuid.UUID) ([]*domain.StaffAssignment, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := s.assignmentRepo.GetByIDs(dbc.Ctx, dbc.Tx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*domain.StaffAssignment, len(rows))
	for _, row := range rows {
		byID[row.ID] = row
	}
	out := make([]*domain.StaffAssignment, 0, len(ids))
	for _, id := range ids {
		row := byID[id]
		if row == nil {
			return nil, domain.NotFoundError(op, "staff assignment "+id.String()+" not found")
		}
		if row.TermID != termID {
			return nil, domain.ValidationError(op, "staff assignment "+id.String()+" belongs to a different term")
		}
		if !row.Active {
			return nil, domain.ValidationError(op, "staff assignment "+id.String()+" is not active")
		}
		if ownedBy != nil && row.StaffID != *ownedBy {
			return nil, domain.PermissionError(op, "staff assignment "+id.String()+" does not belong to the acting staff member")
		}
		out = append(out, row)
	}
	return out, nil
}

func assignmentLabels(rows []*domain.StaffAssignment) string {
	labels := make([]string, 0, len(rows))
	for _, row := range rows {
		labels = append(labels, row.Label())
	}
	return strings.Join(labels, ", ")
}

func sortedUUIDs(ids []uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, len(ids))
	copy(out, ids)
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

func equalUUIDs(a, b []uuid.UUID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
