package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/edurealm/projects-backend/internal/domain"
	"github.com/edurealm/projects-backend/internal/platform/dbctx"
)

// In-memory collaborators for exercising the orchestrator without a database.

type fakeRunner struct{}

func (fakeRunner) InTx(ctx context.Context, fn func(dbc dbctx.Context) error) error {
	return fn(dbctx.Context{Ctx: ctx})
}

func cloneProject(p *domain.Project) *domain.Project {
	if p == nil {
		return nil
	}
	cp := *p
	if p.ContinuationOf != nil {
		v := *p.ContinuationOf
		cp.ContinuationOf = &v
	}
	if p.ContinuedBy != nil {
		v := *p.ContinuedBy
		cp.ContinuedBy = &v
	}
	cp.Participants = make([]*domain.ProjectParticipant, len(p.Participants))
	for i, row := range p.Participants {
		c := *row
		cp.Participants[i] = &c
	}
	cp.Assignments = make([]*domain.ProjectAssignment, len(p.Assignments))
	for i, row := range p.Assignments {
		c := *row
		cp.Assignments[i] = &c
	}
	return &cp
}

type fakeProjectRepo struct {
	rows map[uuid.UUID]*domain.Project
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{rows: map[uuid.UUID]*domain.Project{}}
}

func (r *fakeProjectRepo) put(p *domain.Project) {
	r.rows[p.ID] = cloneProject(p)
}

func (r *fakeProjectRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*domain.Project, error) {
	return cloneProject(r.rows[id]), nil
}

func (r *fakeProjectRepo) ListByTerm(ctx context.Context, tx *gorm.DB, termID uuid.UUID) ([]*domain.Project, error) {
	var out []*domain.Project
	for _, row := range r.rows {
		if row.TermID == termID {
			out = append(out, cloneProject(row))
		}
	}
	return out, nil
}

func (r *fakeProjectRepo) ListByResponsible(ctx context.Context, tx *gorm.DB, responsibleID, termID uuid.UUID) ([]*domain.Project, error) {
	var out []*domain.Project
	for _, row := range r.rows {
		if row.ResponsibleID == responsibleID && (termID == uuid.Nil || row.TermID == termID) {
			out = append(out, cloneProject(row))
		}
	}
	return out, nil
}

func (r *fakeProjectRepo) ListByStaffAssignment(ctx context.Context, tx *gorm.DB, staffAssignmentID uuid.UUID) ([]*domain.Project, error) {
	var out []*domain.Project
	for _, row := range r.rows {
		for _, a := range row.Assignments {
			if a.StaffAssignmentID == staffAssignmentID {
				out = append(out, cloneProject(row))
				break
			}
		}
	}
	return out, nil
}

func (r *fakeProjectRepo) ListByPredecessor(ctx context.Context, tx *gorm.DB, predecessorID uuid.UUID) ([]*domain.Project, error) {
	var out []*domain.Project
	for _, row := range r.rows {
		if row.ContinuationOf != nil && *row.ContinuationOf == predecessorID {
			out = append(out, cloneProject(row))
		}
	}
	return out, nil
}

func (r *fakeProjectRepo) TitleExistsInTerm(ctx context.Context, tx *gorm.DB, title string, termID, excludeID uuid.UUID) (bool, error) {
	for _, row := range r.rows {
		if row.TermID != termID || row.ID == excludeID {
			continue
		}
		if strings.EqualFold(row.Title, title) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeProjectRepo) Create(ctx context.Context, tx *gorm.DB, row *domain.Project) error {
	if _, ok := r.rows[row.ID]; ok {
		return domain.ConflictError("fake_project_repo.create", "duplicate id")
	}
	r.put(row)
	return nil
}

func (r *fakeProjectRepo) Update(ctx context.Context, tx *gorm.DB, row *domain.Project) error {
	const op = "fake_project_repo.update"
	existing, ok := r.rows[row.ID]
	if !ok {
		return domain.NotFoundError(op, "project not found")
	}
	if existing.Revision != row.Revision {
		return domain.ConflictError(op, "project was modified concurrently")
	}
	row.Revision++
	r.put(row)
	return nil
}

func (r *fakeProjectRepo) UpdateBasicFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]interface{}) error {
	return nil
}

type fakeHistoryRepo struct {
	rows []*domain.ProjectHistory
}

func (r *fakeHistoryRepo) Append(ctx context.Context, tx *gorm.DB, row *domain.ProjectHistory) error {
	return r.AppendMany(ctx, tx, []*domain.ProjectHistory{row})
}

func (r *fakeHistoryRepo) AppendMany(ctx context.Context, tx *gorm.DB, rows []*domain.ProjectHistory) error {
	r.rows = append(r.rows, rows...)
	return nil
}

func (r *fakeHistoryRepo) ListByProject(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) ([]*domain.ProjectHistory, error) {
	var out []*domain.ProjectHistory
	for _, row := range r.rows {
		if row.ProjectID == projectID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *fakeHistoryRepo) ListByProjectAndAction(ctx context.Context, tx *gorm.DB, projectID uuid.UUID, action domain.HistoryAction) ([]*domain.ProjectHistory, error) {
	var out []*domain.ProjectHistory
	for _, row := range r.rows {
		if row.ProjectID == projectID && row.Action == action {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *fakeHistoryRepo) ListByActor(ctx context.Context, tx *gorm.DB, actorID uuid.UUID) ([]*domain.ProjectHistory, error) {
	var out []*domain.ProjectHistory
	for _, row := range r.rows {
		if row.ActorID == actorID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *fakeHistoryRepo) byAction(projectID uuid.UUID, action domain.HistoryAction) []*domain.ProjectHistory {
	out, _ := r.ListByProjectAndAction(context.Background(), nil, projectID, action)
	return out
}

type fakeTermRepo struct {
	rows map[uuid.UUID]*domain.Term
}

func (r *fakeTermRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*domain.Term, error) {
	return r.rows[id], nil
}

func (r *fakeTermRepo) GetByCode(ctx context.Context, tx *gorm.DB, code string) (*domain.Term, error) {
	for _, row := range r.rows {
		if row.Code == code {
			return row, nil
		}
	}
	return nil, nil
}

func (r *fakeTermRepo) ListActive(ctx context.Context, tx *gorm.DB) ([]*domain.Term, error) {
	var out []*domain.Term
	for _, row := range r.rows {
		if row.Active {
			out = append(out, row)
		}
	}
	return out, nil
}

type fakeAssignmentRepo struct {
	rows map[uuid.UUID]*domain.StaffAssignment
}

func (r *fakeAssignmentRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*domain.StaffAssignment, error) {
	return r.rows[id], nil
}

func (r *fakeAssignmentRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*domain.StaffAssignment, error) {
	var out []*domain.StaffAssignment
	for _, id := range ids {
		if row, ok := r.rows[id]; ok {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *fakeAssignmentRepo) ListByStaffAndTerm(ctx context.Context, tx *gorm.DB, staffID, termID uuid.UUID) ([]*domain.StaffAssignment, error) {
	var out []*domain.StaffAssignment
	for _, row := range r.rows {
		if row.StaffID == staffID && row.TermID == termID {
			out = append(out, row)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	rows map[uuid.UUID]*domain.User
}

func (r *fakeUserRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*domain.User, error) {
	return r.rows[id], nil
}

func (r *fakeUserRepo) Exists(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error) {
	_, ok := r.rows[id]
	return ok, nil
}

type fakeAttachmentRepo struct {
	formalDocs map[uuid.UUID]int64
}

func (r *fakeAttachmentRepo) Create(ctx context.Context, tx *gorm.DB, row *domain.ProjectAttachment) error {
	if row.Kind == domain.AttachmentKindFormalDocument {
		r.formalDocs[row.ProjectID]++
	}
	return nil
}

func (r *fakeAttachmentRepo) SoftDeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error {
	return nil
}

func (r *fakeAttachmentRepo) CountActiveByKind(ctx context.Context, tx *gorm.DB, projectID uuid.UUID, kind string) (int64, error) {
	if kind != domain.AttachmentKindFormalDocument {
		return 0, nil
	}
	return r.formalDocs[projectID], nil
}
