package projects

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/edurealm/projects-backend/internal/data/repos/testutil"
	"github.com/edurealm/projects-backend/internal/domain"
)

func TestProjectRepoRoundTrip(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()
	repo := NewProjectRepo(gdb, testutil.Logger(t))

	staff := testutil.SeedUser(t, ctx, tx, "staff")
	term := testutil.SeedTerm(t, ctx, tx, "2024-1", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), true)
	subject := testutil.SeedSubject(t, ctx, tx, "Mathematics")
	assignment := testutil.SeedStaffAssignment(t, ctx, tx, term.ID, subject.ID, staff.ID, true)

	p, err := domain.NewProject("Math study group", term.ID, staff.ID, "desc", "general", "specific")
	if err != nil {
		t.Fatalf("NewProject: %v", err)
	}
	if err := p.SetAssignments([]uuid.UUID{assignment.ID}); err != nil {
		t.Fatalf("SetAssignments: %v", err)
	}
	if err := p.SetParticipants([]string{"Ana", "Bruno"}); err != nil {
		t.Fatalf("SetParticipants: %v", err)
	}
	if err := repo.Create(ctx, tx, p); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, tx, p.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil || got.Title != "Math study group" {
		t.Fatalf("GetByID returned %+v", got)
	}
	if len(got.Participants) != 2 || len(got.Assignments) != 1 {
		t.Fatalf("children not preloaded: %d participants, %d assignments", len(got.Participants), len(got.Assignments))
	}

	if missing, err := repo.GetByID(ctx, tx, uuid.New()); err != nil || missing != nil {
		t.Fatalf("GetByID missing: got=%v err=%v", missing, err)
	}
}

func TestProjectRepoTitleUniquenessScope(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()
	repo := NewProjectRepo(gdb, testutil.Logger(t))

	staff := testutil.SeedUser(t, ctx, tx, "staff")
	term1 := testutil.SeedTerm(t, ctx, tx, "2024-1", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), true)
	term2 := testutil.SeedTerm(t, ctx, tx, "2024-2", time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), true)
	p := testutil.SeedProject(t, ctx, tx, "Chemistry fair", term1.ID, staff.ID)

	if exists, err := repo.TitleExistsInTerm(ctx, tx, "chemistry FAIR", term1.ID, uuid.Nil); err != nil || !exists {
		t.Fatalf("same term, case-insensitive: exists=%v err=%v", exists, err)
	}
	if exists, err := repo.TitleExistsInTerm(ctx, tx, "Chemistry fair", term2.ID, uuid.Nil); err != nil || exists {
		t.Fatalf("different term should not match: exists=%v err=%v", exists, err)
	}
	if exists, err := repo.TitleExistsInTerm(ctx, tx, "Chemistry fair", term1.ID, p.ID); err != nil || exists {
		t.Fatalf("excluded project should not match: exists=%v err=%v", exists, err)
	}
}

func TestProjectRepoListings(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()
	repo := NewProjectRepo(gdb, testutil.Logger(t))

	staff := testutil.SeedUser(t, ctx, tx, "staff")
	other := testutil.SeedUser(t, ctx, tx, "staff")
	term := testutil.SeedTerm(t, ctx, tx, "2024-1", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), true)
	subject := testutil.SeedSubject(t, ctx, tx, "Physics")
	assignment := testutil.SeedStaffAssignment(t, ctx, tx, term.ID, subject.ID, staff.ID, true)

	p1 := testutil.SeedProject(t, ctx, tx, "Project one", term.ID, staff.ID)
	testutil.SeedProject(t, ctx, tx, "Project two", term.ID, other.ID)

	if err := p1.SetAssignments([]uuid.UUID{assignment.ID}); err != nil {
		t.Fatalf("SetAssignments: %v", err)
	}
	if err := repo.Update(ctx, tx, p1); err != nil {
		t.Fatalf("Update: %v", err)
	}

	succ := testutil.SeedProject(t, ctx, tx, "Project one (continued)", term.ID, staff.ID)
	if err := tx.Model(&domain.Project{}).Where("id = ?", succ.ID).Update("continuation_of", p1.ID).Error; err != nil {
		t.Fatalf("link successor: %v", err)
	}

	if rows, err := repo.ListByTerm(ctx, tx, term.ID); err != nil || len(rows) != 3 {
		t.Fatalf("ListByTerm: err=%v len=%d", err, len(rows))
	}
	if rows, err := repo.ListByResponsible(ctx, tx, staff.ID, term.ID); err != nil || len(rows) != 2 {
		t.Fatalf("ListByResponsible: err=%v len=%d", err, len(rows))
	}
	if rows, err := repo.ListByStaffAssignment(ctx, tx, assignment.ID); err != nil || len(rows) != 1 || rows[0].ID != p1.ID {
		t.Fatalf("ListByStaffAssignment: err=%v len=%d", err, len(rows))
	}
	if rows, err := repo.ListByPredecessor(ctx, tx, p1.ID); err != nil || len(rows) != 1 || rows[0].ID != succ.ID {
		t.Fatalf("ListByPredecessor: err=%v len=%d", err, len(rows))
	}
}

func TestProjectRepoUpdateReconcilesChildren(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()
	repo := NewProjectRepo(gdb, testutil.Logger(t))

	staff := testutil.SeedUser(t, ctx, tx, "staff")
	term := testutil.SeedTerm(t, ctx, tx, "2024-1", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), true)
	p := testutil.SeedProject(t, ctx, tx, "Biology lab", term.ID, staff.ID)

	if err := p.SetParticipants([]string{"Ana", "Bruno", "Carla"}); err != nil {
		t.Fatalf("SetParticipants: %v", err)
	}
	if err := repo.Update(ctx, tx, p); err != nil {
		t.Fatalf("Update seed roster: %v", err)
	}

	loaded, err := repo.GetByID(ctx, tx, p.ID)
	if err != nil || loaded == nil {
		t.Fatalf("GetByID: got=%v err=%v", loaded, err)
	}
	var keepID uuid.UUID
	for _, row := range loaded.Participants {
		if row.Name == "Ana" {
			keepID = row.ID
		}
	}
	if _, err := loaded.SyncParticipants([]domain.ParticipantInput{
		{ID: &keepID, Name: "Ana Clara"},
		{Name: "Diego"},
	}); err != nil {
		t.Fatalf("SyncParticipants: %v", err)
	}
	if err := repo.Update(ctx, tx, loaded); err != nil {
		t.Fatalf("Update reconciled roster: %v", err)
	}

	final, err := repo.GetByID(ctx, tx, p.ID)
	if err != nil || final == nil {
		t.Fatalf("GetByID final: got=%v err=%v", final, err)
	}
	if len(final.Participants) != 2 {
		t.Fatalf("roster size=%d, want 2", len(final.Participants))
	}
	names := final.ParticipantNames()
	if names[0] != "Ana Clara" || names[1] != "Diego" {
		t.Fatalf("roster=%v", names)
	}
}

func TestProjectRepoUpdateRevisionGuard(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()
	repo := NewProjectRepo(gdb, testutil.Logger(t))

	staff := testutil.SeedUser(t, ctx, tx, "staff")
	term := testutil.SeedTerm(t, ctx, tx, "2024-1", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), true)
	p := testutil.SeedProject(t, ctx, tx, "History circle", term.ID, staff.ID)

	stale, err := repo.GetByID(ctx, tx, p.ID)
	if err != nil || stale == nil {
		t.Fatalf("GetByID: got=%v err=%v", stale, err)
	}

	p.UpdateDescription("first writer")
	if err := repo.Update(ctx, tx, p); err != nil {
		t.Fatalf("first Update: %v", err)
	}
	if p.Revision != 2 {
		t.Fatalf("revision=%d, want 2", p.Revision)
	}

	stale.UpdateDescription("second writer")
	if err := repo.Update(ctx, tx, stale); !domain.IsCode(err, domain.CodeConflict) {
		t.Fatalf("stale update err=%v, want conflict", err)
	}

	ghost := *p
	ghost.ID = uuid.New()
	if err := repo.Update(ctx, tx, &ghost); !domain.IsCode(err, domain.CodeNotFound) {
		t.Fatalf("missing update err=%v, want not_found", err)
	}
}
