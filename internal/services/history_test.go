package services

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"

	"github.com/edurealm/projects-backend/internal/domain"
	"github.com/edurealm/projects-backend/internal/platform/dbctx"
	"github.com/edurealm/projects-backend/internal/platform/logger"
)

func newHistoryFixture(t *testing.T) (HistoryService, *fakeHistoryRepo) {
	t.Helper()
	logg, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	repo := &fakeHistoryRepo{}
	return NewHistoryService(nil, logg, repo), repo
}

func TestHistoryRecordMintsIdentity(t *testing.T) {
	svc, repo := newHistoryFixture(t)
	in := HistoryInput{
		ProjectID: uuid.New(),
		ActorID:   uuid.New(),
		Action:    domain.ActionTitleUpdated,
		OldValue:  "old",
		NewValue:  "new",
		Details:   map[string]interface{}{"source": "test"},
	}
	row, err := svc.Record(dbctx.Context{}, in)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if row.ID == uuid.Nil {
		t.Fatalf("no id minted")
	}
	if row.CreatedAt.IsZero() {
		t.Fatalf("no timestamp minted")
	}
	var details map[string]interface{}
	if err := json.Unmarshal(row.Details, &details); err != nil {
		t.Fatalf("unmarshal details: %v", err)
	}
	if details["source"] != "test" {
		t.Fatalf("details=%v", details)
	}
	if len(repo.rows) != 1 {
		t.Fatalf("rows=%d, want 1", len(repo.rows))
	}
}

func TestHistoryRecordValidation(t *testing.T) {
	svc, repo := newHistoryFixture(t)
	cases := []struct {
		name string
		in   HistoryInput
	}{
		{name: "missing_project", in: HistoryInput{ActorID: uuid.New(), Action: domain.ActionCreated}},
		{name: "missing_actor", in: HistoryInput{ProjectID: uuid.New(), Action: domain.ActionCreated}},
		{name: "missing_action", in: HistoryInput{ProjectID: uuid.New(), ActorID: uuid.New()}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Record(dbctx.Context{}, tc.in); !domain.IsCode(err, domain.CodeInvalidArgument) {
				t.Fatalf("err=%v, want invalid_argument", err)
			}
		})
	}
	if len(repo.rows) != 0 {
		t.Fatalf("invalid inputs appended %d rows", len(repo.rows))
	}
}
