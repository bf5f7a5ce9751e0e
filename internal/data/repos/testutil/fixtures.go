package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/edurealm/projects-backend/internal/domain"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, role string) *domain.User {
	tb.Helper()
	u := &domain.User{
		ID:    uuid.New(),
		Name:  "User " + uuid.NewString()[:8],
		Email: fmt.Sprintf("%s@example.edu", uuid.NewString()[:8]),
		Role:  role,
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedTerm(tb testing.TB, ctx context.Context, tx *gorm.DB, code string, start time.Time, active bool) *domain.Term {
	tb.Helper()
	term := &domain.Term{
		ID:        uuid.New(),
		Code:      code,
		Name:      "Term " + code,
		StartDate: start,
		EndDate:   start.AddDate(0, 6, 0),
		Active:    active,
	}
	if err := tx.WithContext(ctx).Create(term).Error; err != nil {
		tb.Fatalf("seed term: %v", err)
	}
	return term
}

func SeedSubject(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *domain.Subject {
	tb.Helper()
	s := &domain.Subject{
		ID:   uuid.New(),
		Code: uuid.NewString()[:8],
		Name: name,
	}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed subject: %v", err)
	}
	return s
}

func SeedStaffAssignment(tb testing.TB, ctx context.Context, tx *gorm.DB, termID, subjectID, staffID uuid.UUID, active bool) *domain.StaffAssignment {
	tb.Helper()
	a := &domain.StaffAssignment{
		ID:        uuid.New(),
		TermID:    termID,
		SubjectID: subjectID,
		StaffID:   staffID,
		Active:    active,
	}
	if err := tx.WithContext(ctx).Create(a).Error; err != nil {
		tb.Fatalf("seed staff assignment: %v", err)
	}
	return a
}

func SeedProject(tb testing.TB, ctx context.Context, tx *gorm.DB, title string, termID, responsibleID uuid.UUID) *domain.Project {
	tb.Helper()
	p, err := domain.NewProject(title, termID, responsibleID, "seeded", "", "")
	if err != nil {
		tb.Fatalf("seed project: %v", err)
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed project insert: %v", err)
	}
	return p
}

func SeedAttachment(tb testing.TB, ctx context.Context, tx *gorm.DB, projectID uuid.UUID, kind string) *domain.ProjectAttachment {
	tb.Helper()
	att := &domain.ProjectAttachment{
		ID:        uuid.New(),
		ProjectID: projectID,
		Kind:      kind,
		FileName:  "document.pdf",
	}
	if err := tx.WithContext(ctx).Create(att).Error; err != nil {
		tb.Fatalf("seed attachment: %v", err)
	}
	return att
}
