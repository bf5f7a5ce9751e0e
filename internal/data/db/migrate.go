package db

import (
	"gorm.io/gorm"

	"github.com/edurealm/projects-backend/internal/domain"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		// Catalogs (read-mostly collaborators)
		&domain.User{},
		&domain.Term{},
		&domain.Subject{},
		&domain.StaffAssignment{},

		// Project aggregate + owned children
		&domain.Project{},
		&domain.ProjectParticipant{},
		&domain.ProjectAssignment{},
		&domain.ProjectAttachment{},

		// Audit trail
		&domain.ProjectHistory{},
	)
}
