// Package persistence owns the gorm schema for the durable repositories.
package persistence

import (
	"fmt"

	"gorm.io/gorm"

	"clientsolve/internal/infrastructure/persistence/models"
)

// AutoMigrate creates or updates the schema for every persisted aggregate.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.ClientModel{},
		&models.UserModel{},
		&models.TicketModel{},
		&models.CommentModel{},
		&models.AttachmentModel{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
