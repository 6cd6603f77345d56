package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"clientsolve/internal/domain/ticket"
	"clientsolve/internal/infrastructure/persistence/models"
)

// SeedReferenceGenerator builds a counter generator whose next value follows
// the highest reference already persisted. Seeding from the maximum rather
// than the row count keeps the sequence collision-free after deletions.
func SeedReferenceGenerator(ctx context.Context, db *gorm.DB) (*ticket.CounterReferenceGenerator, error) {
	var references []string
	err := db.WithContext(ctx).
		Model(&models.TicketModel{}).
		Pluck("reference", &references).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load ticket references: %w", err)
	}

	highest := 0
	for _, ref := range references {
		n, ok := parseReference(ref)
		if ok && n > highest {
			highest = n
		}
	}
	return ticket.NewCounterReferenceGenerator(highest), nil
}

func parseReference(ref string) (int, bool) {
	if !strings.HasPrefix(ref, ticket.ReferencePrefix) {
		return 0, false
	}
	n, err := strconv.Atoi(ref[len(ticket.ReferencePrefix):])
	if err != nil {
		return 0, false
	}
	return n, true
}
