package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"clientsolve/internal/domain/ticket"
	"clientsolve/internal/infrastructure/persistence/mappers"
	"clientsolve/internal/infrastructure/persistence/models"
)

// TicketRepository persists the ticket aggregate across three tables. The
// comment and attachment rows are replaced wholesale on every Update so the
// stored aggregate always mirrors the in-memory one.
type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	comments := r.mapper.CommentsToModels(t)
	attachments := r.mapper.AttachmentsToModels(t)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model).Error; err != nil {
			return err
		}
		if len(comments) > 0 {
			if err := tx.Create(comments).Error; err != nil {
				return err
			}
		}
		if len(attachments) > 0 {
			if err := tx.Create(attachments).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}
	return nil
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) (bool, error) {
	model := r.mapper.ToModel(t)
	comments := r.mapper.CommentsToModels(t)
	attachments := r.mapper.AttachmentsToModels(t)

	found := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.TicketModel{}).
			Where("id = ?", model.ID).
			Select("*").
			Omit("position").
			Updates(model)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		found = true

		if err := tx.Where("ticket_id = ?", model.ID).Delete(&models.CommentModel{}).Error; err != nil {
			return err
		}
		if len(comments) > 0 {
			if err := tx.Create(comments).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("ticket_id = ?", model.ID).Delete(&models.AttachmentModel{}).Error; err != nil {
			return err
		}
		if len(attachments) > 0 {
			if err := tx.Create(attachments).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to update ticket: %w", err)
	}
	return found, nil
}

func (r *TicketRepository) Delete(ctx context.Context, ticketID string) (bool, error) {
	found := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ?", ticketID).Delete(&models.TicketModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		found = true

		if err := tx.Where("ticket_id = ?", ticketID).Delete(&models.CommentModel{}).Error; err != nil {
			return err
		}
		return tx.Where("ticket_id = ?", ticketID).Delete(&models.AttachmentModel{}).Error
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete ticket: %w", err)
	}
	return found, nil
}

func (r *TicketRepository) FindByID(ctx context.Context, ticketID string) (*ticket.Ticket, error) {
	return r.findOne(ctx, "id = ?", ticketID)
}

func (r *TicketRepository) FindByReference(ctx context.Context, reference string) (*ticket.Ticket, error) {
	return r.findOne(ctx, "reference = ?", reference)
}

func (r *TicketRepository) findOne(ctx context.Context, query string, arg string) (*ticket.Ticket, error) {
	var model models.TicketModel
	err := r.db.WithContext(ctx).
		Where(query, arg).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	comments, attachments, err := r.loadChildren(ctx, model.ID)
	if err != nil {
		return nil, err
	}
	return r.mapper.ToDomain(&model, comments, attachments)
}

func (r *TicketRepository) loadChildren(ctx context.Context, ticketID string) ([]*models.CommentModel, []*models.AttachmentModel, error) {
	var comments []*models.CommentModel
	err := r.db.WithContext(ctx).
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load ticket comments: %w", err)
	}

	var attachments []*models.AttachmentModel
	err = r.db.WithContext(ctx).
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC, id ASC").
		Find(&attachments).Error
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load ticket attachments: %w", err)
	}
	return comments, attachments, nil
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, error) {
	query := r.db.WithContext(ctx).Model(&models.TicketModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.ClientID != "" {
		query = query.Where("client_id = ?", filter.ClientID)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"title LIKE ? OR description LIKE ? OR reference LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var rows []*models.TicketModel
	if err := query.Order("position ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	result := make([]*ticket.Ticket, 0, len(rows))
	for _, row := range rows {
		comments, attachments, err := r.loadChildren(ctx, row.ID)
		if err != nil {
			return nil, err
		}
		t, err := r.mapper.ToDomain(row, comments, attachments)
		if err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	return result, nil
}
