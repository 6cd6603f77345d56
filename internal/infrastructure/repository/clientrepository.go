// Package repository provides the gorm-backed implementations of the domain
// repositories, used when the database driver is sqlite or mysql.
package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"clientsolve/internal/domain/client"
	"clientsolve/internal/infrastructure/persistence/mappers"
	"clientsolve/internal/infrastructure/persistence/models"
)

type ClientRepository struct {
	db     *gorm.DB
	mapper mappers.ClientMapper
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{
		db:     db,
		mapper: mappers.NewClientMapper(),
	}
}

func (r *ClientRepository) Save(ctx context.Context, c *client.Client) error {
	model := r.mapper.ToModel(c)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save client: %w", err)
	}
	return nil
}

func (r *ClientRepository) Update(ctx context.Context, c *client.Client) (bool, error) {
	model := r.mapper.ToModel(c)

	// Select("*") so zero values (cleared fields, active=false) are written.
	result := r.db.WithContext(ctx).
		Model(&models.ClientModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("position").
		Updates(model)

	if result.Error != nil {
		return false, fmt.Errorf("failed to update client: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *ClientRepository) Delete(ctx context.Context, clientID string) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("id = ?", clientID).
		Delete(&models.ClientModel{})

	if result.Error != nil {
		return false, fmt.Errorf("failed to delete client: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *ClientRepository) FindByID(ctx context.Context, clientID string) (*client.Client, error) {
	var model models.ClientModel
	err := r.db.WithContext(ctx).
		Where("id = ?", clientID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find client: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *ClientRepository) List(ctx context.Context, filter client.Filter) ([]*client.Client, error) {
	query := r.db.WithContext(ctx).Model(&models.ClientModel{})

	if filter.Active != nil {
		query = query.Where("active = ?", *filter.Active)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"company_name LIKE ? OR contact_name LIKE ? OR email LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var rows []*models.ClientModel
	if err := query.Order("position ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	result := make([]*client.Client, 0, len(rows))
	for _, row := range rows {
		c, err := r.mapper.ToDomain(row)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, nil
}
