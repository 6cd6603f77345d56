package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"clientsolve/internal/domain/user"
	vo "clientsolve/internal/domain/user/valueobjects"
	"clientsolve/internal/infrastructure/persistence/mappers"
	"clientsolve/internal/infrastructure/persistence/models"
)

type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *UserRepository) Save(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) (bool, error) {
	model := r.mapper.ToModel(u)

	result := r.db.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("position").
		Updates(model)

	if result.Error != nil {
		return false, fmt.Errorf("failed to update user: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *UserRepository) Delete(ctx context.Context, userID string) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("id = ?", userID).
		Delete(&models.UserModel{})

	if result.Error != nil {
		return false, fmt.Errorf("failed to delete user: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *UserRepository) FindByID(ctx context.Context, userID string) (*user.User, error) {
	var model models.UserModel
	err := r.db.WithContext(ctx).
		Where("id = ?", userID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) List(ctx context.Context, filter user.Filter) ([]*user.User, error) {
	query := r.db.WithContext(ctx).Model(&models.UserModel{})

	if filter.ClientID != "" {
		query = query.Where("role = ? AND client_id = ?", vo.RoleClient.String(), filter.ClientID)
	}
	if filter.Active != nil {
		query = query.Where("active = ?", *filter.Active)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("username LIKE ? OR email LIKE ?", pattern, pattern)
	}

	var rows []*models.UserModel
	if err := query.Order("position ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	result := make([]*user.User, 0, len(rows))
	for _, row := range rows {
		u, err := r.mapper.ToDomain(row)
		if err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	return result, nil
}
