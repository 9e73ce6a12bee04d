package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mdSafdarKhan/redis/internal/domain"
)

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM-based user repository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// FindAll returns every user ordered by id.
func (r *GormUserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	var models []domain.UserModel
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]domain.User, len(models))
	for i := range models {
		users[i] = *models[i].ToDomain()
	}
	return users, nil
}

// FindByID retrieves a user by ID.
func (r *GormUserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	var model domain.UserModel
	result := r.db.WithContext(ctx).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, result.Error
	}
	return model.ToDomain(), nil
}

// Save inserts or overwrites a user.
func (r *GormUserRepository) Save(ctx context.Context, user *domain.User) (*domain.User, error) {
	model := domain.UserToModel(user)

	if model.ID == 0 {
		if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		return model.ToDomain(), nil
	}

	var saved domain.UserModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing domain.UserModel
		err := tx.First(&existing, "id = ?", model.ID).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(model).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			if err := tx.Model(&existing).Updates(map[string]interface{}{
				"name":      model.Name,
				"followers": model.Followers,
			}).Error; err != nil {
				return err
			}
		}
		return tx.First(&saved, "id = ?", model.ID).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save user %d: %w", model.ID, err)
	}

	return saved.ToDomain(), nil
}
