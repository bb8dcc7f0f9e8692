package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cloudnest/cloudnest-backend/models"
)

type UserRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*models.User, error)
	// Upsert inserts the user or, when the email is already known,
	// refreshes name and avatar. The stored row is returned either way.
	Upsert(ctx context.Context, user *models.User) (*models.User, error)
	UpdatePlan(ctx context.Context, id uuid.UUID, planType string) (*models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *userRepository) Upsert(ctx context.Context, user *models.User) (*models.User, error) {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"first_name", "last_name", "profile_image_url", "updated_at",
		}),
	}).Create(user).Error
	if err != nil {
		return nil, err
	}

	// On conflict the insert id is discarded; re-read by email so the
	// caller always sees the persisted row, plan type included.
	var stored models.User
	if err := r.db.WithContext(ctx).First(&stored, "email = ?", user.Email).Error; err != nil {
		return nil, translate(err)
	}
	return &stored, nil
}

func (r *userRepository) UpdatePlan(ctx context.Context, id uuid.UUID, planType string) (*models.User, error) {
	res := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]any{"plan_type": planType, "updated_at": time.Now()})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.Get(ctx, id)
}
