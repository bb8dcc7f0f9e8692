package storage

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cloudnest/cloudnest-backend/models"
)

type FileRepository interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID, f Filter) ([]models.File, error)
	Get(ctx context.Context, id uuid.UUID) (*models.File, error)
	Create(ctx context.Context, file *models.File) error
	Update(ctx context.Context, id uuid.UUID, changes map[string]any) (*models.File, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type fileRepository struct {
	db *gorm.DB
}

func NewFileRepository(db *gorm.DB) FileRepository {
	return &fileRepository{db: db}
}

func (r *fileRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, f Filter) ([]models.File, error) {
	files := []models.File{}
	q := r.db.WithContext(ctx).Where("owner_id = ?", ownerID)
	q = f.apply(q, "filename", true)
	if err := q.Order("created_at DESC").Find(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}

func (r *fileRepository) Get(ctx context.Context, id uuid.UUID) (*models.File, error) {
	var file models.File
	if err := r.db.WithContext(ctx).First(&file, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &file, nil
}

func (r *fileRepository) Create(ctx context.Context, file *models.File) error {
	return r.db.WithContext(ctx).Create(file).Error
}

func (r *fileRepository) Update(ctx context.Context, id uuid.UUID, changes map[string]any) (*models.File, error) {
	if len(changes) > 0 {
		if err := r.db.WithContext(ctx).
			Model(&models.File{}).
			Where("id = ?", id).
			Updates(changes).Error; err != nil {
			return nil, err
		}
	}
	return r.Get(ctx, id)
}

func (r *fileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.File{}, "id = ?", id).Error
}
