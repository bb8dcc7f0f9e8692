package storage

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cloudnest/cloudnest-backend/models"
)

type FolderRepository interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID, f Filter) ([]models.Folder, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Folder, error)
	Create(ctx context.Context, folder *models.Folder) error
	Update(ctx context.Context, id uuid.UUID, changes map[string]any) (*models.Folder, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type folderRepository struct {
	db *gorm.DB
}

func NewFolderRepository(db *gorm.DB) FolderRepository {
	return &folderRepository{db: db}
}

func (r *folderRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, f Filter) ([]models.Folder, error) {
	folders := []models.Folder{}
	q := r.db.WithContext(ctx).Where("owner_id = ?", ownerID)
	// Folders have no favorite flag; the favorites section just hides trash.
	q = f.apply(q, "folder_name", false)
	if err := q.Order("created_at DESC").Find(&folders).Error; err != nil {
		return nil, err
	}
	return folders, nil
}

func (r *folderRepository) Get(ctx context.Context, id uuid.UUID) (*models.Folder, error) {
	var folder models.Folder
	if err := r.db.WithContext(ctx).First(&folder, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &folder, nil
}

func (r *folderRepository) Create(ctx context.Context, folder *models.Folder) error {
	return r.db.WithContext(ctx).Create(folder).Error
}

func (r *folderRepository) Update(ctx context.Context, id uuid.UUID, changes map[string]any) (*models.Folder, error) {
	if len(changes) > 0 {
		if err := r.db.WithContext(ctx).
			Model(&models.Folder{}).
			Where("id = ?", id).
			Updates(changes).Error; err != nil {
			return nil, err
		}
	}
	return r.Get(ctx, id)
}

func (r *folderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Folder{}, "id = ?", id).Error
}
