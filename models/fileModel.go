package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// File is a metadata record only; no bytes live in this service.
// PathOrURL is an opaque locator (e.g. an S3 object key) that the API
// never dereferences.
type File struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"ownerId"`
	FolderID    *uuid.UUID `gorm:"type:uuid" json:"folderId"`
	Filename    string     `gorm:"not null" json:"filename"`
	Size        int64      `gorm:"not null" json:"size"`
	ContentType string     `gorm:"not null" json:"type"`
	PathOrURL   *string    `json:"pathOrUrl"`
	IsFavorite  bool       `gorm:"not null;default:false" json:"isFavorite"`
	IsDeleted   bool       `gorm:"not null;default:false" json:"isDeleted"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func (f *File) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

func (f *File) Owner() uuid.UUID { return f.OwnerID }
