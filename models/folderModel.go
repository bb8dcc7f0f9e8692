package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Folder struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"ownerId"`
	FolderName     string     `gorm:"not null" json:"folderName"`
	ParentFolderID *uuid.UUID `gorm:"type:uuid" json:"parentFolderId"`
	IsDeleted      bool       `gorm:"not null;default:false" json:"isDeleted"`
	CreatedAt      time.Time  `json:"createdAt"`
}

func (f *Folder) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

func (f *Folder) Owner() uuid.UUID { return f.OwnerID }
