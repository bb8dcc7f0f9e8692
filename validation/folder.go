package validation

import "github.com/google/uuid"

type CreateFolderPayload struct {
	FolderName     string     `json:"folderName"`
	ParentFolderID *uuid.UUID `json:"parentFolderId"`
	IsDeleted      bool       `json:"isDeleted"`
}

func (p *CreateFolderPayload) Validate() []FieldError {
	var errs []FieldError
	if p.FolderName == "" {
		errs = append(errs, FieldError{"folderName", "folderName is required"})
	}
	return errs
}

// UpdateFolderPayload is the PATCH allow-list for folders.
type UpdateFolderPayload struct {
	FolderName     *string      `json:"folderName"`
	IsDeleted      *bool        `json:"isDeleted"`
	ParentFolderID OptionalUUID `json:"parentFolderId"`
}

func (p *UpdateFolderPayload) Validate() []FieldError {
	var errs []FieldError
	if p.FolderName != nil && *p.FolderName == "" {
		errs = append(errs, FieldError{"folderName", "folderName must not be empty"})
	}
	return errs
}

func (p *UpdateFolderPayload) Changes() map[string]any {
	changes := map[string]any{}
	if p.FolderName != nil {
		changes["folder_name"] = *p.FolderName
	}
	if p.IsDeleted != nil {
		changes["is_deleted"] = *p.IsDeleted
	}
	if p.ParentFolderID.Set {
		changes["parent_folder_id"] = p.ParentFolderID.Value
	}
	return changes
}
