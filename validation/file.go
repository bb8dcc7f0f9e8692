package validation

import "github.com/google/uuid"

// CreateFilePayload deliberately has no owner field; the owner is
// always stamped from the authenticated caller.
type CreateFilePayload struct {
	Filename   string     `json:"filename"`
	Size       *int64     `json:"size"`
	Type       string     `json:"type"`
	FolderID   *uuid.UUID `json:"folderId"`
	PathOrURL  *string    `json:"pathOrUrl"`
	IsFavorite bool       `json:"isFavorite"`
	IsDeleted  bool       `json:"isDeleted"`
}

func (p *CreateFilePayload) Validate() []FieldError {
	var errs []FieldError
	if p.Filename == "" {
		errs = append(errs, FieldError{"filename", "filename is required"})
	}
	if p.Size == nil {
		errs = append(errs, FieldError{"size", "size is required"})
	} else if *p.Size < 0 {
		errs = append(errs, FieldError{"size", "size must not be negative"})
	}
	if p.Type == "" {
		errs = append(errs, FieldError{"type", "type is required"})
	}
	return errs
}

// UpdateFilePayload is the PATCH allow-list for files. Anything a
// client sends outside these fields is dropped on unmarshal; ownerId in
// particular is not representable here.
type UpdateFilePayload struct {
	Filename   *string      `json:"filename"`
	IsFavorite *bool        `json:"isFavorite"`
	IsDeleted  *bool        `json:"isDeleted"`
	FolderID   OptionalUUID `json:"folderId"`
}

func (p *UpdateFilePayload) Validate() []FieldError {
	var errs []FieldError
	if p.Filename != nil && *p.Filename == "" {
		errs = append(errs, FieldError{"filename", "filename must not be empty"})
	}
	return errs
}

// Changes returns the column map to persist. Only allow-listed columns
// can ever appear as keys.
func (p *UpdateFilePayload) Changes() map[string]any {
	changes := map[string]any{}
	if p.Filename != nil {
		changes["filename"] = *p.Filename
	}
	if p.IsFavorite != nil {
		changes["is_favorite"] = *p.IsFavorite
	}
	if p.IsDeleted != nil {
		changes["is_deleted"] = *p.IsDeleted
	}
	if p.FolderID.Set {
		changes["folder_id"] = p.FolderID.Value
	}
	return changes
}
