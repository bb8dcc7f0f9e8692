// Package validation holds the request payload types for the metadata
// API and their validation rules. Validation never panics on bad input;
// expected failures come back as a list of field errors.
package validation

import (
	"encoding/json"

	"github.com/google/uuid"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// OptionalUUID distinguishes an absent JSON field from an explicit
// null, so a PATCH can clear folderId/parentFolderId.
type OptionalUUID struct {
	Set   bool
	Value *uuid.UUID
}

func (o *OptionalUUID) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Value = nil
		return nil
	}
	var id uuid.UUID
	if err := json.Unmarshal(b, &id); err != nil {
		return err
	}
	o.Value = &id
	return nil
}
