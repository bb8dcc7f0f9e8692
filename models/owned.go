package models

import "github.com/google/uuid"

// Owned is implemented by every row that belongs to exactly one user.
// Ownership is stamped at creation and never changes.
type Owned interface {
	Owner() uuid.UUID
}
