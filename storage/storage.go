// Package storage is the persistence gateway: one narrow repository per
// entity, constructed once at process start around a shared *gorm.DB
// and passed into the handlers.
package storage

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

// Section names accepted by list filters. An empty section applies no
// filter at all, so the bare list still returns soft-deleted rows.
const (
	SectionHome      = "home"
	SectionFiles     = "files"
	SectionFavorites = "favorites"
	SectionTrash     = "trash"
)

// Filter narrows a list to a dashboard section plus a case-insensitive
// substring search on the entity's display name.
type Filter struct {
	Section string
	Search  string
}

func (f Filter) apply(q *gorm.DB, nameColumn string, hasFavorite bool) *gorm.DB {
	switch f.Section {
	case SectionTrash:
		q = q.Where("is_deleted = ?", true)
	case SectionFavorites:
		q = q.Where("is_deleted = ?", false)
		if hasFavorite {
			q = q.Where("is_favorite = ?", true)
		}
	case SectionHome, SectionFiles:
		q = q.Where("is_deleted = ?", false)
	}
	if f.Search != "" {
		q = q.Where("LOWER("+nameColumn+") LIKE ?", "%"+strings.ToLower(f.Search)+"%")
	}
	return q
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
