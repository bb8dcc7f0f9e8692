// Package handlers implements the metadata CRUD API. Every
// single-entity operation runs the same authorization sequence: load,
// not-found check, ownership check, then the handler body.
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/cloudnest/cloudnest-backend/auth/middleware"
	"github.com/cloudnest/cloudnest-backend/httperr"
	"github.com/cloudnest/cloudnest-backend/initializers"
	"github.com/cloudnest/cloudnest-backend/models"
	"github.com/cloudnest/cloudnest-backend/storage"
)

type Handler struct {
	users   storage.UserRepository
	files   storage.FileRepository
	folders storage.FolderRepository
	presign *initializers.Presigner // nil disables upload URL minting
}

func New(users storage.UserRepository, files storage.FileRepository, folders storage.FolderRepository, presign *initializers.Presigner) *Handler {
	return &Handler{users: users, files: files, folders: folders, presign: presign}
}

// authorize is the single ownership predicate applied before any
// single-entity read or mutation, for every owned entity type. It
// writes the error response itself and reports whether the handler may
// proceed.
func authorize(c *gin.Context, entity models.Owned, err error, what string) bool {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		httperr.NotFound(c, what)
		return false
	case err != nil:
		httperr.Internal(c, "load "+what, err)
		return false
	case entity.Owner() != middleware.CurrentUser(c):
		httperr.Forbidden(c)
		return false
	}
	return true
}

func listFilter(c *gin.Context) storage.Filter {
	return storage.Filter{
		Section: c.Query("section"),
		Search:  c.Query("search"),
	}
}
