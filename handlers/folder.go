package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cloudnest/cloudnest-backend/auth/middleware"
	"github.com/cloudnest/cloudnest-backend/httperr"
	"github.com/cloudnest/cloudnest-backend/models"
	"github.com/cloudnest/cloudnest-backend/validation"
)

func (h *Handler) ListFolders(c *gin.Context) {
	userID := middleware.CurrentUser(c)

	folders, err := h.folders.ListByOwner(c.Request.Context(), userID, listFilter(c))
	if err != nil {
		httperr.Internal(c, "list folders", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"folders": folders})
}

func (h *Handler) GetFolder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.NotFound(c, "Folder")
		return
	}

	folder, err := h.folders.Get(c.Request.Context(), id)
	if !authorize(c, folder, err, "Folder") {
		return
	}

	c.JSON(http.StatusOK, gin.H{"folder": folder})
}

func (h *Handler) CreateFolder(c *gin.Context) {
	userID := middleware.CurrentUser(c)

	var payload validation.CreateFolderPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		httperr.BadRequest(c)
		return
	}
	if errs := payload.Validate(); len(errs) > 0 {
		httperr.Validation(c, errs)
		return
	}

	folder := &models.Folder{
		OwnerID:        userID,
		FolderName:     payload.FolderName,
		ParentFolderID: payload.ParentFolderID,
		IsDeleted:      payload.IsDeleted,
	}

	if err := h.folders.Create(c.Request.Context(), folder); err != nil {
		httperr.Internal(c, "create folder", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"folder": folder})
}

func (h *Handler) UpdateFolder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.NotFound(c, "Folder")
		return
	}

	folder, err := h.folders.Get(c.Request.Context(), id)
	if !authorize(c, folder, err, "Folder") {
		return
	}

	var payload validation.UpdateFolderPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		httperr.BadRequest(c)
		return
	}
	if errs := payload.Validate(); len(errs) > 0 {
		httperr.Validation(c, errs)
		return
	}

	updated, err := h.folders.Update(c.Request.Context(), id, payload.Changes())
	if err != nil {
		httperr.Internal(c, "update folder", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"folder": updated})
}

func (h *Handler) DeleteFolder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.NotFound(c, "Folder")
		return
	}

	folder, err := h.folders.Get(c.Request.Context(), id)
	if !authorize(c, folder, err, "Folder") {
		return
	}

	if err := h.folders.Delete(c.Request.Context(), id); err != nil {
		httperr.Internal(c, "delete folder", err)
		return
	}

	c.Status(http.StatusNoContent)
}
