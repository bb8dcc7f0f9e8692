package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cloudnest/cloudnest-backend/auth/middleware"
	"github.com/cloudnest/cloudnest-backend/httperr"
	"github.com/cloudnest/cloudnest-backend/initializers"
	"github.com/cloudnest/cloudnest-backend/models"
	"github.com/cloudnest/cloudnest-backend/validation"
)

// ListFiles returns every file owned by the caller, soft-deleted rows
// included, unless a section/search filter narrows the view.
func (h *Handler) ListFiles(c *gin.Context) {
	userID := middleware.CurrentUser(c)

	files, err := h.files.ListByOwner(c.Request.Context(), userID, listFilter(c))
	if err != nil {
		httperr.Internal(c, "list files", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"files": files})
}

func (h *Handler) GetFile(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.NotFound(c, "File")
		return
	}

	file, err := h.files.Get(c.Request.Context(), id)
	if !authorize(c, file, err, "File") {
		return
	}

	c.JSON(http.StatusOK, gin.H{"file": file})
}

// CreateFile persists a metadata record. The owner always comes from
// the session; a client-supplied owner is not representable in the
// payload. When S3 presigning is configured and the client did not
// bring its own locator, an object key is assigned and a presigned PUT
// URL returned so bytes can go straight to the bucket.
func (h *Handler) CreateFile(c *gin.Context) {
	userID := middleware.CurrentUser(c)

	var payload validation.CreateFilePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		httperr.BadRequest(c)
		return
	}
	if errs := payload.Validate(); len(errs) > 0 {
		httperr.Validation(c, errs)
		return
	}

	file := &models.File{
		OwnerID:     userID,
		FolderID:    payload.FolderID,
		Filename:    payload.Filename,
		Size:        *payload.Size,
		ContentType: payload.Type,
		PathOrURL:   payload.PathOrURL,
		IsFavorite:  payload.IsFavorite,
		IsDeleted:   payload.IsDeleted,
	}

	uploadURL := ""
	if h.presign != nil && file.PathOrURL == nil {
		key := initializers.ObjectKey(file.Filename)
		url, err := h.presign.UploadURL(c.Request.Context(), key, file.ContentType)
		if err != nil {
			httperr.Internal(c, "presign upload", err)
			return
		}
		file.PathOrURL = &key
		uploadURL = url
	}

	if err := h.files.Create(c.Request.Context(), file); err != nil {
		httperr.Internal(c, "create file", err)
		return
	}

	resp := gin.H{"file": file}
	if uploadURL != "" {
		resp["uploadUrl"] = uploadURL
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *Handler) UpdateFile(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.NotFound(c, "File")
		return
	}

	file, err := h.files.Get(c.Request.Context(), id)
	if !authorize(c, file, err, "File") {
		return
	}

	var payload validation.UpdateFilePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		httperr.BadRequest(c)
		return
	}
	if errs := payload.Validate(); len(errs) > 0 {
		httperr.Validation(c, errs)
		return
	}

	updated, err := h.files.Update(c.Request.Context(), id, payload.Changes())
	if err != nil {
		httperr.Internal(c, "update file", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"file": updated})
}

// DeleteFile removes the row itself. Moving a file to trash is a PATCH
// setting isDeleted; this is the unrecoverable path.
func (h *Handler) DeleteFile(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.NotFound(c, "File")
		return
	}

	file, err := h.files.Get(c.Request.Context(), id)
	if !authorize(c, file, err, "File") {
		return
	}

	if err := h.files.Delete(c.Request.Context(), id); err != nil {
		httperr.Internal(c, "delete file", err)
		return
	}

	c.Status(http.StatusNoContent)
}
