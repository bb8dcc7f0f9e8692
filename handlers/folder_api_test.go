package handlers_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudnest/cloudnest-backend/models"
)

type folderResponse struct {
	Folder models.Folder `json:"folder"`
}

type foldersResponse struct {
	Folders []models.Folder `json:"folders"`
}

func TestCreateFolderVisibleOnlyToOwner(t *testing.T) {
	e := newEnv(t)
	u1 := e.createUser(t, "u1@example.com", models.PlanBasic)
	u2 := e.createUser(t, "u2@example.com", models.PlanBasic)

	rec := e.do(t, http.MethodPost, "/api/folders", u1, map[string]any{"folderName": "Docs"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created folderResponse
	decode(t, rec, &created)
	assert.Equal(t, u1.ID, created.Folder.OwnerID)
	assert.False(t, created.Folder.IsDeleted)
	assert.NotEqual(t, uuid.Nil, created.Folder.ID)

	var list foldersResponse
	rec = e.do(t, http.MethodGet, "/api/folders", u1, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &list)
	require.Len(t, list.Folders, 1)
	assert.Equal(t, "Docs", list.Folders[0].FolderName)

	rec = e.do(t, http.MethodGet, "/api/folders", u2, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &list)
	assert.Empty(t, list.Folders)
}

func TestCreateFolderValidation(t *testing.T) {
	e := newEnv(t)
	user := e.createUser(t, "u1@example.com", models.PlanBasic)

	rec := e.do(t, http.MethodPost, "/api/folders", user, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateFolderPlanGate(t *testing.T) {
	e := newEnv(t)
	free := e.createUser(t, "free@example.com", models.PlanFree)

	rec := e.do(t, http.MethodPost, "/api/folders", free, map[string]any{"folderName": "Docs"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUpdateFolderNestingAndOwnership(t *testing.T) {
	e := newEnv(t)
	owner := e.createUser(t, "owner@example.com", models.PlanBasic)
	other := e.createUser(t, "other@example.com", models.PlanBasic)

	var parent, child folderResponse
	rec := e.do(t, http.MethodPost, "/api/folders", owner, map[string]any{"folderName": "Docs"})
	require.Equal(t, http.StatusCreated, rec.Code)
	decode(t, rec, &parent)

	rec = e.do(t, http.MethodPost, "/api/folders", owner, map[string]any{"folderName": "Taxes"})
	require.Equal(t, http.StatusCreated, rec.Code)
	decode(t, rec, &child)

	// Nest, then un-nest with an explicit null.
	rec = e.do(t, http.MethodPatch, "/api/folders/"+child.Folder.ID.String(), owner, map[string]any{
		"parentFolderId": parent.Folder.ID.String(),
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var updated folderResponse
	decode(t, rec, &updated)
	require.NotNil(t, updated.Folder.ParentFolderID)
	assert.Equal(t, parent.Folder.ID, *updated.Folder.ParentFolderID)

	rec = e.do(t, http.MethodPatch, "/api/folders/"+child.Folder.ID.String(), owner, map[string]any{
		"parentFolderId": nil,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &updated)
	assert.Nil(t, updated.Folder.ParentFolderID)

	rec = e.do(t, http.MethodPatch, "/api/folders/"+child.Folder.ID.String(), other, map[string]any{
		"folderName": "stolen",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDeleteFolder(t *testing.T) {
	e := newEnv(t)
	owner := e.createUser(t, "owner@example.com", models.PlanBasic)

	rec := e.do(t, http.MethodPost, "/api/folders", owner, map[string]any{"folderName": "Docs"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created folderResponse
	decode(t, rec, &created)

	rec = e.do(t, http.MethodDelete, "/api/folders/"+created.Folder.ID.String(), owner, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = e.do(t, http.MethodGet, "/api/folders/"+created.Folder.ID.String(), owner, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
