package validation

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fields(errs []FieldError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return out
}

func TestCreateFilePayloadValidate(t *testing.T) {
	size := int64(1024)
	negative := int64(-1)

	tests := []struct {
		name    string
		payload CreateFilePayload
		want    []string
	}{
		{"valid", CreateFilePayload{Filename: "a.txt", Size: &size, Type: "text/plain"}, nil},
		{"missing everything", CreateFilePayload{}, []string{"filename", "size", "type"}},
		{"negative size", CreateFilePayload{Filename: "a.txt", Size: &negative, Type: "text/plain"}, []string{"size"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ElementsMatch(t, tt.want, fields(tt.payload.Validate()))
		})
	}
}

func TestCreateFolderPayloadValidate(t *testing.T) {
	assert.Empty(t, (&CreateFolderPayload{FolderName: "Docs"}).Validate())
	assert.Equal(t, []string{"folderName"}, fields((&CreateFolderPayload{}).Validate()))
}

func TestUpdateFilePayloadRejectsEmptyFilename(t *testing.T) {
	empty := ""
	errs := (&UpdateFilePayload{Filename: &empty}).Validate()
	assert.Equal(t, []string{"filename"}, fields(errs))
}

// The allow-list is structural: whatever a client sends, only these
// columns can come out of Changes().
func TestUpdateFilePayloadIgnoresOwnerField(t *testing.T) {
	var payload UpdateFilePayload
	body := []byte(`{"filename":"new.txt","ownerId":"11111111-1111-1111-1111-111111111111","size":999}`)
	require.NoError(t, json.Unmarshal(body, &payload))

	changes := payload.Changes()
	assert.Equal(t, map[string]any{"filename": "new.txt"}, changes)
}

func TestUpdateFilePayloadChanges(t *testing.T) {
	name := "renamed.txt"
	fav := true
	payload := UpdateFilePayload{Filename: &name, IsFavorite: &fav}

	changes := payload.Changes()
	assert.Equal(t, "renamed.txt", changes["filename"])
	assert.Equal(t, true, changes["is_favorite"])
	assert.NotContains(t, changes, "folder_id")
	assert.NotContains(t, changes, "is_deleted")
}

func TestOptionalUUIDDistinguishesNullFromAbsent(t *testing.T) {
	var payload UpdateFilePayload
	require.NoError(t, json.Unmarshal([]byte(`{"isFavorite":true}`), &payload))
	assert.False(t, payload.FolderID.Set)
	assert.NotContains(t, payload.Changes(), "folder_id")

	payload = UpdateFilePayload{}
	require.NoError(t, json.Unmarshal([]byte(`{"folderId":null}`), &payload))
	assert.True(t, payload.FolderID.Set)
	assert.Nil(t, payload.FolderID.Value)
	assert.Contains(t, payload.Changes(), "folder_id")

	id := uuid.New()
	payload = UpdateFilePayload{}
	require.NoError(t, json.Unmarshal([]byte(`{"folderId":"`+id.String()+`"}`), &payload))
	assert.True(t, payload.FolderID.Set)
	require.NotNil(t, payload.FolderID.Value)
	assert.Equal(t, id, *payload.FolderID.Value)
}
