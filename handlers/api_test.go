package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cloudnest/cloudnest-backend/auth"
	"github.com/cloudnest/cloudnest-backend/auth/oauth"
	"github.com/cloudnest/cloudnest-backend/handlers"
	"github.com/cloudnest/cloudnest-backend/models"
	"github.com/cloudnest/cloudnest-backend/routes"
	"github.com/cloudnest/cloudnest-backend/storage"
)

// env wires the real router, middleware and repositories against an
// in-memory database. Requests authenticate with bearer tokens, which
// go through the same AuthRequired middleware as sessions.
type env struct {
	router  *gin.Engine
	db      *gorm.DB
	users   storage.UserRepository
	files   storage.FileRepository
	folders storage.FolderRepository
}

func newEnv(t *testing.T) *env {
	t.Helper()
	t.Setenv("JWT_SECRET", "handler-test-secret")
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.File{},
		&models.Folder{},
	))

	users := storage.NewUserRepository(db)
	files := storage.NewFileRepository(db)
	folders := storage.NewFolderRepository(db)

	router := gin.New()
	router.Use(sessions.Sessions(auth.SessionName, cookie.NewStore([]byte("test-secret"))))
	routes.Register(router,
		handlers.New(users, files, folders, nil),
		oauth.New(users, "http://localhost:8080"),
		users,
	)

	return &env{router: router, db: db, users: users, files: files, folders: folders}
}

func (e *env) createUser(t *testing.T, email, planType string) *models.User {
	t.Helper()

	user := &models.User{Email: email, PlanType: planType}
	require.NoError(t, e.db.Create(user).Error)
	return user
}

func (e *env) do(t *testing.T, method, path string, user *models.User, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if user != nil {
		access, _, err := auth.GenerateTokens(user.ID.String())
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+access)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst))
}
