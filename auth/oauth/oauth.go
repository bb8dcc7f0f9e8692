// Package oauth delegates sign-in to Google via goth and keeps the
// authenticated user id in a database-backed session. On every
// successful callback the user row is upserted, so first sign-in
// creates the account and later sign-ins refresh name and avatar.
package oauth

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/gin"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/google"
	"gorm.io/gorm"

	"github.com/cloudnest/cloudnest-backend/auth"
	"github.com/cloudnest/cloudnest-backend/config"
	"github.com/cloudnest/cloudnest-backend/models"
	"github.com/cloudnest/cloudnest-backend/storage"
)

// InitStore builds the gorm-backed session store (sessions table with
// sid/payload/expiry, expired rows cleaned up periodically), points
// gothic at it and registers the Google provider.
func InitStore(db *gorm.DB, cfg *config.Config) sessions.Store {
	store := gormsessions.NewStore(db, true, []byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   true,
	})

	gothic.Store = store

	goth.UseProviders(google.New(
		cfg.GoogleClientID,
		cfg.GoogleClientSecret,
		cfg.GoogleRedirectURL,
		"email",
		"profile",
	))

	return store
}

type Handler struct {
	users   storage.UserRepository
	baseURL string
}

func New(users storage.UserRepository, baseURL string) *Handler {
	return &Handler{users: users, baseURL: baseURL}
}

// Begin redirects the browser to the identity provider.
func (h *Handler) Begin(c *gin.Context) {
	// Goth expects the provider in the query string.
	q := c.Request.URL.Query()
	q.Add("provider", c.Param("provider"))
	c.Request.URL.RawQuery = q.Encode()

	gothic.BeginAuthHandler(c.Writer, c.Request)
}

// Callback completes the OAuth dance, upserts the user and establishes
// the session.
func (h *Handler) Callback(c *gin.Context) {
	q := c.Request.URL.Query()
	q.Add("provider", c.Param("provider"))
	c.Request.URL.RawQuery = q.Encode()

	gothUser, err := gothic.CompleteUserAuth(c.Writer, c.Request)
	if err != nil {
		log.Printf("Auth error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Authentication failed"})
		return
	}

	user, err := h.users.Upsert(c.Request.Context(), &models.User{
		Email:           gothUser.Email,
		FirstName:       gothUser.FirstName,
		LastName:        gothUser.LastName,
		ProfileImageURL: gothUser.AvatarURL,
		PlanType:        models.PlanFree,
	})
	if err != nil {
		log.Printf("Database error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process user data"})
		return
	}

	session := sessions.Default(c)
	session.Set(auth.SessionUserKey, user.ID.String())
	if err := session.Save(); err != nil {
		log.Printf("Session save error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to establish session"})
		return
	}

	// Bearer tokens for API clients that do not carry the cookie.
	accessToken, _, err := auth.GenerateTokens(user.ID.String())
	if err != nil {
		log.Printf("Token generation error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate tokens"})
		return
	}

	log.Printf("OAuth authentication successful for user: %s", user.Email)

	redirectURL := fmt.Sprintf("%s/dashboard?token=%s", h.baseURL, accessToken)
	c.Redirect(http.StatusTemporaryRedirect, redirectURL)
}

// Logout drops the session; bearer tokens simply expire.
func (h *Handler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := session.Save(); err != nil {
		log.Printf("Session save error: %v", err)
	}
	_ = gothic.Logout(c.Writer, c.Request)

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
