package middleware

import (
	"errors"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cloudnest/cloudnest-backend/auth"
	"github.com/cloudnest/cloudnest-backend/httperr"
	"github.com/cloudnest/cloudnest-backend/models"
	"github.com/cloudnest/cloudnest-backend/storage"
)

const UserIDKey = "userID"

// CurrentUser returns the authenticated caller's id. Only valid behind
// AuthRequired.
func CurrentUser(c *gin.Context) uuid.UUID {
	return c.MustGet(UserIDKey).(uuid.UUID)
}

// AuthRequired accepts either a Bearer access token or an established
// session and rejects everything else with 401.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := bearerUser(c); ok {
			c.Set(UserIDKey, userID)
			c.Next()
			return
		}
		if userID, ok := sessionUser(c); ok {
			c.Set(UserIDKey, userID)
			c.Next()
			return
		}
		httperr.Unauthenticated(c)
	}
}

func bearerUser(c *gin.Context) (uuid.UUID, bool) {
	parts := strings.Split(c.GetHeader("Authorization"), " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return uuid.Nil, false
	}
	sub, err := auth.ValidateToken(parts[1])
	if err != nil {
		return uuid.Nil, false
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, false
	}
	return userID, true
}

func sessionUser(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(sessions.DefaultKey)
	if !exists {
		return uuid.Nil, false
	}
	session, ok := v.(sessions.Session)
	if !ok {
		return uuid.Nil, false
	}
	raw, ok := session.Get(auth.SessionUserKey).(string)
	if !ok {
		return uuid.Nil, false
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return userID, true
}

// RequirePaidPlan gates creation endpoints behind the basic tier. The
// client UI disabling upload controls is advisory; this is the
// authoritative check.
func RequirePaidPlan(users storage.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := users.Get(c.Request.Context(), CurrentUser(c))
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				// A session pointing at a vanished user is
				// unauthenticated, not forbidden.
				httperr.Unauthenticated(c)
				return
			}
			httperr.Internal(c, "plan gate", err)
			return
		}
		if user.PlanType != models.PlanBasic {
			httperr.PlanUpgradeRequired(c)
			return
		}
		c.Next()
	}
}
