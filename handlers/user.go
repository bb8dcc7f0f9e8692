package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cloudnest/cloudnest-backend/auth/middleware"
	"github.com/cloudnest/cloudnest-backend/httperr"
	"github.com/cloudnest/cloudnest-backend/models"
	"github.com/cloudnest/cloudnest-backend/storage"
)

func (h *Handler) CurrentUser(c *gin.Context) {
	user, err := h.users.Get(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// Valid credentials for a user row that no longer exists.
			httperr.Unauthenticated(c)
			return
		}
		httperr.Internal(c, "fetch user", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UpgradePlan simulates the payment flow: it unconditionally moves the
// caller to the basic tier. Idempotent; calling it on a basic user is
// still a success.
func (h *Handler) UpgradePlan(c *gin.Context) {
	user, err := h.users.UpdatePlan(c.Request.Context(), middleware.CurrentUser(c), models.PlanBasic)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httperr.NotFound(c, "User")
			return
		}
		httperr.Internal(c, "upgrade plan", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Plan upgraded successfully",
		"user":    user,
	})
}
