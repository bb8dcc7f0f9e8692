// Package httperr maps the API error taxonomy onto uniform JSON
// responses. Validation detail goes back to the client; everything
// unexpected is logged and returned opaque.
package httperr

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cloudnest/cloudnest-backend/validation"
)

// CodePlanUpgradeRequired marks a 403 caused by the plan gate rather
// than an ownership mismatch.
const CodePlanUpgradeRequired = "plan_upgrade_required"

func Unauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
}

func Forbidden(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
}

func PlanUpgradeRequired(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
		"error": "Upgrade your plan to do this",
		"code":  CodePlanUpgradeRequired,
	})
}

func NotFound(c *gin.Context, what string) {
	c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": what + " not found"})
}

func Validation(c *gin.Context, errs []validation.FieldError) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
		"error":  "Invalid request data",
		"fields": errs,
	})
}

// BadRequest covers malformed bodies that never reach field-level
// validation (broken JSON, wrong types).
func BadRequest(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
}

// Internal logs the underlying error server-side and withholds the
// detail from the client.
func Internal(c *gin.Context, action string, err error) {
	log.Printf("❌ %s: %v", action, err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
