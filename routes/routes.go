package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/cloudnest/cloudnest-backend/auth/middleware"
	"github.com/cloudnest/cloudnest-backend/auth/oauth"
	"github.com/cloudnest/cloudnest-backend/handlers"
	"github.com/cloudnest/cloudnest-backend/storage"
)

func Register(r *gin.Engine, h *handlers.Handler, oa *oauth.Handler, users storage.UserRepository) {
	// OAuth dance happens outside the authenticated group.
	r.GET("/auth/:provider", oa.Begin)
	r.GET("/auth/:provider/callback", oa.Callback)

	api := r.Group("/api")
	api.Use(middleware.AuthRequired())

	api.GET("/auth/user", h.CurrentUser)
	api.POST("/auth/logout", oa.Logout)
	api.POST("/upgrade-plan", h.UpgradePlan)

	files := api.Group("/files")
	files.GET("", h.ListFiles)
	files.POST("", middleware.RequirePaidPlan(users), h.CreateFile)
	files.GET("/:id", h.GetFile)
	files.PATCH("/:id", h.UpdateFile)
	files.DELETE("/:id", h.DeleteFile)

	folders := api.Group("/folders")
	folders.GET("", h.ListFolders)
	folders.POST("", middleware.RequirePaidPlan(users), h.CreateFolder)
	folders.GET("/:id", h.GetFolder)
	folders.PATCH("/:id", h.UpdateFolder)
	folders.DELETE("/:id", h.DeleteFolder)
}
