package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/cloudnest/cloudnest-backend/auth"
	"github.com/cloudnest/cloudnest-backend/auth/middleware"
	"github.com/cloudnest/cloudnest-backend/auth/oauth"
	"github.com/cloudnest/cloudnest-backend/config"
	"github.com/cloudnest/cloudnest-backend/handlers"
	"github.com/cloudnest/cloudnest-backend/initializers"
	"github.com/cloudnest/cloudnest-backend/routes"
	"github.com/cloudnest/cloudnest-backend/storage"
	"github.com/cloudnest/cloudnest-backend/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	db, err := initializers.ConnectToDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	userRepo := storage.NewUserRepository(db)
	fileRepo := storage.NewFileRepository(db)
	folderRepo := storage.NewFolderRepository(db)

	var presigner *initializers.Presigner
	if cfg.PresignEnabled() {
		presigner, err = initializers.NewPresigner(context.Background(), cfg.AWSRegion, cfg.AWSBucket)
		if err != nil {
			log.Fatalf("❌ Failed to init S3 presign client: %v", err)
		}
	}

	store := oauth.InitStore(db, cfg)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(
		sessions.Sessions(auth.SessionName, store),
		middleware.RateLimitMiddleware(),
	)

	h := handlers.New(userRepo, fileRepo, folderRepo, presigner)
	oa := oauth.New(userRepo, cfg.BaseURL)

	web.Register(router)
	routes.Register(router, h, oa, userRepo)

	log.Printf("🚀 CloudNest listening on http://localhost:%s", cfg.Port)
	log.Fatal(router.Run(":" + cfg.Port))
}
