package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/MarkupMedia/pagetags-go/api"
	"github.com/MarkupMedia/pagetags-go/cache"
	"github.com/MarkupMedia/pagetags-go/config"
	"github.com/MarkupMedia/pagetags-go/internal/observability/logging"
	"github.com/MarkupMedia/pagetags-go/store"
	"github.com/MarkupMedia/pagetags-go/utils/images"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found -- config defaults will be used")
	}

	logger, err := logging.NewChanneledLogger(nil)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Close()

	start := time.Now()
	db, err := store.NewDB()
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()
	logger.LogStartupPhase("database", time.Since(start), true)

	cacheManager := cache.NewManager()
	cache.StartCleanupRoutine(cacheManager)
	logger.Startup().Info("Fragment cache initialized",
		"ttl", config.FragmentCacheTTL.String(),
		"cleanupInterval", config.CleanupInterval.String(),
	)

	assets := images.NewAssetProcessor(config.MediaDir)

	handlers := api.NewHandlers(db, cacheManager, assets, logger)
	authHandlers := api.NewAuthHandlers(config.JWTSecret, config.AdminPasswordHash, logger)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(api.RequestLogger(logger), gin.Recovery())
	r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://localhost:4321",
			"http://127.0.0.1:3000",
			"http://127.0.0.1:4321",
			"http://[::1]:3000",
			"http://[::1]:4321",
		},
		AllowMethods: []string{
			"GET", "POST", "PUT", "DELETE", "OPTIONS",
		},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Accept", "Authorization",
		},
		AllowCredentials: true,
	}))

	r.Static("/media", config.MediaDir)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", handlers.GetHealth)
		v1.POST("/auth/login", authHandlers.PostLogin)
		v1.POST("/render", handlers.PostRender)
		v1.GET("/styleguide/:id", handlers.GetStyleguide)
		v1.GET("/brand-assets/:id", handlers.GetBrandAssets)

		editor := v1.Group("")
		editor.Use(api.AuthRequired(config.JWTSecret))
		{
			editor.PUT("/styleguide/:id", handlers.PutStyleguide)
			editor.PUT("/brand-assets/:id", handlers.PutBrandAssets)
		}
	}

	addr := ":" + config.Port
	logger.Startup().Info("Starting server", "addr", addr)
	log.Printf("Starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
