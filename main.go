package main

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/bmowen/webquote-backend/catalog"
	"github.com/bmowen/webquote-backend/clients"
	"github.com/bmowen/webquote-backend/config"
	"github.com/bmowen/webquote-backend/controllers"
	"github.com/bmowen/webquote-backend/logger"
	"github.com/bmowen/webquote-backend/middleware"
	"github.com/bmowen/webquote-backend/submission"
	"github.com/bmowen/webquote-backend/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	appLog := logger.New(cfg.LogLevel)

	cat := catalog.Default()
	uploader := clients.NewCloudinaryClient(cfg.CloudinaryCloudName, cfg.CloudinaryUploadPreset)
	relay := clients.NewFormspreeClient(cfg.FormspreeFormID)

	submitter := submission.NewSubmitter(uploader, relay, appLog)
	submitter.SetMaxAssetSize(cfg.MaxUploadSize())

	logoValidator := utils.NewImageValidator()

	r := gin.New()

	allowedOrigins := map[string]bool{}
	for _, origin := range strings.Split(cfg.AllowedOrigins, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			allowedOrigins[origin] = true
		}
	}
	appLog.Info().Interface("origins", allowedOrigins).Msg("configured CORS origins")

	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return allowedOrigins[origin]
		},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RequestID())
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	r.GET("/catalog", controllers.GetCatalog(cat))
	r.GET("/website-types", controllers.GetWebsiteTypes(cat))
	r.GET("/add-ons", controllers.GetAddOns(cat))
	r.GET("/maintenance-plans", controllers.GetMaintenancePlans(cat))

	r.POST("/quotes/preview", controllers.PreviewQuote(cat))
	r.GET("/quotes/export", controllers.ExportQuote(cat))
	r.POST("/quote-requests", controllers.CreateQuoteRequest(cat, submitter, logoValidator))

	appLog.Info().Str("port", cfg.Port).Msg("starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		appLog.Fatal().Err(err).Msg("server stopped")
	}
}
