package main

import (
	"log"

	_ "speedrun-dashboard/docs"
	"speedrun-dashboard/internal/config"
	"speedrun-dashboard/internal/dataset"
	"speedrun-dashboard/internal/handler"
	"speedrun-dashboard/internal/middleware"
	"speedrun-dashboard/internal/srcom"
	"speedrun-dashboard/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title        Speedrun Dashboard API
// @version      1.0
// @description  JSON API behind the Shadow the Hedgehog Reloaded speedrun dashboard.
// @BasePath     /
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatal("main(): Failed to load config: ", err)
	}

	storage.InitDB(cfg.DBPath)

	client := srcom.NewClient(cfg.API.BaseURL, cfg.API.PageSize, cfg.APITimeout())
	dataset.Init(client, cfg.Cooldown())

	// First start with an empty cache: try to pull the dataset once. A
	// failure is not fatal, the dashboard serves its empty state until a
	// refresh succeeds.
	if len(dataset.Snapshot()) == 0 {
		log.Println("main(): no cached runs, fetching initial dataset")
		if _, err := dataset.Refresh(true); err != nil {
			log.Printf("[ERROR] Initial fetch failed, starting with empty dataset: %v", err)
		}
	}

	router := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	router.StaticFile("/", "./web/static/index.html")
	router.StaticFile("/about", "./web/static/about.html")
	router.Static("/static", "./web/static")

	api := router.Group("/api")
	{
		api.GET("/options", handler.GetOptions)
		api.GET("/runs", handler.GetRuns)
		api.GET("/status", handler.GetStatus)
		api.GET("/charts/pb-progression", handler.GetPBProgression)
		api.GET("/charts/time-improvements", handler.GetTimeImprovements)
		api.GET("/charts/wr-counts", handler.GetWRCounts)
		api.GET("/charts/community", handler.GetCommunityOverview)
		api.POST("/refresh", middleware.RefreshRateLimiter(), handler.Refresh)
	}

	router.POST("/admin/login", handler.AdminLogin)
	admin := router.Group("/admin").Use(middleware.AuthMiddleware())
	{
		admin.POST("/refresh", handler.AdminRefresh)
	}

	router.GET("/ws/live", handler.HandleLive)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Fatal(router.Run(cfg.ListenAddr))
}
