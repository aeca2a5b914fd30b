package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hockeylive/backend/internal/config"
	"github.com/hockeylive/backend/internal/database"
	"github.com/hockeylive/backend/internal/handlers"
	"github.com/hockeylive/backend/internal/logger"
	"github.com/hockeylive/backend/internal/metrics"
	"github.com/hockeylive/backend/internal/middleware"
	"github.com/hockeylive/backend/internal/repository"
	"github.com/hockeylive/backend/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if err := logger.Init(cfg.LogLevel, cfg.Server.Env, cfg.ServiceName); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Get().Sync()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		logger.Get().Fatal("Failed to connect to database", zap.Error(err))
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		logger.Get().Fatal("Failed to run migrations", zap.Error(err))
	}
	if err := database.AddIndexes(database.GetDB()); err != nil {
		logger.Get().Fatal("Failed to create indexes", zap.Error(err))
	}

	// Wire repositories and services
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	playerRepo := repository.NewPlayerRepository(db)

	authService := services.NewAuthService(userRepo, tokenRepo, cfg.Auth)
	teamService := services.NewTeamService(teamRepo)
	rosterService := services.NewRosterService(playerRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(authService, teamService)
	teamHandler := handlers.NewTeamHandler(teamService, rosterService)
	playerHandler := handlers.NewPlayerHandler(teamService, rosterService)
	stubHandler := handlers.NewPlaceholderHandler()

	// Initialize Gin router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())

	httpMetrics := metrics.NewHTTPMetrics(cfg.ServiceName)
	r.Use(httpMetrics.Middleware())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "HockeyLive API is running",
		})
	})

	r.GET("/metrics", metrics.Handler())

	requireAuth := middleware.RequireAuth(authService)

	// API routes
	api := r.Group("/api/v1")
	{
		// Auth routes (public except logout)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.Refresh)
			auth.POST("/logout", requireAuth, authHandler.Logout)
		}

		// Current-user routes (protected)
		users := api.Group("/users")
		users.Use(requireAuth)
		{
			users.GET("/me", userHandler.GetMe)
			users.PATCH("/me", userHandler.UpdateMe)
			users.GET("/me/teams", userHandler.GetMyTeams)
		}

		// Team and roster routes (protected)
		teams := api.Group("/teams")
		teams.Use(requireAuth)
		{
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("", teamHandler.ListMyTeams)
			teams.POST("/join", teamHandler.JoinTeam)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.PUT("/:id", teamHandler.UpdateTeam)
			teams.GET("/:id/stats", teamHandler.GetTeamStats)
			teams.GET("/:id/available-numbers", teamHandler.GetAvailableNumbers)

			teams.POST("/:id/players", playerHandler.AddPlayer)
			teams.GET("/:id/players", playerHandler.ListPlayers)
			teams.PUT("/:id/players/:player_id", playerHandler.UpdatePlayer)
			teams.DELETE("/:id/players/:player_id", playerHandler.RemovePlayer)
		}

		// Subsystems not built out yet
		games := api.Group("/games")
		games.Use(requireAuth)
		{
			games.GET("", stubHandler.ListGames)
			games.GET("/:id", stubHandler.GetGame)
		}

		arenas := api.Group("/arenas")
		arenas.Use(requireAuth)
		{
			arenas.GET("", stubHandler.ListArenas)
		}

		streaming := api.Group("/streaming")
		streaming.Use(requireAuth)
		{
			streaming.GET("/status", stubHandler.GetStreamStatus)
		}

		videos := api.Group("/videos")
		videos.Use(requireAuth)
		{
			videos.GET("", stubHandler.ListVideos)
		}
	}

	// Start server
	logger.Get().Info("Server starting", zap.String("port", cfg.Server.Port))
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Get().Fatal("Failed to start server", zap.Error(err))
	}
}
