package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/hockeylive/backend/internal/config"
	"github.com/hockeylive/backend/internal/database"
	"github.com/hockeylive/backend/internal/middleware"
	"github.com/hockeylive/backend/internal/models"
	"github.com/hockeylive/backend/internal/repository"
	"github.com/hockeylive/backend/internal/services"
)

type apiTestEnv struct {
	db            *gorm.DB
	router        *gin.Engine
	authService   *services.AuthService
	teamService   *services.TeamService
	rosterService *services.RosterService
}

func setupAPITestEnv(t *testing.T) apiTestEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.UserToken{},
		&models.Team{},
		&models.Player{},
		&models.TeamMembership{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	authService := services.NewAuthService(
		repository.NewUserRepository(db),
		repository.NewTokenRepository(db),
		config.AuthConfig{TokenTTL: 24 * time.Hour},
	)
	teamService := services.NewTeamService(repository.NewTeamRepository(db))
	rosterService := services.NewRosterService(repository.NewPlayerRepository(db))

	authHandler := NewAuthHandler(authService)
	userHandler := NewUserHandler(authService, teamService)
	teamHandler := NewTeamHandler(teamService, rosterService)
	playerHandler := NewPlayerHandler(teamService, rosterService)

	requireAuth := middleware.RequireAuth(authService)

	r := gin.New()
	api := r.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", requireAuth, authHandler.Logout)

	users := api.Group("/users")
	users.Use(requireAuth)
	users.GET("/me", userHandler.GetMe)
	users.PATCH("/me", userHandler.UpdateMe)
	users.GET("/me/teams", userHandler.GetMyTeams)

	teams := api.Group("/teams")
	teams.Use(requireAuth)
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

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return apiTestEnv{
		db:            db,
		router:        r,
		authService:   authService,
		teamService:   teamService,
		rosterService: rosterService,
	}
}

// registerAndLogin creates an account and returns its bearer token.
func (env apiTestEnv) registerAndLogin(t *testing.T, email string) (*models.User, string) {
	t.Helper()

	user, err := env.authService.Register(services.RegisterInput{
		Email:    email,
		Password: "supersecret",
		FullName: "Test User",
	})
	require.NoError(t, err)

	token, err := env.authService.IssueToken(user, "", "")
	require.NoError(t, err)

	return user, token.Token
}

// doJSON performs a request with an optional bearer token and JSON body.
func (env apiTestEnv) doJSON(t *testing.T, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
