package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hockeylive/backend/internal/dto"
	apierrors "github.com/hockeylive/backend/internal/errors"
	"github.com/hockeylive/backend/internal/middleware"
	"github.com/hockeylive/backend/internal/services"
)

// UserHandler serves the current-user profile endpoints.
type UserHandler struct {
	authService *services.AuthService
	teamService *services.TeamService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(authService *services.AuthService, teamService *services.TeamService) *UserHandler {
	return &UserHandler{
		authService: authService,
		teamService: teamService,
	}
}

// GetMe returns the authenticated user's profile.
func (h *UserHandler) GetMe(c *gin.Context) {
	user, exists := middleware.GetCurrentUser(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// UpdateMe applies a partial update to the authenticated user's profile.
func (h *UserHandler) UpdateMe(c *gin.Context) {
	user, exists := middleware.GetCurrentUser(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type UpdateMeRequest struct {
		FullName  *string `json:"full_name" binding:"omitempty,min=1,max=100"`
		FirstName *string `json:"first_name" binding:"omitempty,max=50"`
		LastName  *string `json:"last_name" binding:"omitempty,max=50"`
		Phone     *string `json:"phone" binding:"omitempty,max=20"`

		EmailNotifications *bool `json:"email_notifications"`
		PushNotifications  *bool `json:"push_notifications"`
		GameReminders      *bool `json:"game_reminders"`
	}

	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.authService.UpdateProfile(user.ID, services.UpdateProfileInput{
		FullName:           req.FullName,
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Phone:              req.Phone,
		EmailNotifications: req.EmailNotifications,
		PushNotifications:  req.PushNotifications,
		GameReminders:      req.GameReminders,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*updated))
}

// GetMyTeams returns teams the user created or belongs to.
func (h *UserHandler) GetMyTeams(c *gin.Context) {
	user, exists := middleware.GetCurrentUser(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	teams, err := h.teamService.ListTeamsForUser(user.ID)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"teams": dto.ToTeamDTOs(teams),
	})
}
