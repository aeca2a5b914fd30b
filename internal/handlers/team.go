package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hockeylive/backend/internal/dto"
	apierrors "github.com/hockeylive/backend/internal/errors"
	"github.com/hockeylive/backend/internal/middleware"
	"github.com/hockeylive/backend/internal/models"
	"github.com/hockeylive/backend/internal/services"
)

// TeamHandler coordinates team-level HTTP handlers.
type TeamHandler struct {
	teamService   *services.TeamService
	rosterService *services.RosterService
}

// NewTeamHandler creates a new TeamHandler.
func NewTeamHandler(teamService *services.TeamService, rosterService *services.RosterService) *TeamHandler {
	return &TeamHandler{
		teamService:   teamService,
		rosterService: rosterService,
	}
}

// CreateTeam creates a new team owned by the authenticated user.
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	user, exists := middleware.GetCurrentUser(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateTeamRequest struct {
		Name         string `json:"name" binding:"required"`
		League       string `json:"league"`
		AgeGroup     string `json:"age_group"`
		Season       string `json:"season"`
		HomeArena    string `json:"home_arena"`
		ArenaAddress string `json:"arena_address"`

		PrimaryColor   string `json:"primary_color"`
		SecondaryColor string `json:"secondary_color"`
		LogoURL        string `json:"logo_url"`

		HeadCoachName string `json:"head_coach_name"`
		CoachEmail    string `json:"coach_email" binding:"omitempty,email"`
		CoachPhone    string `json:"coach_phone"`

		MaxPlayers        int  `json:"max_players"`
		AllowPublicRoster bool `json:"allow_public_roster"`
	}

	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	team, err := h.teamService.CreateTeam(services.CreateTeamInput{
		Name:              req.Name,
		League:            req.League,
		AgeGroup:          req.AgeGroup,
		Season:            req.Season,
		HomeArena:         req.HomeArena,
		ArenaAddress:      req.ArenaAddress,
		PrimaryColor:      req.PrimaryColor,
		SecondaryColor:    req.SecondaryColor,
		LogoURL:           req.LogoURL,
		HeadCoachName:     req.HeadCoachName,
		CoachEmail:        req.CoachEmail,
		CoachPhone:        req.CoachPhone,
		MaxPlayers:        req.MaxPlayers,
		AllowPublicRoster: req.AllowPublicRoster,
		OwnerID:           user.ID,
	})
	if err != nil {
		respondTeamError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTeamDTO(*team))
}

// ListMyTeams returns teams for the authenticated user.
func (h *TeamHandler) ListMyTeams(c *gin.Context) {
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

// GetTeam returns team details with the roster. Any team role may read.
func (h *TeamHandler) GetTeam(c *gin.Context) {
	user, team, ok := loadTeam(c, h.teamService)
	if !ok {
		return
	}

	if !h.teamService.HasPermission(user, team,
		models.TeamRoleOwner, models.TeamRoleCoach, models.TeamRoleParent, models.TeamRoleViewer) {
		apierrors.Forbidden(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToTeamDTO(*team))
}

// UpdateTeam updates team information. Owners and coaches only.
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	user, team, ok := loadTeam(c, h.teamService)
	if !ok {
		return
	}

	if !h.teamService.HasPermission(user, team, models.TeamRoleOwner, models.TeamRoleCoach) {
		apierrors.Forbidden(c, "Only team owners and coaches can update team information")
		return
	}

	type UpdateTeamRequest struct {
		Name         *string `json:"name"`
		League       *string `json:"league"`
		AgeGroup     *string `json:"age_group"`
		Season       *string `json:"season"`
		HomeArena    *string `json:"home_arena"`
		ArenaAddress *string `json:"arena_address"`

		PrimaryColor   *string `json:"primary_color"`
		SecondaryColor *string `json:"secondary_color"`
		LogoURL        *string `json:"logo_url"`

		HeadCoachName *string `json:"head_coach_name"`
		CoachEmail    *string `json:"coach_email" binding:"omitempty,email"`
		CoachPhone    *string `json:"coach_phone"`

		MaxPlayers        *int  `json:"max_players"`
		AllowPublicRoster *bool `json:"allow_public_roster"`
	}

	var req UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.teamService.UpdateTeam(team, services.UpdateTeamInput{
		Name:              req.Name,
		League:            req.League,
		AgeGroup:          req.AgeGroup,
		Season:            req.Season,
		HomeArena:         req.HomeArena,
		ArenaAddress:      req.ArenaAddress,
		PrimaryColor:      req.PrimaryColor,
		SecondaryColor:    req.SecondaryColor,
		LogoURL:           req.LogoURL,
		HeadCoachName:     req.HeadCoachName,
		CoachEmail:        req.CoachEmail,
		CoachPhone:        req.CoachPhone,
		MaxPlayers:        req.MaxPlayers,
		AllowPublicRoster: req.AllowPublicRoster,
	})
	if err != nil {
		respondTeamError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTeamDTO(*updated))
}

// JoinTeam adds the authenticated user to a team via its join code.
func (h *TeamHandler) JoinTeam(c *gin.Context) {
	user, exists := middleware.GetCurrentUser(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type JoinTeamRequest struct {
		TeamCode string `json:"team_code" binding:"required"`
		Role     string `json:"role"`
	}

	var req JoinTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	team, err := h.teamService.JoinByCode(user.ID, req.TeamCode, models.TeamRole(req.Role))
	if err != nil {
		respondTeamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Successfully joined team",
		"team":    dto.ToTeamDTO(*team),
	})
}

// GetAvailableNumbers returns the available/taken jersey number partition.
func (h *TeamHandler) GetAvailableNumbers(c *gin.Context) {
	user, team, ok := loadTeam(c, h.teamService)
	if !ok {
		return
	}

	if !h.teamService.HasPermission(user, team,
		models.TeamRoleOwner, models.TeamRoleCoach, models.TeamRoleParent, models.TeamRoleViewer) {
		apierrors.Forbidden(c, "")
		return
	}

	available, taken, err := h.rosterService.AvailableNumbers(team.ID)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.AvailableNumbersDTO{
		AvailableNumbers: available,
		TakenNumbers:     taken,
	})
}

// GetTeamStats returns roster statistics by position.
func (h *TeamHandler) GetTeamStats(c *gin.Context) {
	user, team, ok := loadTeam(c, h.teamService)
	if !ok {
		return
	}

	if !h.teamService.HasPermission(user, team,
		models.TeamRoleOwner, models.TeamRoleCoach, models.TeamRoleParent, models.TeamRoleViewer) {
		apierrors.Forbidden(c, "")
		return
	}

	stats, err := h.rosterService.Stats(team.ID)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// loadTeam resolves the authenticated user and the :id team, writing the
// error response itself when either is missing.
func loadTeam(c *gin.Context, teamService *services.TeamService) (*models.User, *models.Team, bool) {
	user, exists := middleware.GetCurrentUser(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return nil, nil, false
	}

	teamID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid team ID")
		return nil, nil, false
	}

	team, err := teamService.GetTeam(teamID)
	if err != nil {
		respondTeamError(c, err)
		return nil, nil, false
	}

	return user, team, true
}

func respondTeamError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTeamNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrInvalidTeamCode):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrTeamNameTooShort),
		errors.Is(err, services.ErrInvalidColor),
		errors.Is(err, services.ErrInvalidTeamRole):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrAlreadyTeamMember):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrTeamCodeExhausted):
		apierrors.InternalError(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
