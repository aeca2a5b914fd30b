package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hockeylive/backend/internal/dto"
	apierrors "github.com/hockeylive/backend/internal/errors"
	"github.com/hockeylive/backend/internal/models"
	"github.com/hockeylive/backend/internal/services"
)

// PlayerHandler coordinates roster HTTP handlers nested under a team.
type PlayerHandler struct {
	teamService   *services.TeamService
	rosterService *services.RosterService
}

// NewPlayerHandler creates a new PlayerHandler.
func NewPlayerHandler(teamService *services.TeamService, rosterService *services.RosterService) *PlayerHandler {
	return &PlayerHandler{
		teamService:   teamService,
		rosterService: rosterService,
	}
}

// AddPlayer adds a player to the team roster. Owners and coaches only.
func (h *PlayerHandler) AddPlayer(c *gin.Context) {
	user, team, ok := loadTeam(c, h.teamService)
	if !ok {
		return
	}

	if !h.teamService.HasPermission(user, team, models.TeamRoleOwner, models.TeamRoleCoach) {
		apierrors.Forbidden(c, "Only team owners and coaches can add players")
		return
	}

	type AddPlayerRequest struct {
		FirstName    string `json:"first_name" binding:"required,max=50"`
		LastName     string `json:"last_name" binding:"required,max=50"`
		JerseyNumber int    `json:"jersey_number" binding:"required"`
		Position     string `json:"position"`
		Shoots       string `json:"shoots"`

		HeightInches int        `json:"height_inches"`
		WeightLbs    int        `json:"weight_lbs"`
		BirthDate    *time.Time `json:"birth_date"`
		JerseySize   string     `json:"jersey_size"`

		ParentName       string `json:"parent_name"`
		ParentEmail      string `json:"parent_email" binding:"omitempty,email"`
		ParentPhone      string `json:"parent_phone"`
		EmergencyContact string `json:"emergency_contact"`
		EmergencyPhone   string `json:"emergency_phone"`

		MedicalNotes        string `json:"medical_notes"`
		SpecialInstructions string `json:"special_instructions"`
	}

	var req AddPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	player, err := h.rosterService.AddPlayer(team, services.AddPlayerInput{
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		JerseyNumber:        req.JerseyNumber,
		Position:            req.Position,
		Shoots:              req.Shoots,
		HeightInches:        req.HeightInches,
		WeightLbs:           req.WeightLbs,
		BirthDate:           req.BirthDate,
		JerseySize:          req.JerseySize,
		ParentName:          req.ParentName,
		ParentEmail:         req.ParentEmail,
		ParentPhone:         req.ParentPhone,
		EmergencyContact:    req.EmergencyContact,
		EmergencyPhone:      req.EmergencyPhone,
		MedicalNotes:        req.MedicalNotes,
		SpecialInstructions: req.SpecialInstructions,
	})
	if err != nil {
		respondRosterError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPlayerDTO(*player))
}

// ListPlayers returns the team roster. Any team role may read.
func (h *PlayerHandler) ListPlayers(c *gin.Context) {
	user, team, ok := loadTeam(c, h.teamService)
	if !ok {
		return
	}

	if !h.teamService.HasPermission(user, team,
		models.TeamRoleOwner, models.TeamRoleCoach, models.TeamRoleParent, models.TeamRoleViewer) {
		apierrors.Forbidden(c, "")
		return
	}

	activeOnly := c.DefaultQuery("active_only", "true") != "false"

	players, err := h.rosterService.ListPlayers(team.ID, activeOnly)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"players": dto.ToPlayerDTOs(players),
	})
}

// UpdatePlayer applies a partial update to a player. Owners and coaches only.
func (h *PlayerHandler) UpdatePlayer(c *gin.Context) {
	user, team, ok := loadTeam(c, h.teamService)
	if !ok {
		return
	}

	if !h.teamService.HasPermission(user, team, models.TeamRoleOwner, models.TeamRoleCoach) {
		apierrors.Forbidden(c, "Only team owners and coaches can update player information")
		return
	}

	playerID, err := strconv.ParseUint(c.Param("player_id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid player ID")
		return
	}

	type UpdatePlayerRequest struct {
		FirstName    *string `json:"first_name"`
		LastName     *string `json:"last_name"`
		JerseyNumber *int    `json:"jersey_number"`
		Position     *string `json:"position"`
		Shoots       *string `json:"shoots"`

		HeightInches *int       `json:"height_inches"`
		WeightLbs    *int       `json:"weight_lbs"`
		BirthDate    *time.Time `json:"birth_date"`
		JerseySize   *string    `json:"jersey_size"`

		ParentName       *string `json:"parent_name"`
		ParentEmail      *string `json:"parent_email" binding:"omitempty,email"`
		ParentPhone      *string `json:"parent_phone"`
		EmergencyContact *string `json:"emergency_contact"`
		EmergencyPhone   *string `json:"emergency_phone"`

		MedicalNotes        *string `json:"medical_notes"`
		SpecialInstructions *string `json:"special_instructions"`
		IsActive            *bool   `json:"is_active"`
	}

	var req UpdatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	player, err := h.rosterService.UpdatePlayer(team.ID, playerID, services.UpdatePlayerInput{
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		JerseyNumber:        req.JerseyNumber,
		Position:            req.Position,
		Shoots:              req.Shoots,
		HeightInches:        req.HeightInches,
		WeightLbs:           req.WeightLbs,
		BirthDate:           req.BirthDate,
		JerseySize:          req.JerseySize,
		ParentName:          req.ParentName,
		ParentEmail:         req.ParentEmail,
		ParentPhone:         req.ParentPhone,
		EmergencyContact:    req.EmergencyContact,
		EmergencyPhone:      req.EmergencyPhone,
		MedicalNotes:        req.MedicalNotes,
		SpecialInstructions: req.SpecialInstructions,
		IsActive:            req.IsActive,
	})
	if err != nil {
		respondRosterError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPlayerDTO(*player))
}

// RemovePlayer soft-deletes a player from the roster. Owners only.
func (h *PlayerHandler) RemovePlayer(c *gin.Context) {
	user, team, ok := loadTeam(c, h.teamService)
	if !ok {
		return
	}

	if !h.teamService.HasPermission(user, team, models.TeamRoleOwner) {
		apierrors.Forbidden(c, "Only team owners can remove players")
		return
	}

	playerID, err := strconv.ParseUint(c.Param("player_id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid player ID")
		return
	}

	if err := h.rosterService.RemovePlayer(team.ID, playerID); err != nil {
		respondRosterError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Player removed successfully",
	})
}

func respondRosterError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPlayerNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrJerseyTaken),
		errors.Is(err, services.ErrTeamFull):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrPlayerNameRequired),
		errors.Is(err, services.ErrInvalidJerseyNumber),
		errors.Is(err, services.ErrInvalidPosition),
		errors.Is(err, services.ErrInvalidShoots):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
