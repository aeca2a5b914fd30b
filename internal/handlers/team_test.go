package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hockeylive/backend/internal/dto"
	"github.com/hockeylive/backend/internal/models"
	"github.com/hockeylive/backend/internal/services"
	"github.com/hockeylive/backend/internal/utils"
)

func TestTeamHandler_CreateTeam(t *testing.T) {
	env := setupAPITestEnv(t)
	user, token := env.registerAndLogin(t, "coach@example.com")

	w := env.doJSON(t, http.MethodPost, "/api/v1/teams", token, map[string]any{
		"name":      "Lightning",
		"age_group": "U14",
		"season":    "2026-2027",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var team dto.TeamDTO
	decodeJSON(t, w, &team)
	require.Equal(t, "Lightning", team.Name)
	require.Equal(t, user.ID, team.CreatedBy)
	require.Equal(t, models.DefaultMaxPlayers, team.MaxPlayers)

	require.Len(t, team.TeamCode, utils.TeamCodeLength)
	for _, r := range team.TeamCode {
		require.True(t, strings.ContainsRune(utils.TeamCodeAlphabet, r))
	}
}

func TestTeamHandler_GetTeam_Permissions(t *testing.T) {
	env := setupAPITestEnv(t)
	owner, _ := env.registerAndLogin(t, "owner@example.com")
	_, strangerToken := env.registerAndLogin(t, "stranger@example.com")

	team, err := env.teamService.CreateTeam(services.CreateTeamInput{
		Name:    "Lightning",
		OwnerID: owner.ID,
	})
	require.NoError(t, err)

	teamPath := fmt.Sprintf("/api/v1/teams/%d", team.ID)

	// A non-member gets 403, not 404: the team exists but is off limits.
	w := env.doJSON(t, http.MethodGet, teamPath, strangerToken, nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	// Joining as viewer unlocks reads.
	w = env.doJSON(t, http.MethodPost, "/api/v1/teams/join", strangerToken, map[string]string{
		"team_code": team.TeamCode,
		"role":      "viewer",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.doJSON(t, http.MethodGet, teamPath, strangerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// But not writes.
	w = env.doJSON(t, http.MethodPut, teamPath, strangerToken, map[string]string{
		"name": "Hijacked",
	})
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestTeamHandler_GetTeam_NotFound(t *testing.T) {
	env := setupAPITestEnv(t)
	_, token := env.registerAndLogin(t, "owner@example.com")

	w := env.doJSON(t, http.MethodGet, "/api/v1/teams/99999", token, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestTeamHandler_JoinTeam_Conflicts(t *testing.T) {
	env := setupAPITestEnv(t)
	owner, _ := env.registerAndLogin(t, "owner@example.com")
	_, joinerToken := env.registerAndLogin(t, "joiner@example.com")

	team, err := env.teamService.CreateTeam(services.CreateTeamInput{
		Name:    "Lightning",
		OwnerID: owner.ID,
	})
	require.NoError(t, err)

	w := env.doJSON(t, http.MethodPost, "/api/v1/teams/join", joinerToken, map[string]string{
		"team_code": "ZZZZZZ",
	})
	require.Equal(t, http.StatusNotFound, w.Code)

	w = env.doJSON(t, http.MethodPost, "/api/v1/teams/join", joinerToken, map[string]string{
		"team_code": team.TeamCode,
		"role":      "owner",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = env.doJSON(t, http.MethodPost, "/api/v1/teams/join", joinerToken, map[string]string{
		"team_code": team.TeamCode,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.doJSON(t, http.MethodPost, "/api/v1/teams/join", joinerToken, map[string]string{
		"team_code": team.TeamCode,
	})
	require.Equal(t, http.StatusConflict, w.Code)
}

// Full roster lifecycle: add a player, hit the jersey conflict, free the
// number by removing the player, and re-add.
func TestPlayerHandler_RosterLifecycle(t *testing.T) {
	env := setupAPITestEnv(t)
	_, ownerToken := env.registerAndLogin(t, "owner@example.com")

	w := env.doJSON(t, http.MethodPost, "/api/v1/teams", ownerToken, map[string]any{
		"name":      "Lightning",
		"age_group": "U14",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var team dto.TeamDTO
	decodeJSON(t, w, &team)
	playersPath := fmt.Sprintf("/api/v1/teams/%d/players", team.ID)

	w = env.doJSON(t, http.MethodPost, playersPath, ownerToken, map[string]any{
		"first_name":    "Connor",
		"last_name":     "Smith",
		"jersey_number": 9,
		"position":      "Forward",
		"shoots":        "L",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var player dto.PlayerDTO
	decodeJSON(t, w, &player)
	require.Equal(t, 9, player.JerseyNumber)

	// Same number again is a conflict.
	w = env.doJSON(t, http.MethodPost, playersPath, ownerToken, map[string]any{
		"first_name":    "Austin",
		"last_name":     "Brown",
		"jersey_number": 9,
	})
	require.Equal(t, http.StatusConflict, w.Code)

	// Removing the player frees the number.
	w = env.doJSON(t, http.MethodDelete,
		fmt.Sprintf("%s/%d", playersPath, player.ID), ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.doJSON(t, http.MethodPost, playersPath, ownerToken, map[string]any{
		"first_name":    "Austin",
		"last_name":     "Brown",
		"jersey_number": 9,
	})
	require.Equal(t, http.StatusCreated, w.Code)
}

func TestPlayerHandler_RoleGates(t *testing.T) {
	env := setupAPITestEnv(t)
	owner, _ := env.registerAndLogin(t, "owner@example.com")
	_, coachToken := env.registerAndLogin(t, "coach@example.com")
	_, viewerToken := env.registerAndLogin(t, "viewer@example.com")

	team, err := env.teamService.CreateTeam(services.CreateTeamInput{
		Name:    "Lightning",
		OwnerID: owner.ID,
	})
	require.NoError(t, err)

	w := env.doJSON(t, http.MethodPost, "/api/v1/teams/join", coachToken, map[string]string{
		"team_code": team.TeamCode,
		"role":      "coach",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.doJSON(t, http.MethodPost, "/api/v1/teams/join", viewerToken, map[string]string{
		"team_code": team.TeamCode,
		"role":      "viewer",
	})
	require.Equal(t, http.StatusOK, w.Code)

	playersPath := fmt.Sprintf("/api/v1/teams/%d/players", team.ID)

	// Coaches may add players.
	w = env.doJSON(t, http.MethodPost, playersPath, coachToken, map[string]any{
		"first_name":    "Connor",
		"last_name":     "Smith",
		"jersey_number": 9,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var player dto.PlayerDTO
	decodeJSON(t, w, &player)

	// Viewers may not.
	w = env.doJSON(t, http.MethodPost, playersPath, viewerToken, map[string]any{
		"first_name":    "Austin",
		"last_name":     "Brown",
		"jersey_number": 10,
	})
	require.Equal(t, http.StatusForbidden, w.Code)

	// But viewers may read the roster.
	w = env.doJSON(t, http.MethodGet, playersPath, viewerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Removal is owner-only: the coach is refused.
	playerPath := fmt.Sprintf("%s/%d", playersPath, player.ID)
	w = env.doJSON(t, http.MethodDelete, playerPath, coachToken, nil)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestTeamHandler_AvailableNumbers(t *testing.T) {
	env := setupAPITestEnv(t)
	owner, ownerToken := env.registerAndLogin(t, "owner@example.com")

	team, err := env.teamService.CreateTeam(services.CreateTeamInput{
		Name:    "Lightning",
		OwnerID: owner.ID,
	})
	require.NoError(t, err)

	for _, n := range []int{9, 31} {
		_, err := env.rosterService.AddPlayer(team, services.AddPlayerInput{
			FirstName:    "Player",
			LastName:     "Test",
			JerseyNumber: n,
		})
		require.NoError(t, err)
	}

	w := env.doJSON(t, http.MethodGet,
		fmt.Sprintf("/api/v1/teams/%d/available-numbers", team.ID), ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.AvailableNumbersDTO
	decodeJSON(t, w, &response)
	require.Equal(t, []int{9, 31}, response.TakenNumbers)
	require.Len(t, response.AvailableNumbers, models.MaxJerseyNumber-2)
	require.NotContains(t, response.AvailableNumbers, 9)
	require.NotContains(t, response.AvailableNumbers, 31)
}

func TestTeamHandler_GetTeamStats(t *testing.T) {
	env := setupAPITestEnv(t)
	owner, ownerToken := env.registerAndLogin(t, "owner@example.com")

	team, err := env.teamService.CreateTeam(services.CreateTeamInput{
		Name:    "Lightning",
		OwnerID: owner.ID,
	})
	require.NoError(t, err)

	_, err = env.rosterService.AddPlayer(team, services.AddPlayerInput{
		FirstName:    "Carey",
		LastName:     "Price",
		JerseyNumber: 31,
		Position:     "Goalie",
	})
	require.NoError(t, err)

	w := env.doJSON(t, http.MethodGet,
		fmt.Sprintf("/api/v1/teams/%d/stats", team.ID), ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats services.TeamStats
	decodeJSON(t, w, &stats)
	require.Equal(t, 1, stats.TotalPlayers)
	require.Equal(t, 1, stats.Goalies)
}

func TestTeamHandler_ListMyTeams(t *testing.T) {
	env := setupAPITestEnv(t)
	owner, ownerToken := env.registerAndLogin(t, "owner@example.com")

	_, err := env.teamService.CreateTeam(services.CreateTeamInput{
		Name:    "Lightning",
		OwnerID: owner.ID,
	})
	require.NoError(t, err)
	_, err = env.teamService.CreateTeam(services.CreateTeamInput{
		Name:    "Thunder",
		OwnerID: owner.ID,
	})
	require.NoError(t, err)

	w := env.doJSON(t, http.MethodGet, "/api/v1/teams", ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Teams []dto.TeamDTO `json:"teams"`
	}
	decodeJSON(t, w, &response)
	require.Len(t, response.Teams, 2)
}
