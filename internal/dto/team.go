package dto

import (
	"time"

	"github.com/hockeylive/backend/internal/models"
)

// TeamDTO represents a team in API responses
type TeamDTO struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	TeamCode string `json:"team_code,omitempty"`

	League       string `json:"league,omitempty"`
	AgeGroup     string `json:"age_group,omitempty"`
	Season       string `json:"season,omitempty"`
	HomeArena    string `json:"home_arena,omitempty"`
	ArenaAddress string `json:"arena_address,omitempty"`

	PrimaryColor   string `json:"primary_color,omitempty"`
	SecondaryColor string `json:"secondary_color,omitempty"`
	LogoURL        string `json:"logo_url,omitempty"`

	CreatedBy     uint64 `json:"created_by"`
	HeadCoachName string `json:"head_coach_name,omitempty"`
	CoachEmail    string `json:"coach_email,omitempty"`
	CoachPhone    string `json:"coach_phone,omitempty"`

	MaxPlayers        int  `json:"max_players"`
	AllowPublicRoster bool `json:"allow_public_roster"`

	CreatedAt time.Time `json:"created_at"`

	Players []PlayerDTO `json:"players,omitempty"`
}

// PlayerDTO represents a roster player in API responses
type PlayerDTO struct {
	ID     uint64 `json:"id"`
	TeamID uint64 `json:"team_id"`

	FirstName    string                `json:"first_name"`
	LastName     string                `json:"last_name"`
	JerseyNumber int                   `json:"jersey_number"`
	Position     models.PlayerPosition `json:"position,omitempty"`
	Shoots       string                `json:"shoots,omitempty"`

	HeightInches int        `json:"height_inches,omitempty"`
	WeightLbs    int        `json:"weight_lbs,omitempty"`
	BirthDate    *time.Time `json:"birth_date,omitempty"`
	JerseySize   string     `json:"jersey_size,omitempty"`

	ParentName       string `json:"parent_name,omitempty"`
	ParentEmail      string `json:"parent_email,omitempty"`
	ParentPhone      string `json:"parent_phone,omitempty"`
	EmergencyContact string `json:"emergency_contact,omitempty"`
	EmergencyPhone   string `json:"emergency_phone,omitempty"`

	MedicalNotes        string `json:"medical_notes,omitempty"`
	SpecialInstructions string `json:"special_instructions,omitempty"`

	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// AvailableNumbersDTO partitions the legal jersey range for a team.
type AvailableNumbersDTO struct {
	AvailableNumbers []int `json:"available_numbers"`
	TakenNumbers     []int `json:"taken_numbers"`
}

// ToPlayerDTO converts a player model to its API representation
func ToPlayerDTO(player models.Player) PlayerDTO {
	return PlayerDTO{
		ID:                  player.ID,
		TeamID:              player.TeamID,
		FirstName:           player.FirstName,
		LastName:            player.LastName,
		JerseyNumber:        player.JerseyNumber,
		Position:            player.Position,
		Shoots:              player.Shoots,
		HeightInches:        player.HeightInches,
		WeightLbs:           player.WeightLbs,
		BirthDate:           player.BirthDate,
		JerseySize:          player.JerseySize,
		ParentName:          player.ParentName,
		ParentEmail:         player.ParentEmail,
		ParentPhone:         player.ParentPhone,
		EmergencyContact:    player.EmergencyContact,
		EmergencyPhone:      player.EmergencyPhone,
		MedicalNotes:        player.MedicalNotes,
		SpecialInstructions: player.SpecialInstructions,
		IsActive:            player.IsActive,
		CreatedAt:           player.CreatedAt,
	}
}

// ToPlayerDTOs converts a slice of players
func ToPlayerDTOs(players []models.Player) []PlayerDTO {
	dtos := make([]PlayerDTO, len(players))
	for i, p := range players {
		dtos[i] = ToPlayerDTO(p)
	}
	return dtos
}

// ToTeamDTO converts a team model to its API representation
func ToTeamDTO(team models.Team) TeamDTO {
	return TeamDTO{
		ID:                team.ID,
		Name:              team.Name,
		TeamCode:          team.TeamCode,
		League:            team.League,
		AgeGroup:          team.AgeGroup,
		Season:            team.Season,
		HomeArena:         team.HomeArena,
		ArenaAddress:      team.ArenaAddress,
		PrimaryColor:      team.PrimaryColor,
		SecondaryColor:    team.SecondaryColor,
		LogoURL:           team.LogoURL,
		CreatedBy:         team.CreatedBy,
		HeadCoachName:     team.HeadCoachName,
		CoachEmail:        team.CoachEmail,
		CoachPhone:        team.CoachPhone,
		MaxPlayers:        team.MaxPlayers,
		AllowPublicRoster: team.AllowPublicRoster,
		CreatedAt:         team.CreatedAt,
		Players:           ToPlayerDTOs(team.Players),
	}
}

// ToTeamDTOs converts a slice of teams
func ToTeamDTOs(teams []models.Team) []TeamDTO {
	dtos := make([]TeamDTO, len(teams))
	for i, t := range teams {
		dtos[i] = ToTeamDTO(t)
	}
	return dtos
}
