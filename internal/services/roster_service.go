package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/hockeylive/backend/internal/models"
	"github.com/hockeylive/backend/internal/repository"
)

var (
	ErrPlayerNotFound      = errors.New("player not found")
	ErrPlayerNameRequired  = errors.New("player first and last name are required")
	ErrInvalidJerseyNumber = errors.New("jersey number must be between 1 and 99")
	ErrInvalidPosition     = errors.New("position must be Forward, Defense, or Goalie")
	ErrInvalidShoots       = errors.New("shoots must be L or R")
	ErrJerseyTaken         = errors.New("jersey number is already taken")
	ErrTeamFull            = errors.New("team roster is full")
)

// RosterService provides business logic for player roster operations.
type RosterService struct {
	playerRepo repository.PlayerRepository
}

// NewRosterService creates a new RosterService.
func NewRosterService(playerRepo repository.PlayerRepository) *RosterService {
	return &RosterService{
		playerRepo: playerRepo,
	}
}

// AddPlayerInput represents parameters to add a player to a roster.
type AddPlayerInput struct {
	FirstName    string
	LastName     string
	JerseyNumber int
	Position     string
	Shoots       string

	HeightInches int
	WeightLbs    int
	BirthDate    *time.Time
	JerseySize   string

	ParentName       string
	ParentEmail      string
	ParentPhone      string
	EmergencyContact string
	EmergencyPhone   string

	MedicalNotes        string
	SpecialInstructions string
}

// AddPlayer validates and inserts a player. The jersey-exclusivity and
// capacity checks run with the insert in one transactional unit.
func (s *RosterService) AddPlayer(team *models.Team, input AddPlayerInput) (*models.Player, error) {
	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)
	if firstName == "" || lastName == "" {
		return nil, ErrPlayerNameRequired
	}
	if err := validateJerseyNumber(input.JerseyNumber); err != nil {
		return nil, err
	}
	if err := validatePosition(input.Position); err != nil {
		return nil, err
	}
	if err := validateShoots(input.Shoots); err != nil {
		return nil, err
	}

	player := &models.Player{
		FirstName:           firstName,
		LastName:            lastName,
		JerseyNumber:        input.JerseyNumber,
		Position:            models.PlayerPosition(input.Position),
		Shoots:              input.Shoots,
		HeightInches:        input.HeightInches,
		WeightLbs:           input.WeightLbs,
		BirthDate:           input.BirthDate,
		JerseySize:          input.JerseySize,
		ParentName:          input.ParentName,
		ParentEmail:         input.ParentEmail,
		ParentPhone:         input.ParentPhone,
		EmergencyContact:    input.EmergencyContact,
		EmergencyPhone:      input.EmergencyPhone,
		MedicalNotes:        input.MedicalNotes,
		SpecialInstructions: input.SpecialInstructions,
		IsActive:            true,
	}

	if err := s.playerRepo.CreateGuarded(team, player); err != nil {
		switch {
		case errors.Is(err, repository.ErrJerseyNumberTaken):
			return nil, ErrJerseyTaken
		case errors.Is(err, repository.ErrRosterFull):
			return nil, ErrTeamFull
		default:
			return nil, fmt.Errorf("failed to add player: %w", err)
		}
	}

	return player, nil
}

// UpdatePlayerInput holds optional player fields; nil means unchanged.
type UpdatePlayerInput struct {
	FirstName    *string
	LastName     *string
	JerseyNumber *int
	Position     *string
	Shoots       *string

	HeightInches *int
	WeightLbs    *int
	BirthDate    *time.Time
	JerseySize   *string

	ParentName       *string
	ParentEmail      *string
	ParentPhone      *string
	EmergencyContact *string
	EmergencyPhone   *string

	MedicalNotes        *string
	SpecialInstructions *string
	IsActive            *bool
}

// UpdatePlayer applies a partial update; a jersey number change re-checks
// exclusivity against the other active players on the team.
func (s *RosterService) UpdatePlayer(teamID, playerID uint64, input UpdatePlayerInput) (*models.Player, error) {
	player, err := s.getPlayer(teamID, playerID)
	if err != nil {
		return nil, err
	}

	if input.JerseyNumber != nil {
		if err := validateJerseyNumber(*input.JerseyNumber); err != nil {
			return nil, err
		}
		player.JerseyNumber = *input.JerseyNumber
	}
	if input.Position != nil {
		if err := validatePosition(*input.Position); err != nil {
			return nil, err
		}
		player.Position = models.PlayerPosition(*input.Position)
	}
	if input.Shoots != nil {
		if err := validateShoots(*input.Shoots); err != nil {
			return nil, err
		}
		player.Shoots = *input.Shoots
	}
	if input.FirstName != nil {
		name := strings.TrimSpace(*input.FirstName)
		if name == "" {
			return nil, ErrPlayerNameRequired
		}
		player.FirstName = name
	}
	if input.LastName != nil {
		name := strings.TrimSpace(*input.LastName)
		if name == "" {
			return nil, ErrPlayerNameRequired
		}
		player.LastName = name
	}
	if input.HeightInches != nil {
		player.HeightInches = *input.HeightInches
	}
	if input.WeightLbs != nil {
		player.WeightLbs = *input.WeightLbs
	}
	if input.BirthDate != nil {
		player.BirthDate = input.BirthDate
	}
	if input.JerseySize != nil {
		player.JerseySize = *input.JerseySize
	}
	if input.ParentName != nil {
		player.ParentName = *input.ParentName
	}
	if input.ParentEmail != nil {
		player.ParentEmail = *input.ParentEmail
	}
	if input.ParentPhone != nil {
		player.ParentPhone = *input.ParentPhone
	}
	if input.EmergencyContact != nil {
		player.EmergencyContact = *input.EmergencyContact
	}
	if input.EmergencyPhone != nil {
		player.EmergencyPhone = *input.EmergencyPhone
	}
	if input.MedicalNotes != nil {
		player.MedicalNotes = *input.MedicalNotes
	}
	if input.SpecialInstructions != nil {
		player.SpecialInstructions = *input.SpecialInstructions
	}
	if input.IsActive != nil {
		player.IsActive = *input.IsActive
	}

	if err := s.playerRepo.UpdateGuarded(player); err != nil {
		if errors.Is(err, repository.ErrJerseyNumberTaken) {
			return nil, ErrJerseyTaken
		}
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	return player, nil
}

// RemovePlayer soft-deletes a player. The row is kept; the jersey number is
// freed for reuse.
func (s *RosterService) RemovePlayer(teamID, playerID uint64) error {
	player, err := s.getPlayer(teamID, playerID)
	if err != nil {
		return err
	}

	if err := s.playerRepo.Deactivate(player); err != nil {
		return fmt.Errorf("failed to remove player: %w", err)
	}
	return nil
}

// ListPlayers returns the team roster ordered by jersey number.
func (s *RosterService) ListPlayers(teamID uint64, activeOnly bool) ([]models.Player, error) {
	players, err := s.playerRepo.ListByTeam(teamID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return players, nil
}

// AvailableNumbers partitions the legal jersey range 1..99 into available and
// taken sets. The two sets are disjoint and their union is the full range.
func (s *RosterService) AvailableNumbers(teamID uint64) (available, taken []int, err error) {
	taken, err = s.playerRepo.TakenNumbers(teamID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list taken numbers: %w", err)
	}

	takenSet := make(map[int]bool, len(taken))
	for _, n := range taken {
		takenSet[n] = true
	}

	available = make([]int, 0, models.MaxJerseyNumber)
	for n := models.MinJerseyNumber; n <= models.MaxJerseyNumber; n++ {
		if !takenSet[n] {
			available = append(available, n)
		}
	}

	return available, taken, nil
}

// TeamStats summarizes the active roster by position.
type TeamStats struct {
	TotalPlayers  int `json:"total_players"`
	ActivePlayers int `json:"active_players"`
	Goalies       int `json:"goalies"`
	Forwards      int `json:"forwards"`
	Defense       int `json:"defense"`
}

// Stats computes roster statistics over active players.
func (s *RosterService) Stats(teamID uint64) (*TeamStats, error) {
	players, err := s.playerRepo.ListByTeam(teamID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}

	stats := &TeamStats{
		TotalPlayers:  len(players),
		ActivePlayers: len(players),
	}
	for _, p := range players {
		switch p.Position {
		case models.PositionGoalie:
			stats.Goalies++
		case models.PositionForward:
			stats.Forwards++
		case models.PositionDefense:
			stats.Defense++
		}
	}

	return stats, nil
}

func (s *RosterService) getPlayer(teamID, playerID uint64) (*models.Player, error) {
	player, err := s.playerRepo.FindByID(teamID, playerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to find player: %w", err)
	}
	return player, nil
}

func validateJerseyNumber(n int) error {
	if n < models.MinJerseyNumber || n > models.MaxJerseyNumber {
		return ErrInvalidJerseyNumber
	}
	return nil
}

func validatePosition(position string) error {
	switch models.PlayerPosition(position) {
	case "", models.PositionForward, models.PositionDefense, models.PositionGoalie:
		return nil
	}
	return ErrInvalidPosition
}

func validateShoots(shoots string) error {
	switch shoots {
	case "", "L", "R":
		return nil
	}
	return ErrInvalidShoots
}
