package repository

import (
	"errors"
	"fmt"

	"github.com/hockeylive/backend/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrJerseyNumberTaken is returned when another active player on the team
	// already holds the jersey number.
	ErrJerseyNumberTaken = errors.New("player repository: jersey number already taken")
	// ErrRosterFull is returned when the team is at its max_players capacity.
	ErrRosterFull = errors.New("player repository: roster is full")
)

// GormPlayerRepository is a GORM implementation of PlayerRepository
type GormPlayerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new PlayerRepository
func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &GormPlayerRepository{db: db}
}

// CreateGuarded inserts a player after checking jersey exclusivity and roster
// capacity inside one transaction. The checks run at the database's default
// isolation, so the partial unique index on (team_id, jersey_number) for
// active players is the authoritative guard: a concurrent add that slips past
// the count fails on insert and is reported as ErrJerseyNumberTaken.
func (r *GormPlayerRepository) CreateGuarded(team *models.Team, player *models.Player) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var taken int64
		if err := tx.Model(&models.Player{}).
			Where("team_id = ? AND jersey_number = ? AND is_active = ?",
				team.ID, player.JerseyNumber, true).
			Count(&taken).Error; err != nil {
			return fmt.Errorf("failed to check jersey number: %w", err)
		}
		if taken > 0 {
			return ErrJerseyNumberTaken
		}

		var active int64
		if err := tx.Model(&models.Player{}).
			Where("team_id = ? AND is_active = ?", team.ID, true).
			Count(&active).Error; err != nil {
			return fmt.Errorf("failed to count active players: %w", err)
		}
		if active >= int64(team.MaxPlayers) {
			return ErrRosterFull
		}

		player.TeamID = team.ID
		if err := tx.Create(player).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrJerseyNumberTaken
			}
			return err
		}
		return nil
	})
}

// UpdateGuarded saves a player after re-checking jersey exclusivity against
// other active players, excluding the player's own row.
func (r *GormPlayerRepository) UpdateGuarded(player *models.Player) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var taken int64
		if err := tx.Model(&models.Player{}).
			Where("team_id = ? AND jersey_number = ? AND is_active = ? AND id <> ?",
				player.TeamID, player.JerseyNumber, true, player.ID).
			Count(&taken).Error; err != nil {
			return fmt.Errorf("failed to check jersey number: %w", err)
		}
		if taken > 0 {
			return ErrJerseyNumberTaken
		}

		if err := tx.Save(player).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrJerseyNumberTaken
			}
			return err
		}
		return nil
	})
}

// FindByID finds a player by ID scoped to a team
func (r *GormPlayerRepository) FindByID(teamID, playerID uint64) (*models.Player, error) {
	var player models.Player
	if err := r.db.Where("id = ? AND team_id = ?", playerID, teamID).
		First(&player).Error; err != nil {
		return nil, err
	}
	return &player, nil
}

// ListByTeam lists players on a team ordered by jersey number
func (r *GormPlayerRepository) ListByTeam(teamID uint64, activeOnly bool) ([]models.Player, error) {
	query := r.db.Where("team_id = ?", teamID)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var players []models.Player
	if err := query.Order("jersey_number").Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}

// TakenNumbers returns jersey numbers held by active players
func (r *GormPlayerRepository) TakenNumbers(teamID uint64) ([]int, error) {
	var numbers []int
	if err := r.db.Model(&models.Player{}).
		Where("team_id = ? AND is_active = ?", teamID, true).
		Order("jersey_number").
		Pluck("jersey_number", &numbers).Error; err != nil {
		return nil, err
	}
	return numbers, nil
}

// Deactivate soft-deletes a player, freeing the jersey number
func (r *GormPlayerRepository) Deactivate(player *models.Player) error {
	player.IsActive = false
	return r.db.Save(player).Error
}
