package repository

import (
	"errors"
	"fmt"

	"github.com/hockeylive/backend/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrDuplicateTeamCode is returned when a generated join code is already taken.
	ErrDuplicateTeamCode = errors.New("team repository: team code already exists")
)

// GormTeamRepository is a GORM implementation of TeamRepository
type GormTeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new TeamRepository
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &GormTeamRepository{db: db}
}

// CreateWithOwner persists the team and its owner membership atomically. The
// code-uniqueness check runs inside the same transaction, so concurrent
// creations with the same code cannot both commit.
func (r *GormTeamRepository) CreateWithOwner(team *models.Team, member *models.TeamMembership) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Team{}).
			Where("team_code = ?", team.TeamCode).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check team code: %w", err)
		}
		if count > 0 {
			return ErrDuplicateTeamCode
		}

		// The unique index on team_code catches the concurrent creation the
		// count above cannot see.
		if err := tx.Create(team).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateTeamCode
			}
			return err
		}

		member.TeamID = team.ID
		return tx.Create(member).Error
	})
}

// FindByID finds a team by ID with optional preloading
func (r *GormTeamRepository) FindByID(id uint64, preload ...string) (*models.Team, error) {
	var team models.Team
	query := r.db
	for _, p := range preload {
		query = query.Preload(p)
	}
	if err := query.First(&team, id).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

// FindByCode finds a team by its join code
func (r *GormTeamRepository) FindByCode(code string) (*models.Team, error) {
	var team models.Team
	if err := r.db.Where("team_code = ?", code).First(&team).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

// Update updates a team
func (r *GormTeamRepository) Update(team *models.Team) error {
	return r.db.Save(team).Error
}

// ListForUser lists teams the user created or holds an active membership in.
// A single OR query keeps the result deduplicated by team identity.
func (r *GormTeamRepository) ListForUser(userID uint64) ([]models.Team, error) {
	memberSubQuery := r.db.Model(&models.TeamMembership{}).
		Select("team_id").
		Where("user_id = ? AND is_active = ?", userID, true)

	var teams []models.Team
	if err := r.db.
		Where("created_by = ? OR id IN (?)", userID, memberSubQuery).
		Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

// AddMember adds a membership record
func (r *GormTeamRepository) AddMember(member *models.TeamMembership) error {
	return r.db.Create(member).Error
}

// FindMember finds any membership record for the user on the team
func (r *GormTeamRepository) FindMember(teamID, userID uint64) (*models.TeamMembership, error) {
	var member models.TeamMembership
	if err := r.db.Where("team_id = ? AND user_id = ?", teamID, userID).
		First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// FindEffectiveMember finds an active, approved membership
func (r *GormTeamRepository) FindEffectiveMember(teamID, userID uint64) (*models.TeamMembership, error) {
	var member models.TeamMembership
	if err := r.db.Where("team_id = ? AND user_id = ? AND is_active = ? AND approved = ?",
		teamID, userID, true, true).
		First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}
