package repository

import (
	"github.com/hockeylive/backend/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// Update updates a user
	Update(user *models.User) error
}

// TokenRepository defines the interface for bearer token data access
type TokenRepository interface {
	// Create persists a freshly issued token. The unique index on the token
	// column rejects the (vanishingly unlikely) collision.
	Create(token *models.UserToken) error

	// FindByToken finds a token record by its opaque string
	FindByToken(token string) (*models.UserToken, error)

	// DeleteByToken deletes a token record and reports whether one existed
	DeleteByToken(token string) (bool, error)
}

// TeamRepository defines the interface for team and membership data access
type TeamRepository interface {
	// CreateWithOwner persists the team and its owner membership atomically.
	// Returns ErrDuplicateTeamCode when the join code is already taken.
	CreateWithOwner(team *models.Team, member *models.TeamMembership) error

	// FindByID finds a team by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Team, error)

	// FindByCode finds a team by its join code
	FindByCode(code string) (*models.Team, error)

	// Update updates a team
	Update(team *models.Team) error

	// ListForUser lists teams the user created or holds an active
	// membership in, deduplicated
	ListForUser(userID uint64) ([]models.Team, error)

	// AddMember adds a membership record
	AddMember(member *models.TeamMembership) error

	// FindMember finds any membership record for the user on the team
	FindMember(teamID, userID uint64) (*models.TeamMembership, error)

	// FindEffectiveMember finds an active, approved membership
	FindEffectiveMember(teamID, userID uint64) (*models.TeamMembership, error)
}

// PlayerRepository defines the interface for roster data access
type PlayerRepository interface {
	// CreateGuarded inserts a player after checking jersey exclusivity and
	// roster capacity inside one transaction. Returns ErrJerseyNumberTaken
	// or ErrRosterFull.
	CreateGuarded(team *models.Team, player *models.Player) error

	// UpdateGuarded saves a player after re-checking jersey exclusivity
	// against other active players inside one transaction
	UpdateGuarded(player *models.Player) error

	// FindByID finds a player by ID scoped to a team
	FindByID(teamID, playerID uint64) (*models.Player, error)

	// ListByTeam lists players on a team ordered by jersey number
	ListByTeam(teamID uint64, activeOnly bool) ([]models.Player, error)

	// TakenNumbers returns jersey numbers held by active players
	TakenNumbers(teamID uint64) ([]int, error)

	// Deactivate soft-deletes a player, freeing the jersey number
	Deactivate(player *models.Player) error
}
