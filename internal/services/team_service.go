package services

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/hockeylive/backend/internal/constants"
	"github.com/hockeylive/backend/internal/models"
	"github.com/hockeylive/backend/internal/repository"
	"github.com/hockeylive/backend/internal/utils"
)

var (
	ErrTeamNotFound       = errors.New("team not found")
	ErrTeamNameTooShort   = errors.New("team name must be at least 3 characters")
	ErrInvalidColor       = errors.New("color must be a 7-character hex code starting with #")
	ErrInvalidTeamRole    = errors.New("role must be coach, parent, or viewer")
	ErrInvalidTeamCode    = errors.New("invalid team code")
	ErrAlreadyTeamMember  = errors.New("user is already a member of this team")
	ErrTeamCodeExhausted  = errors.New("failed to generate a unique team code")
	ErrPermissionDenied   = errors.New("user does not have permission for this team operation")
	ErrFailedToCreateTeam = errors.New("failed to create team")
)

// TeamService provides business logic for team and membership operations.
type TeamService struct {
	teamRepo repository.TeamRepository
}

// NewTeamService creates a new TeamService.
func NewTeamService(teamRepo repository.TeamRepository) *TeamService {
	return &TeamService{
		teamRepo: teamRepo,
	}
}

// CreateTeamInput represents parameters to create a new team.
type CreateTeamInput struct {
	Name         string
	League       string
	AgeGroup     string
	Season       string
	HomeArena    string
	ArenaAddress string

	PrimaryColor   string
	SecondaryColor string
	LogoURL        string

	HeadCoachName string
	CoachEmail    string
	CoachPhone    string

	MaxPlayers        int
	AllowPublicRoster bool

	OwnerID uint64
}

// CreateTeam creates a team with a fresh join code and records the creator as
// owner. Code generation retries on collision a bounded number of times; the
// team row and the owner membership are persisted atomically.
func (s *TeamService) CreateTeam(input CreateTeamInput) (*models.Team, error) {
	name := strings.TrimSpace(input.Name)
	if utf8.RuneCountInString(name) < constants.MinTeamNameLength {
		return nil, ErrTeamNameTooShort
	}
	if err := validateHexColor(input.PrimaryColor); err != nil {
		return nil, err
	}
	if err := validateHexColor(input.SecondaryColor); err != nil {
		return nil, err
	}

	maxPlayers := input.MaxPlayers
	if maxPlayers <= 0 {
		maxPlayers = models.DefaultMaxPlayers
	}

	team := &models.Team{
		Name:              name,
		League:            input.League,
		AgeGroup:          input.AgeGroup,
		Season:            input.Season,
		HomeArena:         input.HomeArena,
		ArenaAddress:      input.ArenaAddress,
		PrimaryColor:      input.PrimaryColor,
		SecondaryColor:    input.SecondaryColor,
		LogoURL:           input.LogoURL,
		CreatedBy:         input.OwnerID,
		HeadCoachName:     input.HeadCoachName,
		CoachEmail:        input.CoachEmail,
		CoachPhone:        input.CoachPhone,
		MaxPlayers:        maxPlayers,
		AllowPublicRoster: input.AllowPublicRoster,
	}

	for attempt := 0; attempt < constants.MaxTeamCodeAttempts; attempt++ {
		code, err := utils.GenerateTeamCode()
		if err != nil {
			return nil, ErrTeamCodeExhausted
		}
		team.TeamCode = code

		member := &models.TeamMembership{
			UserID:   input.OwnerID,
			Role:     models.TeamRoleOwner,
			IsActive: true,
			Approved: true,
			JoinedAt: time.Now(),
		}

		err = s.teamRepo.CreateWithOwner(team, member)
		if err == nil {
			return team, nil
		}
		if errors.Is(err, repository.ErrDuplicateTeamCode) {
			continue
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToCreateTeam, err)
	}

	return nil, ErrTeamCodeExhausted
}

// GetTeam returns a team with its players preloaded.
func (s *TeamService) GetTeam(teamID uint64) (*models.Team, error) {
	team, err := s.teamRepo.FindByID(teamID, "Players")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to find team: %w", err)
	}
	return team, nil
}

// UpdateTeamInput holds optional team fields; nil means unchanged.
type UpdateTeamInput struct {
	Name         *string
	League       *string
	AgeGroup     *string
	Season       *string
	HomeArena    *string
	ArenaAddress *string

	PrimaryColor   *string
	SecondaryColor *string
	LogoURL        *string

	HeadCoachName *string
	CoachEmail    *string
	CoachPhone    *string

	MaxPlayers        *int
	AllowPublicRoster *bool
}

// UpdateTeam applies a partial update to a team.
func (s *TeamService) UpdateTeam(team *models.Team, input UpdateTeamInput) (*models.Team, error) {
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if utf8.RuneCountInString(name) < constants.MinTeamNameLength {
			return nil, ErrTeamNameTooShort
		}
		team.Name = name
	}
	if input.PrimaryColor != nil {
		if err := validateHexColor(*input.PrimaryColor); err != nil {
			return nil, err
		}
		team.PrimaryColor = *input.PrimaryColor
	}
	if input.SecondaryColor != nil {
		if err := validateHexColor(*input.SecondaryColor); err != nil {
			return nil, err
		}
		team.SecondaryColor = *input.SecondaryColor
	}
	if input.League != nil {
		team.League = *input.League
	}
	if input.AgeGroup != nil {
		team.AgeGroup = *input.AgeGroup
	}
	if input.Season != nil {
		team.Season = *input.Season
	}
	if input.HomeArena != nil {
		team.HomeArena = *input.HomeArena
	}
	if input.ArenaAddress != nil {
		team.ArenaAddress = *input.ArenaAddress
	}
	if input.LogoURL != nil {
		team.LogoURL = *input.LogoURL
	}
	if input.HeadCoachName != nil {
		team.HeadCoachName = *input.HeadCoachName
	}
	if input.CoachEmail != nil {
		team.CoachEmail = *input.CoachEmail
	}
	if input.CoachPhone != nil {
		team.CoachPhone = *input.CoachPhone
	}
	if input.MaxPlayers != nil && *input.MaxPlayers > 0 {
		team.MaxPlayers = *input.MaxPlayers
	}
	if input.AllowPublicRoster != nil {
		team.AllowPublicRoster = *input.AllowPublicRoster
	}

	if err := s.teamRepo.Update(team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	return team, nil
}

// ListTeamsForUser returns teams the user created plus teams with an active
// membership, deduplicated by team identity.
func (s *TeamService) ListTeamsForUser(userID uint64) ([]models.Team, error) {
	teams, err := s.teamRepo.ListForUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

// JoinByCode adds the user to the team behind the join code under the
// requested role. The owner role is never joinable.
func (s *TeamService) JoinByCode(userID uint64, code string, role models.TeamRole) (*models.Team, error) {
	if role == "" {
		role = models.TeamRoleParent
	}
	if !models.ValidTeamRole(string(role)) || role == models.TeamRoleOwner {
		return nil, ErrInvalidTeamRole
	}

	team, err := s.teamRepo.FindByCode(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidTeamCode
		}
		return nil, fmt.Errorf("failed to find team by code: %w", err)
	}

	if _, err := s.teamRepo.FindMember(team.ID, userID); err == nil {
		return nil, ErrAlreadyTeamMember
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to verify membership: %w", err)
	}

	member := &models.TeamMembership{
		TeamID:   team.ID,
		UserID:   userID,
		Role:     role,
		IsActive: true,
		Approved: true,
		JoinedAt: time.Now(),
	}

	if err := s.teamRepo.AddMember(member); err != nil {
		// The unique (team_id, user_id) index rejects the concurrent join the
		// membership check above cannot see.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyTeamMember
		}
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	return team, nil
}

// HasPermission decides whether the user may perform an operation requiring
// one of the given roles. The team creator holds all permissions regardless
// of the membership table; otherwise an active, approved membership with a
// matching role is required. Total: any lookup failure reads as no permission.
func (s *TeamService) HasPermission(user *models.User, team *models.Team, requiredRoles ...models.TeamRole) bool {
	if team.CreatedBy == user.ID {
		return true
	}

	member, err := s.teamRepo.FindEffectiveMember(team.ID, user.ID)
	if err != nil {
		return false
	}

	for _, role := range requiredRoles {
		if member.Role == role {
			return true
		}
	}
	return false
}

func validateHexColor(color string) error {
	if color == "" {
		return nil
	}
	if !strings.HasPrefix(color, "#") || len(color) != 7 {
		return ErrInvalidColor
	}
	return nil
}
