package models

import "time"

type TeamRole string

const (
	TeamRoleOwner  TeamRole = "owner"
	TeamRoleCoach  TeamRole = "coach"
	TeamRoleParent TeamRole = "parent"
	TeamRoleViewer TeamRole = "viewer"
)

// ValidTeamRole reports whether s is one of the four membership roles.
func ValidTeamRole(s string) bool {
	switch TeamRole(s) {
	case TeamRoleOwner, TeamRoleCoach, TeamRoleParent, TeamRoleViewer:
		return true
	}
	return false
}

// TeamMembership grants a user access to a team under a role. A membership is
// only effective while both IsActive and Approved are set; the team creator
// holds all permissions regardless of this table.
type TeamMembership struct {
	ID     uint64 `gorm:"primarykey" json:"id"`
	TeamID uint64 `gorm:"not null;index;uniqueIndex:uniq_team_memberships_team_user" json:"team_id"`
	UserID uint64 `gorm:"not null;index;uniqueIndex:uniq_team_memberships_team_user" json:"user_id"`

	Role     TeamRole `gorm:"type:varchar(20);default:'parent'" json:"role"`
	PlayerID *uint64  `json:"player_id,omitempty"`
	IsActive bool     `gorm:"default:true" json:"is_active"`
	Approved bool     `gorm:"default:true" json:"approved"`

	JoinedAt time.Time `json:"joined_at"`

	// Relations
	Team Team `gorm:"foreignKey:TeamID" json:"-"`
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
