package models

import (
	"time"

	"gorm.io/gorm"
)

const DefaultMaxPlayers = 25

type Team struct {
	ID       uint64 `gorm:"primarykey" json:"id"`
	Name     string `gorm:"type:varchar(100);not null" json:"name"`
	TeamCode string `gorm:"type:varchar(6);uniqueIndex;not null" json:"team_code"`

	League       string `gorm:"type:varchar(100)" json:"league,omitempty"`
	AgeGroup     string `gorm:"type:varchar(20)" json:"age_group,omitempty"`
	Season       string `gorm:"type:varchar(20)" json:"season,omitempty"`
	HomeArena    string `gorm:"type:varchar(100)" json:"home_arena,omitempty"`
	ArenaAddress string `gorm:"type:text" json:"arena_address,omitempty"`

	PrimaryColor   string `gorm:"type:varchar(7)" json:"primary_color,omitempty"`
	SecondaryColor string `gorm:"type:varchar(7)" json:"secondary_color,omitempty"`
	LogoURL        string `gorm:"type:varchar(255)" json:"logo_url,omitempty"`

	CreatedBy     uint64 `gorm:"not null;index" json:"created_by"`
	HeadCoachName string `gorm:"type:varchar(100)" json:"head_coach_name,omitempty"`
	CoachEmail    string `gorm:"type:varchar(255)" json:"coach_email,omitempty"`
	CoachPhone    string `gorm:"type:varchar(20)" json:"coach_phone,omitempty"`

	MaxPlayers        int  `gorm:"default:25" json:"max_players"`
	AllowPublicRoster bool `gorm:"default:false" json:"allow_public_roster"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Creator     User             `gorm:"foreignKey:CreatedBy" json:"-"`
	Players     []Player         `gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE" json:"players,omitempty"`
	Memberships []TeamMembership `gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE" json:"-"`
}
