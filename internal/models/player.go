package models

import "time"

type PlayerPosition string

const (
	PositionForward PlayerPosition = "Forward"
	PositionDefense PlayerPosition = "Defense"
	PositionGoalie  PlayerPosition = "Goalie"
)

// Jersey numbers are restricted to the legal range 1..99.
const (
	MinJerseyNumber = 1
	MaxJerseyNumber = 99
)

type Player struct {
	ID     uint64 `gorm:"primarykey" json:"id"`
	TeamID uint64 `gorm:"not null;index;uniqueIndex:uniq_players_team_jersey_active" json:"team_id"`

	FirstName string `gorm:"type:varchar(50);not null" json:"first_name"`
	LastName  string `gorm:"type:varchar(50);not null" json:"last_name"`
	// The partial unique index backs the jersey-exclusivity guard under
	// concurrent inserts; soft-deleted rows stay out of it.
	JerseyNumber int            `gorm:"not null;uniqueIndex:uniq_players_team_jersey_active,where:is_active" json:"jersey_number"`
	Position     PlayerPosition `gorm:"type:varchar(20)" json:"position,omitempty"`
	Shoots       string         `gorm:"type:varchar(1)" json:"shoots,omitempty"`

	HeightInches int        `json:"height_inches,omitempty"`
	WeightLbs    int        `json:"weight_lbs,omitempty"`
	BirthDate    *time.Time `json:"birth_date,omitempty"`
	JerseySize   string     `gorm:"type:varchar(10)" json:"jersey_size,omitempty"`

	ParentName       string `gorm:"type:varchar(100)" json:"parent_name,omitempty"`
	ParentEmail      string `gorm:"type:varchar(255)" json:"parent_email,omitempty"`
	ParentPhone      string `gorm:"type:varchar(20)" json:"parent_phone,omitempty"`
	EmergencyContact string `gorm:"type:varchar(100)" json:"emergency_contact,omitempty"`
	EmergencyPhone   string `gorm:"type:varchar(20)" json:"emergency_phone,omitempty"`

	MedicalNotes        string `gorm:"type:text" json:"medical_notes,omitempty"`
	SpecialInstructions string `gorm:"type:text" json:"special_instructions,omitempty"`

	// Soft delete: inactive players keep their row but free their jersey number.
	IsActive bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Team Team `gorm:"foreignKey:TeamID" json:"-"`
}
