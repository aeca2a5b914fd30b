package models

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	UserRoleParent UserRole = "parent"
	UserRoleCoach  UserRole = "coach"
	UserRoleAdmin  UserRole = "admin"
	UserRoleViewer UserRole = "viewer"
)

type User struct {
	ID           uint64 `gorm:"primarykey" json:"id"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
	IsActive     bool   `gorm:"default:true" json:"is_active"`
	IsVerified   bool   `gorm:"default:false" json:"is_verified"`

	FullName  string `gorm:"type:varchar(100);not null" json:"full_name"`
	FirstName string `gorm:"type:varchar(50)" json:"first_name,omitempty"`
	LastName  string `gorm:"type:varchar(50)" json:"last_name,omitempty"`
	Phone     string `gorm:"type:varchar(20)" json:"phone,omitempty"`

	Role UserRole `gorm:"type:varchar(20);default:'parent'" json:"role"`

	EmailNotifications bool `gorm:"default:true" json:"email_notifications"`
	PushNotifications  bool `gorm:"default:true" json:"push_notifications"`
	GameReminders      bool `gorm:"default:true" json:"game_reminders"`

	LastLogin *time.Time     `json:"last_login,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	CreatedTeams []Team           `gorm:"foreignKey:CreatedBy" json:"-"`
	Memberships  []TeamMembership `gorm:"foreignKey:UserID" json:"-"`
	Tokens       []UserToken      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
