package models

import "time"

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// UserToken is an opaque bearer credential. It is looked up directly against
// this table rather than cryptographically verified.
type UserToken struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Token     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"-"`
	UserID    uint64    `gorm:"not null;index" json:"user_id"`
	TokenType TokenType `gorm:"type:varchar(20);default:'access'" json:"token_type"`

	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`

	DeviceType string `gorm:"type:varchar(50)" json:"device_type,omitempty"`
	IPAddress  string `gorm:"type:varchar(45)" json:"-"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}
