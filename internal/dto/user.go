package dto

import (
	"time"

	"github.com/hockeylive/backend/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID         uint64          `json:"id"`
	Email      string          `json:"email"`
	FullName   string          `json:"full_name"`
	FirstName  string          `json:"first_name,omitempty"`
	LastName   string          `json:"last_name,omitempty"`
	Phone      string          `json:"phone,omitempty"`
	Role       models.UserRole `json:"role"`
	IsVerified bool            `json:"is_verified"`

	EmailNotifications bool `json:"email_notifications"`
	PushNotifications  bool `json:"push_notifications"`
	GameReminders      bool `json:"game_reminders"`

	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// LoginResponseDTO is returned on successful authentication.
type LoginResponseDTO struct {
	User        UserDTO `json:"user"`
	AccessToken string  `json:"access_token"`
	TokenType   string  `json:"token_type"`
}

// ToUserDTO converts a user model to its API representation
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:                 user.ID,
		Email:              user.Email,
		FullName:           user.FullName,
		FirstName:          user.FirstName,
		LastName:           user.LastName,
		Phone:              user.Phone,
		Role:               user.Role,
		IsVerified:         user.IsVerified,
		EmailNotifications: user.EmailNotifications,
		PushNotifications:  user.PushNotifications,
		GameReminders:      user.GameReminders,
		LastLogin:          user.LastLogin,
		CreatedAt:          user.CreatedAt,
	}
}

// ToLoginResponseDTO builds the login payload with the bearer token.
func ToLoginResponseDTO(user models.User, token string) LoginResponseDTO {
	return LoginResponseDTO{
		User:        ToUserDTO(user),
		AccessToken: token,
		TokenType:   "bearer",
	}
}
