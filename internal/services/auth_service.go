package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/hockeylive/backend/internal/config"
	"github.com/hockeylive/backend/internal/constants"
	"github.com/hockeylive/backend/internal/models"
	"github.com/hockeylive/backend/internal/repository"
	"github.com/hockeylive/backend/internal/utils"
)

var (
	ErrEmailTaken           = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrPasswordTooShort     = errors.New("password too short")
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidToken         = errors.New("invalid or expired token")
	ErrFailedToHashPassword = errors.New("failed to hash password")
	ErrFailedToIssueToken   = errors.New("failed to issue token")
)

// AuthService handles registration, login, and bearer token resolution.
type AuthService struct {
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
	cfg       config.AuthConfig
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, tokenRepo repository.TokenRepository, cfg config.AuthConfig) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		cfg:       cfg,
	}
}

// RegisterInput represents the required information to create a new account.
type RegisterInput struct {
	Email    string
	Password string
	FullName string
}

// Register creates a new user account.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hashedPassword),
		FullName:     strings.TrimSpace(input.FullName),
		IsActive:     true,
		Role:         models.UserRoleParent,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string

	DeviceType string
	IPAddress  string
}

// Login verifies credentials and issues a fresh bearer token.
func (s *AuthService) Login(input LoginInput) (*models.User, *models.UserToken, error) {
	user, err := s.userRepo.FindByEmail(strings.ToLower(strings.TrimSpace(input.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !user.IsActive {
		return nil, nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	// Record the login before issuing the credential: a failure here must not
	// leave a live token behind an errored login.
	now := time.Now()
	user.LastLogin = &now
	if err := s.userRepo.Update(user); err != nil {
		return nil, nil, fmt.Errorf("failed to record login: %w", err)
	}

	token, err := s.IssueToken(user, input.DeviceType, input.IPAddress)
	if err != nil {
		return nil, nil, err
	}

	return user, token, nil
}

// IssueToken generates an opaque token and persists it bound to the user. The
// expiry timestamp is always recorded; whether it is enforced at resolution
// time is a separate policy decision.
func (s *AuthService) IssueToken(user *models.User, deviceType, ipAddress string) (*models.UserToken, error) {
	raw, err := utils.GenerateToken()
	if err != nil {
		return nil, ErrFailedToIssueToken
	}

	expiresAt := time.Now().Add(s.cfg.TokenTTL)
	token := &models.UserToken{
		Token:      raw,
		UserID:     user.ID,
		TokenType:  models.TokenTypeAccess,
		ExpiresAt:  &expiresAt,
		DeviceType: deviceType,
		IPAddress:  ipAddress,
	}

	if err := s.tokenRepo.Create(token); err != nil {
		return nil, fmt.Errorf("failed to store token: %w", err)
	}

	return token, nil
}

// ResolveToken maps a bearer token to its user. Returns (nil, nil) when the
// token is unknown, expired under the expiry policy, or the user is missing
// or inactive — absence is a valid outcome, not an error.
func (s *AuthService) ResolveToken(token string) (*models.User, error) {
	record, err := s.tokenRepo.FindByToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up token: %w", err)
	}

	if s.cfg.EnforceTokenExpiry && record.ExpiresAt != nil && record.ExpiresAt.Before(time.Now()) {
		return nil, nil
	}

	user, err := s.userRepo.FindByID(record.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !user.IsActive {
		return nil, nil
	}

	return user, nil
}

// RevokeToken deletes the token record and reports whether one existed.
func (s *AuthService) RevokeToken(token string) (bool, error) {
	existed, err := s.tokenRepo.DeleteByToken(token)
	if err != nil {
		return false, fmt.Errorf("failed to revoke token: %w", err)
	}
	return existed, nil
}

// Logout revokes the token; an unknown token is an error to the caller.
func (s *AuthService) Logout(token string) error {
	existed, err := s.RevokeToken(token)
	if err != nil {
		return err
	}
	if !existed {
		return ErrInvalidToken
	}
	return nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// UpdateProfileInput holds optional profile fields; nil means unchanged.
type UpdateProfileInput struct {
	FullName  *string
	FirstName *string
	LastName  *string
	Phone     *string

	EmailNotifications *bool
	PushNotifications  *bool
	GameReminders      *bool
}

// UpdateProfile applies a partial profile update.
func (s *AuthService) UpdateProfile(id uint64, input UpdateProfileInput) (*models.User, error) {
	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}

	if input.FullName != nil {
		user.FullName = strings.TrimSpace(*input.FullName)
	}
	if input.FirstName != nil {
		user.FirstName = strings.TrimSpace(*input.FirstName)
	}
	if input.LastName != nil {
		user.LastName = strings.TrimSpace(*input.LastName)
	}
	if input.Phone != nil {
		user.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.EmailNotifications != nil {
		user.EmailNotifications = *input.EmailNotifications
	}
	if input.PushNotifications != nil {
		user.PushNotifications = *input.PushNotifications
	}
	if input.GameReminders != nil {
		user.GameReminders = *input.GameReminders
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}
