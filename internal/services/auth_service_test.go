package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/hockeylive/backend/internal/config"
	"github.com/hockeylive/backend/internal/models"
	"github.com/hockeylive/backend/internal/repository"
)

type authTestEnv struct {
	db          *gorm.DB
	authService *AuthService
}

func setupAuthTestEnv(t *testing.T, cfg config.AuthConfig) authTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.UserToken{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return authTestEnv{
		db: db,
		authService: NewAuthService(
			repository.NewUserRepository(db),
			repository.NewTokenRepository(db),
			cfg,
		),
	}
}

func defaultAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		EnforceTokenExpiry: false,
		TokenTTL:           24 * time.Hour,
	}
}

func TestAuthService_Register(t *testing.T) {
	env := setupAuthTestEnv(t, defaultAuthConfig())

	user, err := env.authService.Register(RegisterInput{
		Email:    "  Parent@Example.COM ",
		Password: "supersecret",
		FullName: "Pat Parent",
	})
	require.NoError(t, err)
	require.Equal(t, "parent@example.com", user.Email, "email is normalized")
	require.NotEqual(t, "supersecret", user.PasswordHash)
	require.True(t, user.IsActive)

	_, err = env.authService.Register(RegisterInput{
		Email:    "parent@example.com",
		Password: "supersecret",
		FullName: "Duplicate",
	})
	require.ErrorIs(t, err, ErrEmailTaken)

	_, err = env.authService.Register(RegisterInput{
		Email:    "short@example.com",
		Password: "short",
		FullName: "Too Short",
	})
	require.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestAuthService_LoginAndResolve(t *testing.T) {
	env := setupAuthTestEnv(t, defaultAuthConfig())

	_, err := env.authService.Register(RegisterInput{
		Email:    "parent@example.com",
		Password: "supersecret",
		FullName: "Pat Parent",
	})
	require.NoError(t, err)

	user, token, err := env.authService.Login(LoginInput{
		Email:    "parent@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token.Token)
	require.NotNil(t, token.ExpiresAt, "expiry is recorded even when not enforced")
	require.NotNil(t, user.LastLogin)

	resolved, err := env.authService.ResolveToken(token.Token)
	require.NoError(t, err)
	require.NotNil(t, resolved)
	require.Equal(t, user.ID, resolved.ID)

	// Unknown token resolves to no user without an error.
	resolved, err = env.authService.ResolveToken("not-a-token")
	require.NoError(t, err)
	require.Nil(t, resolved)
}

func TestAuthService_Login_Rejections(t *testing.T) {
	env := setupAuthTestEnv(t, defaultAuthConfig())

	user, err := env.authService.Register(RegisterInput{
		Email:    "parent@example.com",
		Password: "supersecret",
		FullName: "Pat Parent",
	})
	require.NoError(t, err)

	_, _, err = env.authService.Login(LoginInput{
		Email:    "parent@example.com",
		Password: "wrongpassword",
	})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = env.authService.Login(LoginInput{
		Email:    "nobody@example.com",
		Password: "supersecret",
	})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	user.IsActive = false
	require.NoError(t, env.db.Save(user).Error)

	_, _, err = env.authService.Login(LoginInput{
		Email:    "parent@example.com",
		Password: "supersecret",
	})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

// failingUserRepo errors on Update to exercise login's failure path.
type failingUserRepo struct {
	repository.UserRepository
}

func (r *failingUserRepo) Update(user *models.User) error {
	return errors.New("update failed")
}

func TestAuthService_Login_NoTokenSurvivesFailedLogin(t *testing.T) {
	env := setupAuthTestEnv(t, defaultAuthConfig())

	_, err := env.authService.Register(RegisterInput{
		Email:    "parent@example.com",
		Password: "supersecret",
		FullName: "Pat Parent",
	})
	require.NoError(t, err)

	broken := NewAuthService(
		&failingUserRepo{UserRepository: repository.NewUserRepository(env.db)},
		repository.NewTokenRepository(env.db),
		defaultAuthConfig(),
	)

	_, _, err = broken.Login(LoginInput{
		Email:    "parent@example.com",
		Password: "supersecret",
	})
	require.Error(t, err)

	// An errored login must not leave a usable credential behind.
	var count int64
	require.NoError(t, env.db.Model(&models.UserToken{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestAuthService_ResolveToken_ExpiryPolicy(t *testing.T) {
	// Negative TTL issues tokens that are already expired.
	expiredCfg := config.AuthConfig{
		EnforceTokenExpiry: false,
		TokenTTL:           -time.Hour,
	}
	env := setupAuthTestEnv(t, expiredCfg)

	user, err := env.authService.Register(RegisterInput{
		Email:    "parent@example.com",
		Password: "supersecret",
		FullName: "Pat Parent",
	})
	require.NoError(t, err)

	token, err := env.authService.IssueToken(user, "", "")
	require.NoError(t, err)

	// Expiry is recorded but not enforced by default.
	resolved, err := env.authService.ResolveToken(token.Token)
	require.NoError(t, err)
	require.NotNil(t, resolved)

	enforcing := NewAuthService(
		repository.NewUserRepository(env.db),
		repository.NewTokenRepository(env.db),
		config.AuthConfig{EnforceTokenExpiry: true, TokenTTL: -time.Hour},
	)
	resolved, err = enforcing.ResolveToken(token.Token)
	require.NoError(t, err)
	require.Nil(t, resolved, "enforcing service must reject the expired token")
}

func TestAuthService_ResolveToken_InactiveUser(t *testing.T) {
	env := setupAuthTestEnv(t, defaultAuthConfig())

	user, err := env.authService.Register(RegisterInput{
		Email:    "parent@example.com",
		Password: "supersecret",
		FullName: "Pat Parent",
	})
	require.NoError(t, err)

	token, err := env.authService.IssueToken(user, "", "")
	require.NoError(t, err)

	user.IsActive = false
	require.NoError(t, env.db.Save(user).Error)

	resolved, err := env.authService.ResolveToken(token.Token)
	require.NoError(t, err)
	require.Nil(t, resolved)
}

func TestAuthService_Logout(t *testing.T) {
	env := setupAuthTestEnv(t, defaultAuthConfig())

	user, err := env.authService.Register(RegisterInput{
		Email:    "parent@example.com",
		Password: "supersecret",
		FullName: "Pat Parent",
	})
	require.NoError(t, err)

	token, err := env.authService.IssueToken(user, "", "")
	require.NoError(t, err)

	require.NoError(t, env.authService.Logout(token.Token))

	resolved, err := env.authService.ResolveToken(token.Token)
	require.NoError(t, err)
	require.Nil(t, resolved, "revoked token must not resolve")

	// Revoking again reports the token as unknown.
	require.ErrorIs(t, env.authService.Logout(token.Token), ErrInvalidToken)
}

func TestAuthService_UpdateProfile(t *testing.T) {
	env := setupAuthTestEnv(t, defaultAuthConfig())

	user, err := env.authService.Register(RegisterInput{
		Email:    "parent@example.com",
		Password: "supersecret",
		FullName: "Pat Parent",
	})
	require.NoError(t, err)

	firstName := "Pat"
	reminders := false
	updated, err := env.authService.UpdateProfile(user.ID, UpdateProfileInput{
		FirstName:     &firstName,
		GameReminders: &reminders,
	})
	require.NoError(t, err)
	require.Equal(t, "Pat", updated.FirstName)
	require.False(t, updated.GameReminders)
	require.Equal(t, "Pat Parent", updated.FullName, "unset fields are unchanged")

	_, err = env.authService.UpdateProfile(99999, UpdateProfileInput{})
	require.ErrorIs(t, err, ErrUserNotFound)
}
