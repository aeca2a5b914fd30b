package constants

// ContextKeyUser is the gin context key holding the authenticated user.
const ContextKeyUser = "current_user"

// ContextKeyToken is the gin context key holding the raw bearer token.
const ContextKeyToken = "current_token"

// MinPasswordLength is the minimum accepted password length at registration.
const MinPasswordLength = 8

// MinTeamNameLength is the minimum accepted team name length.
const MinTeamNameLength = 3

// MaxTeamCodeAttempts bounds the join-code collision retry loop.
const MaxTeamCodeAttempts = 10
