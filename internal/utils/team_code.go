package utils

import (
	"crypto/rand"
	"fmt"
)

// TeamCodeLength is the length of the human-shareable join code.
const TeamCodeLength = 6

// TeamCodeAlphabet excludes visually confusable characters (0, O, I, 1).
const TeamCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateTeamCode generates a random 6-character team join code drawn from
// the restricted alphabet. Uniqueness is the caller's concern.
func GenerateTeamCode() (string, error) {
	bytes := make([]byte, TeamCodeLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	code := make([]byte, TeamCodeLength)
	for i, b := range bytes {
		code[i] = TeamCodeAlphabet[int(b)%len(TeamCodeAlphabet)]
	}
	return string(code), nil
}
