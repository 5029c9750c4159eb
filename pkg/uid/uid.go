package uid

import "github.com/google/uuid"

// GenerateGameID returns a random UUID v4 used as a game record id
func GenerateGameID() string {
	return uuid.NewString()
}

// GenerateConnectionID identifies a single feed subscriber
func GenerateConnectionID() string {
	return uuid.NewString()
}
