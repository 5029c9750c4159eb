package domain

// basic errors that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrValidation      Error = "invalid game payload"
	ErrNoUpdateFields  Error = "no fields to update"
	ErrGameNotFound    Error = "game not found"
	ErrDuplicateGameID Error = "duplicate game id"
)

// EventType names a change made to the game store
type EventType string

const (
	EventGameCreated EventType = "game_created"
	EventGameUpdated EventType = "game_updated"
	EventGameDeleted EventType = "game_deleted"
)

// GameEvent is pushed to feed subscribers after every successful mutation.
// For deletions Game holds the record as it was before removal.
type GameEvent struct {
	Type EventType `json:"type"`
	Game Game      `json:"game"`
}
