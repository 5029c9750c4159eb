package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Game is one completed game entry.
type Game struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Hours float64 `json:"hours"`
}

type CreateGameRequest struct {
	Title string   `json:"title" validate:"required"`
	Hours *float64 `json:"hours" validate:"required,gt=0"`
}

// UpdateGameRequest carries a partial update. Nil fields are left untouched.
type UpdateGameRequest struct {
	Title *string `json:"title" validate:"omitnil,min=1"`
	Hours *Hours  `json:"hours" validate:"omitnil,gt=0"`
}

func (r UpdateGameRequest) IsEmpty() bool {
	return r.Title == nil && r.Hours == nil
}

// Apply copies the supplied fields onto g.
func (r UpdateGameRequest) Apply(g *Game) {
	if r.Title != nil {
		g.Title = *r.Title
	}
	if r.Hours != nil {
		g.Hours = float64(*r.Hours)
	}
}

// Hours accepts either a JSON number or a numeric string ("12", "4.5").
type Hours float64

func (h *Hours) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(unquoted)
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%w: hours %s is not a number", ErrValidation, string(data))
	}

	*h = Hours(value)
	return nil
}
