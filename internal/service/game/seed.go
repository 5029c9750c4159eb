package game

import "github.com/iamasit07/save-point/internal/domain"

// DefaultSeed is loaded into the store at startup
func DefaultSeed() []domain.CreateGameRequest {
	return []domain.CreateGameRequest{
		{Title: "Elden Ring", Hours: hours(180)},
		{Title: "Hades", Hours: hours(45)},
		{Title: "God of War", Hours: hours(32)},
	}
}

func hours(v float64) *float64 {
	return &v
}
