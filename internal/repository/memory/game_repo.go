package memory

import (
	"slices"
	"sync"

	"github.com/iamasit07/save-point/internal/domain"
)

// GameRepo keeps game records in process memory. Records are indexed by id
// and listed in insertion order. Nothing survives a restart.
type GameRepo struct {
	mu    sync.RWMutex
	games map[string]*domain.Game
	order []string
}

func NewGameRepo() *GameRepo {
	return &GameRepo{
		games: make(map[string]*domain.Game),
	}
}

// Insert appends a new record. Ids are never reused while the process lives.
func (r *GameRepo) Insert(game domain.Game) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.games[game.ID]; exists {
		return domain.ErrDuplicateGameID
	}

	stored := game
	r.games[game.ID] = &stored
	r.order = append(r.order, game.ID)
	return nil
}

// List returns copies of every record in insertion order
func (r *GameRepo) List() []domain.Game {
	r.mu.RLock()
	defer r.mu.RUnlock()

	games := make([]domain.Game, 0, len(r.order))
	for _, id := range r.order {
		games = append(games, *r.games[id])
	}
	return games
}

func (r *GameRepo) Get(id string) (domain.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	game, exists := r.games[id]
	if !exists {
		return domain.Game{}, domain.ErrGameNotFound
	}
	return *game, nil
}

// Update runs apply against a copy of the record and stores the result only
// when apply succeeds, so a failed update leaves the record untouched.
// The record id cannot be changed through apply.
func (r *GameRepo) Update(id string, apply func(game *domain.Game) error) (domain.Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, exists := r.games[id]
	if !exists {
		return domain.Game{}, domain.ErrGameNotFound
	}

	updated := *current
	if err := apply(&updated); err != nil {
		return domain.Game{}, err
	}
	updated.ID = id

	*current = updated
	return updated, nil
}

// Delete removes the record and returns it as it was before removal
func (r *GameRepo) Delete(id string) (domain.Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	game, exists := r.games[id]
	if !exists {
		return domain.Game{}, domain.ErrGameNotFound
	}

	delete(r.games, id)
	if idx := slices.Index(r.order, id); idx != -1 {
		r.order = slices.Delete(r.order, idx, idx+1)
	}
	return *game, nil
}

func (r *GameRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
