package memory

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/iamasit07/save-point/internal/domain"
)

func seeded(t *testing.T) *GameRepo {
	t.Helper()

	repo := NewGameRepo()
	for _, g := range []domain.Game{
		{ID: "1", Title: "Elden Ring", Hours: 180},
		{ID: "2", Title: "Hades", Hours: 45},
		{ID: "3", Title: "God of War", Hours: 32},
	} {
		if err := repo.Insert(g); err != nil {
			t.Fatalf("insert %s: %v", g.ID, err)
		}
	}
	return repo
}

func TestGameRepoListKeepsInsertionOrder(t *testing.T) {
	repo := seeded(t)

	got := repo.List()
	want := []string{"1", "2", "3"}
	if len(got) != len(want) {
		t.Fatalf("expected %d games, got %d", len(want), len(got))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("position %d: want id %s, got %s", i, id, got[i].ID)
		}
	}
}

func TestGameRepoListEmpty(t *testing.T) {
	got := NewGameRepo().List()
	if got == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Errorf("expected no games, got %d", len(got))
	}
}

func TestGameRepoListReturnsCopies(t *testing.T) {
	repo := seeded(t)

	games := repo.List()
	games[0].Title = "changed"

	stored, err := repo.Get("1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Title != "Elden Ring" {
		t.Errorf("store was mutated through List result: %q", stored.Title)
	}
}

func TestGameRepoInsertDuplicate(t *testing.T) {
	repo := seeded(t)

	err := repo.Insert(domain.Game{ID: "2", Title: "Celeste", Hours: 20})
	if !errors.Is(err, domain.ErrDuplicateGameID) {
		t.Fatalf("expected ErrDuplicateGameID, got %v", err)
	}
	if repo.Len() != 3 {
		t.Errorf("expected 3 games, got %d", repo.Len())
	}
}

func TestGameRepoUpdate(t *testing.T) {
	repo := seeded(t)

	updated, err := repo.Update("2", func(g *domain.Game) error {
		g.Hours = 60
		g.ID = "ignored"
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.ID != "2" || updated.Hours != 60 || updated.Title != "Hades" {
		t.Errorf("unexpected updated game: %+v", updated)
	}

	stored, _ := repo.Get("2")
	if stored != updated {
		t.Errorf("stored game %+v differs from returned %+v", stored, updated)
	}
}

func TestGameRepoUpdateFailureLeavesRecord(t *testing.T) {
	repo := seeded(t)
	boom := errors.New("boom")

	_, err := repo.Update("1", func(g *domain.Game) error {
		g.Title = "half applied"
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected apply error, got %v", err)
	}

	stored, _ := repo.Get("1")
	if stored.Title != "Elden Ring" {
		t.Errorf("record changed after failed update: %+v", stored)
	}
}

func TestGameRepoUpdateUnknown(t *testing.T) {
	repo := seeded(t)
	called := false

	_, err := repo.Update("missing", func(g *domain.Game) error {
		called = true
		return nil
	})
	if !errors.Is(err, domain.ErrGameNotFound) {
		t.Fatalf("expected ErrGameNotFound, got %v", err)
	}
	if called {
		t.Error("apply must not run for unknown ids")
	}
}

func TestGameRepoDelete(t *testing.T) {
	repo := seeded(t)

	removed, err := repo.Delete("2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed.Title != "Hades" {
		t.Errorf("unexpected removed game: %+v", removed)
	}

	games := repo.List()
	if len(games) != 2 || games[0].ID != "1" || games[1].ID != "3" {
		t.Errorf("unexpected games after delete: %+v", games)
	}

	if _, err := repo.Delete("2"); !errors.Is(err, domain.ErrGameNotFound) {
		t.Errorf("expected ErrGameNotFound on repeated delete, got %v", err)
	}
}

func TestGameRepoConcurrentInsert(t *testing.T) {
	repo := NewGameRepo()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = repo.Insert(domain.Game{ID: fmt.Sprintf("id-%d", i), Title: "t", Hours: 1})
		}(i)
	}
	wg.Wait()

	if repo.Len() != 50 {
		t.Errorf("expected 50 games, got %d", repo.Len())
	}
}
