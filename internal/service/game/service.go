package game

import (
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/iamasit07/save-point/internal/domain"
	"github.com/iamasit07/save-point/internal/lib/logger/sl"
	"github.com/iamasit07/save-point/pkg/uid"
)

type GameRepository interface {
	Insert(game domain.Game) error
	List() []domain.Game
	Update(id string, apply func(game *domain.Game) error) (domain.Game, error)
	Delete(id string) (domain.Game, error)
	Len() int
}

// Notifier receives an event after every successful mutation.
// Publish must not block.
type Notifier interface {
	Publish(event domain.GameEvent)
}

// Service implements the create/list/update/delete operations on game records
type Service struct {
	repo     GameRepository
	notifier Notifier
	validate *validator.Validate
	log      *slog.Logger
	newID    func() string
}

// NewService wires the service. notifier may be nil.
func NewService(repo GameRepository, notifier Notifier, log *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		log:      log.With(slog.String("component", "service/game")),
		newID:    uid.GenerateGameID,
	}
}

func (s *Service) Create(req domain.CreateGameRequest) (domain.Game, error) {
	const op = "service.game.Create"

	if err := s.validate.Struct(req); err != nil {
		return domain.Game{}, fmt.Errorf("%s: %w: %v", op, domain.ErrValidation, err)
	}

	game := domain.Game{
		ID:    s.newID(),
		Title: req.Title,
		Hours: *req.Hours,
	}
	if err := s.repo.Insert(game); err != nil {
		return domain.Game{}, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("game created",
		sl.Op(op),
		slog.String("id", game.ID),
		slog.String("title", game.Title),
	)
	s.publish(domain.EventGameCreated, game)
	return game, nil
}

func (s *Service) List() []domain.Game {
	s.log.Debug("games listed", sl.Op("service.game.List"))
	return s.repo.List()
}

// Update applies the supplied fields of req to the record with the given id.
// An unknown id is reported before an empty or invalid payload.
func (s *Service) Update(id string, req domain.UpdateGameRequest) (domain.Game, error) {
	const op = "service.game.Update"

	game, err := s.repo.Update(id, func(g *domain.Game) error {
		if req.IsEmpty() {
			return domain.ErrNoUpdateFields
		}
		if err := s.validate.Struct(req); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrValidation, err)
		}
		req.Apply(g)
		return nil
	})
	if err != nil {
		return domain.Game{}, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("game updated", sl.Op(op), slog.String("id", id))
	s.publish(domain.EventGameUpdated, game)
	return game, nil
}

func (s *Service) Delete(id string) error {
	const op = "service.game.Delete"

	game, err := s.repo.Delete(id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("game deleted", sl.Op(op), slog.String("id", id))
	s.publish(domain.EventGameDeleted, game)
	return nil
}

func (s *Service) Count() int {
	return s.repo.Len()
}

// Seed inserts the given records with freshly generated ids
func (s *Service) Seed(games []domain.CreateGameRequest) error {
	for _, req := range games {
		if _, err := s.Create(req); err != nil {
			return fmt.Errorf("seed %q: %w", req.Title, err)
		}
	}
	return nil
}

func (s *Service) publish(eventType domain.EventType, game domain.Game) {
	if s.notifier == nil {
		return
	}
	s.notifier.Publish(domain.GameEvent{Type: eventType, Game: game})
}
