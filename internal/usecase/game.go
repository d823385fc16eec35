package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
	"github.com/rocketscienceinc/tictactoe-api/internal/repository"
	"github.com/rocketscienceinc/tictactoe-api/internal/tictactoe"
)

type gameRepo interface {
	Create(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	Update(ctx context.Context, id string, fn repository.UpdateFunc) (*entity.Game, error)
}

// GameUseCase handles the create/get/move/reset commands. Every mutation goes through
// gameRepo.Update, which serialises writers of the same game.
type GameUseCase struct {
	logger   *slog.Logger
	gameRepo gameRepo

	newID func() string
	now   func() time.Time
}

func NewGameUseCase(logger *slog.Logger, gameRepo gameRepo) *GameUseCase {
	return &GameUseCase{
		logger:   logger.With("component", "game_usecase"),
		gameRepo: gameRepo,
		newID:    uuid.NewString,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (that *GameUseCase) CreateGame(ctx context.Context) (*entity.Game, error) {
	game := entity.NewGame(that.newID(), that.now())

	if err := that.gameRepo.Create(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Debug("game created", "game_id", game.ID)

	return game, nil
}

func (that *GameUseCase) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// MakeMove applies the current player's move at position. Rejected moves are not stored.
func (that *GameUseCase) MakeMove(ctx context.Context, id string, position *int) (*entity.Game, error) {
	game, err := that.gameRepo.Update(ctx, id, func(game *entity.Game) error {
		if _, err := tictactoe.NewGameController(game).ApplyMove(position); err != nil {
			return err
		}

		game.UpdatedAt = that.now()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to make move: %w", err)
	}

	if game.IsFinished() {
		that.logger.Info("game finished", "game_id", game.ID, "status", game.Status, "winner", game.Winner)
	}

	return game, nil
}

func (that *GameUseCase) ResetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.Update(ctx, id, func(game *entity.Game) error {
		tictactoe.NewGameController(game).Reset()
		game.UpdatedAt = that.now()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reset game: %w", err)
	}

	return game, nil
}
