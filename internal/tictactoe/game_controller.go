package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-api/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
)

// GameController owns the state of a single game. It is not safe for concurrent use:
// callers serialise mutations per game.
type GameController struct {
	game *entity.Game
}

func NewGameController(game *entity.Game) *GameController {
	return &GameController{game: game}
}

func (that *GameController) Game() *entity.Game {
	return that.game
}

// ApplyMove places the current player's mark at position. A nil position means the
// request carried none. On error the game is left untouched.
func (that *GameController) ApplyMove(position *int) (*entity.Game, error) {
	if err := validateMove(that.game, position); err != nil {
		return that.game, err
	}

	that.game.Board[*position] = that.game.CurrentPlayer
	updateGameStatus(that.game)

	return that.game, nil
}

// Reset reinitialises the game regardless of its status. ID and CreatedAt are kept.
func (that *GameController) Reset() *entity.Game {
	that.game.Board = entity.Board{}
	that.game.CurrentPlayer = entity.PlayerX
	that.game.Status = entity.StatusInProgress
	that.game.Winner = entity.EmptyCell

	return that.game
}

// validateMove - checks if the move is valid.
func validateMove(game *entity.Game, position *int) error {
	if !game.IsInProgress() {
		return apperror.ErrGameFinished
	}

	if position == nil {
		return apperror.ErrInvalidPosition
	}

	if !entity.InRange(*position) {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidPosition, *position)
	}

	if !entity.IsValidMove(game.Board, *position) {
		return fmt.Errorf("%w: %d", apperror.ErrCellOccupied, *position)
	}

	return nil
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(game *entity.Game) {
	if winner := entity.CheckWinner(game.Board); winner != entity.EmptyCell {
		game.Status = entity.StatusWon
		game.Winner = winner
		return
	}

	if entity.CheckDraw(game.Board) {
		game.Status = entity.StatusDraw
		return
	}

	game.CurrentPlayer = game.CurrentPlayer.Opponent()
}
