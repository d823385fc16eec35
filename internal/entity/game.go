package entity

import (
	"errors"
	"fmt"
	"time"
)

var ErrCorruptedGame = errors.New("corrupted game state")

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusDraw       Status = "draw"
)

type Game struct {
	ID            string    `json:"id" bson:"_id"`
	Board         Board     `json:"board" bson:"board"`
	CurrentPlayer Mark      `json:"current_player" bson:"current_player"`
	Status        Status    `json:"status" bson:"status"`
	Winner        Mark      `json:"winner,omitempty" bson:"winner,omitempty"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
}

func NewGame(id string, now time.Time) *Game {
	return &Game{
		ID:            id,
		Board:         Board{},
		CurrentPlayer: PlayerX,
		Status:        StatusInProgress,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (that *Game) IsInProgress() bool {
	return that.Status == StatusInProgress
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusWon || that.Status == StatusDraw
}

// Validate checks a game loaded from storage against the model invariants.
func (that *Game) Validate() error {
	switch that.Status {
	case StatusInProgress, StatusDraw:
		if that.Winner != EmptyCell {
			return fmt.Errorf("%w: winner %q with status %s", ErrCorruptedGame, that.Winner, that.Status)
		}
	case StatusWon:
		if !that.Winner.IsPlayer() {
			return fmt.Errorf("%w: won without winner", ErrCorruptedGame)
		}
	default:
		return fmt.Errorf("%w: unknown status %q", ErrCorruptedGame, that.Status)
	}

	if !that.CurrentPlayer.IsPlayer() {
		return fmt.Errorf("%w: current player %q", ErrCorruptedGame, that.CurrentPlayer)
	}

	for i, cell := range that.Board {
		if cell != EmptyCell && !cell.IsPlayer() {
			return fmt.Errorf("%w: cell %d holds %q", ErrCorruptedGame, i, cell)
		}
	}

	return nil
}
