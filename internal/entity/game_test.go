package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	now := time.Date(2026, 1, 29, 17, 21, 23, 0, time.UTC)

	// When: creating a new game
	game := NewGame("123", now)

	// Then: the game is in its initial state
	expectedGame := &Game{
		ID:            "123",
		Board:         Board{"", "", "", "", "", "", "", "", ""},
		CurrentPlayer: PlayerX,
		Status:        StatusInProgress,
		Winner:        EmptyCell,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	require.Equal(t, expectedGame, game)
	assert.True(t, game.IsInProgress())
	assert.False(t, game.IsFinished())
}

func TestGameStatusMethods(t *testing.T) {
	t.Run("IsFinished returns true for won and draw", func(t *testing.T) {
		assert.True(t, (&Game{Status: StatusWon}).IsFinished())
		assert.True(t, (&Game{Status: StatusDraw}).IsFinished())
		assert.False(t, (&Game{Status: StatusInProgress}).IsFinished())
	})

	t.Run("IsInProgress returns true only for in_progress", func(t *testing.T) {
		assert.True(t, (&Game{Status: StatusInProgress}).IsInProgress())
		assert.False(t, (&Game{Status: StatusWon}).IsInProgress())
		assert.False(t, (&Game{Status: StatusDraw}).IsInProgress())
	})
}

func TestGame_Validate(t *testing.T) {
	t.Run("Accepts consistent games", func(t *testing.T) {
		games := []*Game{
			NewGame("1", time.Now()),
			{CurrentPlayer: PlayerX, Status: StatusWon, Winner: PlayerX, Board: Board{PlayerX, PlayerX, PlayerX}},
			{CurrentPlayer: PlayerO, Status: StatusDraw},
		}

		for _, game := range games {
			assert.NoError(t, game.Validate())
		}
	})

	t.Run("Rejects inconsistent games", func(t *testing.T) {
		games := []*Game{
			{CurrentPlayer: PlayerX, Status: StatusInProgress, Winner: PlayerO},
			{CurrentPlayer: PlayerX, Status: StatusWon},
			{CurrentPlayer: PlayerX, Status: "finished"},
			{CurrentPlayer: "Z", Status: StatusInProgress},
			{CurrentPlayer: PlayerX, Status: StatusInProgress, Board: Board{"Z"}},
		}

		for _, game := range games {
			assert.ErrorIs(t, game.Validate(), ErrCorruptedGame)
		}
	})
}

func TestGame_JSON(t *testing.T) {
	t.Run("Omits winner while in progress", func(t *testing.T) {
		// Given: a game in progress
		game := NewGame("abc", time.Date(2026, 1, 29, 0, 0, 0, 0, time.UTC))
		game.Board[4] = PlayerX

		// When: encoding it
		data, err := json.Marshal(game)
		require.NoError(t, err)

		// Then: the snapshot carries the wire field names and no winner
		var fields map[string]any
		require.NoError(t, json.Unmarshal(data, &fields))

		assert.Equal(t, "abc", fields["id"])
		assert.Equal(t, []any{"", "", "", "", "X", "", "", "", ""}, fields["board"])
		assert.Equal(t, "X", fields["current_player"])
		assert.Equal(t, "in_progress", fields["status"])
		assert.NotContains(t, fields, "winner")
		assert.Equal(t, "2026-01-29T00:00:00Z", fields["created_at"])
	})

	t.Run("Includes winner once won", func(t *testing.T) {
		game := &Game{ID: "abc", CurrentPlayer: PlayerO, Status: StatusWon, Winner: PlayerO}

		data, err := json.Marshal(game)
		require.NoError(t, err)

		assert.Contains(t, string(data), `"winner":"O"`)
		assert.Contains(t, string(data), `"status":"won"`)
	})
}
