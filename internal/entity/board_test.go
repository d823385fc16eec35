package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidMove(t *testing.T) {
	emptyBoard := Board{}
	partialBoard := Board{PlayerX, PlayerO}

	t.Run("Accepts empty cells", func(t *testing.T) {
		for _, position := range []int{0, 4, 8} {
			assert.True(t, IsValidMove(emptyBoard, position), "position %d", position)
		}

		assert.True(t, IsValidMove(partialBoard, 2))
		assert.True(t, IsValidMove(partialBoard, 5))
	})

	t.Run("Rejects occupied cells", func(t *testing.T) {
		assert.False(t, IsValidMove(partialBoard, 0))
		assert.False(t, IsValidMove(partialBoard, 1))
	})

	t.Run("Rejects positions out of range", func(t *testing.T) {
		for _, position := range []int{-1, 9, 10, -100} {
			assert.False(t, IsValidMove(emptyBoard, position), "position %d", position)
		}
	})

	t.Run("False exactly when out of range or occupied", func(t *testing.T) {
		// Given: boards from empty to full
		boards := []Board{
			{},
			{PlayerX, EmptyCell, PlayerO, EmptyCell, PlayerX, EmptyCell, PlayerO, EmptyCell, PlayerX},
			{PlayerX, PlayerO, PlayerX, PlayerX, PlayerO, PlayerO, PlayerO, PlayerX, PlayerX},
		}

		for _, board := range boards {
			for position := -2; position <= 10; position++ {
				// When: validating the move
				got := IsValidMove(board, position)

				// Then: it matches the definition
				want := position >= 0 && position <= 8 && board[position] == EmptyCell
				assert.Equal(t, want, got, "board %v position %d", board, position)
			}
		}
	})
}

func TestCheckWinner(t *testing.T) {
	t.Run("Detects every triple", func(t *testing.T) {
		for _, combo := range WinCombos {
			for _, mark := range []Mark{PlayerX, PlayerO} {
				// Given: a board where only one triple is filled
				var board Board
				for _, i := range combo {
					board[i] = mark
				}

				// When: checking the winner
				winner := CheckWinner(board)

				// Then: the mark in the triple wins
				assert.Equal(t, mark, winner, "combo %v", combo)
			}
		}
	})

	t.Run("Returns EmptyCell for a board without a triple", func(t *testing.T) {
		board := Board{
			PlayerX, PlayerO, EmptyCell,
			EmptyCell, PlayerX, EmptyCell,
			EmptyCell, EmptyCell, PlayerO,
		}

		assert.Equal(t, EmptyCell, CheckWinner(board))
		assert.Equal(t, EmptyCell, CheckWinner(Board{}))
	})

	t.Run("Does not count a mixed triple", func(t *testing.T) {
		board := Board{PlayerX, PlayerX, PlayerO}

		assert.Equal(t, EmptyCell, CheckWinner(board))
	})

	t.Run("First triple in scan order wins", func(t *testing.T) {
		// Given: boards holding two complete triples of different players
		rows := Board{
			PlayerO, PlayerO, PlayerO,
			EmptyCell, EmptyCell, EmptyCell,
			PlayerX, PlayerX, PlayerX,
		}
		columns := Board{
			PlayerX, EmptyCell, PlayerO,
			PlayerX, EmptyCell, PlayerO,
			PlayerX, EmptyCell, PlayerO,
		}

		// Then: the earlier triple is reported
		assert.Equal(t, PlayerO, CheckWinner(rows))
		assert.Equal(t, PlayerX, CheckWinner(columns))
	})

	t.Run("Winner occupies a whole triple", func(t *testing.T) {
		board := Board{
			PlayerO, PlayerX, PlayerX,
			PlayerX, PlayerO, PlayerO,
			PlayerX, PlayerX, PlayerO,
		}

		winner := CheckWinner(board)

		assert.Equal(t, PlayerO, winner)
		assert.Equal(t, PlayerO, board[0])
		assert.Equal(t, PlayerO, board[4])
		assert.Equal(t, PlayerO, board[8])
	})
}

func TestCheckDraw(t *testing.T) {
	t.Run("Full board without a winner is a draw", func(t *testing.T) {
		board := Board{
			PlayerX, PlayerO, PlayerX,
			PlayerX, PlayerO, PlayerO,
			PlayerO, PlayerX, PlayerX,
		}

		assert.True(t, CheckDraw(board))
	})

	t.Run("Full board with a winner is not a draw", func(t *testing.T) {
		board := Board{
			PlayerX, PlayerX, PlayerX,
			PlayerO, PlayerO, PlayerX,
			PlayerX, PlayerO, PlayerO,
		}

		assert.False(t, CheckDraw(board))
	})

	t.Run("Board with an empty cell is not a draw", func(t *testing.T) {
		board := Board{
			PlayerX, PlayerO, PlayerX,
			PlayerX, PlayerO, PlayerO,
			PlayerO, PlayerX, EmptyCell,
		}

		assert.False(t, CheckDraw(board))
		assert.False(t, CheckDraw(Board{}))
	})
}

func TestMark_Opponent(t *testing.T) {
	assert.Equal(t, PlayerO, PlayerX.Opponent())
	assert.Equal(t, PlayerX, PlayerO.Opponent())
}
