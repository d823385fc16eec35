package entity

// Mark is the content of a single cell, or the symbol of a player.
type Mark string

const (
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
	EmptyCell Mark = ""
)

const BoardSize = 9

// Board holds the cells in row-major order: 0,1,2 is the top row.
type Board [BoardSize]Mark

// WinCombos lists rows, then columns, then diagonals. CheckWinner depends on this order.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Opponent returns the other player's mark.
func (that Mark) Opponent() Mark {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// InRange reports whether position addresses a cell of the board.
func InRange(position int) bool {
	return position >= 0 && position < BoardSize
}

// IsValidMove reports whether a mark can be placed at position.
func IsValidMove(board Board, position int) bool {
	if !InRange(position) {
		return false
	}

	return board[position] == EmptyCell
}

// CheckWinner returns the mark holding the first complete triple, or EmptyCell.
func CheckWinner(board Board) Mark {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	return EmptyCell
}

// CheckDraw reports a full board without a winner.
func CheckDraw(board Board) bool {
	for _, cell := range board {
		if cell == EmptyCell {
			return false
		}
	}

	return CheckWinner(board) == EmptyCell
}
