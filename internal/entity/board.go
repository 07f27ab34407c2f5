package entity

import "strings"

const GridSize = 3

type Mark string

const (
	EmptyCell Mark = ""
	// MarkO is placed by the player who moves first.
	MarkO Mark = "O"
	MarkX Mark = "X"
)

// Opponent returns the other player's mark.
func (m Mark) Opponent() Mark {
	switch m {
	case MarkO:
		return MarkX
	case MarkX:
		return MarkO
	default:
		return EmptyCell
	}
}

// WinCombos lists every winning line as row-major cell indexes: rows, columns, then the left
// and right diagonals.
var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Move is a row and column on the board. It carries no validation of its own.
type Move struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

// InBounds reports whether both coordinates fall inside the grid.
func (m Move) InBounds() bool {
	return m.Row >= 0 && m.Row < GridSize && m.Column >= 0 && m.Column < GridSize
}

// Board is a 3x3 grid of marks. It is an array, so assigning or passing it copies every cell.
type Board [GridSize][GridSize]Mark

func (that Board) cell(index int) Mark {
	return that[index/GridSize][index%GridSize]
}

// Clone returns an independent copy of the board.
func (that Board) Clone() Board {
	return that
}

// At returns the mark at the move's cell. The move must be in bounds.
func (that Board) At(move Move) Mark {
	return that[move.Row][move.Column]
}

// Place puts mark on the move's cell without any checks.
func (that *Board) Place(move Move, mark Mark) {
	that[move.Row][move.Column] = mark
}

// Winner returns the mark that owns the first complete line, or EmptyCell.
func (that Board) Winner() Mark {
	for _, combo := range WinCombos {
		a, b, c := that.cell(combo[0]), that.cell(combo[1]), that.cell(combo[2])
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	return EmptyCell
}

// IsWin reports whether any row, column or diagonal holds three identical marks.
func (that Board) IsWin() bool {
	return that.Winner() != EmptyCell
}

// IsFull reports whether no empty cell remains.
func (that Board) IsFull() bool {
	for row := range GridSize {
		for column := range GridSize {
			if that[row][column] == EmptyCell {
				return false
			}
		}
	}

	return true
}

// LegalMoves returns every empty cell in row-major order.
func (that Board) LegalMoves() []Move {
	moves := make([]Move, 0, GridSize*GridSize)
	for row := range GridSize {
		for column := range GridSize {
			if that[row][column] == EmptyCell {
				moves = append(moves, Move{Row: row, Column: column})
			}
		}
	}

	return moves
}

// MarkToPlay infers the next mark from the marks already placed: X once O is ahead, O
// otherwise. Only meaningful for reachable positions.
func (that Board) MarkToPlay() Mark {
	var countO, countX int
	for row := range GridSize {
		for column := range GridSize {
			switch that[row][column] {
			case MarkO:
				countO++
			case MarkX:
				countX++
			}
		}
	}

	if countO > countX {
		return MarkX
	}

	return MarkO
}

// String renders the grid the way it is shown on the console:
//
//	O|X|
//	-----
//	 |O|
func (that Board) String() string {
	var sb strings.Builder
	for row := range GridSize {
		for column := range GridSize {
			if mark := that[row][column]; mark == EmptyCell {
				sb.WriteByte(' ')
			} else {
				sb.WriteString(string(mark))
			}

			if column < GridSize-1 {
				sb.WriteByte('|')
			}
		}
		sb.WriteByte('\n')

		if row < GridSize-1 {
			sb.WriteString(strings.Repeat("-", 2*GridSize-1))
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

// ParseBoard builds a board from one string per row, where 'O' and 'X' are marks and any
// other rune is an empty cell. Missing rows or columns are left empty.
func ParseBoard(rows ...string) Board {
	var board Board
	for row := 0; row < GridSize && row < len(rows); row++ {
		for column, r := range []rune(rows[row]) {
			if column >= GridSize {
				break
			}

			switch Mark(r) {
			case MarkO, MarkX:
				board[row][column] = Mark(r)
			}
		}
	}

	return board
}
