package tictactoe

import "github.com/rocketscienceinc/tictactoe-console/internal/entity"

// Evaluate returns the absolute state of board.
func Evaluate(board entity.Board) entity.GameState {
	switch board.Winner() {
	case entity.MarkO:
		return entity.StatePlayerOWon
	case entity.MarkX:
		return entity.StatePlayerXWon
	}

	if board.IsFull() {
		return entity.StateDraw
	}

	return entity.StateInProgress
}

// ValidateMove checks that move lands on an empty cell inside the grid.
func ValidateMove(board entity.Board, move entity.Move) error {
	if !move.InBounds() {
		return ErrOutOfBounds
	}

	if board.At(move) != entity.EmptyCell {
		return ErrCellOccupied
	}

	return nil
}
