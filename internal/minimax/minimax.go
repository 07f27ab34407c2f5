// Package minimax implements the exhaustive game-tree search used by the advanced AI player.
//
// Outcomes are always scored for the searching role: Win means the player who asked for a
// move can force a win, Lose means the opponent can. Ties between equally good moves are
// broken by the first candidate in row-major order.
package minimax

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type Outcome int

const (
	Lose Outcome = iota
	Draw
	Win
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Lose:
		return "lose"
	case Draw:
		return "draw"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Turn is the role to move in a search frame.
type Turn int

const (
	TurnSearcher Turn = iota
	TurnOpponent
)

func (t Turn) flip() Turn {
	if t == TurnSearcher {
		return TurnOpponent
	}
	return TurnSearcher
}

type Options struct {
	// MiddleColumnShortcut scores any frame whose middle column is held entirely by O as a
	// loss for the searcher. A complete middle column is already a win, so the terminal check
	// always answers first and the shortcut never changes a result.
	MiddleColumnShortcut bool
}

func DefaultOptions() Options {
	return Options{MiddleColumnShortcut: true}
}

type Searcher struct {
	opts Options
}

func New(opts Options) *Searcher {
	return &Searcher{opts: opts}
}

// BestMove returns the move the player to move on board should make and the outcome it
// guarantees. The mark to place is inferred from the board, so board must be a reachable
// position. It fails with ErrNoAvailableMoves when the game on board is already over.
func (that *Searcher) BestMove(board entity.Board) (entity.Move, Outcome, error) {
	if board.IsWin() || board.IsFull() {
		return entity.Move{}, Lose, apperror.ErrNoAvailableMoves
	}

	outcome, move := that.search(board, TurnSearcher)

	return move, outcome, nil
}

func (that *Searcher) search(board entity.Board, turn Turn) (Outcome, entity.Move) {
	if outcome, ok := that.terminal(board, turn); ok {
		return outcome, entity.Move{}
	}

	moves := board.LegalMoves()
	mark := board.MarkToPlay()

	// Falls back to the first legal move when no candidate is adopted.
	bestMove := moves[0]

	var best Outcome
	if turn == TurnSearcher {
		best = Lose
	} else {
		best = Win
	}

	for _, move := range moves {
		next := board.Clone()
		next.Place(move, mark)

		outcome, _ := that.search(next, turn.flip())

		if turn == TurnSearcher {
			switch {
			case outcome == Win && best != Win:
				best, bestMove = outcome, move
			case outcome == Draw && best == Lose:
				best, bestMove = outcome, move
			}
		} else {
			switch {
			case outcome == Lose && best != Lose:
				best, bestMove = outcome, move
			case outcome == Draw && best == Win:
				best, bestMove = outcome, move
			}
		}
	}

	return best, bestMove
}

// terminal scores a finished frame. A win on the board was made by the role that moved into
// this frame, so it is a win for the searcher when the opponent is now to move.
func (that *Searcher) terminal(board entity.Board, turn Turn) (Outcome, bool) {
	switch {
	case board.IsWin() && turn == TurnOpponent:
		return Win, true
	case board.IsWin() && turn == TurnSearcher:
		return Lose, true
	case board.IsFull():
		return Draw, true
	case that.opts.MiddleColumnShortcut && middleColumnHeldByO(board):
		return Lose, true
	}

	return Lose, false
}

func middleColumnHeldByO(board entity.Board) bool {
	return board[0][1] == entity.MarkO && board[1][1] == entity.MarkO && board[2][1] == entity.MarkO
}
