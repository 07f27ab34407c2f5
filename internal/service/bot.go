package service

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/minimax"
)

// NaiveBot plays the first empty cell in row-major order.
type NaiveBot struct{}

func NewNaiveBot() *NaiveBot {
	return &NaiveBot{}
}

func (that *NaiveBot) ChooseMove(board entity.Board) (entity.Move, error) {
	moves := board.LegalMoves()
	if len(moves) == 0 {
		return entity.Move{}, apperror.ErrNoAvailableMoves
	}

	return moves[0], nil
}

// AdvancedBot plays the move found by an exhaustive minimax search.
type AdvancedBot struct {
	logger   *slog.Logger
	searcher *minimax.Searcher
}

func NewAdvancedBot(logger *slog.Logger, searcher *minimax.Searcher) *AdvancedBot {
	return &AdvancedBot{
		logger:   logger.With("component", "advanced-bot"),
		searcher: searcher,
	}
}

func (that *AdvancedBot) ChooseMove(board entity.Board) (entity.Move, error) {
	move, outcome, err := that.searcher.BestMove(board)
	if err != nil {
		return entity.Move{}, fmt.Errorf("bot failed to choose move: %w", err)
	}

	that.logger.Debug("move chosen", "row", move.Row, "column", move.Column, "outcome", outcome)

	return move, nil
}
