package service

import (
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

// ProviderFactory hands out the move provider matching a player's kind.
type ProviderFactory struct {
	input    LineReader
	naive    *NaiveBot
	advanced *AdvancedBot
}

func NewProviderFactory(logger *slog.Logger, input LineReader, searcher *minimax.Searcher) *ProviderFactory {
	return &ProviderFactory{
		input:    input,
		naive:    NewNaiveBot(),
		advanced: NewAdvancedBot(logger, searcher),
	}
}

func (that *ProviderFactory) For(player *entity.Player) tictactoe.MoveProvider {
	switch player.Kind {
	case entity.AIKind:
		return that.naive
	case entity.AdvancedAIKind:
		return that.advanced
	default:
		return NewHumanPlayer(that.input)
	}
}

// Seat builds the referee seat for player.
func (that *ProviderFactory) Seat(player *entity.Player) tictactoe.Seat {
	return tictactoe.Seat{Player: player, Provider: that.For(player)}
}
