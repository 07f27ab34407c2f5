package console

import (
	"context"
	"fmt"
	"math"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

func (that *Server) handleExit(ctx context.Context, _ []string) error {
	if err := that.save(ctx); err != nil {
		return err
	}

	that.println()

	return errExit
}

func (that *Server) addPlayerHandler(kind entity.PlayerKind) handler {
	return func(ctx context.Context, args []string) error {
		if len(args) < 3 {
			return apperror.ErrNumberOfArguments
		}

		if err := that.roster.AddPlayer(args[0], args[1], args[2], kind); err != nil {
			return fmt.Errorf("failed to add player: %w", err)
		}

		that.logger.InfoContext(ctx, "player added", "username", args[0], "kind", kind)

		return nil
	}
}

func (that *Server) handleRemovePlayer(ctx context.Context, args []string) error {
	username := optionalUsername(args)

	if username == "" {
		sure, err := that.confirm("Are you sure you want to remove all players?")
		if err != nil || !sure {
			return err
		}

		that.roster.RemoveAll()
		that.logger.InfoContext(ctx, "all players removed")

		return nil
	}

	if err := that.roster.RemovePlayer(username); err != nil {
		return fmt.Errorf("failed to remove player: %w", err)
	}

	that.logger.InfoContext(ctx, "player removed", "username", username)

	return nil
}

func (that *Server) handleEditPlayer(_ context.Context, args []string) error {
	if len(args) < 3 {
		return apperror.ErrNumberOfArguments
	}

	if err := that.roster.EditPlayer(args[0], args[1], args[2]); err != nil {
		return fmt.Errorf("failed to edit player: %w", err)
	}

	return nil
}

func (that *Server) handleResetStats(ctx context.Context, args []string) error {
	username := optionalUsername(args)

	if username == "" {
		sure, err := that.confirm("Are you sure you want to reset all player statistics?")
		if err != nil || !sure {
			return err
		}

		that.roster.ResetAllStats()
		that.logger.InfoContext(ctx, "all statistics reset")

		return nil
	}

	if err := that.roster.ResetStats(username); err != nil {
		return fmt.Errorf("failed to reset statistics: %w", err)
	}

	return nil
}

func (that *Server) handleDisplayPlayer(_ context.Context, args []string) error {
	username := optionalUsername(args)

	if username == "" {
		for _, player := range that.roster.Players() {
			that.println(player)
		}

		return nil
	}

	player, err := that.roster.GetPlayer(username)
	if err != nil {
		return fmt.Errorf("failed to display player: %w", err)
	}

	that.println(player)

	return nil
}

func (that *Server) handleRankings(_ context.Context, _ []string) error {
	that.println(" WIN  | DRAW | GAME | USERNAME")

	for _, player := range that.roster.Rankings(that.rankingsMax) {
		that.printf(" %3d%% | %3d%% | %2d   | %s\n",
			percent(player.WinRatio()), percent(player.DrawRatio()), player.GamesPlayed, player.Username)
	}

	return nil
}

func (that *Server) handlePlayGame(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return apperror.ErrNumberOfArguments
	}

	first, err := that.roster.GetPlayer(args[0])
	if err != nil {
		that.println("Player does not exist.")
		return nil
	}

	second, err := that.roster.GetPlayer(args[1])
	if err != nil {
		that.println("Player does not exist.")
		return nil
	}

	result, err := that.referee.PlayGame(ctx, that.seats.Seat(first), that.seats.Seat(second))
	if err != nil {
		return fmt.Errorf("failed to play game: %w", err)
	}

	for _, player := range []*entity.Player{result.First, result.Second} {
		if err = that.roster.SetPlayer(player); err != nil {
			return fmt.Errorf("failed to record result: %w", err)
		}
	}

	that.logger.InfoContext(ctx, "game recorded", "game_id", result.GameID, "state", result.State)

	return nil
}

// optionalUsername returns the first argument; no argument means every player. Extra
// arguments are ignored like for every other command.
func optionalUsername(args []string) string {
	if len(args) == 0 {
		return ""
	}

	return args[0]
}

func percent(ratio float64) int {
	return int(math.Round(ratio * 100))
}
