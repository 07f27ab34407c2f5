package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const MaxPlayerCount = 100

type playerRepo interface {
	LoadAll(ctx context.Context) ([]*entity.Player, error)
	SaveAll(ctx context.Context, players []*entity.Player) error
}

// PlayerService keeps the roster of players sorted by username.
type PlayerService struct {
	logger     *slog.Logger
	playerRepo playerRepo

	players []*entity.Player
}

func NewPlayerService(logger *slog.Logger, playerRepo playerRepo) *PlayerService {
	return &PlayerService{
		logger:     logger.With("component", "roster"),
		playerRepo: playerRepo,
	}
}

// Load replaces the roster with the stored players.
func (that *PlayerService) Load(ctx context.Context) error {
	players, err := that.playerRepo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load players: %w", err)
	}

	slices.SortFunc(players, byUsername)
	that.players = players

	that.logger.InfoContext(ctx, "players loaded", "count", len(players))

	return nil
}

func (that *PlayerService) Save(ctx context.Context) error {
	if err := that.playerRepo.SaveAll(ctx, that.players); err != nil {
		return fmt.Errorf("failed to save players: %w", err)
	}

	that.logger.InfoContext(ctx, "players saved", "count", len(that.players))

	return nil
}

func (that *PlayerService) AddPlayer(username, familyName, givenName string, kind entity.PlayerKind) error {
	index, found := that.find(username)
	if found {
		return fmt.Errorf("%w: %s", apperror.ErrUsernameTaken, username)
	}

	if len(that.players) >= MaxPlayerCount {
		return apperror.ErrRosterFull
	}

	that.players = slices.Insert(that.players, index, entity.NewPlayer(username, familyName, givenName, kind))

	return nil
}

func (that *PlayerService) RemovePlayer(username string) error {
	index, found := that.find(username)
	if !found {
		return fmt.Errorf("%w: %s", apperror.ErrPlayerNotFound, username)
	}

	that.players = slices.Delete(that.players, index, index+1)

	return nil
}

func (that *PlayerService) RemoveAll() {
	that.players = nil
}

func (that *PlayerService) EditPlayer(username, familyName, givenName string) error {
	index, found := that.find(username)
	if !found {
		return fmt.Errorf("%w: %s", apperror.ErrPlayerNotFound, username)
	}

	that.players[index].FamilyName = familyName
	that.players[index].GivenName = givenName

	return nil
}

func (that *PlayerService) ResetStats(username string) error {
	index, found := that.find(username)
	if !found {
		return fmt.Errorf("%w: %s", apperror.ErrPlayerNotFound, username)
	}

	that.players[index].ResetStats()

	return nil
}

func (that *PlayerService) ResetAllStats() {
	for _, player := range that.players {
		player.ResetStats()
	}
}

// GetPlayer returns a copy of the player's record.
func (that *PlayerService) GetPlayer(username string) (*entity.Player, error) {
	index, found := that.find(username)
	if !found {
		return nil, fmt.Errorf("%w: %s", apperror.ErrPlayerNotFound, username)
	}

	return that.players[index].Copy(), nil
}

// SetPlayer stores a copy of player over the record with the same username.
func (that *PlayerService) SetPlayer(player *entity.Player) error {
	index, found := that.find(player.Username)
	if !found {
		return fmt.Errorf("%w: %s", apperror.ErrPlayerNotFound, player.Username)
	}

	that.players[index] = player.Copy()

	return nil
}

// Players returns copies of every record in username order.
func (that *PlayerService) Players() []*entity.Player {
	players := make([]*entity.Player, 0, len(that.players))
	for _, player := range that.players {
		players = append(players, player.Copy())
	}

	return players
}

// Rankings returns copies of the best ranked players, at most limit of them.
func (that *PlayerService) Rankings(limit int) []*entity.Player {
	ranked := that.Players()
	slices.SortStableFunc(ranked, func(a, b *entity.Player) int {
		switch {
		case a.RanksAbove(b):
			return -1
		case b.RanksAbove(a):
			return 1
		default:
			return 0
		}
	})

	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked
}

func (that *PlayerService) find(username string) (int, bool) {
	return slices.BinarySearchFunc(that.players, username, func(player *entity.Player, target string) int {
		return strings.Compare(player.Username, target)
	})
}

func byUsername(a, b *entity.Player) int {
	return strings.Compare(a.Username, b.Username)
}
