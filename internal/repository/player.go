package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const playersIndexKey = "players"

type PlayerRepository interface {
	LoadAll(ctx context.Context) ([]*entity.Player, error)
	SaveAll(ctx context.Context, players []*entity.Player) error
}

type dbPlayer struct {
	client *redis.Client
}

// NewPlayerRepository stores every player as JSON under "player:<username>" and keeps the
// usernames in the "players" set.
func NewPlayerRepository(client *redis.Client) PlayerRepository {
	return &dbPlayer{
		client: client,
	}
}

func playerKey(username string) string {
	return "player:" + username
}

func (that *dbPlayer) LoadAll(ctx context.Context) ([]*entity.Player, error) {
	usernames, err := that.client.SMembers(ctx, playersIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get player index: %w", err)
	}

	if len(usernames) == 0 {
		return []*entity.Player{}, nil
	}

	keys := make([]string, 0, len(usernames))
	for _, username := range usernames {
		keys = append(keys, playerKey(username))
	}

	values, err := that.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}

	players := make([]*entity.Player, 0, len(values))
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			// indexed but missing, skip it
			continue
		}

		var player entity.Player
		if err = json.Unmarshal([]byte(raw), &player); err != nil {
			return nil, fmt.Errorf("failed to unmarshal player %s: %w", usernames[i], err)
		}

		players = append(players, &player)
	}

	return players, nil
}

func (that *dbPlayer) SaveAll(ctx context.Context, players []*entity.Player) error {
	stale, err := that.client.SMembers(ctx, playersIndexKey).Result()
	if err != nil {
		return fmt.Errorf("failed to get player index: %w", err)
	}

	payloads := make(map[string][]byte, len(players))
	for _, player := range players {
		playerJSON, err := json.Marshal(player)
		if err != nil {
			return fmt.Errorf("failed to marshal player: %w", err)
		}
		payloads[player.Username] = playerJSON
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, username := range stale {
			pipe.Del(ctx, playerKey(username))
		}
		pipe.Del(ctx, playersIndexKey)

		for username, playerJSON := range payloads {
			pipe.Set(ctx, playerKey(username), playerJSON, 0)
			pipe.SAdd(ctx, playersIndexKey, username)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save players: %w", err)
	}

	return nil
}
