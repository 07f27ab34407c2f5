package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type filePlayer struct {
	path string
}

// NewFilePlayerRepository keeps the whole roster in one JSON document at path.
func NewFilePlayerRepository(path string) PlayerRepository {
	return &filePlayer{
		path: path,
	}
}

func (that *filePlayer) LoadAll(ctx context.Context) ([]*entity.Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(that.path)
	if errors.Is(err, fs.ErrNotExist) {
		// first run, nothing saved yet
		return []*entity.Player{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read players file: %w", err)
	}

	var players []*entity.Player
	if err = json.Unmarshal(data, &players); err != nil {
		return nil, fmt.Errorf("failed to unmarshal players: %w", err)
	}

	return players, nil
}

func (that *filePlayer) SaveAll(ctx context.Context, players []*entity.Player) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if players == nil {
		players = []*entity.Player{}
	}

	data, err := json.MarshalIndent(players, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal players: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(that.path), filepath.Base(that.path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create players file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write players file: %w", err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close players file: %w", err)
	}

	if err = os.Rename(tmp.Name(), that.path); err != nil {
		return fmt.Errorf("failed to replace players file: %w", err)
	}

	return nil
}
