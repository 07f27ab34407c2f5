package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type sqlitePlayer struct {
	db *sql.DB
}

// NewSQLitePlayerRepository keeps the roster in the players table created by sqlite.Storage.Init.
func NewSQLitePlayerRepository(db *sql.DB) PlayerRepository {
	return &sqlitePlayer{
		db: db,
	}
}

func (that *sqlitePlayer) LoadAll(ctx context.Context) ([]*entity.Player, error) {
	query := `SELECT username, family_name, given_name, kind, games_played, games_won, games_drawn
		FROM players ORDER BY username`

	rows, err := that.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query players: %w", err)
	}
	defer rows.Close()

	players := []*entity.Player{}
	for rows.Next() {
		var player entity.Player
		if err = rows.Scan(
			&player.Username, &player.FamilyName, &player.GivenName, &player.Kind,
			&player.GamesPlayed, &player.GamesWon, &player.GamesDrawn,
		); err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		players = append(players, &player)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read players: %w", err)
	}

	return players, nil
}

func (that *sqlitePlayer) SaveAll(ctx context.Context, players []*entity.Player) error {
	tx, err := that.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("can't begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint: errcheck // no-op after commit

	if _, err = tx.ExecContext(ctx, `DELETE FROM players`); err != nil {
		return fmt.Errorf("can't clear players: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO players
		(username, family_name, given_name, kind, games_played, games_won, games_drawn)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("can't prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, player := range players {
		if _, err = stmt.ExecContext(ctx,
			player.Username, player.FamilyName, player.GivenName, player.Kind,
			player.GamesPlayed, player.GamesWon, player.GamesDrawn,
		); err != nil {
			return fmt.Errorf("can't insert player %s: %w", player.Username, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("can't commit players: %w", err)
	}

	return nil
}
