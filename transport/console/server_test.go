package console

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

type memPlayerRepo struct {
	saved []*entity.Player
	saves int
}

func (that *memPlayerRepo) LoadAll(_ context.Context) ([]*entity.Player, error) {
	return that.saved, nil
}

func (that *memPlayerRepo) SaveAll(_ context.Context, players []*entity.Player) error {
	that.saved = nil
	for _, player := range players {
		that.saved = append(that.saved, player.Copy())
	}
	that.saves++

	return nil
}

type fixture struct {
	server *Server
	roster *service.PlayerService
	repo   *memPlayerRepo
	out    *bytes.Buffer
}

func newFixture(t *testing.T, script string) *fixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	out := &bytes.Buffer{}
	repo := &memPlayerRepo{}
	input := NewInput(context.Background(), strings.NewReader(script))

	roster := service.NewPlayerService(logger, repo)
	require.NoError(t, roster.Load(context.Background()))

	seats := service.NewProviderFactory(logger, input, minimax.New(minimax.DefaultOptions()))
	referee := tictactoe.NewGameController(logger, out)

	return &fixture{
		server: New(logger, input, out, roster, referee, seats, 10),
		roster: roster,
		repo:   repo,
		out:    out,
	}
}

func (that *fixture) run(t *testing.T) string {
	t.Helper()

	require.NoError(t, that.server.Run(context.Background()))

	return that.out.String()
}

func TestServer_Roster(t *testing.T) {
	t.Run("Adds players and displays them in username order", func(t *testing.T) {
		// Given: two players added out of order
		f := newFixture(t, "addplayer bob,Smith,Bob\naddaiplayer ann,Lee,Ann\ndisplayplayer\nexit\n")

		// When: the session runs to exit
		out := f.run(t)

		// Then: they are listed alphabetically and the roster is saved once
		assert.True(t, strings.HasPrefix(out, "Welcome to Tic Tac Toe!\n\n>"))
		assert.Contains(t, out, "ann,Lee,Ann,0 games,0 wins,0 draws\nbob,Smith,Bob,0 games,0 wins,0 draws\n")
		assert.Equal(t, 1, f.repo.saves)
		require.Len(t, f.repo.saved, 2)
		assert.Equal(t, entity.AIKind, f.repo.saved[0].Kind)
		assert.Equal(t, entity.HumanKind, f.repo.saved[1].Kind)
	})

	t.Run("Displays a single player", func(t *testing.T) {
		f := newFixture(t, "addplayer bob,Smith,Bob\neditplayer bob,Jones,Robert\ndisplayplayer bob\n")

		out := f.run(t)

		assert.Contains(t, out, "bob,Jones,Robert,0 games,0 wins,0 draws\n")
	})

	t.Run("Ignores extra arguments", func(t *testing.T) {
		// Given: commands carrying more arguments than they use
		f := newFixture(t, "addplayer bob,Smith,Bob,extra\ndisplayplayer bob,ignored\nrankings 5\n")

		// When: the session runs
		out := f.run(t)

		// Then: every command runs on the arguments it needs
		assert.NotContains(t, out, "Incorrect number of arguments")
		assert.Contains(t, out, "bob,Smith,Bob,0 games,0 wins,0 draws\n")
		assert.Contains(t, out, " WIN  | DRAW | GAME | USERNAME\n   0% |   0% |  0   | bob\n")
	})

	t.Run("Rejects a taken username", func(t *testing.T) {
		f := newFixture(t, "addplayer bob,Smith,Bob\naddadvancedaiplayer bob,Bot,Deep\n")

		out := f.run(t)

		assert.Contains(t, out, "The username has been used already.\n")
		assert.Len(t, f.roster.Players(), 1)
	})

	t.Run("Reports unknown players", func(t *testing.T) {
		f := newFixture(t, "removeplayer ghost\neditplayer ghost,A,B\nresetstats ghost\ndisplayplayer ghost\n")

		out := f.run(t)

		assert.Equal(t, 4, strings.Count(out, "The player does not exist.\n"))
	})

	t.Run("Remove all asks for confirmation", func(t *testing.T) {
		// Given: two players, a declined and then an accepted remove-all
		f := newFixture(t, "addplayer a,A,A\naddplayer b,B,B\nremoveplayer\nn\ndisplayplayer\nremoveplayer\ny\n")

		// When: the session runs to end of input
		out := f.run(t)

		// Then: the question is asked twice and only the second answer empties the roster
		assert.Equal(t, 2, strings.Count(out, "Are you sure you want to remove all players? (y/n)\n"))
		assert.Contains(t, out, "a,A,A,0 games,0 wins,0 draws\nb,B,B,0 games,0 wins,0 draws\n")
		assert.Empty(t, f.roster.Players())
		assert.Equal(t, 1, f.repo.saves)
	})

	t.Run("Reset all asks for confirmation", func(t *testing.T) {
		f := newFixture(t, "addaiplayer a,A,A\naddadvancedaiplayer b,B,B\nplaygame a,b\nresetstats\ny\n")

		out := f.run(t)

		assert.Contains(t, out, "Are you sure you want to reset all player statistics? (y/n)\n")
		for _, player := range f.roster.Players() {
			assert.Zero(t, player.GamesPlayed)
		}
	})
}

func TestServer_Errors(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   string
	}{
		{name: "Unknown command", script: "jump\n", want: "'jump' is not a valid command.\n"},
		{name: "Too few arguments", script: "addplayer bob,Smith\n", want: "Incorrect number of arguments supplied to command.\n"},
		{name: "Game with one player", script: "playgame a\n", want: "Incorrect number of arguments supplied to command.\n"},
		{name: "Edit without names", script: "editplayer a\n", want: "Incorrect number of arguments supplied to command.\n"},
		{name: "Game with missing player", script: "addplayer a,A,A\nplaygame a,ghost\n", want: "Player does not exist.\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.script)

			out := f.run(t)

			assert.Contains(t, out, tt.want)
			assert.Equal(t, 1, f.repo.saves)
		})
	}
}

func TestServer_PlayGame(t *testing.T) {
	t.Run("Advanced AI beats the naive AI and tops the rankings", func(t *testing.T) {
		// Given: a naive AI moving first against an advanced AI
		f := newFixture(t, "addaiplayer naive,Bot,Naive\naddadvancedaiplayer deep,Bot,Deep\nplaygame naive,deep\nrankings\nexit\n")

		// When: they play
		out := f.run(t)

		// Then: the advanced AI wins and both records are updated
		assert.Contains(t, out, "Game over. Deep won!\n")
		assert.Contains(t, out, " WIN  | DRAW | GAME | USERNAME\n 100% |   0% |  1   | deep\n   0% |   0% |  1   | naive\n")

		deep, err := f.roster.GetPlayer("deep")
		require.NoError(t, err)
		assert.Equal(t, 1, deep.GamesWon)
		assert.Equal(t, 1, deep.GamesPlayed)
	})

	t.Run("Humans share the console input", func(t *testing.T) {
		// Given: two humans, with malformed, out of bounds and occupied moves along the way
		script := strings.Join([]string{
			"addplayer alice,Doe,Alice",
			"addplayer bob,Roe,Bob",
			"playgame alice,bob",
			"0 0",
			"abc",
			"5 5",
			"0 0",
			"1 0",
			"0 1",
			"1 1",
			"0 2",
			"displayplayer",
		}, "\n") + "\n"
		f := newFixture(t, script)

		// When: the game is played
		out := f.run(t)

		// Then: every invalid move is reported and alice wins with the top row
		assert.Contains(t, out, "Alice's move:\n")
		assert.Contains(t, out, "Invalid move. You must enter a row and a column.\n")
		assert.Contains(t, out, "Invalid move. You must place at a cell within {0,1,2} {0,1,2}.\n")
		assert.Contains(t, out, "Invalid move. The cell has been occupied.\n")
		assert.Contains(t, out, "Game over. Alice won!\n")
		assert.Contains(t, out, "alice,Doe,Alice,1 games,1 wins,0 draws\nbob,Roe,Bob,1 games,0 wins,0 draws\n")
	})

	t.Run("End of input during a game saves the unchanged roster", func(t *testing.T) {
		f := newFixture(t, "addplayer alice,Doe,Alice\naddplayer bob,Roe,Bob\nplaygame alice,bob\n0 0\n")

		f.run(t)

		assert.Equal(t, 1, f.repo.saves)
		for _, player := range f.repo.saved {
			assert.Zero(t, player.GamesPlayed)
		}
	})
}
