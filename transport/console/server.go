package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

// LineReader is the console input. It matches service.LineReader so the same source feeds
// both the command loop and human players.
type LineReader interface {
	ReadLine() (string, error)
}

type uRoster interface {
	Save(ctx context.Context) error

	AddPlayer(username, familyName, givenName string, kind entity.PlayerKind) error
	RemovePlayer(username string) error
	RemoveAll()
	EditPlayer(username, familyName, givenName string) error
	ResetStats(username string) error
	ResetAllStats()
	GetPlayer(username string) (*entity.Player, error)
	SetPlayer(player *entity.Player) error
	Players() []*entity.Player
	Rankings(limit int) []*entity.Player
}

type uReferee interface {
	PlayGame(ctx context.Context, first, second tictactoe.Seat) (*tictactoe.Result, error)
}

type seatFactory interface {
	Seat(player *entity.Player) tictactoe.Seat
}

// errExit stops the command loop after a successful exit command.
var errExit = errors.New("exit requested")

type invalidCommandError struct {
	name string
}

func (that *invalidCommandError) Error() string {
	return fmt.Sprintf("%s: '%s'", apperror.ErrInvalidCommand, that.name)
}

func (that *invalidCommandError) Unwrap() error {
	return apperror.ErrInvalidCommand
}

type handler func(ctx context.Context, args []string) error

type Server struct {
	logger *slog.Logger
	input  LineReader
	out    io.Writer

	roster  uRoster
	referee uReferee
	seats   seatFactory

	rankingsMax int

	handlers map[string]handler
}

func New(logger *slog.Logger, input LineReader, out io.Writer, roster uRoster, referee uReferee, seats seatFactory, rankingsMax int) *Server {
	server := &Server{
		logger:      logger.With("component", "console"),
		input:       input,
		out:         out,
		roster:      roster,
		referee:     referee,
		seats:       seats,
		rankingsMax: rankingsMax,
	}

	server.handlers = map[string]handler{
		"exit":                server.handleExit,
		"addplayer":           server.addPlayerHandler(entity.HumanKind),
		"addaiplayer":         server.addPlayerHandler(entity.AIKind),
		"addadvancedaiplayer": server.addPlayerHandler(entity.AdvancedAIKind),
		"removeplayer":        server.handleRemovePlayer,
		"editplayer":          server.handleEditPlayer,
		"resetstats":          server.handleResetStats,
		"displayplayer":       server.handleDisplayPlayer,
		"rankings":            server.handleRankings,
		"playgame":            server.handlePlayGame,
	}

	return server
}

// Run reads commands until exit, end of input or cancellation. The roster is saved in every
// one of those cases.
func (that *Server) Run(ctx context.Context) error {
	that.println("Welcome to Tic Tac Toe!")
	that.println()

	for {
		that.printf(">")

		line, err := that.input.ReadLine()
		if err != nil {
			if isShutdown(err) {
				that.logger.InfoContext(ctx, "input closed", "reason", err)
				return that.save(ctx)
			}

			return fmt.Errorf("failed to read command: %w", err)
		}

		err = that.execute(ctx, line)
		switch {
		case err == nil:
		case errors.Is(err, errExit):
			return nil
		case isShutdown(err):
			that.logger.InfoContext(ctx, "game aborted", "reason", err)
			return that.save(ctx)
		default:
			if !that.report(err) {
				return err
			}
		}

		that.println()
	}
}

func (that *Server) execute(ctx context.Context, line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	name, rest, _ := strings.Cut(line, " ")

	handle, ok := that.handlers[name]
	if !ok {
		return &invalidCommandError{name: name}
	}

	that.logger.DebugContext(ctx, "executing command", "command", name)

	return handle(ctx, splitArgs(rest))
}

// report prints the user-facing message for recoverable command errors.
func (that *Server) report(err error) bool {
	switch {
	case errors.Is(err, apperror.ErrInvalidCommand):
		var invalid *invalidCommandError
		if errors.As(err, &invalid) {
			that.printf("'%s' is not a valid command.\n", invalid.name)
		}
	case errors.Is(err, apperror.ErrNumberOfArguments):
		that.println("Incorrect number of arguments supplied to command.")
	case errors.Is(err, apperror.ErrUsernameTaken):
		that.println("The username has been used already.")
	case errors.Is(err, apperror.ErrPlayerNotFound):
		that.println("The player does not exist.")
	case errors.Is(err, apperror.ErrRosterFull):
		that.println("The player roster is full.")
	default:
		return false
	}

	return true
}

func (that *Server) save(ctx context.Context) error {
	// The context may already be cancelled by an interrupt; saving must still happen.
	if err := that.roster.Save(context.WithoutCancel(ctx)); err != nil {
		return fmt.Errorf("failed to save roster on exit: %w", err)
	}

	return nil
}

// confirm asks a yes/no question and reports whether the answer was yes.
func (that *Server) confirm(question string) (bool, error) {
	that.println(question + " (y/n)")

	answer, err := that.input.ReadLine()
	if err != nil {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}

	return strings.EqualFold(strings.TrimSpace(answer), "y"), nil
}

func (that *Server) printf(format string, args ...any) {
	fmt.Fprintf(that.out, format, args...)
}

func (that *Server) println(args ...any) {
	fmt.Fprintln(that.out, args...)
}

// splitArgs splits a comma separated argument list. An empty list yields no arguments.
func splitArgs(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	args := strings.Split(raw, ",")
	for i := range args {
		args[i] = strings.TrimSpace(args[i])
	}

	return args
}

func isShutdown(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, context.Canceled)
}
