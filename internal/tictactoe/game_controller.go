package tictactoe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

var (
	ErrCellOccupied = apperror.ErrCellOccupied
	ErrOutOfBounds  = apperror.ErrOutOfBounds
)

// MoveProvider picks the next move for a player. It receives a copy of the board.
type MoveProvider interface {
	ChooseMove(board entity.Board) (entity.Move, error)
}

// Seat pairs a player record with whatever chooses that player's moves.
type Seat struct {
	Player   *entity.Player
	Provider MoveProvider
}

type Result struct {
	GameID string
	State  entity.GameState
	Board  entity.Board
	Moves  int

	First  *entity.Player
	Second *entity.Player
}

type GameController struct {
	logger *slog.Logger
	out    io.Writer
}

func NewGameController(logger *slog.Logger, out io.Writer) *GameController {
	return &GameController{
		logger: logger.With("component", "referee"),
		out:    out,
	}
}

// PlayGame runs one game to completion. The first seat plays O and moves first. Both player
// records are updated with the result before it is returned.
func (that *GameController) PlayGame(ctx context.Context, first, second Seat) (*Result, error) {
	gameID := uuid.NewString()
	log := that.logger.With("game_id", gameID)

	log.InfoContext(ctx, "game started", "first", first.Player.Username, "second", second.Player.Username)

	var board entity.Board
	that.printf("%s", board)

	state := entity.StateInProgress
	current, next := first, second
	mark := entity.MarkO
	moves := 0

	for !state.IsFinished() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("game %s interrupted: %w", gameID, err)
		}

		move, err := that.requestMove(current, board)
		if err != nil {
			return nil, fmt.Errorf("failed to get move from %s: %w", current.Player.Username, err)
		}

		if err = MakeTurn(&board, mark, move); err != nil {
			return nil, fmt.Errorf("failed make turn: %w", err)
		}
		moves++

		log.DebugContext(ctx, "move applied", "player", current.Player.Username, "row", move.Row, "column", move.Column)

		current, next = next, current
		mark = mark.Opponent()

		that.printf("%s", board)
		state = Evaluate(board)
	}

	recordResult(state, first.Player, second.Player)

	winner := state.WinnerMark()
	switch winner {
	case entity.MarkO:
		that.printf("Game over. %s won!\n", first.Player.GivenName)
	case entity.MarkX:
		that.printf("Game over. %s won!\n", second.Player.GivenName)
	default:
		that.printf("Game over. It was a draw!\n")
	}

	log.InfoContext(ctx, "game finished", "state", state, "winner", winner, "moves", moves)

	return &Result{
		GameID: gameID,
		State:  state,
		Board:  board,
		Moves:  moves,
		First:  first.Player,
		Second: second.Player,
	}, nil
}

// requestMove asks the seat for a move until it names an empty cell inside the grid.
func (that *GameController) requestMove(seat Seat, board entity.Board) (entity.Move, error) {
	for {
		that.printf("%s's move:\n", seat.Player.GivenName)

		move, err := seat.Provider.ChooseMove(board.Clone())
		if errors.Is(err, apperror.ErrMalformedMove) {
			that.printf("Invalid move. You must enter a row and a column.\n")
			continue
		}
		if err != nil {
			return entity.Move{}, err
		}

		switch err = ValidateMove(board, move); {
		case errors.Is(err, ErrOutOfBounds):
			that.printf("Invalid move. You must place at a cell within {0,1,2} {0,1,2}.\n")
		case errors.Is(err, ErrCellOccupied):
			that.printf("Invalid move. The cell has been occupied.\n")
		default:
			return move, nil
		}
	}
}

// MakeTurn validates move and places mark on board.
func MakeTurn(board *entity.Board, mark entity.Mark, move entity.Move) error {
	if state := Evaluate(*board); state.IsFinished() {
		return fmt.Errorf("%w: %s", apperror.ErrGameFinished, state)
	}

	if err := ValidateMove(*board, move); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	board.Place(move, mark)

	return nil
}

func recordResult(state entity.GameState, first, second *entity.Player) {
	switch state {
	case entity.StatePlayerOWon:
		first.RecordWin()
	case entity.StatePlayerXWon:
		second.RecordWin()
	case entity.StateDraw:
		first.RecordDraw()
		second.RecordDraw()
	}

	first.RecordPlayed()
	second.RecordPlayed()
}

func (that *GameController) printf(format string, args ...any) {
	fmt.Fprintf(that.out, format, args...)
}
