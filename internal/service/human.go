package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// LineReader is a source of console input, one line per call.
type LineReader interface {
	ReadLine() (string, error)
}

// HumanPlayer reads "<row> <column>" from its input for every move.
type HumanPlayer struct {
	input LineReader
}

func NewHumanPlayer(input LineReader) *HumanPlayer {
	return &HumanPlayer{input: input}
}

func (that *HumanPlayer) ChooseMove(_ entity.Board) (entity.Move, error) {
	line, err := that.input.ReadLine()
	if err != nil {
		return entity.Move{}, fmt.Errorf("failed to read move: %w", err)
	}

	fields := strings.Fields(line)
	if len(fields) < 2 {
		return entity.Move{}, apperror.ErrMalformedMove
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return entity.Move{}, fmt.Errorf("%w: row %q", apperror.ErrMalformedMove, fields[0])
	}

	column, err := strconv.Atoi(fields[1])
	if err != nil {
		return entity.Move{}, fmt.Errorf("%w: column %q", apperror.ErrMalformedMove, fields[1])
	}

	return entity.Move{Row: row, Column: column}, nil
}
