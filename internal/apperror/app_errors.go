package apperror

import "errors"

var (
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrOutOfBounds      = errors.New("cell is out of bounds")
	ErrMalformedMove    = errors.New("move must be a row and a column")
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrGameFinished     = errors.New("game is already finished")

	ErrInvalidCommand    = errors.New("invalid command")
	ErrNumberOfArguments = errors.New("incorrect number of arguments supplied to command")

	ErrPlayerNotFound = errors.New("player does not exist")
	ErrUsernameTaken  = errors.New("username has been used already")
	ErrRosterFull     = errors.New("player roster is full")
)
