package entity

// GameState is the absolute state of a game as seen by the referee.
type GameState string

const (
	StateInProgress GameState = "in-progress"
	StatePlayerOWon GameState = "player-o-won"
	StatePlayerXWon GameState = "player-x-won"
	StateDraw       GameState = "draw"
)

func (that GameState) IsFinished() bool {
	return that != StateInProgress
}

// WinnerMark returns the mark of the winner, or EmptyCell for a draw or an unfinished game.
func (that GameState) WinnerMark() Mark {
	switch that {
	case StatePlayerOWon:
		return MarkO
	case StatePlayerXWon:
		return MarkX
	default:
		return EmptyCell
	}
}
