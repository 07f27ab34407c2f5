package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameState_IsFinished(t *testing.T) {
	assert.False(t, StateInProgress.IsFinished())
	assert.True(t, StatePlayerOWon.IsFinished())
	assert.True(t, StatePlayerXWon.IsFinished())
	assert.True(t, StateDraw.IsFinished())
}

func TestGameState_WinnerMark(t *testing.T) {
	assert.Equal(t, MarkO, StatePlayerOWon.WinnerMark())
	assert.Equal(t, MarkX, StatePlayerXWon.WinnerMark())
	assert.Equal(t, EmptyCell, StateDraw.WinnerMark())
	assert.Equal(t, EmptyCell, StateInProgress.WinnerMark())
}
