package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

func playMoves(t *testing.T, round *Round, positions ...int) {
	t.Helper()

	for i, position := range positions {
		require.NoError(t, round.Apply(position), "move %d at %d", i, position)
	}
}

func TestNewRound(t *testing.T) {
	// Given: a new round with the computer first
	round := NewRound(entity.DefaultRules(), entity.Computer)

	// Then: the board is empty and the computer is awaited
	assert.Equal(t, entity.NewBoard(), round.Board())
	assert.Equal(t, State{Status: StatusAwaitingMove, Current: entity.Computer}, round.State())
}

func TestRound_Apply(t *testing.T) {
	t.Run("Marks the square and alternates players", func(t *testing.T) {
		// Given: a round with the human first
		round := NewRound(entity.DefaultRules(), entity.Human)

		// When: the human takes the center
		err := round.Apply(5)

		// Then: the center holds X and the computer is next
		require.NoError(t, err)
		board := round.Board()
		assert.Equal(t, entity.HumanMark, board.At(5))
		assert.Equal(t, entity.Computer, round.State().Current)
		assert.False(t, round.State().IsOver())
	})

	t.Run("Human completes the top row", func(t *testing.T) {
		// Given: a round with the human first
		round := NewRound(entity.DefaultRules(), entity.Human)

		// When: X(1) O(5) X(2) O(4) X(3)
		playMoves(t, round, 1, 5, 2, 4, 3)

		// Then: the round is over and the human won
		state := round.State()
		assert.True(t, state.IsOver())
		assert.Equal(t, entity.OutcomeHumanWin, state.Outcome)
		assert.Equal(t, entity.Human, state.Current)
	})

	t.Run("Full board without a line is a tie", func(t *testing.T) {
		// Given: a round with the human first
		round := NewRound(entity.DefaultRules(), entity.Human)

		// When: the moves fill X O X / X O O / O X X
		playMoves(t, round, 1, 2, 3, 5, 4, 6, 8, 7, 9)

		// Then: the round is a tie
		expected := entity.Board{
			entity.HumanMark, entity.ComputerMark, entity.HumanMark,
			entity.HumanMark, entity.ComputerMark, entity.ComputerMark,
			entity.ComputerMark, entity.HumanMark, entity.HumanMark,
		}
		assert.Equal(t, expected, round.Board())
		assert.Equal(t, State{Status: StatusRoundOver, Current: entity.Human, Outcome: entity.OutcomeTie}, round.State())
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: the human took position 1
		round := NewRound(entity.DefaultRules(), entity.Human)
		playMoves(t, round, 1)

		// When: the computer tries the same square
		err := round.Apply(1)

		// Then: ErrCellOccupied is returned and the turn is unchanged
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, entity.Computer, round.State().Current)
		assert.Equal(t, []int{2, 3, 4, 5, 6, 7, 8, 9}, boardEmpty(round))
	})

	t.Run("Invalid Cell", func(t *testing.T) {
		round := NewRound(entity.DefaultRules(), entity.Human)

		assert.ErrorIs(t, round.Apply(0), apperror.ErrInvalidCell)
		assert.ErrorIs(t, round.Apply(10), apperror.ErrInvalidCell)
		assert.Equal(t, entity.NewBoard(), round.Board())
	})

	t.Run("Move After Round Over", func(t *testing.T) {
		// Given: the computer already won the left column
		round := NewRound(entity.DefaultRules(), entity.Computer)
		playMoves(t, round, 1, 2, 4, 3, 7)

		// When: the human tries to keep playing
		err := round.Apply(9)

		// Then: ErrRoundOver is returned
		require.ErrorIs(t, err, apperror.ErrRoundOver)
		assert.Equal(t, entity.OutcomeComputerWin, round.State().Outcome)
	})
}

func boardEmpty(round *Round) []int {
	board := round.Board()
	return board.EmptyPositions()
}
