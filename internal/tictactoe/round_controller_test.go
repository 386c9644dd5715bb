package tictactoe

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
	"github.com/rocketscienceinc/tictactoe-console/testing/suite"
)

var errTerminalGone = errors.New("terminal gone")

type mockHuman struct {
	mock.Mock
}

func (that *mockHuman) ChooseSquare(ctx context.Context, board entity.Board) (int, error) {
	args := that.Called(ctx, board)
	if choose, ok := args.Get(0).(func(context.Context, entity.Board) int); ok {
		return choose(ctx, board), args.Error(1)
	}
	return args.Int(0), args.Error(1)
}

type mockComputer struct {
	mock.Mock
}

func (that *mockComputer) ChooseSquare(board entity.Board) (int, error) {
	args := that.Called(board)
	return args.Int(0), args.Error(1)
}

type mockView struct {
	mock.Mock
}

func (that *mockView) ShowBoard(board entity.Board, score *entity.Score) {
	that.Called(board, score)
}

func TestRoundController_Play(t *testing.T) {
	t.Run("Human wins the top row", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: scripted moves X(1) O(5) X(2) O(4) X(3)
		human := &mockHuman{}
		human.On("ChooseSquare", mock.Anything, mock.Anything).Return(1, nil).Once()
		human.On("ChooseSquare", mock.Anything, mock.Anything).Return(2, nil).Once()
		human.On("ChooseSquare", mock.Anything, mock.Anything).Return(3, nil).Once()

		computer := &mockComputer{}
		computer.On("ChooseSquare", mock.Anything).Return(5, nil).Once()
		computer.On("ChooseSquare", mock.Anything).Return(4, nil).Once()

		view := &mockView{}
		view.On("ShowBoard", mock.Anything, &entity.Score{Human: 1}).Return()

		controller := NewRoundController(st.Logger, st.Rules, human, computer, view)

		// When: the human starts the round
		result, err := controller.Play(ctx, entity.Human, entity.Score{Human: 1})

		// Then: the human wins and the board was shown before and after every move
		require.NoError(t, err)
		assert.Equal(t, entity.OutcomeHumanWin, result.Outcome)
		assert.Equal(t, entity.Board{
			entity.HumanMark, entity.HumanMark, entity.HumanMark,
			entity.ComputerMark, entity.ComputerMark, entity.EmptyCell,
			entity.EmptyCell, entity.EmptyCell, entity.EmptyCell,
		}, result.Board)
		human.AssertExpectations(t)
		computer.AssertExpectations(t)
		view.AssertNumberOfCalls(t, "ShowBoard", 6)
	})

	t.Run("Computer opens in the center", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: the real bot and a human that always takes the lowest free square
		human := &mockHuman{}
		human.On("ChooseSquare", mock.Anything, mock.Anything).Return(func(_ context.Context, board entity.Board) int {
			return board.EmptyPositions()[0]
		}, nil)

		view := &mockView{}
		view.On("ShowBoard", mock.Anything, mock.Anything).Return()

		bot := service.NewBotService(st.Rules, st.Random)
		controller := NewRoundController(st.Logger, st.Rules, human, bot, view)

		// When: the computer starts
		result, err := controller.Play(ctx, entity.Computer, entity.Score{})

		// Then: the round reaches an outcome and the bot's first mark is the center
		require.NoError(t, err)
		assert.NotEqual(t, entity.OutcomeNone, result.Outcome)

		first := view.Calls[1].Arguments.Get(0).(entity.Board)
		assert.Equal(t, entity.ComputerMark, first.At(entity.CenterPosition))
	})

	t.Run("Human input error stops the round", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: the console is gone
		human := &mockHuman{}
		human.On("ChooseSquare", mock.Anything, mock.Anything).Return(0, apperror.ErrInputClosed).Once()

		view := &mockView{}
		view.On("ShowBoard", mock.Anything, mock.Anything).Return()

		controller := NewRoundController(st.Logger, st.Rules, human, &mockComputer{}, view)

		// When: the human should move first
		result, err := controller.Play(ctx, entity.Human, entity.Score{})

		// Then: the error is wrapped and returned
		require.ErrorIs(t, err, apperror.ErrInputClosed)
		assert.Equal(t, entity.OutcomeNone, result.Outcome)
	})

	t.Run("Illegal move from a collaborator is rejected", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: a computer collaborator answering with an occupied square
		human := &mockHuman{}
		human.On("ChooseSquare", mock.Anything, mock.Anything).Return(5, nil).Once()

		computer := &mockComputer{}
		computer.On("ChooseSquare", mock.Anything).Return(5, nil).Once()

		view := &mockView{}
		view.On("ShowBoard", mock.Anything, mock.Anything).Return()

		controller := NewRoundController(st.Logger, st.Rules, human, computer, view)

		// When: the round is played
		_, err := controller.Play(ctx, entity.Human, entity.Score{})

		// Then: the occupied cell is reported
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
	})

	t.Run("Bot error is propagated", func(t *testing.T) {
		ctx, st := suite.New(t)

		computer := &mockComputer{}
		computer.On("ChooseSquare", mock.Anything).Return(0, errTerminalGone).Once()

		view := &mockView{}
		view.On("ShowBoard", mock.Anything, mock.Anything).Return()

		controller := NewRoundController(st.Logger, st.Rules, &mockHuman{}, computer, view)

		_, err := controller.Play(ctx, entity.Computer, entity.Score{})

		require.ErrorIs(t, err, errTerminalGone)
	})
}
