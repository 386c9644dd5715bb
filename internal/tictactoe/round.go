package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type Status uint8

const (
	StatusAwaitingMove Status = iota
	StatusRoundOver
)

// State is either AwaitingMove(Current) or RoundOver(Outcome).
type State struct {
	Status  Status
	Current entity.Player
	Outcome entity.Outcome
}

func (that State) IsOver() bool {
	return that.Status == StatusRoundOver
}

// Round is a single play of the board to a win or tie.
type Round struct {
	rules   entity.Rules
	board   entity.Board
	current entity.Player
}

func NewRound(rules entity.Rules, first entity.Player) *Round {
	return &Round{
		rules:   rules,
		board:   entity.NewBoard(),
		current: first,
	}
}

// Board - returns a copy of the board.
func (that *Round) Board() entity.Board {
	return that.board
}

// State - reports the current state. The outcome is recomputed from the board.
func (that *Round) State() State {
	if outcome, over := that.rules.Outcome(that.board); over {
		return State{Status: StatusRoundOver, Current: that.current, Outcome: outcome}
	}

	return State{Status: StatusAwaitingMove, Current: that.current}
}

// Apply - places the current player's mark at position and advances the round.
func (that *Round) Apply(position int) error {
	if err := that.validateMove(position); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	that.board.Place(position, that.current.Mark())

	if !that.rules.IsTerminal(that.board) {
		that.current = that.current.Alternate()
	}

	return nil
}

// validateMove - checks the move before it touches the board.
func (that *Round) validateMove(position int) error {
	if that.rules.IsTerminal(that.board) {
		return apperror.ErrRoundOver
	}

	if !entity.IsValidPosition(position) {
		return apperror.ErrInvalidCell
	}

	if that.board.At(position) != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	return nil
}
