package apperror

import "errors"

var (
	ErrRoundOver        = errors.New("round is already over")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrInvalidCell      = errors.New("invalid cell position")
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrInputClosed      = errors.New("input is closed")
)
