package service

import (
	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// Randomizer is satisfied by *math/rand/v2.Rand.
type Randomizer interface {
	IntN(n int) int
}

type BotService interface {
	ChooseSquare(board entity.Board) (int, error)
}

type botService struct {
	rules  entity.Rules
	random Randomizer
}

func NewBotService(rules entity.Rules, random Randomizer) BotService {
	return &botService{
		rules:  rules,
		random: random,
	}
}

// ChooseSquare - picks the computer's next position: win, block, center, then
// a uniformly random free square. Corners get no preference.
func (that *botService) ChooseSquare(board entity.Board) (int, error) {
	if position, ok := that.findAtRiskSquare(board, entity.ComputerMark); ok {
		return position, nil
	}

	if position, ok := that.findAtRiskSquare(board, entity.HumanMark); ok {
		return position, nil
	}

	if board.At(entity.CenterPosition) == entity.EmptyCell {
		return entity.CenterPosition, nil
	}

	availableCells := board.EmptyPositions()
	if len(availableCells) == 0 {
		return 0, apperror.ErrNoAvailableMoves
	}

	return availableCells[that.random.IntN(len(availableCells))], nil
}

// findAtRiskSquare - returns the free square of the first line holding two
// marks and one empty cell.
func (that *botService) findAtRiskSquare(board entity.Board, mark entity.Cell) (int, bool) {
	for _, line := range that.rules.Lines {
		marked, empty := 0, 0
		free := 0

		for _, position := range line {
			switch board.At(position) {
			case mark:
				marked++
			case entity.EmptyCell:
				empty++
				free = position
			}
		}

		if marked == 2 && empty == 1 {
			return free, true
		}
	}

	return 0, false
}
