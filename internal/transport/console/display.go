package console

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	humanColor    = "#00AFFF"
	computerColor = "#FF5F5F"
)

// Welcome - explains the marks, the numbering and the match length.
func (that *Console) Welcome() {
	that.prompt("Welcome to Tic Tac Toe!")
	that.prompt(fmt.Sprintf("You are '%s'. Computer is '%s'.", entity.HumanMark, entity.ComputerMark))
	that.println("")
	that.prompt("You can choose a square by entering a number from 1 to 9.")
	that.prompt("The squares are numbered as follows:")
	that.showNumberedBoard()
	that.prompt(fmt.Sprintf("First to %d wins the match!", that.rules.GamesToWin))
	that.println("")
}

// NewRound - announces a fresh board.
func (that *Console) NewRound() {
	that.prompt("New game started! Let's play Tic Tac Toe!")
	that.println("")
}

// ShowBoard - renders the 3x3 grid and, when score is not nil, the running score.
func (that *Console) ShowBoard(board entity.Board, score *entity.Score) {
	if that.clearScreen {
		that.out.ClearScreen()
	}

	that.prompt(fmt.Sprintf("You are %s. Computer is %s", entity.HumanMark, entity.ComputerMark))
	that.println("")

	for row := range 3 {
		if row > 0 {
			that.println("-----+-----+-----")
		}

		first := row*3 + 1
		that.println("     |     |")
		that.println(fmt.Sprintf("  %s  |  %s  |  %s",
			that.styleCell(board.At(first)),
			that.styleCell(board.At(first+1)),
			that.styleCell(board.At(first+2)),
		))
		that.println("     |     |")
	}

	if score != nil {
		that.println("")
		that.println(fmt.Sprintf("Player: %d | Enemy: %d", score.Human, score.Computer))
	}
}

// AnnounceRound - shows the final board, the round result and the score.
func (that *Console) AnnounceRound(board entity.Board, outcome entity.Outcome, score entity.Score) {
	that.ShowBoard(board, nil)

	switch outcome {
	case entity.OutcomeHumanWin:
		that.prompt("Player WON!")
	case entity.OutcomeComputerWin:
		that.prompt("Computer WON!")
	default:
		that.prompt("It's a tie!")
	}

	that.prompt(fmt.Sprintf("Score - Player: %d | Enemy: %d", score.Human, score.Computer))
	that.println("")
}

// AnnounceMatch - congratulates or consoles the human once a side reaches the threshold.
func (that *Console) AnnounceMatch(winner entity.Player) {
	if winner == entity.Human {
		that.prompt("CONGRATS! You WON the match!")
		return
	}

	that.prompt("Wow, you lost at tic tac toe. How sad.")
}

func (that *Console) Goodbye() {
	that.prompt("Thanks for playing Tic Tac Toe!")
}

func (that *Console) showNumberedBoard() {
	that.println("")
	that.println("    1 | 2 | 3")
	that.println("    ---------")
	that.println("    4 | 5 | 6")
	that.println("    ---------")
	that.println("    7 | 8 | 9")
	that.println("")
}

func (that *Console) styleCell(cell entity.Cell) string {
	switch cell {
	case entity.HumanMark:
		return that.out.String(cell.String()).Foreground(that.out.Color(humanColor)).Bold().String()
	case entity.ComputerMark:
		return that.out.String(cell.String()).Foreground(that.out.Color(computerColor)).Bold().String()
	default:
		return cell.String()
	}
}
