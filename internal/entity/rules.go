package entity

const GamesToWin = 5

// Line is a triple of board positions.
type Line [3]int

// Outcome is the result of a finished round. It is always derived from the
// board and never stored.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeHumanWin
	OutcomeComputerWin
	OutcomeTie
)

func (that Outcome) String() string {
	switch that {
	case OutcomeHumanWin:
		return "human_win"
	case OutcomeComputerWin:
		return "computer_win"
	case OutcomeTie:
		return "tie"
	default:
		return "none"
	}
}

// Winner - returns the player that won, if any.
func (that Outcome) Winner() (Player, bool) {
	switch that {
	case OutcomeHumanWin:
		return Human, true
	case OutcomeComputerWin:
		return Computer, true
	default:
		return Human, false
	}
}

// Rules is the fixed game configuration, captured by value at construction.
type Rules struct {
	Lines      [8]Line
	GamesToWin int
}

func DefaultRules() Rules {
	return Rules{
		Lines: [8]Line{
			{1, 2, 3},
			{4, 5, 6},
			{7, 8, 9},
			{1, 4, 7},
			{2, 5, 8},
			{3, 6, 9},
			{1, 5, 9},
			{3, 5, 7},
		},
		GamesToWin: GamesToWin,
	}
}

// Winner - returns the mark of the first fully matched line, scanning rows,
// then columns, then diagonals. EmptyCell means no winner.
func (that Rules) Winner(board Board) Cell {
	for _, line := range that.Lines {
		a, b, c := board.At(line[0]), board.At(line[1]), board.At(line[2])
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	return EmptyCell
}

func (that Rules) IsTerminal(board Board) bool {
	return that.Winner(board) != EmptyCell || board.IsFull()
}

// Outcome - derives the round result. The bool is false while the round can
// still continue.
func (that Rules) Outcome(board Board) (Outcome, bool) {
	switch that.Winner(board) {
	case HumanMark:
		return OutcomeHumanWin, true
	case ComputerMark:
		return OutcomeComputerWin, true
	}

	if board.IsFull() {
		return OutcomeTie, true
	}

	return OutcomeNone, false
}
