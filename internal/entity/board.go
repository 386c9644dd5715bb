package entity

// Cell is the state of a single board square.
type Cell uint8

const (
	EmptyCell Cell = iota
	HumanMark
	ComputerMark
)

const (
	BoardSize = 9

	FirstPosition  = 1
	LastPosition   = 9
	CenterPosition = 5
)

func (that Cell) String() string {
	switch that {
	case HumanMark:
		return "X"
	case ComputerMark:
		return "O"
	default:
		return " "
	}
}

// Board holds the nine squares row-major. Positions are 1-based,
// left-to-right and top-to-bottom, the way they are shown to the player.
type Board [BoardSize]Cell

func NewBoard() Board {
	return Board{}
}

// At - returns the cell at position. The position must be in 1..9.
func (that *Board) At(position int) Cell {
	return that[position-1]
}

// Place - writes mark at position. It does not check that the square is
// free; callers pick positions from EmptyPositions.
func (that *Board) Place(position int, mark Cell) {
	that[position-1] = mark
}

// EmptyPositions - returns the free positions in ascending order.
func (that *Board) EmptyPositions() []int {
	positions := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == EmptyCell {
			positions = append(positions, i+1)
		}
	}

	return positions
}

func (that *Board) IsFull() bool {
	return len(that.EmptyPositions()) == 0
}

func IsValidPosition(position int) bool {
	return position >= FirstPosition && position <= LastPosition
}
