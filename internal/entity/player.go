package entity

// Player identifies whose turn it is.
type Player uint8

const (
	Human Player = iota
	Computer
)

func (that Player) String() string {
	if that == Computer {
		return "computer"
	}
	return "player"
}

// Alternate - returns the other player.
func (that Player) Alternate() Player {
	if that == Human {
		return Computer
	}
	return Human
}

// Mark - returns the cell value this player writes on the board.
func (that Player) Mark() Cell {
	if that == Computer {
		return ComputerMark
	}
	return HumanMark
}

// FirstTurnChoice is the answer to "who goes first".
type FirstTurnChoice uint8

const (
	FirstTurnRandom FirstTurnChoice = iota
	FirstTurnHuman
	FirstTurnComputer
)
