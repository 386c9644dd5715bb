package entity

// Score counts round wins inside one match.
type Score struct {
	Human    int
	Computer int
}

// Record - credits a round win. Ties change nothing.
func (that *Score) Record(outcome Outcome) {
	winner, ok := outcome.Winner()
	if !ok {
		return
	}

	if winner == Human {
		that.Human++
		return
	}

	that.Computer++
}

// MatchWinner - reports the side that reached gamesToWin.
func (that *Score) MatchWinner(gamesToWin int) (Player, bool) {
	switch {
	case that.Human >= gamesToWin:
		return Human, true
	case that.Computer >= gamesToWin:
		return Computer, true
	default:
		return Human, false
	}
}

func (that *Score) Reset() {
	that.Human = 0
	that.Computer = 0
}
