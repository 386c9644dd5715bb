package console

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

var (
	continueAnswers     = []string{"y", "yes", "ok", "sure", "continue", "go"}
	dontContinueAnswers = []string{"n", "no", "stop", "quit", "exit", "end"}

	humanFirstAnswers    = []string{"player", "p"}
	computerFirstAnswers = []string{"computer", "c"}
)

// ChooseSquare - asks the human for one of the free positions until the
// answer matches one exactly, repeating the question after each miss.
func (that *Console) ChooseSquare(ctx context.Context, board entity.Board) (int, error) {
	log := that.logger.With("method", "ChooseSquare")

	validChoices := make([]string, 0, entity.BoardSize)
	for _, position := range board.EmptyPositions() {
		validChoices = append(validChoices, strconv.Itoa(position))
	}

	for {
		that.prompt(fmt.Sprintf("Choose a square (%s):", strings.Join(validChoices, ", ")))

		answer, err := that.readAnswer(ctx)
		if err != nil {
			return 0, err
		}

		if slices.Contains(validChoices, answer) {
			position, err := strconv.Atoi(answer)
			if err != nil {
				return 0, fmt.Errorf("failed to parse square %q: %w", answer, err)
			}

			return position, nil
		}

		log.Debug("invalid square", "answer", answer)
		that.prompt(fmt.Sprintf("Invalid choice. Please choose from %s.", JoinOr(validChoices)))
	}
}

// PlayAgain - asks until the answer is a recognised yes or no.
func (that *Console) PlayAgain(ctx context.Context) (bool, error) {
	message := "Play again? (y or n)"

	for {
		that.prompt(message)

		answer, err := that.readAnswer(ctx)
		if err != nil {
			return false, err
		}

		answer = strings.ToLower(answer)
		switch {
		case slices.Contains(continueAnswers, answer):
			return true, nil
		case slices.Contains(dontContinueAnswers, answer):
			return false, nil
		}

		message = "That was not a valid choice. Please enter y or n:"
	}
}

// FirstTurn - asks who opens the round. Unrecognised answers, including an
// empty line, leave the choice to chance without asking again.
func (that *Console) FirstTurn(ctx context.Context) (entity.FirstTurnChoice, error) {
	that.prompt("Who goes first? (player('p') or computer('c') or random)")

	answer, err := that.readAnswer(ctx)
	if err != nil {
		return entity.FirstTurnRandom, err
	}

	answer = strings.ToLower(answer)
	switch {
	case slices.Contains(humanFirstAnswers, answer):
		return entity.FirstTurnHuman, nil
	case slices.Contains(computerFirstAnswers, answer):
		return entity.FirstTurnComputer, nil
	}

	that.prompt("That was not a valid choice. Randomly selecting who goes first.")

	return entity.FirstTurnRandom, nil
}

// JoinOr - joins choices as "a, b, or c", "a or b" or "a".
func JoinOr(choices []string) string {
	switch len(choices) {
	case 0:
		return ""
	case 1:
		return choices[0]
	case 2:
		return choices[0] + " or " + choices[1]
	}

	last := len(choices) - 1

	return strings.Join(choices[:last], ", ") + ", or " + choices[last]
}
