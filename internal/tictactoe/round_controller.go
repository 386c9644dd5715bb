package tictactoe

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

var tracer = otel.Tracer("tictactoe")

type humanPlayer interface {
	ChooseSquare(ctx context.Context, board entity.Board) (int, error)
}

type computerPlayer interface {
	ChooseSquare(board entity.Board) (int, error)
}

type boardView interface {
	ShowBoard(board entity.Board, score *entity.Score)
}

// Result is a finished round: its final board and the outcome derived from it.
type Result struct {
	Board   entity.Board
	Outcome entity.Outcome
}

// RoundController plays rounds between the console player and the bot.
type RoundController struct {
	logger *slog.Logger
	rules  entity.Rules

	human    humanPlayer
	computer computerPlayer
	view     boardView
}

func NewRoundController(logger *slog.Logger, rules entity.Rules, human humanPlayer, computer computerPlayer, view boardView) *RoundController {
	return &RoundController{
		logger: logger.With("component", "round"),
		rules:  rules,

		human:    human,
		computer: computer,
		view:     view,
	}
}

// Play - runs one round starting with first and returns its outcome. The
// score is only passed through to the view.
func (that *RoundController) Play(ctx context.Context, first entity.Player, score entity.Score) (Result, error) {
	ctx, span := tracer.Start(ctx, "RoundController.Play", trace.WithAttributes(
		attribute.String("round.first", first.String()),
	))
	defer span.End()

	log := that.logger.With("method", "Play", "first", first.String())

	round := NewRound(that.rules, first)
	that.view.ShowBoard(round.Board(), &score)

	for {
		state := round.State()
		if state.IsOver() {
			span.SetAttributes(attribute.String("round.outcome", state.Outcome.String()))
			log.DebugContext(ctx, "round finished", "outcome", state.Outcome.String())

			return Result{Board: round.Board(), Outcome: state.Outcome}, nil
		}

		position, err := that.nextMove(ctx, state.Current, round.Board())
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to get move")

			return Result{}, fmt.Errorf("failed to get %s move: %w", state.Current, err)
		}

		if err = round.Apply(position); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to apply move")

			return Result{}, fmt.Errorf("failed to apply %s move: %w", state.Current, err)
		}

		log.DebugContext(ctx, "move applied", "player", state.Current.String(), "position", position)
		that.view.ShowBoard(round.Board(), &score)
	}
}

func (that *RoundController) nextMove(ctx context.Context, current entity.Player, board entity.Board) (int, error) {
	if current == entity.Human {
		return that.human.ChooseSquare(ctx, board)
	}

	return that.computer.ChooseSquare(board)
}
