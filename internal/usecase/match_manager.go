package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

const instrumentationName = "github.com/rocketscienceinc/tictactoe-console/internal/usecase"

var tracer = otel.Tracer(instrumentationName)

type matchConsole interface {
	Welcome()
	NewRound()
	FirstTurn(ctx context.Context) (entity.FirstTurnChoice, error)
	AnnounceRound(board entity.Board, outcome entity.Outcome, score entity.Score)
	AnnounceMatch(winner entity.Player)
	PlayAgain(ctx context.Context) (bool, error)
	Goodbye()
}

type roundPlayer interface {
	Play(ctx context.Context, first entity.Player, score entity.Score) (tictactoe.Result, error)
}

type randomizer interface {
	IntN(n int) int
}

// MatchManager keeps the score across rounds and restarts the match whenever
// a side reaches Rules.GamesToWin.
type MatchManager struct {
	logger *slog.Logger
	rules  entity.Rules

	console matchConsole
	rounds  roundPlayer
	random  randomizer

	score   entity.Score
	matchID string

	roundsCounter  metric.Int64Counter
	matchesCounter metric.Int64Counter
}

func NewMatchManager(logger *slog.Logger, rules entity.Rules, console matchConsole, rounds roundPlayer, random randomizer) *MatchManager {
	log := logger.With("component", "match")
	meter := otel.Meter(instrumentationName)

	roundsCounter, err := meter.Int64Counter("tictactoe.rounds", metric.WithDescription("Finished rounds by outcome"))
	if err != nil {
		log.Warn("failed to create rounds counter", "error", err)
		roundsCounter = noop.Int64Counter{}
	}

	matchesCounter, err := meter.Int64Counter("tictactoe.matches", metric.WithDescription("Finished matches by winner"))
	if err != nil {
		log.Warn("failed to create matches counter", "error", err)
		matchesCounter = noop.Int64Counter{}
	}

	return &MatchManager{
		logger: log,
		rules:  rules,

		console: console,
		rounds:  rounds,
		random:  random,

		roundsCounter:  roundsCounter,
		matchesCounter: matchesCounter,
	}
}

// Score - returns the score of the match in progress.
func (that *MatchManager) Score() entity.Score {
	return that.score
}

// Run - plays rounds until the human declines another one. Closed input and
// context cancellation end the session without an error.
func (that *MatchManager) Run(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "MatchManager.Run")
	defer span.End()

	that.console.Welcome()
	that.startMatch()

	for {
		if err := ctx.Err(); err != nil {
			return that.stop(ctx, span, err)
		}

		if err := that.playRound(ctx); err != nil {
			return that.stop(ctx, span, err)
		}

		again, err := that.console.PlayAgain(ctx)
		if err != nil {
			return that.stop(ctx, span, fmt.Errorf("failed to ask for another round: %w", err))
		}

		if !again {
			break
		}
	}

	that.console.Goodbye()

	return nil
}

func (that *MatchManager) playRound(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "MatchManager.playRound", trace.WithAttributes(
		attribute.String("match.id", that.matchID),
	))
	defer span.End()

	log := that.logger.With("method", "playRound", "match_id", that.matchID)

	that.console.NewRound()

	first, err := that.chooseFirstPlayer(ctx)
	if err != nil {
		return fmt.Errorf("failed to choose first player: %w", err)
	}

	result, err := that.rounds.Play(ctx, first, that.score)
	if err != nil {
		return fmt.Errorf("failed to play round: %w", err)
	}

	that.score.Record(result.Outcome)
	that.roundsCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", result.Outcome.String())))
	span.SetAttributes(
		attribute.String("round.outcome", result.Outcome.String()),
		attribute.Int("score.human", that.score.Human),
		attribute.Int("score.computer", that.score.Computer),
	)
	log.InfoContext(ctx, "round finished",
		"first", first.String(),
		"outcome", result.Outcome.String(),
		"score_human", that.score.Human,
		"score_computer", that.score.Computer,
	)

	that.console.AnnounceRound(result.Board, result.Outcome, that.score)

	if winner, ok := that.score.MatchWinner(that.rules.GamesToWin); ok {
		that.console.AnnounceMatch(winner)
		that.matchesCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("winner", winner.String())))
		log.InfoContext(ctx, "match finished", "winner", winner.String())

		that.score.Reset()
		that.startMatch()
	}

	return nil
}

// chooseFirstPlayer - asks who opens the round and flips a coin when the
// answer leaves it open.
func (that *MatchManager) chooseFirstPlayer(ctx context.Context) (entity.Player, error) {
	choice, err := that.console.FirstTurn(ctx)
	if err != nil {
		return entity.Human, err
	}

	switch choice {
	case entity.FirstTurnHuman:
		return entity.Human, nil
	case entity.FirstTurnComputer:
		return entity.Computer, nil
	}

	if that.random.IntN(2) == 0 {
		return entity.Human, nil
	}

	return entity.Computer, nil
}

func (that *MatchManager) startMatch() {
	that.matchID = uuid.NewString()
	that.logger.Debug("match started", "match_id", that.matchID)
}

// stop - turns the end of the session into Run's result.
func (that *MatchManager) stop(ctx context.Context, span trace.Span, err error) error {
	if errors.Is(err, apperror.ErrInputClosed) || errors.Is(err, context.Canceled) {
		that.logger.InfoContext(ctx, "session ended", "reason", err.Error())
		that.console.Goodbye()

		return nil
	}

	span.RecordError(err)
	span.SetStatus(codes.Error, "match stopped")

	return err
}
