package suite

import (
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	maxWaitDuration = 10 * time.Second

	randomSeed = 2024
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Rules  entity.Rules
	Random *rand.Rand
}

// New - returns a context bounded by maxWaitDuration and shared test fixtures.
// The random source is seeded, so bot fallbacks and coin flips repeat across runs.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,

		Rules:  entity.DefaultRules(),
		Random: rand.New(rand.NewPCG(randomSeed, randomSeed)),
	}
}
