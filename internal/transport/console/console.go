package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const promptPrefix = "===> "

type Option func(*Console)

// WithColor - enables ANSI colours when the output supports them.
func WithColor(enabled bool) Option {
	return func(that *Console) {
		that.color = enabled
	}
}

// WithClearScreen - clears the terminal before each board render.
func WithClearScreen(enabled bool) Option {
	return func(that *Console) {
		that.clearScreen = enabled
	}
}

// Console is the display and input collaborator of the game.
type Console struct {
	logger *slog.Logger
	rules  entity.Rules

	out    *termenv.Output
	reader *lineReader

	color       bool
	clearScreen bool
}

func New(logger *slog.Logger, rules entity.Rules, in io.Reader, out io.Writer, opts ...Option) *Console {
	console := &Console{
		logger: logger.With("component", "console"),
		rules:  rules,
		reader: newLineReader(in),
	}

	for _, opt := range opts {
		opt(console)
	}

	outputOpts := []termenv.OutputOption{}
	if !console.color {
		outputOpts = append(outputOpts, termenv.WithProfile(termenv.Ascii))
	}
	console.out = termenv.NewOutput(out, outputOpts...)

	return console
}

func (that *Console) prompt(message string) {
	fmt.Fprintln(that.out, promptPrefix+message)
}

func (that *Console) println(line string) {
	fmt.Fprintln(that.out, line)
}

// readAnswer - reads one line with surrounding whitespace removed.
func (that *Console) readAnswer(ctx context.Context) (string, error) {
	line, err := that.reader.ReadLine(ctx)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

// lineReader reads its input on a single goroutine, so a pending read can be
// abandoned when the context is cancelled. Lines have no length limit.
type lineReader struct {
	once   sync.Once
	reader *bufio.Reader
	lines  chan string
	err    error
}

func newLineReader(in io.Reader) *lineReader {
	return &lineReader{
		reader: bufio.NewReader(in),
		lines:  make(chan string),
	}
}

func (that *lineReader) start() {
	go func() {
		defer close(that.lines)

		for {
			line, err := that.reader.ReadString('\n')
			if line != "" {
				that.lines <- strings.TrimRight(line, "\r\n")
			}

			if err != nil {
				if !errors.Is(err, io.EOF) {
					that.err = err
				}
				return
			}
		}
	}()
}

func (that *lineReader) ReadLine(ctx context.Context) (string, error) {
	that.once.Do(that.start)

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("read cancelled: %w", ctx.Err())
	case line, ok := <-that.lines:
		if !ok {
			if that.err != nil {
				return "", fmt.Errorf("failed to read input: %w", that.err)
			}
			return "", apperror.ErrInputClosed
		}
		return line, nil
	}
}
