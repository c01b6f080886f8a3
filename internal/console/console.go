package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	crossColor  = "1" // red
	circleColor = "4" // blue
)

type game interface {
	PlayTurn(index entity.BoardIndex) error
	HasWinner() (entity.Symbol, bool)
	Format(symbolFn func(entity.Symbol) string) string
}

type Console struct {
	logger *slog.Logger
	game   game

	in  *bufio.Reader
	out *termenv.Output
}

type Option func(*options)

type options struct {
	profile termenv.Profile
	forced  bool
}

// WithProfile forces the colour profile instead of detecting it from out.
func WithProfile(profile termenv.Profile) Option {
	return func(o *options) {
		o.profile = profile
		o.forced = true
	}
}

func New(logger *slog.Logger, game game, in io.Reader, out io.Writer, opts ...Option) *Console {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var outOpts []termenv.OutputOption
	if o.forced {
		outOpts = append(outOpts, termenv.WithProfile(o.profile))
	}

	return &Console{
		logger: logger.With("component", "console"),
		game:   game,
		in:     bufio.NewReader(in),
		out:    termenv.NewOutput(out, outOpts...),
	}
}

// Run - plays the match until there is a winner or the input ends.
func (that *Console) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		that.println(that.game.Format(that.styleSymbol))

		if winner, ok := that.game.HasWinner(); ok {
			that.println(fmt.Sprintf("Game over, %s wins!", that.styleSymbol(winner)))
			log.Info("game finished", "winner", winner.String())
			return nil
		}

		that.println("Pick a place to play")

		line, err := that.readLine()
		if errors.Is(err, io.EOF) {
			log.Info("input closed, game abandoned")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read move: %w", err)
		}

		position, index, err := parseMove(line)
		if err != nil {
			log.Debug("rejected input", "input", line, "error", err)
			that.println(err.Error())
			continue
		}

		if err = that.game.PlayTurn(index); err != nil {
			log.Debug("rejected turn", "index", index.Int(), "error", err)
			that.println(err.Error())
			continue
		}

		log.Debug("turn played", "index", index.Int())
		that.println(fmt.Sprintf("Played at position %d", position))
	}
}

// readLine - reads up to the next newline whatever the line length. A last line without newline still counts.
func (that *Console) readLine() (string, error) {
	line, err := that.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func (that *Console) styleSymbol(symbol entity.Symbol) string {
	color := crossColor
	if symbol == entity.Circle {
		color = circleColor
	}

	return that.out.String(symbol.String()).Foreground(that.out.Color(color)).Bold().String()
}

func (that *Console) println(text string) {
	// A failed write to the terminal has nowhere better to be reported.
	_, _ = fmt.Fprintln(that.out, text)
}

// parseMove - converts a 1-based position typed by the player into a BoardIndex.
func parseMove(line string) (int, entity.BoardIndex, error) {
	position, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || position <= 0 {
		return 0, entity.BoardIndex{}, fmt.Errorf("Input error: %w", apperror.ErrInvalidInput) //nolint: stylecheck // shown to the player as is
	}

	index, err := entity.NewBoardIndex(position - 1)
	if err != nil {
		return 0, entity.BoardIndex{}, err
	}

	return position, index, nil
}
