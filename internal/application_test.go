package application

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
)

func TestRun(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	conf := &config.Config{LogLevel: "debug", NoColor: true}

	t.Run("Plays a match to the end", func(t *testing.T) {
		// Given: a scripted match where Circle wins the left column
		in := strings.NewReader("2\n1\n3\n4\n5\n7\n")
		out := &bytes.Buffer{}

		// When: the match is run
		err := Run(context.Background(), logger, conf, in, out)

		// Then: it ends with Circle as the winner
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(out.String(), "Game over, O wins!\n"))
	})

	t.Run("Cancelled context shuts down quietly", func(t *testing.T) {
		// Given: a cancelled context
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// When: the match is run
		err := Run(ctx, logger, conf, strings.NewReader(""), &bytes.Buffer{})

		// Then: no error is returned
		require.NoError(t, err)
	})
}
