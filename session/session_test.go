package session_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/deliveryroute/session"
)

const prompts = "Enter number of locations (nodes): " +
	"Enter number of roads (edges): " +
	"Enter edges in the format: from to distance\n" +
	"Enter source location (restaurant node): " +
	"Enter destination location (customer node): "

func run(t *testing.T, input string, opts ...session.Option) (string, error) {
	t.Helper()
	var out bytes.Buffer
	_, err := session.Run(context.Background(), strings.NewReader(input), &out, opts...)

	return out.String(), err
}

func TestRun_ShortestPath(t *testing.T) {
	input := "4\n4\n0 1 1\n1 2 2\n0 2 4\n2 3 1\n0\n3\n"
	var out bytes.Buffer
	route, err := session.Run(context.Background(), strings.NewReader(input), &out)
	require.NoError(t, err)

	assert.Equal(t, prompts+
		"Shortest delivery path from location 0 to 3 is: 4 units\n"+
		"Path: 0 -> 1 -> 2 -> 3\n", out.String())
	assert.True(t, route.Reachable)
	assert.Equal(t, int64(4), route.Distance)
	assert.Equal(t, []int{0, 1, 2, 3}, route.Path)
}

func TestRun_NoPath(t *testing.T) {
	out, err := run(t, "3 1 0 1 5 0 2")
	require.NoError(t, err)
	assert.Equal(t, prompts+"No delivery path from location 0 to 2.\n", out)
}

func TestRun_SourceIsDestination(t *testing.T) {
	out, err := run(t, "2 1 0 1 7 1 1")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "is: 0 units\nPath: 1\n"), out)
}

func TestRun_Separator(t *testing.T) {
	out, err := run(t, "3 2 0 1 1 1 2 1 0 2", session.WithSeparator(","))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "Path: 0,1,2\n"), out)
}

func TestRun_ZeroWeightPolicy(t *testing.T) {
	input := "3 2 0 1 0 1 2 4 0 2"

	out, err := run(t, input)
	require.NoError(t, err)
	assert.Contains(t, out, "is: 4 units")

	out, err = run(t, input, session.WithZeroAsAbsent(true))
	require.NoError(t, err)
	assert.Contains(t, out, "No delivery path from location 0 to 2.")
}

func TestRun_DuplicateRoadOverwrites(t *testing.T) {
	out, err := run(t, "2 2 0 1 9 1 0 3 0 1")
	require.NoError(t, err)
	assert.Contains(t, out, "is: 3 units")
}

func TestRun_ValidationErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		opts  []session.Option
		want  error
	}{
		{"zero locations", "0", nil, session.ErrInvalidVertexCount},
		{"negative locations", "-2", nil, session.ErrInvalidVertexCount},
		{"above default max", "101", nil, session.ErrInvalidVertexCount},
		{"above custom max", "6", []session.Option{session.WithMaxVertices(5)}, session.ErrInvalidVertexCount},
		{"negative roads", "3 -1", nil, session.ErrInvalidEdgeCount},
		{"road end out of range", "3 1 0 3 1 0 1", nil, session.ErrInvalidVertexReference},
		{"negative distance", "3 1 0 1 -4 0 1", nil, session.ErrInvalidWeight},
		{"source out of range", "3 1 0 1 1 3 1", nil, session.ErrInvalidVertexReference},
		{"destination out of range", "3 1 0 1 1 0 -1", nil, session.ErrInvalidVertexReference},
		{"not a number", "three", nil, session.ErrMalformedInput},
		{"truncated roads", "3 2 0 1 1 1", nil, session.ErrMalformedInput},
		{"missing destination", "3 1 0 1 1 0", nil, session.ErrMalformedInput},
		{"empty input", "", nil, session.ErrMalformedInput},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := run(t, tc.input, tc.opts...)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRun_ReportsEveryBadRoad(t *testing.T) {
	out, err := run(t, "3 3 0 5 1 1 2 -1 0 1 1 0 1")
	require.ErrorIs(t, err, session.ErrInvalidVertexReference)
	require.ErrorIs(t, err, session.ErrInvalidWeight)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	assert.Len(t, merr.Errors, 2)
	// The dialogue stops before asking for endpoints.
	assert.NotContains(t, out, "Enter source location")
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := session.Run(ctx, strings.NewReader("4"), &bytes.Buffer{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestRun_CancelledWhileWaitingForInput(t *testing.T) {
	// Nothing is ever written to the pipe, so the first read blocks.
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		_, err := session.Run(ctx, pr, io.Discard)
		done <- err
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run kept waiting for input after cancellation")
	}
}

func TestRun_ErrorsAreNotLogged(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelWarn}))

	_, err := run(t, "0", session.WithLogger(logger))
	require.ErrorIs(t, err, session.ErrInvalidVertexCount)
	assert.Empty(t, logs.String())
}

func TestWithOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { session.WithMaxVertices(0) })
	assert.Panics(t, func() { session.WithLogger(nil) })
}
