package session

import (
	"log/slog"

	"github.com/katalvlaran/deliveryroute/dijkstra"
	"github.com/katalvlaran/deliveryroute/internal/logging"
	"github.com/katalvlaran/deliveryroute/matrix"
)

// Options configures a session.
type Options struct {
	MaxVertices  int
	Separator    string
	ZeroAsAbsent bool
	Logger       *slog.Logger
}

// Option represents a functional option for configuring Run.
type Option func(*Options)

// WithMaxVertices bounds the accepted number of locations. Panics on n ≤ 0.
func WithMaxVertices(n int) Option {
	if n <= 0 {
		panic("session: WithMaxVertices must be positive")
	}
	return func(o *Options) {
		o.MaxVertices = n
	}
}

// WithSeparator sets the string printed between path stops.
func WithSeparator(sep string) Option {
	return func(o *Options) {
		o.Separator = sep
	}
}

// WithZeroAsAbsent treats a road of distance 0 as no road.
func WithZeroAsAbsent(on bool) Option {
	return func(o *Options) {
		o.ZeroAsAbsent = on
	}
}

// WithLogger routes diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("session: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns the defaults Run starts from.
func DefaultOptions() Options {
	return Options{
		MaxVertices: matrix.DefaultMaxVertices,
		Separator:   dijkstra.DefaultSeparator,
		Logger:      logging.Discard(),
	}
}

func (o Options) matrixOptions() []matrix.Option {
	opts := []matrix.Option{matrix.WithMaxVertices(o.MaxVertices)}
	if o.ZeroAsAbsent {
		opts = append(opts, matrix.WithZeroAsAbsent())
	}

	return opts
}
