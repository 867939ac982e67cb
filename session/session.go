package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/hashicorp/go-multierror"

	"github.com/katalvlaran/deliveryroute/dijkstra"
	"github.com/katalvlaran/deliveryroute/matrix"
)

const (
	promptVertices    = "Enter number of locations (nodes): "
	promptEdges       = "Enter number of roads (edges): "
	promptEdgeFormat  = "Enter edges in the format: from to distance\n"
	promptSource      = "Enter source location (restaurant node): "
	promptDestination = "Enter destination location (customer node): "
)

// Run drives one dialogue: it prompts on out, reads answers from in, prints
// the shortest route and returns it. Validation errors abort the dialogue
// before any route is computed and are left to the caller to report.
// Cancelling ctx interrupts a pending read.
func Run(ctx context.Context, in io.Reader, out io.Writer, opts ...Option) (dijkstra.Route, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &runner{
		ctx:  ctx,
		in:   bufio.NewScanner(in),
		out:  out,
		opts: cfg,
	}
	s.in.Split(bufio.ScanWords)

	route, err := s.run()
	if err != nil {
		cfg.Logger.Debug("session aborted", "error", err)
		return dijkstra.Route{}, err
	}

	return route, nil
}

// runner holds the state of one dialogue.
type runner struct {
	ctx  context.Context
	in   *bufio.Scanner
	out  io.Writer
	opts Options
}

func (s *runner) run() (dijkstra.Route, error) {
	// 1) Graph size.
	n, err := s.ask(promptVertices, "number of locations")
	if err != nil {
		return dijkstra.Route{}, err
	}
	if n <= 0 || n > int64(s.opts.MaxVertices) {
		return dijkstra.Route{}, fmt.Errorf("%d not in [1,%d]: %w", n, s.opts.MaxVertices, ErrInvalidVertexCount)
	}

	e, err := s.ask(promptEdges, "number of roads")
	if err != nil {
		return dijkstra.Route{}, err
	}
	if e < 0 {
		return dijkstra.Route{}, fmt.Errorf("%d: %w", e, ErrInvalidEdgeCount)
	}

	// 2) Roads. Range and weight problems are collected; token problems stop at once.
	edges, err := s.readEdges(int(n), e)
	if err != nil {
		return dijkstra.Route{}, err
	}
	g, err := matrix.FromEdges(int(n), edges, s.opts.matrixOptions()...)
	if err != nil {
		return dijkstra.Route{}, err
	}
	s.opts.Logger.Debug("graph built", "locations", n, "roads", g.EdgeCount())

	// 3) Endpoints.
	src, err := s.askVertex(promptSource, "source", int(n))
	if err != nil {
		return dijkstra.Route{}, err
	}
	dst, err := s.askVertex(promptDestination, "destination", int(n))
	if err != nil {
		return dijkstra.Route{}, err
	}

	// 4) Route and report.
	route, err := dijkstra.Find(g, src, dst)
	if err != nil {
		return dijkstra.Route{}, err
	}
	if err = s.report(route); err != nil {
		return dijkstra.Route{}, err
	}
	s.opts.Logger.Info("route computed",
		"source", src, "destination", dst, "reachable", route.Reachable, "distance", route.Distance)

	return route, nil
}

func (s *runner) readEdges(n int, count int64) ([]matrix.Edge, error) {
	if err := s.print(promptEdgeFormat); err != nil {
		return nil, err
	}

	var (
		edges  []matrix.Edge
		result *multierror.Error
	)
	for i := int64(0); i < count; i++ {
		var triple [3]int64
		for k, what := range [3]string{"from", "to", "distance"} {
			v, err := s.next(fmt.Sprintf("road #%d %s", i, what))
			if err != nil {
				return nil, err
			}
			triple[k] = v
		}

		u, v, w := triple[0], triple[1], triple[2]
		bad := false
		for _, id := range [2]int64{u, v} {
			if id < 0 || id >= int64(n) {
				result = multierror.Append(result,
					fmt.Errorf("road #%d: location %d not in [0,%d): %w", i, id, n, ErrInvalidVertexReference))
				bad = true
			}
		}
		if w < 0 {
			result = multierror.Append(result, fmt.Errorf("road #%d: distance %d: %w", i, w, ErrInvalidWeight))
			bad = true
		}
		if !bad {
			edges = append(edges, matrix.Edge{U: int(u), V: int(v), Weight: w})
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	return edges, nil
}

func (s *runner) report(r dijkstra.Route) error {
	if !r.Reachable {
		return s.print(fmt.Sprintf("No delivery path from location %d to %d.\n", r.Source, r.Destination))
	}

	return s.print(fmt.Sprintf(
		"Shortest delivery path from location %d to %d is: %d units\nPath: %s\n",
		r.Source, r.Destination, r.Distance, dijkstra.FormatPath(r.Path, s.opts.Separator)))
}

func (s *runner) askVertex(prompt, what string, n int) (int, error) {
	v, err := s.ask(prompt, what)
	if err != nil {
		return 0, err
	}
	if v < 0 || v >= int64(n) {
		return 0, fmt.Errorf("%s %d not in [0,%d): %w", what, v, n, ErrInvalidVertexReference)
	}

	return int(v), nil
}

func (s *runner) ask(prompt, what string) (int64, error) {
	if err := s.print(prompt); err != nil {
		return 0, err
	}

	return s.next(what)
}

// next reads one integer token.
func (s *runner) next(what string) (int64, error) {
	if err := s.ctx.Err(); err != nil {
		return 0, err
	}

	// Scan blocks on an idle terminal; wait on it alongside ctx.
	scanned := make(chan bool, 1)
	go func() {
		scanned <- s.in.Scan()
	}()

	var ok bool
	select {
	case <-s.ctx.Done():
		return 0, s.ctx.Err()
	case ok = <-scanned:
	}
	if !ok {
		if err := s.in.Err(); err != nil {
			return 0, fmt.Errorf("reading %s: %w", what, err)
		}
		return 0, fmt.Errorf("reading %s: unexpected end of input: %w", what, ErrMalformedInput)
	}

	tok := s.in.Text()
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return 0, fmt.Errorf("reading %s: %q (%v): %w", what, tok, err, ErrMalformedInput)
	}

	return v, nil
}

func (s *runner) print(msg string) error {
	if _, err := io.WriteString(s.out, msg); err != nil {
		return fmt.Errorf("session: write: %w", err)
	}

	return nil
}
