package network

import (
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/katalvlaran/deliveryroute/dijkstra"
	"github.com/katalvlaran/deliveryroute/matrix"
)

// Network is an immutable delivery map.
type Network struct {
	locations []Location
	index     map[string]int
	roads     []Road
	graph     *matrix.AdjacencyMatrix
}

// New validates locations and roads and builds the map. Every problem found
// (empty or duplicate ids, roads to unknown places, bad distances) is returned
// together in one aggregated error.
func New(locations []Location, roads []Road, opts ...matrix.Option) (*Network, error) {
	var result *multierror.Error

	index := make(map[string]int, len(locations))
	for i, loc := range locations {
		if loc.ID == "" {
			result = multierror.Append(result, fmt.Errorf("location #%d: %w", i, ErrEmptyLocationID))
			continue
		}
		if _, dup := index[loc.ID]; dup {
			result = multierror.Append(result, fmt.Errorf("location %q: %w", loc.ID, ErrDuplicateLocation))
			continue
		}
		index[loc.ID] = i
	}

	edges := make([]matrix.Edge, 0, len(roads))
	for i, r := range roads {
		u, okU := index[r.From]
		v, okV := index[r.To]
		if !okU {
			result = multierror.Append(result, fmt.Errorf("road #%d from %q: %w", i, r.From, ErrUnknownLocation))
		}
		if !okV {
			result = multierror.Append(result, fmt.Errorf("road #%d to %q: %w", i, r.To, ErrUnknownLocation))
		}
		if okU && okV {
			edges = append(edges, matrix.Edge{U: u, V: v, Weight: r.Distance})
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	g, err := matrix.FromEdges(len(locations), edges, opts...)
	if err != nil {
		return nil, fmt.Errorf("network: %w", err)
	}

	return &Network{
		locations: append([]Location(nil), locations...),
		index:     index,
		roads:     append([]Road(nil), roads...),
		graph:     g,
	}, nil
}

// Locations returns the map's locations in vertex-id order.
func (n *Network) Locations() []Location {
	return append([]Location(nil), n.locations...)
}

// Location looks up a location by id.
func (n *Network) Location(id string) (Location, bool) {
	i, ok := n.index[id]
	if !ok {
		return Location{}, false
	}

	return n.locations[i], true
}

// Route finds the shortest delivery route between two locations.
func (n *Network) Route(from, to string) (Route, error) {
	src, ok := n.index[from]
	if !ok {
		return Route{}, fmt.Errorf("from %q: %w", from, ErrUnknownLocation)
	}
	dst, ok := n.index[to]
	if !ok {
		return Route{}, fmt.Errorf("to %q: %w", to, ErrUnknownLocation)
	}

	found, err := dijkstra.Find(n.graph, src, dst)
	if err != nil {
		return Route{}, err
	}

	route := Route{From: from, To: to, Distance: found.Distance}
	if !found.Reachable {
		return route, nil
	}

	route.Reachable = true
	route.ETA = estimate(found.Distance)
	route.Path = make([]string, len(found.Path))
	for i, v := range found.Path {
		route.Path[i] = n.locations[v].ID
	}
	for i := 1; i < len(found.Path); i++ {
		u, v := found.Path[i-1], found.Path[i]
		w, _ := n.graph.Weight(u, v)
		route.Legs = append(route.Legs, Leg{From: route.Path[i-1], To: route.Path[i], Distance: w})
	}

	return route, nil
}

// Stats counts locations per kind and roads as given to New.
func (n *Network) Stats() Stats {
	s := Stats{Roads: len(n.roads)}
	for _, loc := range n.locations {
		switch loc.Kind {
		case Restaurant:
			s.Restaurants++
		case Customer:
			s.Customers++
		case Intersection:
			s.Intersections++
		}
	}

	return s
}

// estimate rounds distance/UnitsPerMinute half up to whole minutes.
func estimate(distance int64) time.Duration {
	minutes := (distance + UnitsPerMinute/2) / UnitsPerMinute
	return time.Duration(minutes) * time.Minute
}
