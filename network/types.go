package network

import (
	"errors"
	"time"
)

// Sentinel errors returned by this package.
var (
	// ErrUnknownLocation indicates a location id that is not on the map.
	ErrUnknownLocation = errors.New("network: unknown location")

	// ErrDuplicateLocation indicates two locations sharing one id.
	ErrDuplicateLocation = errors.New("network: duplicate location")

	// ErrEmptyLocationID indicates a location with an empty id.
	ErrEmptyLocationID = errors.New("network: empty location id")

	// ErrUnknownScenario indicates a scenario id with no built-in map.
	ErrUnknownScenario = errors.New("network: unknown scenario")
)

// UnitsPerMinute converts road distance into travel minutes.
const UnitsPerMinute = 10

// Kind classifies a location.
type Kind int

const (
	Intersection Kind = iota
	Restaurant
	Customer
)

func (k Kind) String() string {
	switch k {
	case Restaurant:
		return "restaurant"
	case Customer:
		return "customer"
	case Intersection:
		return "intersection"
	default:
		return "unknown"
	}
}

// Location is a named point on the map. X and Y are layout coordinates and
// play no part in routing.
type Location struct {
	ID   string
	Kind Kind
	X, Y int
}

// Road joins two locations in both directions.
type Road struct {
	From, To string
	Distance int64
}

// Leg is one road travelled as part of a Route.
type Leg struct {
	From, To string
	Distance int64
}

// Route is the answer to a single delivery query.
// For an unreachable destination Reachable is false and Path, Legs and ETA are empty.
type Route struct {
	From, To  string
	Distance  int64
	Path      []string
	Legs      []Leg
	ETA       time.Duration
	Reachable bool
}

// Stats counts the locations of each kind and the roads.
type Stats struct {
	Restaurants   int
	Customers     int
	Intersections int
	Roads         int
}
