package network

import (
	"fmt"
)

// Scenario is a built-in delivery map.
type Scenario struct {
	ID        string
	Name      string
	Locations []Location
	Roads     []Road
}

// DefaultScenario is the id used when none is given.
const DefaultScenario = "downtown"

var scenarios = []Scenario{
	{
		ID:   "downtown",
		Name: "Downtown",
		Locations: []Location{
			{ID: "Taco Town", Kind: Restaurant, X: 100, Y: 80},
			{ID: "Curry Corner", Kind: Restaurant, X: 100, Y: 400},
			{ID: "Pasta Paradise", Kind: Restaurant, X: 700, Y: 80},
			{ID: "Sandwich Shop", Kind: Restaurant, X: 700, Y: 400},
			{ID: "Customer X", Kind: Customer, X: 300, Y: 100},
			{ID: "Customer Y", Kind: Customer, X: 600, Y: 150},
			{ID: "Customer Z", Kind: Customer, X: 350, Y: 300},
			{ID: "Customer W", Kind: Customer, X: 600, Y: 350},
			{ID: "Customer V", Kind: Customer, X: 200, Y: 250},
			{ID: "i1", Kind: Intersection, X: 350, Y: 180},
			{ID: "i2", Kind: Intersection, X: 250, Y: 200},
			{ID: "i3", Kind: Intersection, X: 450, Y: 150},
			{ID: "i4", Kind: Intersection, X: 450, Y: 300},
			{ID: "i5", Kind: Intersection, X: 500, Y: 380},
		},
		Roads: []Road{
			{From: "Taco Town", To: "Customer X", Distance: 60},
			{From: "Customer X", To: "i1", Distance: 50},
			{From: "i1", To: "i3", Distance: 50},
			{From: "i3", To: "Pasta Paradise", Distance: 80},
			{From: "Customer X", To: "i2", Distance: 80},
			{From: "i2", To: "Customer V", Distance: 50},
			{From: "i2", To: "Curry Corner", Distance: 90},
			{From: "i1", To: "i4", Distance: 60},
			{From: "i4", To: "Customer Z", Distance: 40},
			{From: "Customer Z", To: "Customer V", Distance: 40},
			{From: "i4", To: "i5", Distance: 50},
			{From: "i5", To: "Customer W", Distance: 30},
			{From: "Customer W", To: "Sandwich Shop", Distance: 50},
			{From: "i3", To: "Customer Y", Distance: 60},
			{From: "Customer Y", To: "Pasta Paradise", Distance: 50},
		},
	},
}

// Scenarios lists the built-in maps.
func Scenarios() []Scenario {
	return append([]Scenario(nil), scenarios...)
}

// Load builds the Network of the scenario with the given id.
func Load(id string) (*Network, error) {
	for _, s := range scenarios {
		if s.ID == id {
			return New(s.Locations, s.Roads)
		}
	}

	return nil, fmt.Errorf("scenario %q: %w", id, ErrUnknownScenario)
}
