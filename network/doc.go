// Package network models a named delivery map on top of the matrix and
// dijkstra packages.
//
// A Network is a set of Locations (restaurants, customers and intersections)
// joined by Roads. Location ids are strings; internally each location gets the
// vertex id of its position in the list it was created from, so the lower
// index wins distance ties exactly as in package dijkstra.
//
// Route answers one pickup/drop-off question with the total distance, the
// named stops, the individual legs and an estimated travel time of one
// minute per UnitsPerMinute distance units, rounded half up.
//
// Built-in maps are exposed as scenarios; "downtown" is the default city map.
package network
