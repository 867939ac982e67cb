// Command citymap plans a delivery across one of the built-in city maps.
//
//	citymap -from "Taco Town" -to "Customer W"
//	citymap -scenario downtown -list
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/deliveryroute/internal/config"
	"github.com/katalvlaran/deliveryroute/internal/logging"
	"github.com/katalvlaran/deliveryroute/network"
)

func main() {
	scenario := flag.String("scenario", network.DefaultScenario, "built-in map to load")
	from := flag.String("from", "", "pickup location id")
	to := flag.String("to", "", "drop-off location id")
	list := flag.Bool("list", false, "list scenarios and locations, then exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := logging.New(cfg.Logging, os.Stderr)

	n, err := network.Load(*scenario)
	if err != nil {
		logger.Error("failed to load scenario", "scenario", *scenario, "error", err)
		os.Exit(1)
	}

	if *list {
		printCatalog(os.Stdout, n)
		return
	}
	if *from == "" || *to == "" {
		fmt.Fprintln(os.Stderr, "both -from and -to are required")
		flag.Usage()
		os.Exit(2)
	}

	route, err := n.Route(*from, *to)
	if err != nil {
		logger.Error("route failed", "from", *from, "to", *to, "error", err)
		os.Exit(1)
	}
	logger.Info("route computed", "scenario", *scenario, "from", *from, "to", *to, "reachable", route.Reachable)

	printRoute(os.Stdout, route, cfg.Route.PathSeparator)
	printStats(os.Stdout, n.Stats())
}

func printRoute(w io.Writer, r network.Route, sep string) {
	if !r.Reachable {
		fmt.Fprintf(w, "No delivery path from %s to %s.\n", r.From, r.To)
		return
	}

	fmt.Fprintf(w, "Total Distance: %d units\n", r.Distance)
	fmt.Fprintf(w, "Estimated Time: %.0f min\n", r.ETA.Minutes())
	fmt.Fprintf(w, "Route Path: %s\n", strings.Join(r.Path, sep))
	for _, leg := range r.Legs {
		fmt.Fprintf(w, "  %s -> %s: %d\n", leg.From, leg.To, leg.Distance)
	}
}

func printStats(w io.Writer, s network.Stats) {
	fmt.Fprintf(w, "Restaurants: %d, Customers: %d, Intersections: %d, Connections: %d\n",
		s.Restaurants, s.Customers, s.Intersections, s.Roads)
}

func printCatalog(w io.Writer, n *network.Network) {
	for _, s := range network.Scenarios() {
		fmt.Fprintf(w, "scenario %s (%s)\n", s.ID, s.Name)
	}
	for _, loc := range n.Locations() {
		fmt.Fprintf(w, "  %-16s %s\n", loc.ID, loc.Kind)
	}
}
