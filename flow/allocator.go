package flow

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/formiclabs/formic/model"
	"github.com/formiclabs/formic/routing"
)

// ErrNoUnits is returned when allocation is requested for a side that has no
// ants anywhere on the graph. The demand scaling divides by the side's total
// unit count, so this is a configuration error, not an empty result.
var ErrNoUnits = errors.New("flow: no units available to allocate")

// source tracks one cell's remaining unassigned ants during allocation.
type source struct {
	location int
	ants     int
}

// sink tracks one beacon's remaining demand. wiggle is extra capacity that
// only the straggler pass may spend; it derives from the rounding gap of the
// scaled strength and can be negative when the scaling factor is below one.
type sink struct {
	location int
	demand   int
	wiggle   int
}

// pair is a candidate (source, sink) match, ranked by graph distance.
type pair struct {
	distance int
	source   int // index into the sources slice
	sink     int // index into the sinks slice
}

// Allocate rations a side's ants across the given beacons and returns the
// per-source move assignments. Beacon strengths are relative weights: each
// beacon's demand is its strength scaled by totalStrength/totalAnts, floored,
// and never below one ant.
//
// Assignment is nearest-first greedy, not an optimal transport solve. The
// sorted pair list is walked twice: a primary pass against baseline demands,
// then straggler passes with each sink's wiggle room enabled to drain sources
// that still hold ants. Pairs drop out as their source exhausts; the loop
// also ends after a walk that assigns nothing, which happens when every
// remaining sink is saturated. Assignments never carry a zero amount and
// never exceed what their source holds.
func Allocate(g *model.Graph, side model.Side, beacons []model.Beacon) ([]model.MoveAssignment, error) {
	if len(beacons) == 0 {
		return nil, nil
	}

	var sources []source
	totalAnts := 0
	for i := range g.Cells {
		if ants := g.Ants(i, side); ants > 0 {
			sources = append(sources, source{location: i, ants: ants})
			totalAnts += ants
		}
	}
	if totalAnts == 0 {
		return nil, ErrNoUnits
	}

	totalStrength := 0
	for _, b := range beacons {
		totalStrength += b.Strength
	}
	scaling := float64(totalStrength) / float64(totalAnts)

	sinks := make([]sink, len(beacons))
	for i, b := range beacons {
		scaled := float64(b.Strength) * scaling
		sinks[i] = sink{
			location: b.Location,
			demand:   max(int(math.Floor(scaled)), 1),
			// Note the mixed units: the ceiling of the scaled strength minus
			// the raw strength. Kept as observed in the reference bot.
			wiggle: int(math.Ceil(scaled)) - b.Strength,
		}
	}

	pairs := make([]pair, 0, len(sources)*len(sinks))
	for si := range sources {
		for ki := range sinks {
			d, err := routing.Distance(g, sources[si].location, sinks[ki].location)
			if err != nil {
				return nil, fmt.Errorf("pairing source %d with sink %d: %w", sources[si].location, sinks[ki].location, err)
			}
			pairs = append(pairs, pair{distance: d, source: si, sink: ki})
		}
	}
	// Stable keeps insertion order on equal distances, so ties resolve by
	// source then sink position.
	sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].distance < pairs[j].distance })

	var assignments []model.MoveAssignment
	stragglers := false
	for len(pairs) > 0 {
		progressed := false
		for _, p := range pairs {
			src := &sources[p.source]
			snk := &sinks[p.sink]

			wiggle := 0
			if stragglers {
				wiggle = snk.wiggle
			}
			capacity := max(snk.demand+wiggle, 0)
			size := min(capacity, src.ants)
			if size <= 0 {
				continue
			}
			assignments = append(assignments, model.MoveAssignment{
				Source:      src.location,
				Destination: snk.location,
				Amount:      size,
			})
			src.ants -= size
			snk.demand -= size - wiggle
			snk.wiggle -= wiggle
			progressed = true
		}

		remaining := pairs[:0]
		for _, p := range pairs {
			if sources[p.source].ants > 0 {
				remaining = append(remaining, p)
			}
		}
		pairs = remaining

		if !progressed {
			// Every sink is saturated; leftover ants hold position.
			break
		}
		stragglers = true
	}

	return assignments, nil
}
