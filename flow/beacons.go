// Package flow turns directional intents into concrete ant movements: it
// expands intents into weighted beacons, rations the side's ants across the
// beacons with a nearest-first greedy allocator, and advances the result one
// hop per turn.
package flow

import (
	"fmt"

	"github.com/formiclabs/formic/model"
	"github.com/formiclabs/formic/routing"
)

// ExpandIntent converts one directional intent into beacons: one per cell on
// the shortest path from its source to its destination, endpoints included,
// each carrying the intent's strength unchanged.
func ExpandIntent(g *model.Graph, intent model.Intent) ([]model.Beacon, error) {
	path, err := routing.ShortestPath(g, intent.Source, intent.Destination)
	if err != nil {
		return nil, fmt.Errorf("expand intent %d->%d: %w", intent.Source, intent.Destination, err)
	}
	beacons := make([]model.Beacon, len(path))
	for i, location := range path {
		beacons[i] = model.Beacon{Location: location, Strength: intent.Strength}
	}
	return beacons, nil
}
