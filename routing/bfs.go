// Package routing answers shortest-path and distance queries over the cell
// graph. All traversals are iterative breadth-first searches in stored
// neighbor order, so results are deterministic for a given snapshot.
package routing

import (
	"fmt"

	"github.com/formiclabs/formic/model"
)

// UnreachableError reports a query between two cells with no connecting
// path. The contest guarantees a connected map, so seeing this usually means
// the snapshot was corrupted upstream.
type UnreachableError struct {
	Source      int
	Destination int
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("no path from cell %d to cell %d", e.Source, e.Destination)
}

// ShortestPath returns the cell indices from source to destination,
// inclusive of both endpoints. Ties are broken by stored neighbor order: the
// first path discovered wins. ShortestPath(x, x) is [x].
func ShortestPath(g *model.Graph, source, destination int) ([]int, error) {
	if err := checkEndpoints(g, source, destination); err != nil {
		return nil, err
	}
	if source == destination {
		return []int{source}, nil
	}

	// prev[i] is the first-discovering predecessor of cell i, -1 if unseen.
	prev := make([]int, g.Len())
	for i := range prev {
		prev[i] = -1
	}
	prev[source] = source

	queue := []int{source}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == destination {
			path := []int{current}
			for current != source {
				current = prev[current]
				path = append(path, current)
			}
			reverse(path)
			return path, nil
		}

		for _, neighbor := range g.Neighbors(current) {
			if prev[neighbor] != -1 {
				continue
			}
			prev[neighbor] = current
			queue = append(queue, neighbor)
		}
	}
	return nil, &UnreachableError{Source: source, Destination: destination}
}

// Distance returns the number of edges on a shortest path from source to
// destination. Distance(x, x) is 0.
func Distance(g *model.Graph, source, destination int) (int, error) {
	if err := checkEndpoints(g, source, destination); err != nil {
		return 0, err
	}
	if source == destination {
		return 0, nil
	}

	seen := make([]bool, g.Len())
	seen[source] = true

	type entry struct {
		cell     int
		distance int
	}
	queue := []entry{{source, 0}}
	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]

		for _, neighbor := range g.Neighbors(e.cell) {
			if seen[neighbor] {
				continue
			}
			if neighbor == destination {
				return e.distance + 1, nil
			}
			seen[neighbor] = true
			queue = append(queue, entry{neighbor, e.distance + 1})
		}
	}
	return 0, &UnreachableError{Source: source, Destination: destination}
}

// ClosestCell finds the nearest cell of the given kind that still holds
// resources, searching outward from source in breadth-first order. A cell of
// the right kind at the source itself counts. Returns ok=false when every
// reachable cell of that kind is depleted or absent.
func ClosestCell(g *model.Graph, source int, kind model.CellKind) (index, distance int, ok bool) {
	if !g.Valid(source) {
		return 0, 0, false
	}

	seen := make([]bool, g.Len())
	seen[source] = true

	type entry struct {
		cell     int
		distance int
	}
	queue := []entry{{source, 0}}
	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]

		if g.Kind(e.cell) == kind && g.Resources(e.cell) != 0 {
			return e.cell, e.distance, true
		}

		for _, neighbor := range g.Neighbors(e.cell) {
			if seen[neighbor] {
				continue
			}
			seen[neighbor] = true
			queue = append(queue, entry{neighbor, e.distance + 1})
		}
	}
	return 0, 0, false
}

func checkEndpoints(g *model.Graph, source, destination int) error {
	if !g.Valid(source) {
		return fmt.Errorf("source cell %d out of range", source)
	}
	if !g.Valid(destination) {
		return fmt.Errorf("destination cell %d out of range", destination)
	}
	return nil
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
