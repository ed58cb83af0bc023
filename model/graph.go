package model

import "fmt"

// MalformedGraphError reports a structural defect found while building a
// Graph: a neighbor or base index pointing outside the cell arena.
type MalformedGraphError struct {
	Cell  int // cell holding the bad reference, -1 for base lists
	Index int // the out-of-range index
}

func (e *MalformedGraphError) Error() string {
	if e.Cell < 0 {
		return fmt.Sprintf("malformed graph: base index %d out of range", e.Index)
	}
	return fmt.Sprintf("malformed graph: cell %d references out-of-range neighbor %d", e.Cell, e.Index)
}

// Graph is the index-addressed arena of cells plus the base lists for both
// sides. Adjacency is stored by integer index rather than by pointer, so the
// graph may contain cycles freely. Construction validates every index; after
// that, lookups never bounds-check again.
type Graph struct {
	Cells []Cell
	Bases [2][]int // indexed by Side
}

// NewGraph validates the cell arena and base lists and assembles a Graph.
// Every neighbor index and base index must fall within [0, len(cells)).
func NewGraph(cells []Cell, alliedBases, enemyBases []int) (*Graph, error) {
	n := len(cells)
	for i, cell := range cells {
		if len(cell.Neighbors) > MaxNeighbors {
			return nil, fmt.Errorf("malformed graph: cell %d has %d neighbors, max %d", i, len(cell.Neighbors), MaxNeighbors)
		}
		for _, nb := range cell.Neighbors {
			if nb < 0 || nb >= n {
				return nil, &MalformedGraphError{Cell: i, Index: nb}
			}
		}
	}
	for _, bases := range [][]int{alliedBases, enemyBases} {
		for _, b := range bases {
			if b < 0 || b >= n {
				return nil, &MalformedGraphError{Cell: -1, Index: b}
			}
		}
	}
	return &Graph{
		Cells: cells,
		Bases: [2][]int{append([]int(nil), alliedBases...), append([]int(nil), enemyBases...)},
	}, nil
}

// Len returns the number of cells.
func (g *Graph) Len() int { return len(g.Cells) }

// Valid reports whether index names a cell.
func (g *Graph) Valid(index int) bool { return index >= 0 && index < len(g.Cells) }

// Kind returns the cell kind at index.
func (g *Graph) Kind(index int) CellKind { return g.Cells[index].Kind }

// Resources returns the remaining resource count at index.
func (g *Graph) Resources(index int) int { return g.Cells[index].Resources }

// Neighbors returns the stored-order adjacency list of a cell. The returned
// slice is the graph's own storage and must not be mutated.
func (g *Graph) Neighbors(index int) []int { return g.Cells[index].Neighbors }

// Ants returns the unit count a side holds on a cell.
func (g *Graph) Ants(index int, side Side) int { return g.Cells[index].Ants[side] }

// TotalAnts sums a side's units across every cell.
func (g *Graph) TotalAnts(side Side) int {
	total := 0
	for i := range g.Cells {
		total += g.Cells[i].Ants[side]
	}
	return total
}

// Base returns a side's primary base cell index.
func (g *Graph) Base(side Side) int {
	if len(g.Bases[side]) == 0 {
		return -1
	}
	return g.Bases[side][0]
}

// Clone deep-copies the graph, including per-cell neighbor lists, so a
// simulation can advance a copy while the caller keeps the original.
func (g *Graph) Clone() *Graph {
	cells := make([]Cell, len(g.Cells))
	copy(cells, g.Cells)
	for i := range cells {
		cells[i].Neighbors = append([]int(nil), cells[i].Neighbors...)
	}
	return &Graph{
		Cells: cells,
		Bases: [2][]int{
			append([]int(nil), g.Bases[Allied]...),
			append([]int(nil), g.Bases[Enemy]...),
		},
	}
}
