package model

import "fmt"

// CellKind classifies what a cell can hold. The integer values are the wire
// codes used by the snapshot format and must not be reordered.
type CellKind int

const (
	Empty    CellKind = 0 // no resource, traversal only
	Eggs     CellKind = 1 // harvesting yields extra ants
	Crystals CellKind = 2 // harvesting yields score
)

// KindFromCode converts a wire code to a CellKind.
func KindFromCode(code int) (CellKind, error) {
	switch code {
	case 0:
		return Empty, nil
	case 1:
		return Eggs, nil
	case 2:
		return Crystals, nil
	}
	return Empty, fmt.Errorf("invalid cell kind code %d", code)
}

func (k CellKind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Eggs:
		return "eggs"
	case Crystals:
		return "crystals"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Side indexes the two owners of ants on a cell. The data model hard-codes
// exactly two sides; a wider contest would turn this into a slice index.
type Side int

const (
	Allied Side = 0
	Enemy  Side = 1
)

// Other returns the opposing side.
func (s Side) Other() Side {
	if s == Allied {
		return Enemy
	}
	return Allied
}

func (s Side) String() string {
	if s == Allied {
		return "allied"
	}
	return "enemy"
}

// MaxNeighbors is the adjacency limit of the hex grid: each cell touches at
// most six others.
const MaxNeighbors = 6

// Cell is one node of the contest graph. Neighbor order is significant:
// breadth-first traversals visit neighbors in stored order, which is what
// makes path tie-breaking deterministic.
type Cell struct {
	Kind      CellKind
	Resources int
	Neighbors []int
	Ants      [2]int // indexed by Side
}
