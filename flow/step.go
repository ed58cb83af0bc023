package flow

import (
	"fmt"

	"github.com/formiclabs/formic/model"
	"github.com/formiclabs/formic/routing"
)

// OverdrawError reports that a turn's assignments would move more ants out
// of a cell than it holds. Nothing is applied when this happens.
type OverdrawError struct {
	Cell int
	Have int
	Want int
}

func (e *OverdrawError) Error() string {
	return fmt.Sprintf("overdraw on cell %d: %d ants present, %d assigned to move", e.Cell, e.Have, e.Want)
}

// Step advances every assignment one hop: the source cell loses the assigned
// amount and the first cell on the shortest path toward the destination
// gains it. An assignment whose source equals its destination is a no-op.
//
// All assignments are validated against the current counts before any of
// them is applied, so a bad batch leaves the graph untouched: paths must
// resolve, amounts must be non-negative, and the total outflow of each cell
// must not exceed the ants it holds.
func Step(g *model.Graph, side model.Side, assignments []model.MoveAssignment) error {
	type hop struct {
		from, to, amount int
	}

	hops := make([]hop, 0, len(assignments))
	outflow := make(map[int]int)
	for _, a := range assignments {
		if a.Amount < 0 {
			return fmt.Errorf("assignment %d->%d has negative amount %d", a.Source, a.Destination, a.Amount)
		}
		if a.Amount == 0 {
			continue
		}
		path, err := routing.ShortestPath(g, a.Source, a.Destination)
		if err != nil {
			return fmt.Errorf("step assignment %d->%d: %w", a.Source, a.Destination, err)
		}
		if len(path) < 2 {
			continue
		}
		hops = append(hops, hop{from: a.Source, to: path[1], amount: a.Amount})
		outflow[a.Source] += a.Amount
	}

	for cell, amount := range outflow {
		if have := g.Ants(cell, side); amount > have {
			return &OverdrawError{Cell: cell, Have: have, Want: amount}
		}
	}

	for _, h := range hops {
		g.Cells[h.from].Ants[side] -= h.amount
		g.Cells[h.to].Ants[side] += h.amount
	}
	return nil
}
