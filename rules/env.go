package rules

import (
	"math"

	"github.com/formiclabs/formic/model"
	"github.com/formiclabs/formic/routing"
)

// unreachableDistance is what distance helpers report when no matching cell
// exists, so "within N" conditions stay simple in expr.
const unreachableDistance = math.MaxInt32

// Env wraps one side's view of the graph and exposes helper methods callable
// from expr conditions. Memory persists across turns for rule bookkeeping.
type Env struct {
	Graph  *model.Graph
	Side   model.Side
	Memory map[string]any
}

// Base returns the side's primary base cell, or -1 if the snapshot carries
// no base for it.
func (e Env) Base() int {
	return e.Graph.Base(e.Side)
}

// TotalAnts is the side's unit count across the whole graph.
func (e Env) TotalAnts() int {
	return e.Graph.TotalAnts(e.Side)
}

// EnemyTotalAnts is the opposing side's unit count across the whole graph.
func (e Env) EnemyTotalAnts() int {
	return e.Graph.TotalAnts(e.Side.Other())
}

// AntsAt returns the side's unit count on one cell.
func (e Env) AntsAt(cell int) int {
	if !e.Graph.Valid(cell) {
		return 0
	}
	return e.Graph.Ants(cell, e.Side)
}

// HasEggs reports whether any reachable egg cell still holds resources.
func (e Env) HasEggs() bool {
	_, _, ok := e.closest(model.Eggs)
	return ok
}

// HasCrystals reports whether any reachable crystal cell still holds resources.
func (e Env) HasCrystals() bool {
	_, _, ok := e.closest(model.Crystals)
	return ok
}

// ClosestEggs returns the nearest non-depleted egg cell, or -1.
func (e Env) ClosestEggs() int {
	index, _, ok := e.closest(model.Eggs)
	if !ok {
		return -1
	}
	return index
}

// ClosestCrystals returns the nearest non-depleted crystal cell, or -1.
func (e Env) ClosestCrystals() int {
	index, _, ok := e.closest(model.Crystals)
	if !ok {
		return -1
	}
	return index
}

// EggDistance is the distance from the base to the nearest non-depleted egg
// cell, or a very large value when none exists.
func (e Env) EggDistance() int {
	_, distance, ok := e.closest(model.Eggs)
	if !ok {
		return unreachableDistance
	}
	return distance
}

// CrystalDistance is the distance from the base to the nearest non-depleted
// crystal cell, or a very large value when none exists.
func (e Env) CrystalDistance() int {
	_, distance, ok := e.closest(model.Crystals)
	if !ok {
		return unreachableDistance
	}
	return distance
}

func (e Env) closest(kind model.CellKind) (index, distance int, ok bool) {
	base := e.Base()
	if base < 0 {
		return 0, 0, false
	}
	return routing.ClosestCell(e.Graph, base, kind)
}
