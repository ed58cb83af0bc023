// Package engine drives one side's turns. Each turn has two halves: deciding
// (rules evaluate the snapshot into intents) and routing (intents expand to
// beacons, the allocator rations ants across them, and every assignment
// advances one hop).
package engine

import (
	"fmt"
	"log/slog"

	"github.com/formiclabs/formic/flow"
	"github.com/formiclabs/formic/model"
	"github.com/formiclabs/formic/rules"
)

// Engine owns the decision-making for one side.
type Engine struct {
	Rules *rules.Engine
	Side  model.Side
}

func New(rulesEngine *rules.Engine, side model.Side) *Engine {
	return &Engine{Rules: rulesEngine, Side: side}
}

// PlayTurn evaluates the rule set against the current snapshot and returns
// the actions to emit. It does not mutate the graph; the external referee
// owns the authoritative state. An empty action list means WAIT.
func (e *Engine) PlayTurn(g *model.Graph) ([]model.Action, error) {
	intents, err := e.Rules.Evaluate(g, e.Side)
	if err != nil {
		return nil, fmt.Errorf("evaluate rules: %w", err)
	}

	actions := make([]model.Action, 0, len(intents))
	for _, intent := range intents {
		actions = append(actions, model.Line(intent))
	}

	slog.Debug("turn played",
		"side", e.Side,
		"intents", len(intents),
		"ants", g.TotalAnts(e.Side),
	)
	return actions, nil
}

// Advance resolves a set of intents against the graph: every intent expands
// into beacons along its shortest path, the allocator converts beacons and
// current ant counts into move assignments, and the step engine applies
// them. Used by the local simulation to model what the referee does with
// the emitted commands.
//
// The returned assignments are what was applied. Any failure (unreachable
// intent, no units, overdraw) propagates before the graph is touched.
func Advance(g *model.Graph, side model.Side, intents []model.Intent) ([]model.MoveAssignment, error) {
	if len(intents) == 0 {
		return nil, nil
	}

	var beacons []model.Beacon
	for _, intent := range intents {
		expanded, err := flow.ExpandIntent(g, intent)
		if err != nil {
			return nil, err
		}
		beacons = append(beacons, expanded...)
	}

	assignments, err := flow.Allocate(g, side, beacons)
	if err != nil {
		return nil, fmt.Errorf("allocate %d beacons: %w", len(beacons), err)
	}
	if err := flow.Step(g, side, assignments); err != nil {
		return nil, fmt.Errorf("apply %d assignments: %w", len(assignments), err)
	}

	slog.Debug("intents advanced",
		"side", side,
		"beacons", len(beacons),
		"assignments", len(assignments),
	)
	return assignments, nil
}
