package rules

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/formiclabs/formic/model"
)

// Engine runs compiled rules against a graph snapshot each turn.
// Rules fire in priority order; exclusive rules block lower-priority rules
// in the same category, so only one harvest order goes out per turn.
type Engine struct {
	rules  []*Rule
	Memory map[string]any
}

// NewEngine compiles all rule conditions into expr bytecode and sorts by
// priority. A condition that fails to compile rejects the whole set.
func NewEngine(rules []*Rule) (*Engine, error) {
	compiled, err := compileRules(rules)
	if err != nil {
		return nil, err
	}
	return &Engine{
		rules:  compiled,
		Memory: make(map[string]any),
	}, nil
}

// Evaluate runs all rules against the current snapshot for one side and
// returns the collected intents. An empty result means WAIT.
func (e *Engine) Evaluate(g *model.Graph, side model.Side) ([]model.Intent, error) {
	env := Env{Graph: g, Side: side, Memory: e.Memory}
	fired := make(map[string]bool) // category → exclusive rule already fired

	var intents []model.Intent
	for _, r := range e.rules {
		if fired[r.Category] {
			continue
		}

		result, err := vm.Run(r.program, env)
		if err != nil {
			slog.Warn("rule condition error", "rule", r.Name, "error", err)
			continue
		}

		match, ok := result.(bool)
		if !ok || !match {
			continue
		}

		slog.Debug("rule fired", "rule", r.Name, "priority", r.Priority, "category", r.Category)

		produced, err := r.Action(env)
		if err != nil {
			slog.Error("rule action error", "rule", r.Name, "error", err)
			continue
		}
		intents = append(intents, produced...)

		if r.Exclusive {
			fired[r.Category] = true
		}
	}

	return intents, nil
}

// Swap replaces the rule set, e.g. after a doctrine reload. Compiles first;
// if compilation fails the old rules remain active.
func (e *Engine) Swap(newRules []*Rule) error {
	compiled, err := compileRules(newRules)
	if err != nil {
		return err
	}
	names := make([]string, len(compiled))
	for i, r := range compiled {
		names[i] = r.Name
	}
	e.rules = compiled
	slog.Info("rule set swapped", "count", len(compiled), "rules", names)
	return nil
}

func compileRules(rules []*Rule) ([]*Rule, error) {
	for _, r := range rules {
		prog, err := expr.Compile(r.ConditionSrc, expr.Env(Env{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("compile rule %q: %w", r.Name, err)
		}
		r.program = prog
	}
	sort.Slice(rules, func(i, j int) bool {
		return rules[i].Priority > rules[j].Priority
	})
	return rules, nil
}
