package rules

import (
	"github.com/expr-lang/expr/vm"
	"github.com/formiclabs/formic/model"
)

// ActionFunc produces the intents a rule contributes when its condition
// holds. Returning no intents is valid (a rule may only update Memory).
type ActionFunc func(env Env) ([]model.Intent, error)

// Rule is the atomic unit of turn behavior: a condition → action pair.
// The engine evaluates rules by priority and uses Category + Exclusive to
// keep conflicting rules from issuing orders in the same turn.
type Rule struct {
	Name         string      // human-readable identifier
	Priority     int         // higher = evaluated first
	Category     string      // grouping for exclusive semantics
	Exclusive    bool        // if true, blocks lower-priority rules in same category
	ConditionSrc string      // expr source (preserved for serialization)
	program      *vm.Program // compiled bytecode
	Action       ActionFunc
}
