package rules

import (
	"fmt"
	"math"

	"github.com/formiclabs/formic/model"
)

// CompileDoctrine generates the rule set implementing a doctrine. All
// conditions are built via fmt.Sprintf with interpolated values, so the
// compiler never generates invalid expr.
//
// The harvest category is exclusive: at most one line intent per turn, egg
// rush preempting crystal gathering when eggs sit within the rush radius.
func CompileDoctrine(d Doctrine) []*Rule {
	d.Validate()
	var rules []*Rule

	eggPriority := 500 + int(math.Round(400*d.EggPriority))
	crystalPriority := 100 + int(math.Round(300*d.CrystalPriority))

	rules = append(rules, &Rule{
		Name:         "rush-eggs",
		Priority:     eggPriority,
		Category:     "harvest",
		Exclusive:    true,
		ConditionSrc: fmt.Sprintf(`TotalAnts() > 0 && HasEggs() && EggDistance() <= %d`, d.EggRushRadius),
		Action:       lineToClosest(model.Eggs, d.LineStrength),
	})

	rules = append(rules, &Rule{
		Name:         "gather-crystals",
		Priority:     crystalPriority,
		Category:     "harvest",
		Exclusive:    true,
		ConditionSrc: `TotalAnts() > 0 && HasCrystals()`,
		Action:       lineToClosest(model.Crystals, d.LineStrength),
	})

	// Eggs beyond the rush radius are still better than idling once the
	// crystals run out.
	rules = append(rules, &Rule{
		Name:         "gather-remaining-eggs",
		Priority:     50,
		Category:     "harvest",
		Exclusive:    true,
		ConditionSrc: `TotalAnts() > 0 && HasEggs()`,
		Action:       lineToClosest(model.Eggs, d.LineStrength),
	})

	return rules
}

// lineToClosest builds an action that draws a line from the base to the
// nearest non-depleted cell of the given kind.
func lineToClosest(kind model.CellKind, strength int) ActionFunc {
	return func(env Env) ([]model.Intent, error) {
		base := env.Base()
		if base < 0 {
			return nil, fmt.Errorf("no base for side %v", env.Side)
		}
		var target int
		switch kind {
		case model.Eggs:
			target = env.ClosestEggs()
		default:
			target = env.ClosestCrystals()
		}
		if target < 0 {
			return nil, nil
		}
		return []model.Intent{{Source: base, Destination: target, Strength: strength}}, nil
	}
}
