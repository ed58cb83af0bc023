package rules

import (
	"testing"

	"github.com/formiclabs/formic/model"
)

func TestNewEngineRejectsBadCondition(t *testing.T) {
	bad := []*Rule{{
		Name:         "broken",
		ConditionSrc: `NotAHelper(`,
		Action:       func(Env) ([]model.Intent, error) { return nil, nil },
	}}
	if _, err := NewEngine(bad); err == nil {
		t.Fatal("expected compile error")
	}
}

func TestEngineEggRushWithinRadius(t *testing.T) {
	g := harvestMap(t) // live eggs at distance 3, crystals at 4
	doctrine := DefaultDoctrine()
	doctrine.EggRushRadius = 5
	engine, err := NewEngine(CompileDoctrine(doctrine))
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	intents, err := engine.Evaluate(g, model.Allied)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if len(intents) != 1 {
		t.Fatalf("expected exactly 1 intent (exclusive harvest), got %v", intents)
	}
	in := intents[0]
	if in.Source != 0 || in.Destination != 3 {
		t.Errorf("intent = %+v, want line 0 -> 3 (closest live eggs)", in)
	}
	if in.Strength != doctrine.LineStrength {
		t.Errorf("strength = %d, want %d", in.Strength, doctrine.LineStrength)
	}
}

func TestEngineFallsBackToCrystals(t *testing.T) {
	g := harvestMap(t)
	doctrine := DefaultDoctrine()
	doctrine.EggRushRadius = 2 // eggs are at distance 3, out of rush range
	engine, err := NewEngine(CompileDoctrine(doctrine))
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	intents, err := engine.Evaluate(g, model.Allied)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if len(intents) != 1 {
		t.Fatalf("expected 1 intent, got %v", intents)
	}
	if intents[0].Destination != 4 {
		t.Errorf("intent = %+v, want line to crystals at 4", intents[0])
	}
}

func TestEngineRemainingEggsAfterCrystalsGone(t *testing.T) {
	g := harvestMap(t)
	g.Cells[4].Resources = 0 // crystals depleted
	doctrine := DefaultDoctrine()
	doctrine.EggRushRadius = 2
	engine, err := NewEngine(CompileDoctrine(doctrine))
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	intents, err := engine.Evaluate(g, model.Allied)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if len(intents) != 1 || intents[0].Destination != 3 {
		t.Errorf("intents = %v, want single line to far eggs at 3", intents)
	}
}

func TestEngineWaitsWithNoAnts(t *testing.T) {
	g := harvestMap(t)
	g.Cells[0].Ants[model.Allied] = 0
	engine, err := NewEngine(CompileDoctrine(DefaultDoctrine()))
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	intents, err := engine.Evaluate(g, model.Allied)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if len(intents) != 0 {
		t.Errorf("expected no intents with zero ants, got %v", intents)
	}
}

func TestEngineWaitsWhenEverythingDepleted(t *testing.T) {
	g := harvestMap(t)
	g.Cells[3].Resources = 0
	g.Cells[4].Resources = 0
	engine, err := NewEngine(CompileDoctrine(DefaultDoctrine()))
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	intents, err := engine.Evaluate(g, model.Allied)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if len(intents) != 0 {
		t.Errorf("expected no intents on a depleted map, got %v", intents)
	}
}

func TestEngineSwapKeepsOldRulesOnFailure(t *testing.T) {
	g := harvestMap(t)
	engine, err := NewEngine(CompileDoctrine(DefaultDoctrine()))
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	bad := []*Rule{{Name: "broken", ConditionSrc: `((`, Action: func(Env) ([]model.Intent, error) { return nil, nil }}}
	if err := engine.Swap(bad); err == nil {
		t.Fatal("expected Swap to fail")
	}

	intents, err := engine.Evaluate(g, model.Allied)
	if err != nil {
		t.Fatalf("Evaluate after failed swap: %v", err)
	}
	if len(intents) != 1 {
		t.Errorf("old rules should still fire, got %v", intents)
	}
}

func TestDoctrineValidateClamps(t *testing.T) {
	d := Doctrine{
		EggPriority:     2.5,
		CrystalPriority: -1,
		EggRushRadius:   999,
		LineStrength:    0,
	}
	d.Validate()
	if d.EggPriority != 1 || d.CrystalPriority != 0 {
		t.Errorf("priorities = (%v, %v), want (1, 0)", d.EggPriority, d.CrystalPriority)
	}
	if d.EggRushRadius != 50 {
		t.Errorf("radius = %d, want 50", d.EggRushRadius)
	}
	if d.LineStrength != 1 {
		t.Errorf("strength = %d, want 1", d.LineStrength)
	}
}

func TestCompileDoctrineAlwaysCompiles(t *testing.T) {
	// Extreme doctrines must still produce valid expr.
	doctrines := []Doctrine{
		{},
		{EggPriority: 1, CrystalPriority: 1, EggRushRadius: 50, LineStrength: 1000},
		{EggPriority: -5, CrystalPriority: 99, EggRushRadius: -3, LineStrength: -1},
	}
	for _, d := range doctrines {
		if _, err := NewEngine(CompileDoctrine(d)); err != nil {
			t.Errorf("doctrine %+v failed to compile: %v", d, err)
		}
	}
}
