package rules

import (
	"testing"

	"github.com/formiclabs/formic/model"
)

// harvestMap builds a 5-cell chain: base 0, eggs at 1 (depleted) and 3,
// crystals at 4. Enemy base at 4.
func harvestMap(t *testing.T) *model.Graph {
	t.Helper()
	cells := []model.Cell{
		{Kind: model.Empty, Neighbors: []int{1}, Ants: [2]int{10, 0}},
		{Kind: model.Eggs, Resources: 0, Neighbors: []int{0, 2}},
		{Kind: model.Empty, Neighbors: []int{1, 3}},
		{Kind: model.Eggs, Resources: 6, Neighbors: []int{2, 4}},
		{Kind: model.Crystals, Resources: 40, Neighbors: []int{3}, Ants: [2]int{0, 8}},
	}
	g, err := model.NewGraph(cells, []int{0}, []int{4})
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	return g
}

func TestEnvBasics(t *testing.T) {
	g := harvestMap(t)
	env := Env{Graph: g, Side: model.Allied, Memory: map[string]any{}}

	if env.Base() != 0 {
		t.Errorf("Base() = %d, want 0", env.Base())
	}
	if env.TotalAnts() != 10 {
		t.Errorf("TotalAnts() = %d, want 10", env.TotalAnts())
	}
	if env.EnemyTotalAnts() != 8 {
		t.Errorf("EnemyTotalAnts() = %d, want 8", env.EnemyTotalAnts())
	}
	if env.AntsAt(0) != 10 || env.AntsAt(4) != 0 {
		t.Errorf("AntsAt = (%d, %d), want (10, 0)", env.AntsAt(0), env.AntsAt(4))
	}
	if env.AntsAt(-3) != 0 {
		t.Error("AntsAt out of range should be 0")
	}
}

func TestEnvClosestHelpersSkipDepleted(t *testing.T) {
	g := harvestMap(t)
	env := Env{Graph: g, Side: model.Allied}

	if !env.HasEggs() {
		t.Error("HasEggs() = false, want true")
	}
	// Cell 1 is depleted; the nearest live egg cell is 3.
	if got := env.ClosestEggs(); got != 3 {
		t.Errorf("ClosestEggs() = %d, want 3", got)
	}
	if got := env.EggDistance(); got != 3 {
		t.Errorf("EggDistance() = %d, want 3", got)
	}
	if got := env.ClosestCrystals(); got != 4 {
		t.Errorf("ClosestCrystals() = %d, want 4", got)
	}
}

func TestEnvNoResources(t *testing.T) {
	cells := []model.Cell{
		{Neighbors: []int{1}},
		{Neighbors: []int{0}},
	}
	g, err := model.NewGraph(cells, []int{0}, []int{1})
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	env := Env{Graph: g, Side: model.Allied}

	if env.HasEggs() || env.HasCrystals() {
		t.Error("resource helpers found resources on a bare graph")
	}
	if env.ClosestEggs() != -1 {
		t.Errorf("ClosestEggs() = %d, want -1", env.ClosestEggs())
	}
	if env.EggDistance() != unreachableDistance {
		t.Errorf("EggDistance() = %d, want sentinel", env.EggDistance())
	}
}

func TestEnvEnemyPerspective(t *testing.T) {
	g := harvestMap(t)
	env := Env{Graph: g, Side: model.Enemy}

	if env.Base() != 4 {
		t.Errorf("enemy Base() = %d, want 4", env.Base())
	}
	if env.TotalAnts() != 8 {
		t.Errorf("enemy TotalAnts() = %d, want 8", env.TotalAnts())
	}
	// Measured from the enemy base: eggs at 3 are one hop away.
	if got := env.EggDistance(); got != 1 {
		t.Errorf("enemy EggDistance() = %d, want 1", got)
	}
}
