package rules

// Doctrine is the high-level harvesting posture steering intent generation.
// Priorities are 0.0–1.0; the compiler maps them to rule priorities.
type Doctrine struct {
	Name            string  `json:"name"`
	EggPriority     float64 `json:"egg_priority"`     // appetite for growing the colony
	CrystalPriority float64 `json:"crystal_priority"` // appetite for scoring
	EggRushRadius   int     `json:"egg_rush_radius"`  // eggs within this distance preempt crystals
	LineStrength    int     `json:"line_strength"`    // strength weight on emitted LINE intents
}

// DefaultDoctrine mirrors the baseline bot: rush nearby eggs, otherwise
// gather crystals, at full line strength.
func DefaultDoctrine() Doctrine {
	return Doctrine{
		Name:            "balanced",
		EggPriority:     0.6,
		CrystalPriority: 0.5,
		EggRushRadius:   5,
		LineStrength:    100,
	}
}

// Validate clamps all fields to their valid ranges.
func (d *Doctrine) Validate() {
	d.EggPriority = clamp(d.EggPriority, 0, 1)
	d.CrystalPriority = clamp(d.CrystalPriority, 0, 1)
	d.EggRushRadius = clampInt(d.EggRushRadius, 0, 50)
	d.LineStrength = clampInt(d.LineStrength, 1, 1000)
}

// clampInt restricts v to [min, max].
func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// clamp restricts v to [min, max].
func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
