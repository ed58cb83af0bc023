package model

import "fmt"

// Intent is a high-level directional command: concentrate strength along the
// shortest path from Source toward Destination. Strength is a relative
// weight, not a unit count; the allocator scales it against the side's total
// ants.
type Intent struct {
	Source      int
	Destination int
	Strength    int
}

// Beacon is a weighted waypoint. Expanding an Intent yields one beacon per
// cell along the shortest path, each carrying the intent's strength.
type Beacon struct {
	Location int
	Strength int
}

// MoveAssignment is a concrete instruction: move Amount ants from the Source
// cell one hop along the shortest path toward Destination. Assignments are
// produced fresh each turn and never persisted.
type MoveAssignment struct {
	Source      int
	Destination int
	Amount      int
}

// ActionKind discriminates the Action sum type.
type ActionKind int

const (
	ActionWait ActionKind = iota
	ActionLine
	ActionBeacon
	ActionMessage
)

// Action is one entry of a turn's output, mirroring the contest command
// vocabulary. Exactly one of the payload fields is meaningful per kind.
type Action struct {
	Kind    ActionKind
	Line    Intent
	Beacon  Beacon
	Message string
}

// Wait returns the no-op action.
func Wait() Action { return Action{Kind: ActionWait} }

// Line returns an action carrying a directional intent.
func Line(intent Intent) Action { return Action{Kind: ActionLine, Line: intent} }

// PlaceBeacon returns an action carrying a single beacon.
func PlaceBeacon(b Beacon) Action { return Action{Kind: ActionBeacon, Beacon: b} }

// Message returns a chat action.
func Message(text string) Action { return Action{Kind: ActionMessage, Message: text} }

func (a Action) String() string {
	switch a.Kind {
	case ActionWait:
		return "WAIT"
	case ActionLine:
		return fmt.Sprintf("LINE %d %d %d", a.Line.Source, a.Line.Destination, a.Line.Strength)
	case ActionBeacon:
		return fmt.Sprintf("BEACON %d %d", a.Beacon.Location, a.Beacon.Strength)
	case ActionMessage:
		return fmt.Sprintf("MESSAGE %s", a.Message)
	}
	return "WAIT"
}
