package game

import (
	"fmt"
	"strings"
)

// Action represents a player decision on a hand
type Action int

const (
	Hit Action = iota
	Stand
	Double
	Split
	Insurance
)

func (a Action) String() string {
	switch a {
	case Hit:
		return "HIT"
	case Stand:
		return "STAND"
	case Double:
		return "DOUBLE"
	case Split:
		return "SPLIT"
	case Insurance:
		return "INSURANCE"
	default:
		return "UNKNOWN"
	}
}

// ParseAction converts a driver-supplied label into an Action. Labels are
// case-insensitive and may be abbreviated to a single letter. Unknown labels
// are reported as an error, never applied to a hand.
func ParseAction(s string) (Action, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "HIT", "H":
		return Hit, nil
	case "STAND", "S":
		return Stand, nil
	case "DOUBLE", "D":
		return Double, nil
	case "SPLIT", "P":
		return Split, nil
	case "INSURANCE", "I":
		return Insurance, nil
	default:
		return 0, fmt.Errorf("unknown action %q", s)
	}
}
