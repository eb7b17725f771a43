// Package bracket turns symbolic knockout slots into concrete teams and
// solves the third-place-to-slot assignment as a constraint-satisfaction
// problem.
package bracket

import (
	"fmt"
	"sort"
	"strings"
)

// SlotKind tags the three symbolic slot forms a bracket template can hold.
type SlotKind int

// Slot kinds.
const (
	// GroupWinner resolves to the first-placed team of Group.
	GroupWinner SlotKind = iota
	// GroupRunnerUp resolves to the second-placed team of Group.
	GroupRunnerUp
	// BestThird resolves to a qualifying third-placed team from one of the
	// Eligible groups, chosen by the slot assignment.
	BestThird
)

// Slot is a parsed bracket position. Templates are parsed once at load time;
// no string form survives into resolution calls.
type Slot struct {
	Kind     SlotKind
	Group    string   // GroupWinner / GroupRunnerUp
	Eligible []string // BestThird, sorted group letters
}

// ParseSlot parses the template notation: "1A" (winner of A), "2B"
// (runner-up of B) or "3_ABCDF" (best third from one of A,B,C,D,F).
func ParseSlot(raw string) (Slot, error) {
	if strings.HasPrefix(raw, "3_") {
		letters := strings.Split(raw[2:], "")
		if len(letters) == 0 {
			return Slot{}, fmt.Errorf("slot %q has empty eligibility set: %w", raw, ErrMalformedTemplate)
		}
		sort.Strings(letters)
		return Slot{Kind: BestThird, Eligible: letters}, nil
	}

	if len(raw) != 2 {
		return Slot{}, fmt.Errorf("slot %q: %w", raw, ErrMalformedTemplate)
	}

	group := string(raw[1])
	switch raw[0] {
	case '1':
		return Slot{Kind: GroupWinner, Group: group}, nil
	case '2':
		return Slot{Kind: GroupRunnerUp, Group: group}, nil
	default:
		return Slot{}, fmt.Errorf("slot %q has unknown position %q: %w", raw, string(raw[0]), ErrMalformedTemplate)
	}
}

func (s Slot) String() string {
	switch s.Kind {
	case GroupWinner:
		return "1" + s.Group
	case GroupRunnerUp:
		return "2" + s.Group
	default:
		return "3_" + strings.Join(s.Eligible, "")
	}
}
