package bracket

import (
	"fmt"
	"sort"

	"github.com/mondialsim/mondial/internal/domain/groupstage"
	"github.com/mondialsim/mondial/pkg/metrics"
)

// AssignThirdPlaceSlots maps the 8 qualifying groups onto the template's 8
// best-third slots so that each group lands only in a slot whose eligibility
// set contains it. Depth-first backtracking over slots in ascending match-id
// order, trying eligible groups in ascending order; the taken set is
// restored on every dead end.
//
// The standard eligibility table always admits a solution. Failure therefore
// signals a broken scenario or template and is returned as
// ErrUnsolvableAssignment, never patched greedily.
func AssignThirdPlaceSlots(t *Template, qualifying []string) (map[int]string, error) {
	slots := t.thirdPlaceMatchIDs()
	if len(qualifying) != len(slots) {
		return nil, fmt.Errorf("%d qualifying groups for %d slots: %w", len(qualifying), len(slots), ErrUnsolvableAssignment)
	}

	eligibility := t.ThirdPlaceEligibility()

	available := make(map[string]bool, len(qualifying))
	for _, g := range qualifying {
		available[g] = true
	}

	assignment := make(map[int]string, len(slots))

	var backtrack func(idx int) bool
	backtrack = func(idx int) bool {
		if idx == len(slots) {
			return true
		}
		id := slots[idx]

		candidates := make([]string, 0, len(eligibility[id]))
		for _, g := range eligibility[id] {
			if available[g] {
				candidates = append(candidates, g)
			}
		}
		sort.Strings(candidates)

		for _, g := range candidates {
			assignment[id] = g
			available[g] = false
			if backtrack(idx + 1) {
				return true
			}
			available[g] = true
			delete(assignment, id)
		}
		return false
	}

	if !backtrack(0) {
		metrics.RecordBracketResolutionFailure()
		return nil, fmt.Errorf("qualifying groups %v: %w", qualifying, ErrUnsolvableAssignment)
	}
	return assignment, nil
}

// ResolveSlot turns a parsed slot into a concrete team code given the group
// tables and the third-place assignment. matchID identifies the Round-of-32
// match the slot belongs to, which selects the assigned group for best-third
// slots.
//
// A missing assignment is returned as ErrSlotUnresolved: it is a distinct
// condition from a valid bye (which does not exist in this bracket) and must
// never be treated as a match to skip.
func ResolveSlot(s Slot, matchID int, tables map[string][]*groupstage.Standing, assignment map[int]string) (string, error) {
	switch s.Kind {
	case GroupWinner:
		return teamAt(tables, s.Group, 0)
	case GroupRunnerUp:
		return teamAt(tables, s.Group, 1)
	case BestThird:
		group, ok := assignment[matchID]
		if !ok {
			return "", fmt.Errorf("match %d slot %s: %w", matchID, s, ErrSlotUnresolved)
		}
		return teamAt(tables, group, 2)
	default:
		return "", fmt.Errorf("slot kind %d: %w", s.Kind, ErrMalformedTemplate)
	}
}

func teamAt(tables map[string][]*groupstage.Standing, group string, position int) (string, error) {
	table, ok := tables[group]
	if !ok || position >= len(table) {
		return "", fmt.Errorf("group %s position %d: %w", group, position+1, ErrUnknownGroup)
	}
	return table[position].Team, nil
}
