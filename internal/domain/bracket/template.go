package bracket

import (
	"fmt"
	"sort"
)

// Expected bracket dimensions for the 48-team format.
const (
	roundOf32Matches = 16
	roundOf16Matches = 8
	quarterfinals    = 4
	semifinals       = 2
	bestThirdSlots   = 8
)

// RawMatch is one unparsed Round-of-32 pairing as the data layer ships it.
type RawMatch struct {
	ID    int
	SlotA string
	SlotB string
}

// Pairing is a parsed Round-of-32 match joining two symbolic slots.
type Pairing struct {
	ID    int
	SlotA Slot
	SlotB Slot
}

// Template is the fixed knockout topology: 16 Round-of-32 pairings and the
// index feeds that chain every later round to the winners of the previous
// one. Feed entries index into the previous round's winner list.
type Template struct {
	RoundOf32         []Pairing
	RoundOf16Feeds    [][2]int
	QuarterfinalFeeds [][2]int
	SemifinalFeeds    [][2]int
}

// ParseTemplate parses and validates a bracket template. Any structural
// defect is a fatal configuration error.
func ParseTemplate(r32 []RawMatch, r16Feeds, qfFeeds, sfFeeds [][2]int) (*Template, error) {
	if len(r32) != roundOf32Matches {
		return nil, fmt.Errorf("round of 32 has %d matches, want %d: %w", len(r32), roundOf32Matches, ErrMalformedTemplate)
	}

	t := &Template{
		RoundOf32:         make([]Pairing, 0, len(r32)),
		RoundOf16Feeds:    r16Feeds,
		QuarterfinalFeeds: qfFeeds,
		SemifinalFeeds:    sfFeeds,
	}

	thirdSlots := 0
	for _, raw := range r32 {
		slotA, err := ParseSlot(raw.SlotA)
		if err != nil {
			return nil, fmt.Errorf("match %d: %w", raw.ID, err)
		}
		slotB, err := ParseSlot(raw.SlotB)
		if err != nil {
			return nil, fmt.Errorf("match %d: %w", raw.ID, err)
		}
		for _, s := range []Slot{slotA, slotB} {
			if s.Kind == BestThird {
				thirdSlots++
			}
		}
		t.RoundOf32 = append(t.RoundOf32, Pairing{ID: raw.ID, SlotA: slotA, SlotB: slotB})
	}

	if thirdSlots != bestThirdSlots {
		return nil, fmt.Errorf("template has %d best-third slots, want %d: %w", thirdSlots, bestThirdSlots, ErrMalformedTemplate)
	}

	if err := validateFeeds(r16Feeds, roundOf16Matches, roundOf32Matches); err != nil {
		return nil, fmt.Errorf("round of 16 feeds: %w", err)
	}
	if err := validateFeeds(qfFeeds, quarterfinals, roundOf16Matches); err != nil {
		return nil, fmt.Errorf("quarterfinal feeds: %w", err)
	}
	if err := validateFeeds(sfFeeds, semifinals, quarterfinals); err != nil {
		return nil, fmt.Errorf("semifinal feeds: %w", err)
	}

	return t, nil
}

// ThirdPlaceEligibility returns the eligibility table: Round-of-32 match id
// to the sorted group letters its best-third slot accepts.
func (t *Template) ThirdPlaceEligibility() map[int][]string {
	eligibility := make(map[int][]string, bestThirdSlots)
	for _, p := range t.RoundOf32 {
		for _, s := range []Slot{p.SlotA, p.SlotB} {
			if s.Kind == BestThird {
				eligibility[p.ID] = s.Eligible
			}
		}
	}
	return eligibility
}

// thirdPlaceMatchIDs returns the best-third match ids in ascending order,
// which fixes the deterministic slot processing order of the solver.
func (t *Template) thirdPlaceMatchIDs() []int {
	ids := make([]int, 0, bestThirdSlots)
	for id := range t.ThirdPlaceEligibility() {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func validateFeeds(feeds [][2]int, wantLen, sourceLen int) error {
	if len(feeds) != wantLen {
		return fmt.Errorf("have %d pairings, want %d: %w", len(feeds), wantLen, ErrMalformedTemplate)
	}
	for _, feed := range feeds {
		for _, idx := range [2]int{feed[0], feed[1]} {
			if idx < 0 || idx >= sourceLen {
				return fmt.Errorf("feed index %d out of range [0,%d): %w", idx, sourceLen, ErrMalformedTemplate)
			}
		}
	}
	return nil
}
