package bracket

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrMalformedTemplate marks a bracket template that cannot be parsed
	// or fails structural validation. Fatal configuration error.
	ErrMalformedTemplate = errors.New("malformed bracket template")

	// ErrUnsolvableAssignment marks a third-place qualifying set that has
	// no valid bijection onto the eligibility slots. Fatal; never patched
	// with a greedy fallback.
	ErrUnsolvableAssignment = errors.New("unsolvable third-place slot assignment")

	// ErrUnknownGroup marks a slot referencing a group absent from the
	// standings tables.
	ErrUnknownGroup = errors.New("slot references unknown group")

	// ErrSlotUnresolved marks a best-third slot with no assigned group.
	// Distinct from a valid bye, which does not occur in this bracket.
	ErrSlotUnresolved = errors.New("slot has no assigned third-place group")
)
