package knockout

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrFeederIncomplete marks a knockout match whose feeder match has no
	// winner yet. In a correctly driven pipeline this never happens; it is
	// reported instead of silently skipping the match, which would
	// under-populate later rounds.
	ErrFeederIncomplete = errors.New("feeder match has not produced a winner")
)
