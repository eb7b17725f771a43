package groupstage

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrBadGroupSize = errors.New("group must contain exactly 4 teams")
	ErrUnknownTeam  = errors.New("group references an unknown team code")
)
