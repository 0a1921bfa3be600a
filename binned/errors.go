package binned

import "errors"

var (
	// ErrLengthMismatch reports paired slices of unequal length. The output
	// buffer is left untouched when this is returned.
	ErrLengthMismatch = errors.New("binned: length mismatch")

	// ErrIndexOutOfRange reports a bin index outside [0, len(out)). Writes
	// before the offending position remain applied; see [Accumulate].
	ErrIndexOutOfRange = errors.New("binned: bin index out of range")
)
