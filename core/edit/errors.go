package edit

import "errors"

var (
	// ErrLengthMismatch: aligned rows differ in length, or a column is gapped in both rows.
	ErrLengthMismatch = errors.New("length mismatch")
	// ErrInconsistentScript: the script does not consume exactly the symbols of x and y.
	ErrInconsistentScript = errors.New("inconsistent edit script")
	// ErrUnknownOperation: a character outside {M, I, D}.
	ErrUnknownOperation = errors.New("unknown edit operation")
	// ErrGapInSequence: an ungapped sequence contains the gap symbol.
	ErrGapInSequence = errors.New("gap symbol in ungapped sequence")
	// ErrBadRun: a CIGAR run is missing its count, its count is zero, or it
	// expands past the script size cap.
	ErrBadRun = errors.New("malformed CIGAR run")
	// ErrInvalidEncoding: a sequence or row is not valid UTF-8.
	ErrInvalidEncoding = errors.New("invalid UTF-8")
)
