package anim

import "fmt"

// Code classifies an Error.
type Code string

const (
	CodeAbsent     Code = "ABSENT"     // required argument not supplied
	CodeValidation Code = "VALIDATION" // malformed construction input
	CodeOverlap    Code = "OVERLAP"    // two motions would claim the same tick
	CodeNotFound   Code = "NOT_FOUND"  // unknown shape or motion
	CodeDuplicate  Code = "DUPLICATE"  // shape name already used
	CodeEmpty      Code = "EMPTY"      // integrity: shape has no motions
	CodeGap        Code = "GAP"        // integrity: adjacent motions do not touch
	CodeTeleport   Code = "TELEPORT"   // integrity: adjacent motions disagree at the boundary
	CodeRange      Code = "RANGE"      // tick outside the defined range

	// CodeIntegrity is never carried by a returned error. It only exists so that
	// ErrIntegrity can match EMPTY, GAP and TELEPORT alike.
	CodeIntegrity Code = "INTEGRITY"
)

// Error is the single error type returned by this package.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("[%s]", e.Code)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Is lets errors.Is match on codes, so callers compare against the sentinels below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Code == CodeIntegrity {
		return e.Code.Integrity()
	}
	return e.Code == t.Code
}

// Integrity reports whether the code describes a broken timeline.
func (c Code) Integrity() bool {
	switch c {
	case CodeEmpty, CodeGap, CodeTeleport, CodeIntegrity:
		return true
	default:
		return false
	}
}

// Sentinels for errors.Is.
var (
	ErrAbsent     = &Error{Code: CodeAbsent}
	ErrValidation = &Error{Code: CodeValidation}
	ErrOverlap    = &Error{Code: CodeOverlap}
	ErrNotFound   = &Error{Code: CodeNotFound}
	ErrDuplicate  = &Error{Code: CodeDuplicate}
	ErrEmpty      = &Error{Code: CodeEmpty}
	ErrGap        = &Error{Code: CodeGap}
	ErrTeleport   = &Error{Code: CodeTeleport}
	ErrRange      = &Error{Code: CodeRange}
	ErrIntegrity  = &Error{Code: CodeIntegrity}
)

func newError(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}
