package transcode

import (
	"errors"
	"fmt"
)

var (
	ErrHeaderBits = errors.New("invalid leading byte")
	ErrTooShort   = errors.New("truncated sequence")
	ErrTooLong    = errors.New("unexpected continuation byte")
	ErrOverlong   = errors.New("overlong encoding")
	ErrTooLarge   = errors.New("code point out of range")
	ErrSurrogate  = errors.New("invalid surrogate")
	ErrOther      = errors.New("transcoding failed")
)

// Sentinel returns the package sentinel matching k, or nil for Success.
func (k ErrorKind) Sentinel() error {
	switch k {
	case Success:
		return nil
	case HeaderBits:
		return ErrHeaderBits
	case TooShort:
		return ErrTooShort
	case TooLong:
		return ErrTooLong
	case Overlong:
		return ErrOverlong
	case TooLarge:
		return ErrTooLarge
	case Surrogate:
		return ErrSurrogate
	default:
		return ErrOther
	}
}

// Error describes the first ill-formed unit of an input.
type Error struct {
	Kind     ErrorKind
	Position int
}

func (e *Error) Error() string {
	return fmt.Sprintf("transcode: %s at input unit %d", e.Kind, e.Position)
}

// Unwrap returns the sentinel for the error kind so that errors.Is works with
// ErrTooShort and friends.
func (e *Error) Unwrap() error {
	return e.Kind.Sentinel()
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}
