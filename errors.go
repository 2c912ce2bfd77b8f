package propbind

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedLine matches properties lines lacking a key=value separator.
	ErrMalformedLine = errors.New("malformed properties line")
	// ErrMissingField matches required fields with no resolvable value.
	ErrMissingField = errors.New("required property not configured")
	// ErrConversion matches raw values that failed to parse into their declared kind.
	ErrConversion = errors.New("property conversion failed")
)

// MalformedLineError identifies the offending line of an unparseable
// properties source.
type MalformedLineError struct {
	Line int
	Text string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("malformed properties line %d (missing '='): %q", e.Line, e.Text)
}

func (e *MalformedLineError) Unwrap() error { return ErrMalformedLine }

// MissingFieldError names the field whose resolution reached absence while
// its kind requires a value.
type MissingFieldError struct {
	Key string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("property %q is required but not configured", e.Key)
}

func (e *MissingFieldError) Unwrap() error { return ErrMissingField }

// ConversionError carries the field key, the raw value and the declared kind
// of a failed conversion. For list fields, Raw is the failing segment.
type ConversionError struct {
	Key  string
	Raw  string
	Type string
	Err  error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("property %q: cannot parse %q as %s: %v", e.Key, e.Raw, e.Type, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }

func (e *ConversionError) Is(target error) bool { return target == ErrConversion }
