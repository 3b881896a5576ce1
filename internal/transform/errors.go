package transform

import (
	"errors"
	"fmt"
)

// ErrEmptyNumeral is returned by the binary decoder when a line holds no
// binary digits at all.
var ErrEmptyNumeral = errors.New("no binary digits to parse")

const maxQuotedInput = 64

// ParseError reports a line a transformation could not handle.
type ParseError struct {
	Transform string
	Line      int // 1-based
	Input     string
	Err       error
}

func (e *ParseError) Error() string {
	if e == nil {
		return "<nil>"
	}
	input := e.Input
	if len(input) > maxQuotedInput {
		input = input[:maxQuotedInput] + "..."
	}
	return fmt.Sprintf("%s: line %d: %v (input %q)", e.Transform, e.Line, e.Err, input)
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
