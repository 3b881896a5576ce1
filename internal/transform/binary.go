package transform

import (
	"fmt"
	"math/big"
	"strings"
)

// BinaryDecoder keeps only the '0' and '1' characters of a line and
// rewrites them as a decimal integer.
type BinaryDecoder struct{}

// NewBinaryDecoder creates a new binary line decoder.
func NewBinaryDecoder() *BinaryDecoder {
	return &BinaryDecoder{}
}

// Name returns the registry name.
func (d *BinaryDecoder) Name() string {
	return "binary"
}

// Description returns a one-line summary.
func (d *BinaryDecoder) Description() string {
	return "Strip everything but 0/1 from each line and print the value in decimal"
}

// TransformLine decodes the binary digits of line, most significant bit
// first. Values are not limited to any machine word size.
func (d *BinaryDecoder) TransformLine(line string) (string, error) {
	digits := FilterBinaryDigits(line)
	if digits == "" {
		return "", ErrEmptyNumeral
	}

	value, ok := new(big.Int).SetString(digits, 2)
	if !ok {
		return "", fmt.Errorf("invalid binary numeral %q", digits)
	}
	return value.String(), nil
}

// FilterBinaryDigits returns the '0' and '1' characters of s in order.
func FilterBinaryDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	// '0' and '1' never occur inside a multi-byte UTF-8 sequence, so a
	// byte scan is enough.
	for i := 0; i < len(s); i++ {
		if c := s[i]; c == '0' || c == '1' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

func init() {
	Register("binary", func() Transformer { return NewBinaryDecoder() })
}
