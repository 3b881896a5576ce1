package transform

import (
	"strings"
	"unicode"
)

// WhitespaceNormalizer collapses every run of blank characters in a line
// into a single space and drops leading and trailing blanks.
type WhitespaceNormalizer struct{}

// NewWhitespaceNormalizer creates a new whitespace normalizer.
func NewWhitespaceNormalizer() *WhitespaceNormalizer {
	return &WhitespaceNormalizer{}
}

// Name returns the registry name.
func (n *WhitespaceNormalizer) Name() string {
	return "squeeze"
}

// Description returns a one-line summary.
func (n *WhitespaceNormalizer) Description() string {
	return "Collapse runs of blanks into one space and trim both ends of each line"
}

// TransformLine never fails; an all-blank line becomes the empty string.
func (n *WhitespaceNormalizer) TransformLine(line string) (string, error) {
	return strings.Join(strings.FieldsFunc(line, IsBlank), " "), nil
}

// IsBlank reports whether r separates tokens. This is unicode.IsSpace
// plus the ASCII file, group, record and unit separators.
func IsBlank(r rune) bool {
	if r >= 0x1c && r <= 0x1f {
		return true
	}
	return unicode.IsSpace(r)
}

func init() {
	Register("squeeze", func() Transformer { return NewWhitespaceNormalizer() })
}
