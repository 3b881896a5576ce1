package transform

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhitespaceNormalizer_TransformLine(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"  hello   world  ", "hello world"},
		{"", ""},
		{" \t  \v\f ", ""},
		{"a\tb  c", "a b c"},
		{"already normal", "already normal"},
		{"trailing cr\r", "trailing cr"},
		{"nbsp and　ideographic", "nbsp and ideographic"},
		{"unit\x1fsep", "unit sep"},
	}

	n := NewWhitespaceNormalizer()
	for _, tt := range tests {
		got, err := n.TransformLine(tt.line)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q", tt.line)
	}
}

var whitespaceCorpus = []string{
	"",
	"x",
	"   leading",
	"trailing   ",
	"  both  ends  ",
	"tabs\t\tand\tspaces  mixed",
	"LDI  R16 ,  0xFF\t; comment",
	" em space ",
	"one\x1ctwo\x1dthree",
}

func TestWhitespaceNormalizer_Idempotent(t *testing.T) {
	n := NewWhitespaceNormalizer()
	for _, line := range whitespaceCorpus {
		once, _ := n.TransformLine(line)
		twice, _ := n.TransformLine(once)
		assert.Equal(t, once, twice, "input %q", line)
	}
}

func TestWhitespaceNormalizer_PreservesTokens(t *testing.T) {
	n := NewWhitespaceNormalizer()
	for _, line := range whitespaceCorpus {
		got, _ := n.TransformLine(line)

		assert.Equal(t, len(strings.FieldsFunc(line, IsBlank)), len(strings.FieldsFunc(got, IsBlank)), "input %q", line)
		assert.NotContains(t, got, "  ")
		for _, r := range got {
			if IsBlank(r) {
				assert.Equal(t, ' ', r, "only plain spaces may remain in %q", got)
			}
		}
		if got != "" {
			assert.False(t, strings.HasPrefix(got, " ") || strings.HasSuffix(got, " "))
		}
	}
}
