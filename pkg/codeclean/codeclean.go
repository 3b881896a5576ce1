// Package codeclean exposes the line transformations behind the codeclean
// command for use from other Go programs.
package codeclean

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/grovetools/codeclean/internal/lineio"
	"github.com/grovetools/codeclean/internal/transform"
)

// Names of the built-in transformations.
const (
	BinaryDecoder        = "binary"
	WhitespaceNormalizer = "squeeze"
)

// Stats summarises a run.
type Stats = lineio.Stats

// ParseError reports the input line a transformation rejected.
type ParseError = transform.ParseError

// IOError reports a failure to open, read or write a file.
type IOError = lineio.IOError

// EmptyPolicy decides what happens to a line with no binary digits.
type EmptyPolicy = lineio.EmptyPolicy

const (
	EmptyFail = lineio.EmptyFail
	EmptySkip = lineio.EmptySkip
	EmptyZero = lineio.EmptyZero
)

// ErrEmptyNumeral is wrapped by the ParseError returned for a line with no
// binary digits.
var ErrEmptyNumeral = transform.ErrEmptyNumeral

// Option customises TransformFile.
type Option func(*lineio.Options)

// WithEmptyPolicy sets how the binary decoder treats lines with no digits.
func WithEmptyPolicy(p EmptyPolicy) Option {
	return func(o *lineio.Options) { o.OnEmpty = p }
}

// WithMaxLineBytes bounds the length of a single input line. 0 means no limit.
func WithMaxLineBytes(n int) Option {
	return func(o *lineio.Options) { o.MaxLineBytes = n }
}

// WithLogger routes per-line diagnostics to entry.
func WithLogger(entry *logrus.Entry) Option {
	return func(o *lineio.Options) { o.Logger = entry }
}

// TransformFile applies the named transformation to every line of inPath
// and writes the results to outPath, truncating it first. "-" selects
// stdin or stdout.
func TransformFile(ctx context.Context, name, inPath, outPath string, opts ...Option) (Stats, error) {
	t, err := transform.New(name)
	if err != nil {
		return Stats{}, err
	}
	var o lineio.Options
	for _, opt := range opts {
		opt(&o)
	}
	return lineio.TransformFile(ctx, inPath, outPath, t, o)
}

// DecodeBinaryFile writes the decimal value of each line of inPath to outPath.
func DecodeBinaryFile(inPath, outPath string) error {
	_, err := TransformFile(context.Background(), BinaryDecoder, inPath, outPath)
	return err
}

// NormalizeWhitespaceFile writes each line of inPath to outPath with blank
// runs collapsed to one space and both ends trimmed.
func NormalizeWhitespaceFile(inPath, outPath string) error {
	_, err := TransformFile(context.Background(), WhitespaceNormalizer, inPath, outPath)
	return err
}

// DecodeLine returns the decimal value of the 0/1 characters in line.
func DecodeLine(line string) (string, error) {
	return transform.NewBinaryDecoder().TransformLine(line)
}

// NormalizeLine collapses blank runs in line and trims both ends.
func NormalizeLine(line string) string {
	out, _ := transform.NewWhitespaceNormalizer().TransformLine(line)
	return out
}

// Transformations lists the registered transformation names.
func Transformations() []string {
	return transform.Names()
}
