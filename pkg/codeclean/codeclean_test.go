package codeclean

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBinaryFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "codes.txt")
	out := filepath.Join(dir, "output.txt")
	require.NoError(t, os.WriteFile(in, []byte("0001 0010\n1111 1111\n0000 0001\n"), 0o644))

	require.NoError(t, DecodeBinaryFile(in, out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "18\n255\n1\n", string(data))
}

func TestNormalizeWhitespaceFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "codes.txt")
	out := filepath.Join(dir, "output.txt")
	require.NoError(t, os.WriteFile(in, []byte("MOV   A,  B\n\n   \t\nNOP"), 0o644))

	require.NoError(t, NormalizeWhitespaceFile(in, out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "MOV A, B\n\n\nNOP\n", string(data))
}

func TestDecodeBinaryFile_EmptyLine(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "codes.txt")
	require.NoError(t, os.WriteFile(in, []byte("1\n\n"), 0o644))

	err := DecodeBinaryFile(in, filepath.Join(dir, "output.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyNumeral))

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 2, perr.Line)
}

func TestTransformFile_Options(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "codes.txt")
	out := filepath.Join(dir, "output.txt")
	require.NoError(t, os.WriteFile(in, []byte("101\nxyz\n11\n"), 0o644))

	stats, err := TransformFile(context.Background(), BinaryDecoder, in, out, WithEmptyPolicy(EmptyZero))
	require.NoError(t, err)
	assert.Equal(t, 3, stats.LinesWritten)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "5\n0\n3\n", string(data))

	_, err = TransformFile(context.Background(), BinaryDecoder, in, out, WithMaxLineBytes(2))
	assert.Error(t, err)
}

func TestTransformFile_UnknownName(t *testing.T) {
	_, err := TransformFile(context.Background(), "nope", "a", "b")
	assert.Error(t, err)
}

func TestDecodeLine(t *testing.T) {
	got, err := DecodeLine("1" + strings.Repeat(" 0", 64))
	require.NoError(t, err)
	assert.Equal(t, "18446744073709551616", got)

	_, err = DecodeLine("   ")
	assert.ErrorIs(t, err, ErrEmptyNumeral)
}

func TestNormalizeLine(t *testing.T) {
	assert.Equal(t, "a b", NormalizeLine("\t a   b \r"))
	assert.Equal(t, "", NormalizeLine("   "))
}

func TestTransformations(t *testing.T) {
	assert.Contains(t, Transformations(), BinaryDecoder)
	assert.Contains(t, Transformations(), WhitespaceNormalizer)
}
