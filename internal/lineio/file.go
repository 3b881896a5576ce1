package lineio

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/grovetools/codeclean/internal/transform"
)

// StdioPath selects stdin for the input or stdout for the output.
const StdioPath = "-"

// Swapped out by tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
)

// TransformFile runs t over the file at inPath and writes the result to
// outPath, truncating it. The input is opened first, so a missing input
// never creates the output. Both files are closed on every return path.
func TransformFile(ctx context.Context, inPath, outPath string, t transform.Transformer, opts Options) (stats Stats, err error) {
	stats = Stats{Transform: t.Name()}

	in, closeIn, err := openInput(inPath)
	if err != nil {
		return stats, err
	}
	defer closeIn()

	out, closeOut, err := openOutput(outPath)
	if err != nil {
		return stats, err
	}
	defer func() {
		if cerr := closeOut(); cerr != nil && err == nil {
			err = &IOError{Op: "close", Path: outPath, Err: cerr}
		}
	}()

	stats, err = Process(ctx, in, out, t, opts)

	var ioErr *IOError
	if errors.As(err, &ioErr) && ioErr.Path == "" {
		switch ioErr.Op {
		case "read":
			ioErr.Path = inPath
		case "write":
			ioErr.Path = outPath
		}
	}
	return stats, err
}

func openInput(path string) (io.Reader, func() error, error) {
	if path == StdioPath {
		return stdin, func() error { return nil }, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, &IOError{Op: "open input", Path: path, Err: err}
	}
	return f, f.Close, nil
}

func openOutput(path string) (io.Writer, func() error, error) {
	if path == StdioPath {
		return stdout, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, &IOError{Op: "open output", Path: path, Err: err}
	}
	return f, f.Close, nil
}
