package lineio

import (
	"bufio"
	"context"
	"errors"
	"io"
	"time"

	"github.com/grovetools/codeclean/internal/transform"
	"github.com/sirupsen/logrus"
)

// Process reads r line by line, applies t to each line and writes one
// output line per processed input line to w, in input order.
//
// Lines written before a failing line are flushed to w; the failing line
// itself is never written. A line the decoder finds no digits in is handled
// according to opts.OnEmpty.
func Process(ctx context.Context, r io.Reader, w io.Writer, t transform.Transformer, opts Options) (Stats, error) {
	start := time.Now()
	stats := Stats{Transform: t.Name()}
	log := opts.logger().WithField("transform", t.Name())

	maxLine := opts.maxLineBytes()
	scanner := bufio.NewScanner(NewDecodingReader(r))
	buf := make([]byte, 0, min(initialBufferBytes, maxLine))
	scanner.Buffer(buf, maxLine)
	scanner.Split(ScanUniversalLines)

	out := bufio.NewWriter(w)
	finish := func(err error) (Stats, error) {
		if ferr := out.Flush(); ferr != nil && err == nil {
			err = &IOError{Op: "write", Err: ferr}
		}
		stats.Duration = time.Since(start)
		return stats, err
	}

	lineNum := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return finish(err)
		}
		lineNum++
		stats.LinesRead++
		line := scanner.Text()

		result, err := t.TransformLine(line)
		if err != nil {
			perr := &transform.ParseError{Transform: t.Name(), Line: lineNum, Input: line, Err: err}
			if !errors.Is(err, transform.ErrEmptyNumeral) {
				return finish(perr)
			}
			switch opts.OnEmpty {
			case EmptySkip:
				stats.LinesSkipped++
				log.WithField("line", lineNum).Warn("Skipping line with no binary digits")
				continue
			case EmptyZero:
				log.WithField("line", lineNum).Warn("Writing 0 for line with no binary digits")
				result = "0"
			default:
				return finish(perr)
			}
		}

		n, err := out.WriteString(result)
		if err == nil {
			err = out.WriteByte('\n')
		}
		if err != nil {
			return finish(&IOError{Op: "write", Err: err})
		}
		stats.LinesWritten++
		stats.BytesWritten += int64(n + 1)
		log.WithField("line", lineNum).Trace("Line transformed")
	}

	if err := scanner.Err(); err != nil {
		return finish(&IOError{Op: "read", Err: err})
	}

	log.WithFields(logrus.Fields{
		"lines_read":    stats.LinesRead,
		"lines_written": stats.LinesWritten,
		"lines_skipped": stats.LinesSkipped,
	}).Debug("Stream processed")
	return finish(nil)
}
