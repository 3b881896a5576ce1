package telemetry

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/codeclean/internal/lineio"
	"github.com/grovetools/codeclean/internal/transform"
)

func TestRecorder_Observe(t *testing.T) {
	r := NewRecorder()
	r.Observe(lineio.Stats{Transform: "binary", LinesRead: 5, LinesWritten: 3, LinesSkipped: 2, Duration: time.Millisecond}, nil)
	r.Observe(lineio.Stats{Transform: "binary", LinesRead: 2, LinesWritten: 1}, &transform.ParseError{Line: 2, Err: transform.ErrEmptyNumeral})
	r.Observe(lineio.Stats{Transform: "squeeze"}, &lineio.IOError{Op: "open input", Err: errors.New("boom")})

	assert.Equal(t, 7.0, testutil.ToFloat64(r.linesRead.WithLabelValues("binary")))
	assert.Equal(t, 4.0, testutil.ToFloat64(r.linesWritten.WithLabelValues("binary")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.linesSkipped.WithLabelValues("binary")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.parseErrors.WithLabelValues("binary")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.ioErrors.WithLabelValues("squeeze")))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.parseErrors.WithLabelValues("squeeze")))
}

func TestRecorder_WriteTextfile(t *testing.T) {
	r := NewRecorder()
	r.Observe(lineio.Stats{Transform: "squeeze", LinesRead: 4, LinesWritten: 4}, nil)

	path := filepath.Join(t.TempDir(), "codeclean.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `codeclean_lines_written_total{transform="squeeze"} 4`)
	assert.Contains(t, string(data), "codeclean_run_duration_seconds_bucket")
}
