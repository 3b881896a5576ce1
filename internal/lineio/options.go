// Package lineio drives a transformation over a line-oriented stream.
package lineio

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// initialBufferBytes is the scanner's starting buffer; it grows as needed.
const initialBufferBytes = 64 * 1024

// EmptyPolicy decides what happens to a line the binary decoder finds no
// digits in.
type EmptyPolicy string

const (
	// EmptyFail aborts the run at the offending line.
	EmptyFail EmptyPolicy = "fail"
	// EmptySkip writes nothing for the line and carries on.
	EmptySkip EmptyPolicy = "skip"
	// EmptyZero writes "0" for the line.
	EmptyZero EmptyPolicy = "zero"
)

// ParseEmptyPolicy validates s. The empty string means EmptyFail.
func ParseEmptyPolicy(s string) (EmptyPolicy, error) {
	switch p := EmptyPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return EmptyFail, nil
	case EmptyFail, EmptySkip, EmptyZero:
		return p, nil
	default:
		return "", fmt.Errorf("invalid empty-line policy %q (want fail, skip or zero)", s)
	}
}

// Options configures a run.
type Options struct {
	OnEmpty EmptyPolicy
	// MaxLineBytes bounds a single input line. 0 or less means no limit.
	MaxLineBytes int
	Logger       *logrus.Entry
}

func (o Options) maxLineBytes() int {
	if o.MaxLineBytes <= 0 {
		return math.MaxInt
	}
	return o.MaxLineBytes
}

func (o Options) logger() *logrus.Entry {
	if o.Logger != nil {
		return o.Logger
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

// Stats summarises a run.
type Stats struct {
	Transform    string        `json:"transform"`
	LinesRead    int           `json:"linesRead"`
	LinesWritten int           `json:"linesWritten"`
	LinesSkipped int           `json:"linesSkipped"`
	BytesWritten int64         `json:"bytesWritten"`
	Duration     time.Duration `json:"duration"`
}
