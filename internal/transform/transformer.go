// Package transform provides the per-line transformations codeclean can apply.
package transform

// Transformer converts one input line into one output line.
// Implementations hold no state between lines.
type Transformer interface {
	// TransformLine transforms a single line. The line never contains
	// its line terminator, and neither does the returned string.
	TransformLine(line string) (string, error)

	// Name returns the registry name of the transformation.
	Name() string

	// Description returns a one-line human readable summary.
	Description() string
}

// Info describes a registered transformation.
type Info struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
