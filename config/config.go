package config

//go:generate go run ../tools/schema-generator

// TransformConfig defines how a transformation run behaves.
type TransformConfig struct {
	// Default is the transformation used by `codeclean run` when no
	// --transform flag is given. "binary" (default) or "squeeze".
	Default string `yaml:"default,omitempty" koanf:"default"`

	// OnEmpty controls what the binary decoder does with a line that has
	// no 0/1 characters.
	// "fail" (default): abort the run at that line.
	// "skip": drop the line from the output.
	// "zero": write 0 for the line.
	OnEmpty string `yaml:"on_empty,omitempty" koanf:"on_empty"`

	// MaxLineBytes bounds the length of a single input line.
	// 0 (default): no limit.
	MaxLineBytes int `yaml:"max_line_bytes,omitempty" koanf:"max_line_bytes"`

	// Input is the file read when no input path is given. "-" is stdin.
	Input string `yaml:"input,omitempty" koanf:"input"`

	// Output is the file written when no output path is given. "-" is stdout.
	Output string `yaml:"output,omitempty" koanf:"output"`
}

// Config is the top-level configuration structure for codeclean.
type Config struct {
	Transform TransformConfig `yaml:"transform,omitempty" koanf:"transform"`

	// LogLevel sets the level of per-line diagnostics
	// (trace, debug, info, warn, error). Default "info".
	LogLevel string `yaml:"log_level,omitempty" koanf:"log_level"`

	// MetricsFile, when set, receives run metrics in the Prometheus
	// textfile collector format.
	MetricsFile string `yaml:"metrics_file,omitempty" koanf:"metrics_file"`
}

// Default returns the configuration used when nothing else is set. The
// file names are the ones the original conversion scripts hard-coded.
func Default() Config {
	return Config{
		Transform: TransformConfig{
			Default:      "binary",
			OnEmpty:      "fail",
			Input:        "codes.txt",
			Output:       "output.txt",
		},
		LogLevel: "info",
	}
}
