package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/grovetools/tend/pkg/assert"
	"github.com/grovetools/tend/pkg/command"
	"github.com/grovetools/tend/pkg/fs"
	"github.com/grovetools/tend/pkg/harness"
)

// setupWorkDir writes codes.txt into a fresh directory.
func setupWorkDir(content string) func(ctx *harness.Context) error {
	return func(ctx *harness.Context) error {
		workDir := ctx.NewDir("work")
		if err := fs.CreateDir(workDir); err != nil {
			return err
		}
		if err := fs.WriteString(filepath.Join(workDir, "codes.txt"), content); err != nil {
			return fmt.Errorf("failed to write codes.txt: %w", err)
		}
		ctx.Set("work_dir", workDir)
		return nil
	}
}

func readOutput(ctx *harness.Context) (string, error) {
	data, err := os.ReadFile(filepath.Join(ctx.GetString("work_dir"), "output.txt"))
	if err != nil {
		return "", fmt.Errorf("failed to read output.txt: %w", err)
	}
	return string(data), nil
}

// DecodeScenario tests 'codeclean decode' on a grouped binary listing.
func DecodeScenario() *harness.Scenario {
	return &harness.Scenario{
		Name: "codeclean-decode",
		Steps: []harness.Step{
			harness.NewStep("Setup codes.txt", setupWorkDir("0001 0010\n1111 1111\n0000 0001\n")),
			harness.NewStep("Run 'codeclean decode'", func(ctx *harness.Context) error {
				bin, err := FindProjectBinary()
				if err != nil {
					return err
				}

				workDir := ctx.GetString("work_dir")
				cmd := command.New(bin, "decode",
					filepath.Join(workDir, "codes.txt"),
					filepath.Join(workDir, "output.txt"))
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if err := assert.Equal(0, result.ExitCode, "codeclean decode should exit successfully"); err != nil {
					return err
				}
				if err := assert.Contains(result.Stdout+result.Stderr, "3 lines read", "Should print a run summary"); err != nil {
					return err
				}

				out, err := readOutput(ctx)
				if err != nil {
					return err
				}
				return assert.Equal("18\n255\n1\n", out, "Should write one decimal per line")
			}),
		},
	}
}

// SqueezeScenario tests 'codeclean squeeze' and its remove-spaces alias.
func SqueezeScenario() *harness.Scenario {
	return &harness.Scenario{
		Name: "codeclean-squeeze",
		Steps: []harness.Step{
			harness.NewStep("Setup codes.txt", setupWorkDir("  MOV   A,\tB  \n\n   \nNOP")),
			harness.NewStep("Run 'codeclean remove-spaces'", func(ctx *harness.Context) error {
				bin, err := FindProjectBinary()
				if err != nil {
					return err
				}

				workDir := ctx.GetString("work_dir")
				cmd := command.New(bin, "remove-spaces", "--quiet",
					filepath.Join(workDir, "codes.txt"),
					filepath.Join(workDir, "output.txt"))
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if err := assert.Equal(0, result.ExitCode, "codeclean squeeze should exit successfully"); err != nil {
					return err
				}

				out, err := readOutput(ctx)
				if err != nil {
					return err
				}
				return assert.Equal("MOV A, B\n\n\nNOP\n", out, "Should collapse blanks and keep every line")
			}),
		},
	}
}

// EmptyNumeralScenario checks that a line without digits aborts the decode.
func EmptyNumeralScenario() *harness.Scenario {
	return &harness.Scenario{
		Name: "codeclean-decode-empty-line",
		Steps: []harness.Step{
			harness.NewStep("Setup codes.txt", setupWorkDir("0101\n\n0011\n")),
			harness.NewStep("Run 'codeclean decode' on a blank line", func(ctx *harness.Context) error {
				bin, err := FindProjectBinary()
				if err != nil {
					return err
				}

				workDir := ctx.GetString("work_dir")
				cmd := command.New(bin, "decode",
					filepath.Join(workDir, "codes.txt"),
					filepath.Join(workDir, "output.txt"))
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if result.ExitCode == 0 {
					return fmt.Errorf("codeclean decode should fail on a line with no binary digits")
				}
				if err := assert.Contains(result.Stderr, "line 2", "Should name the failing line"); err != nil {
					return err
				}

				out, err := readOutput(ctx)
				if err != nil {
					return err
				}
				return assert.Equal("5\n", out, "Lines before the failure should be kept")
			}),
			harness.NewStep("Run 'codeclean decode --on-empty skip'", func(ctx *harness.Context) error {
				bin, err := FindProjectBinary()
				if err != nil {
					return err
				}

				workDir := ctx.GetString("work_dir")
				cmd := command.New(bin, "decode", "--quiet", "--on-empty", "skip",
					filepath.Join(workDir, "codes.txt"),
					filepath.Join(workDir, "output.txt"))
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if err := assert.Equal(0, result.ExitCode, "skip policy should succeed"); err != nil {
					return err
				}
				out, err := readOutput(ctx)
				if err != nil {
					return err
				}
				return assert.Equal("5\n3\n", out, "Blank line should be dropped")
			}),
		},
	}
}

// ListScenario tests 'codeclean list --json'.
func ListScenario() *harness.Scenario {
	return &harness.Scenario{
		Name: "codeclean-list",
		Steps: []harness.Step{
			harness.NewStep("Run 'codeclean list --json'", func(ctx *harness.Context) error {
				bin, err := FindProjectBinary()
				if err != nil {
					return err
				}

				cmd := command.New(bin, "list", "--json")
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if result.ExitCode != 0 {
					return fmt.Errorf("codeclean list --json failed: %s", result.Stderr)
				}

				var infos []struct {
					Name        string `json:"name"`
					Description string `json:"description"`
				}
				if err := json.Unmarshal([]byte(result.Stdout), &infos); err != nil {
					return fmt.Errorf("failed to parse JSON output: %w", err)
				}
				if err := assert.Equal(2, len(infos), "Should list both transformations"); err != nil {
					return err
				}
				return assert.Equal("binary", infos[0].Name, "Should be sorted by name")
			}),
		},
	}
}
