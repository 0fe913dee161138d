// Package cli implements the permgroup command-line interface.
//
// # Commands
//
//   - order:        print the order of a group
//   - elements:     list all elements in cycle notation
//   - orbit:        print the orbit of a point
//   - canonicalize: bring a sequence of words into canonical order
//   - concat:       concatenate two groups defined in files
//
// Groups are given with repeated -g flags in cycle notation, with -f pointing
// at a YAML or TOML definition, or both (file generators first).
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// traces group generation.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const appName = "permgroup"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	verbose    bool
	generators []string
	file       string
}

// New creates a CLI whose logger writes to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// newLogger creates a timestamped logger filtering at level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          appName,
	})
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Compute with finite permutation groups",
		Long:          `permgroup enumerates permutation groups from generators, computes orbits and canonical forms, and concatenates group symmetries.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if c.verbose {
				c.Logger.SetLevel(LogDebug)
			}
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	flags.StringArrayVarP(&c.generators, "generator", "g", nil, `generator in cycle notation, e.g. "(0 1 2)" or "-(0 1)" (repeatable)`)
	flags.StringVarP(&c.file, "file", "f", "", "YAML or TOML group definition")

	root.AddCommand(c.orderCommand())
	root.AddCommand(c.elementsCommand())
	root.AddCommand(c.orbitCommand())
	root.AddCommand(c.canonicalizeCommand())
	root.AddCommand(c.concatCommand())

	return root
}
