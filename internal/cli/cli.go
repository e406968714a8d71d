// Package cli implements the padder command-line interface.
//
// This package provides commands for padding text to fixed widths, laying
// out delimited input as fixed-width columns, listing the fill symbol
// catalog, and previewing alignments interactively. The CLI is built using
// cobra and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - pad: Pad arguments or stdin lines to a fixed width
//   - columns: Format delimited input as fixed-width columns per a TOML layout
//   - symbols: List the fill symbol catalog
//   - preview: Interactive padding preview
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Truncation
// is silent in the engine; the CLI surfaces it as warnings through a
// registered observability hook.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/evhall/padder/pkg/buildinfo"
	"github.com/evhall/padder/pkg/observability"
)

// appName is the application name used for display.
const appName = "padder"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger and registers the
// truncation warning hook.
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{Logger: newLogger(w, level)}
	observability.SetTruncationHooks(&logHooks{logger: c.Logger})
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Padder pads and truncates text to fixed widths",
		Long:         `Padder is a CLI tool for padding text and data to fixed widths with configurable alignment and fill symbols. Sources longer than the target width are sliced to fit instead of failing.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.padCommand())
	root.AddCommand(c.columnsCommand())
	root.AddCommand(c.symbolsCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.completionCommand())

	return root
}
