package cli

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/evhall/padder/pkg/errors"
	"github.com/evhall/padder/pkg/pad"
)

// Layout describes a fixed-width column layout loaded from a TOML file.
type Layout struct {
	// Delimiter splits input lines into fields (default: ",").
	Delimiter string `toml:"delimiter"`

	// Separator is inserted between output columns (default: "").
	Separator string `toml:"separator"`

	// Columns are applied to fields in order. Lines with more fields than
	// columns have the extra fields dropped; missing fields are padded as
	// empty.
	Columns []Column `toml:"column"`
}

// Column configures one output column.
type Column struct {
	Width  int    `toml:"width"`
	Align  string `toml:"align"`
	Symbol string `toml:"symbol"`
}

// column is a Layout Column with its textual fields resolved onto engine
// types.
type column struct {
	width int
	mode  pad.Alignment
	sym   pad.Symbol
}

// loadLayout reads and validates a TOML layout file.
func loadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "layout file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidLayout, err, "failed to read %s", path)
	}

	var layout Layout
	if err := toml.Unmarshal(data, &layout); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidLayout, err, "failed to parse %s", path)
	}
	if layout.Delimiter == "" {
		layout.Delimiter = ","
	}
	return &layout, nil
}

// compile resolves the layout's textual alignment and symbol names onto
// engine types, validating every column.
func (l *Layout) compile() ([]column, error) {
	if len(l.Columns) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidLayout, "layout defines no columns")
	}

	cols := make([]column, 0, len(l.Columns))
	for i, spec := range l.Columns {
		if spec.Width < 0 {
			return nil, errors.New(errors.ErrCodeInvalidWidth, "column %d: width must be non-negative, got %d", i+1, spec.Width)
		}
		mode, err := parseAlignment(spec.Align)
		if err != nil {
			return nil, err
		}
		sym, err := parseSymbol(spec.Symbol)
		if err != nil {
			return nil, err
		}
		cols = append(cols, column{width: spec.Width, mode: mode, sym: sym})
	}
	return cols, nil
}

// columnsCommand creates the columns command for fixed-width column output.
func (c *CLI) columnsCommand() *cobra.Command {
	var layoutPath string

	cmd := &cobra.Command{
		Use:   "columns [file]",
		Short: "Format delimited input as fixed-width columns",
		Long: `Format delimited input as fixed-width columns.

Reads delimited lines from a file (or stdin when no file is given) and pads
each field into the column defined by a TOML layout:

  delimiter = ","
  separator = " "

  [[column]]
  width = 12
  align = "left"

  [[column]]
  width = 8
  align = "right"
  symbol = "zero"

Fields wider than their column are sliced to fit; a warning is logged for
every slice.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := loadLayout(layoutPath)
			if err != nil {
				return err
			}
			cols, err := layout.compile()
			if err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return errors.Wrap(errors.ErrCodeFileNotFound, err, "input file %s", args[0])
				}
				defer f.Close()
				in = f
			}

			c.Logger.Debug("formatting columns", "layout", layoutPath, "columns", len(cols))
			return writeColumns(in, cmd.OutOrStdout(), layout, cols)
		},
	}

	cmd.Flags().StringVarP(&layoutPath, "layout", "l", "columns.toml", "TOML layout file")

	return cmd
}

// writeColumns pads every field of every line into its column and writes
// the assembled rows to w. One row buffer is reused across lines.
func writeColumns(r io.Reader, w io.Writer, layout *Layout, cols []column) error {
	sc := bufio.NewScanner(r)
	row := make([]byte, 0, 256)
	for sc.Scan() {
		fields := strings.Split(sc.Text(), layout.Delimiter)
		row = row[:0]
		for i, col := range cols {
			if i > 0 {
				row = append(row, layout.Separator...)
			}
			field := ""
			if i < len(fields) {
				field = fields[i]
			}
			row = pad.AppendString(row, field, col.width, col.mode, col.sym)
		}
		row = append(row, '\n')
		if _, err := w.Write(row); err != nil {
			return err
		}
	}
	return sc.Err()
}
