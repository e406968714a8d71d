package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/evhall/padder/pkg/errors"
	"github.com/evhall/padder/pkg/pad"
)

// padCommand creates the pad command for padding arguments or stdin lines.
func (c *CLI) padCommand() *cobra.Command {
	var (
		width  int
		align  string
		symbol string
	)

	cmd := &cobra.Command{
		Use:   "pad [text...]",
		Short: "Pad arguments or stdin lines to a fixed width",
		Long: `Pad arguments or stdin lines to a fixed width.

Each argument (or each stdin line when no arguments are given) is padded to
the target width with the chosen alignment and fill symbol. Input longer
than the width is sliced to fit; a warning is logged for every slice.

Examples:
  padder pad --width 8 --align left hej           # "hej     "
  padder pad --width 8 --align right --symbol zero 9184
  cat rows.txt | padder pad -w 24 -a center`,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := parseAlignment(align)
			if err != nil {
				return err
			}
			sym, err := parseSymbol(symbol)
			if err != nil {
				return err
			}
			if width < 0 {
				return errors.New(errors.ErrCodeInvalidWidth, "width must be non-negative, got %d", width)
			}

			c.Logger.Debug("padding", "width", width, "alignment", mode, "symbol", sym)

			out := cmd.OutOrStdout()
			if len(args) > 0 {
				for _, arg := range args {
					if _, err := fmt.Fprintln(out, pad.String(arg, width, mode, sym)); err != nil {
						return err
					}
				}
				return nil
			}
			return padLines(cmd.InOrStdin(), out, width, mode, sym)
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 10, "target width in codepoints")
	cmd.Flags().StringVarP(&align, "align", "a", "right", "alignment: left, right, center")
	cmd.Flags().StringVarP(&symbol, "symbol", "s", "whitespace", "fill symbol name")

	return cmd
}

// padLines pads every line of r to width and writes the results to w.
// One output buffer is reused across lines, so steady-state processing
// does not allocate per line.
func padLines(r io.Reader, w io.Writer, width int, mode pad.Alignment, sym pad.Symbol) error {
	sc := bufio.NewScanner(r)
	buf := make([]byte, 0, width+1)
	for sc.Scan() {
		buf = pad.AppendString(buf[:0], sc.Text(), width, mode, sym)
		buf = append(buf, '\n')
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return sc.Err()
}
