package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/evhall/padder/pkg/pad"
)

// symbolsCommand creates the symbols command listing the fill catalog.
func (c *CLI) symbolsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "symbols",
		Short: "List the fill symbol catalog",
		Long:  `List every fill symbol with its glyph and a centered sample.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var b strings.Builder
			b.WriteString(styleTitle.Render("Fill symbols") + "\n")
			for _, sym := range pad.Symbols() {
				// The listing is itself fixed-width output: pad the name
				// column with the engine.
				name := pad.String(sym.String(), 12, pad.AlignLeft, pad.SymbolWhitespace)
				sample := pad.String("hej", 9, pad.AlignCenter, sym)
				b.WriteString(fmt.Sprintf("%s %s  %s\n",
					styleValue.Render(name),
					styleSecondary.Render(string(sym.Rune())),
					styleDim.Render(sample)))
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), b.String())
			return err
		},
	}
}
