package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/evhall/padder/pkg/pad"
)

// previewCommand creates the preview command for interactive exploration of
// width, alignment, and symbol choices.
func (c *CLI) previewCommand() *cobra.Command {
	var text string

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Interactive padding preview",
		Long: `Interactive padding preview.

Adjust the target width with the arrow keys, cycle the alignment with 'a',
and cycle the fill symbol with 's'. Widths below the text length show the
slice-to-fit behavior live.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := newPreviewModel(text)
			_, err := tea.NewProgram(m).Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&text, "text", "t", "padder", "sample text to pad")

	return cmd
}

// previewModel is the bubbletea model for the interactive preview.
type previewModel struct {
	text    string
	width   int
	mode    pad.Alignment
	symbols []pad.Symbol
	symIdx  int
}

func newPreviewModel(text string) previewModel {
	return previewModel{
		text:    text,
		width:   len([]rune(text)) + 6,
		mode:    pad.AlignCenter,
		symbols: pad.Symbols(),
	}
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "left", "h":
		if m.width > 0 {
			m.width--
		}
	case "right", "l":
		m.width++
	case "a", "tab":
		switch m.mode {
		case pad.AlignRight:
			m.mode = pad.AlignLeft
		case pad.AlignLeft:
			m.mode = pad.AlignCenter
		default:
			m.mode = pad.AlignRight
		}
	case "s":
		m.symIdx = (m.symIdx + 1) % len(m.symbols)
	}
	return m, nil
}

func (m previewModel) View() string {
	sym := m.symbols[m.symIdx]
	padded := pad.String(m.text, m.width, m.mode, sym)

	var b strings.Builder
	b.WriteString(styleTitle.Render("padder preview") + "\n\n")
	b.WriteString(styleFrame.Render(styleValue.Render(padded)) + "\n\n")
	b.WriteString(styleSecondary.Render(fmt.Sprintf("width %d  align %s  symbol %s", m.width, m.mode, sym)))
	if m.width < len([]rune(m.text)) {
		b.WriteString(styleSecondary.Render("  (sliced to fit)"))
	}
	b.WriteString("\n\n")
	b.WriteString(styleDim.Render("←/→ width · a align · s symbol · q quit") + "\n")
	return b.String()
}
