package cli

import (
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// logHooks surfaces silent engine truncations as warnings. The engine never
// reports data loss to its caller; this hook is the diagnostic layer around
// it.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnTruncate(length, width int, alignment string) {
	h.logger.Warn("source sliced to fit, expect missing data",
		"length", length, "width", width, "alignment", alignment)
}
