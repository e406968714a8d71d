package pad

import (
	"testing"

	"github.com/evhall/padder/pkg/observability"
)

type recordingHooks struct {
	events []string
}

func (h *recordingHooks) OnTruncate(length, width int, alignment string) {
	h.events = append(h.events, alignment)
}

// Pad operations that fall into the slice-to-fit branch emit a truncation
// event; plain padding and direct Truncate calls do not.
func TestTruncationEvents(t *testing.T) {
	rec := &recordingHooks{}
	observability.SetTruncationHooks(rec)
	defer observability.Reset()

	String("hej", 6, AlignLeft, SymbolWhitespace)
	Truncate([]byte("kappa"), 2, AlignLeft)
	if len(rec.events) != 0 {
		t.Fatalf("unexpected events: %v", rec.events)
	}

	String("kappa", 3, AlignCenter, SymbolWhitespace)
	Slice([]byte("kappa"), 2, AlignRight, SymbolWhitespace)
	AppendString(nil, "kappa", 1, AlignLeft, SymbolWhitespace)
	if len(rec.events) != 3 {
		t.Fatalf("got %d events, want 3: %v", len(rec.events), rec.events)
	}
	if rec.events[0] != "center" || rec.events[1] != "right" || rec.events[2] != "left" {
		t.Errorf("unexpected event order: %v", rec.events)
	}
}
