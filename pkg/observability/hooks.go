// Package observability provides hooks for diagnostics around padding
// operations.
//
// The padding engine never reports truncation to its caller: slicing a
// source to fit a smaller width is policy, not an error. This package lets
// a surrounding layer observe those silent truncations without adding any
// logging dependency to the engine itself.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define a hook interface for truncation events
//   - Provide a no-op default implementation
//   - Allow registration of a custom implementation at startup
//
// Hooks are registered by main, not by libraries, which keeps the engine
// free of observability frameworks and avoids import cycles.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetTruncationHooks(&myHooks{})
//	    // ... run application
//	}
//
// The engine emits events when a pad call falls into the slice-to-fit
// branch:
//
//	observability.Truncation().OnTruncate(length, width, alignment)
package observability

import "sync"

// TruncationHooks receives events when a padding operation truncates its
// source instead of filling it.
type TruncationHooks interface {
	// OnTruncate records a truncation: a source of length elements was
	// sliced to width elements under the named alignment.
	OnTruncate(length, width int, alignment string)
}

// NoopTruncationHooks is a no-op implementation of TruncationHooks.
type NoopTruncationHooks struct{}

func (NoopTruncationHooks) OnTruncate(int, int, string) {}

var (
	truncationHooks TruncationHooks = NoopTruncationHooks{}
	hooksMu         sync.RWMutex
)

// SetTruncationHooks registers custom truncation hooks.
// This should be called once at application startup before any padding
// operations.
func SetTruncationHooks(h TruncationHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		truncationHooks = h
	}
}

// Truncation returns the registered truncation hooks.
func Truncation() TruncationHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return truncationHooks
}

// Reset restores the no-op default hooks.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	truncationHooks = NoopTruncationHooks{}
}
