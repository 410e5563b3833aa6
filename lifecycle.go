package swiftresolv

import (
	"fmt"
	"sync"
)

var (
	lifecycleMu sync.Mutex
	loaded      bool
)

// Load initializes the process-wide native networking state required for
// adapter queries. The hosting process calls it once at attach time; extra
// calls are no-ops. A failed Load leaves the module unloaded.
func Load() error {
	lifecycleMu.Lock()
	defer lifecycleMu.Unlock()

	if loaded {
		return nil
	}

	if err := platformInit(); err != nil {
		return fmt.Errorf("failed to initialize native networking: %w", err)
	}

	loaded = true
	return nil
}

// Unload releases whatever Load acquired. Best-effort: it never fails and
// is safe to call after a failed Load, or without any Load at all.
func Unload() {
	lifecycleMu.Lock()
	defer lifecycleMu.Unlock()

	if !loaded {
		return
	}

	platformTeardown()
	loaded = false
}

// Loaded reports whether the module currently holds native networking state.
func Loaded() bool {
	lifecycleMu.Lock()
	defer lifecycleMu.Unlock()

	return loaded
}
