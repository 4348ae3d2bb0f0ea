// Package lifecycle holds limits applied to fx start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of a single component.
const DefaultTimeout = 10 * time.Second
