// Package lifecycle holds settings shared by components started and stopped through fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds start-up probes and graceful shutdown of a single component.
const DefaultTimeout = 10 * time.Second
