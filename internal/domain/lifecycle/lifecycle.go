// Package lifecycle holds shared lifecycle constants for startup and
// shutdown hooks.
package lifecycle

import "time"

// DefaultTimeout bounds start/stop hooks such as store pings and server
// shutdown.
const DefaultTimeout = 10 * time.Second
