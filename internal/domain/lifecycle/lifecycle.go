// Package lifecycle holds shared start and stop bounds for fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds connectivity checks run from OnStart hooks.
const DefaultTimeout = 10 * time.Second

// ShutdownTimeout bounds graceful shutdown of servers.
const ShutdownTimeout = 15 * time.Second
