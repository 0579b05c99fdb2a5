// Package lifecycle holds shared start/stop budgets for long-lived components.
package lifecycle

import "time"

// DefaultTimeout bounds each startup probe and graceful shutdown step.
const DefaultTimeout = 10 * time.Second
