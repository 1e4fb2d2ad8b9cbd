// Package lifecycle holds shared timing constants for fx start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds individual OnStart/OnStop hook work such as pings and shutdowns.
const DefaultTimeout = 10 * time.Second
