// Package modkit provides module wiring and core deps
package modkit

import (
	"time"

	"meteopage/internal/platform/config"
	"meteopage/internal/platform/logger"
	ptime "meteopage/internal/platform/time"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log   logger.Logger
	Cfg   config.Conf
	Clock ptime.Clock
}

// Now reads the injected clock, falling back to the system clock for zero deps
func (d Deps) Now() time.Time {
	if d.Clock == nil {
		return ptime.System()
	}
	return d.Clock()
}
