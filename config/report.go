package config

import (
	log "github.com/sirupsen/logrus"
)

// failFast aborts on the first reported error instead of degrading to
// sentinel returns. Meant for debug deployments only; toggled once at
// startup, before any concurrent use.
var failFast bool

func SetFailFast(enabled bool) {
	failFast = enabled
}

// ReportError is the boundary for failures that callers receive as nil or
// sentinel values rather than errors: it logs and, in fail-fast mode,
// panics.
func ReportError(err error) {
	log.Errorf("ocio error: %v", err)
	if failFast {
		panic(err)
	}
}
