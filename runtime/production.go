package runtime

import (
	"os"
	"strings"
	"sync/atomic"
)

const (
	modeUnset int32 = iota
	modeOff
	modeOn
)

// productionMode controls whether reports redact stack traces and raw error text.
var productionMode atomic.Int32

// environmentKeys are consulted in order while production mode has not been set.
var environmentKeys = []string{"ENV", "GO_ENV"}

// SetProductionMode enables or disables production mode for the whole process.
// Once set, the ENV and GO_ENV variables are no longer consulted.
func SetProductionMode(enabled bool) {
	if enabled {
		productionMode.Store(modeOn)
		return
	}

	productionMode.Store(modeOff)
}

// ResetProductionMode clears an explicit setting so the environment decides again.
func ResetProductionMode() {
	productionMode.Store(modeUnset)
}

// IsProductionMode returns whether production mode is enabled. Without an
// explicit SetProductionMode call it is enabled when ENV or GO_ENV equals
// "production".
func IsProductionMode() bool {
	switch productionMode.Load() {
	case modeOn:
		return true
	case modeOff:
		return false
	}

	for _, key := range environmentKeys {
		if strings.EqualFold(strings.TrimSpace(os.Getenv(key)), "production") {
			return true
		}
	}

	return false
}
