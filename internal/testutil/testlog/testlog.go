package testlog

import (
	"testing"

	"github.com/rs/zerolog"

	"mailwire/internal/logging"
)

// Start configures test logging and returns a logger tagged with the
// test name.
func Start(t *testing.T) zerolog.Logger {
	t.Helper()
	log := logging.ConfigureTests()
	return log.With().Str("test", t.Name()).Logger()
}
