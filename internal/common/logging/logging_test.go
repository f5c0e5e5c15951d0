package logging

import (
	"bytes"
	"testing"

	"github.com/decred/slog"
	"github.com/stretchr/testify/assert"
)

func TestLoggerWritesSubsystemTag(t *testing.T) {
	var buf bytes.Buffer
	b := New(&Config{Output: &buf, Level: "debug"})

	b.Logger(SubsystemSync).Infof("fetched %d entries", 3)

	assert.Contains(t, buf.String(), "SYNC")
	assert.Contains(t, buf.String(), "fetched 3 entries")
}

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	b := New(&Config{Output: &buf, Level: "warn"})

	log := b.Logger(SubsystemGame)
	log.Debugf("hidden")
	log.Warnf("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestLoggerIsCachedPerSubsystem(t *testing.T) {
	b := New(nil)
	assert.Equal(t, b.Logger(SubsystemHTTP), b.Logger(SubsystemHTTP))
}

func TestOrDisabled(t *testing.T) {
	assert.Equal(t, slog.Disabled, OrDisabled(nil))
}
