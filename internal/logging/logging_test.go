package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseSeverity(t *testing.T) {
	tests := map[string]Severity{
		"s":       SeveritySuccess,
		"Success": SeveritySuccess,
		"i":       SeverityInfo,
		"d":       SeverityDebug,
		"W":       SeverityWarning,
		"warning": SeverityWarning,
		"e":       SeverityError,
		"f":       SeverityFatal,
		"":        SeverityDebug,
		"chatty":  SeverityDebug,
	}
	for tag, want := range tests {
		assert.Equal(t, want, ParseSeverity(tag), "tag %q", tag)
	}
}

func TestLogRoutesByTag(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewFromZap(zap.New(core))

	log.Log("started", "s")
	log.Log("counted", "i", "triples", 3)
	log.Log("careful", "w")
	log.Log("broken", "e")
	log.Log("whatever", "unknown")

	entries := logs.AllUntimed()
	require.Len(t, entries, 5)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "success", entries[0].ContextMap()["status"])
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.EqualValues(t, 3, entries[1].ContextMap()["triples"])
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
	assert.Equal(t, zapcore.DebugLevel, entries[4].Level)
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New("development", "loud")
	assert.Error(t, err)
}
