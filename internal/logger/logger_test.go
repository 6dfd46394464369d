package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNew_ValidLevels(t *testing.T) {
	// Save original Log and restore after test
	originalLog := Log
	defer func() { Log = originalLog }()

	levels := []string{"debug", "info", "warn", "error", "dpanic", "panic", "fatal"}

	for _, lvl := range levels {
		t.Run(lvl, func(t *testing.T) {
			log, err := New(lvl)
			assert.NoError(t, err, "expected no error for level %s", lvl)
			assert.NotNil(t, log)
			assert.Same(t, log, Log, "New should install the global Log")

			// Ensure logging works without panic
			assert.NotPanics(t, func() {
				Log.Infow("test log", "level", lvl)
			})
		})
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	originalLog := Log
	defer func() { Log = originalLog }()

	_, err := New("not-a-level")
	assert.Error(t, err, "expected error for invalid log level")
}

func TestLog_NopBeforeNew(t *testing.T) {
	originalLog := Log
	defer func() { Log = originalLog }()

	// By default, Log is zap.NewNop().Sugar()
	assert.NotNil(t, Log)
	assert.IsType(t, &zap.SugaredLogger{}, Log)

	assert.NotPanics(t, func() {
		Log.Infow("nop logger test")
	})
}
