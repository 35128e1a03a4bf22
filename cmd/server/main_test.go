package main

import (
	"bytes"
	"testing"

	"helpcenter/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&config.Config{LogLevel: "warn"}, &buf)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	// Configs built without config.Load skip its validation
	_, err := newLogger(&config.Config{LogLevel: "loud"}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "invalid log_level")
}
