package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	c := NewDefaultConfig()

	assert.Equal(t, "secp256k1", c.Curve)
	assert.Equal(t, "Hello World!", c.Message)
	assert.Equal(t, "hex", c.Format)
	assert.Equal(t, DefaultMaxAttempts, c.MaxAttempts)
	assert.False(t, c.RejectZeroS)
	assert.False(t, c.CrossCheck)
	assert.NotEmpty(t, c.ConfigDir)
}

func TestLogger(t *testing.T) {
	c := NewDefaultConfig()
	c.LogLevel = "warn"

	entry := c.Logger()
	assert.Equal(t, "ecdsa", entry.Data["prefix"])
	assert.Equal(t, logrus.WarnLevel, entry.Logger.Level)

	// the logger is built once
	assert.Same(t, entry.Logger, c.Logger().Logger)

	c.SetLogLevel("debug")
	assert.Equal(t, logrus.DebugLevel, c.Logger().Logger.Level)
}

func TestTestConfig(t *testing.T) {
	c := NewTestConfig(t)
	c.Logger().Debug("routed through t.Log")
	assert.Equal(t, logrus.DebugLevel, c.Logger().Logger.Level)
}

func TestLogLevel(t *testing.T) {
	tests := map[string]logrus.Level{
		"debug":   logrus.DebugLevel,
		"info":    logrus.InfoLevel,
		"warn":    logrus.WarnLevel,
		"error":   logrus.ErrorLevel,
		"fatal":   logrus.FatalLevel,
		"panic":   logrus.PanicLevel,
		"verbose": logrus.InfoLevel,
	}
	for name, level := range tests {
		assert.Equal(t, level, LogLevel(name), name)
	}
}
