// Package config holds the settings shared by the command line front-ends.
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/smallyu/go-ecdsa/internal/logging"
)

const (
	DefaultCurve       = "secp256k1"
	DefaultMessage     = "Hello World!"
	DefaultFormat      = "hex"
	DefaultLogLevel    = "info"
	DefaultMaxAttempts = 256
	DefaultRejectZeroS = false
	DefaultCrossCheck  = false

	// ConfigName is the base name of the optional configuration file, read
	// as ecdsa.yaml, ecdsa.json or ecdsa.toml from ConfigDir.
	ConfigName = "ecdsa"
)

// Config contains the settings of the ecdsa command.
type Config struct {
	// Curve is the name of the curve to operate on.
	Curve string `mapstructure:"curve"`

	// Message is the text signed and verified by the demo.
	Message string `mapstructure:"message"`

	// Format is the text encoding of keys and signatures.
	Format string `mapstructure:"format"`

	// LogLevel is one of debug, info, warn, error, fatal or panic.
	LogLevel string `mapstructure:"log"`

	// MaxAttempts bounds both the rejection sampling of scalars and the nonce
	// retries of the signer.
	MaxAttempts int `mapstructure:"max-attempts"`

	// RejectZeroS makes the signer draw a new nonce when s = 0.
	RejectZeroS bool `mapstructure:"reject-zero-s"`

	// CrossCheck compares derived keys and signatures with decred.
	CrossCheck bool `mapstructure:"crosscheck"`

	// ConfigDir is where the configuration file is looked up.
	ConfigDir string `mapstructure:"config-dir"`

	logger *logrus.Logger
}

// NewDefaultConfig returns a config object with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Curve:       DefaultCurve,
		Message:     DefaultMessage,
		Format:      DefaultFormat,
		LogLevel:    DefaultLogLevel,
		MaxAttempts: DefaultMaxAttempts,
		RejectZeroS: DefaultRejectZeroS,
		CrossCheck:  DefaultCrossCheck,
		ConfigDir:   DefaultConfigDir(),
	}
}

// NewTestConfig returns a config object with default values and a logger
// writing through t.
func NewTestConfig(t testing.TB) *Config {
	config := NewDefaultConfig()
	config.logger = logging.NewTestLogger(t)
	return config
}

// Logger returns a formatted logrus Entry, with prefix set to "ecdsa".
func (c *Config) Logger() *logrus.Entry {
	if c.logger == nil {
		c.logger = logrus.New()
		c.logger.Out = os.Stderr
		c.logger.Level = LogLevel(c.LogLevel)
		c.logger.Formatter = new(prefixed.TextFormatter)
	}
	return c.logger.WithField("prefix", "ecdsa")
}

// SetLogLevel updates the level of an already created logger.
func (c *Config) SetLogLevel(level string) {
	c.LogLevel = level
	if c.logger != nil {
		c.logger.Level = LogLevel(level)
	}
}

// DefaultConfigDir returns $HOME/.ecdsa, or .ecdsa when the home directory is
// unknown.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".ecdsa"
	}
	return filepath.Join(home, ".ecdsa")
}

// LogLevel parses a string into a logrus log level. Unknown names map to
// info.
func LogLevel(l string) logrus.Level {
	switch l {
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	case "panic":
		return logrus.PanicLevel
	default:
		return logrus.InfoLevel
	}
}
