package commands

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/smallyu/go-ecdsa/internal/config"
	"github.com/smallyu/go-ecdsa/internal/encoding"
	"github.com/smallyu/go-ecdsa/pkg/ecdsa"
)

// cli carries the configuration shared by every subcommand.
type cli struct {
	config *config.Config
	viper  *viper.Viper
}

// NewRootCmd builds the ecdsa command tree with default configuration.
func NewRootCmd() *cobra.Command {
	return newRootCmd(config.NewDefaultConfig())
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	c := &cli{
		config: cfg,
		viper:  viper.New(),
	}

	root := &cobra.Command{
		Use:               "ecdsa",
		Short:             "ECDSA key generation, signing and verification",
		SilenceUsage:      true,
		TraverseChildren:  true,
		PersistentPreRunE: c.load,
	}

	flags := root.PersistentFlags()
	flags.String("curve", cfg.Curve, "Curve name")
	flags.String("format", cfg.Format, "Output format (hex, octal, decimal, base64, base58, der, pem)")
	flags.String("log", cfg.LogLevel, "Log level (debug, info, warn, error, fatal, panic)")
	flags.Int("max-attempts", cfg.MaxAttempts, "Maximum draws for a scalar and nonce retries for a signature")
	flags.Bool("reject-zero-s", cfg.RejectZeroS, "Draw a new nonce when s = 0")
	flags.Bool("crosscheck", cfg.CrossCheck, "Compare keys and signatures with the decred secp256k1 implementation")
	flags.String("config-dir", cfg.ConfigDir, "Directory holding ecdsa.yaml, ecdsa.json or ecdsa.toml")

	root.AddCommand(
		c.newKeygenCmd(),
		c.newPubkeyCmd(),
		c.newSignCmd(),
		c.newVerifyCmd(),
		c.newValidateCmd(),
		c.newDemoCmd(),
		newVersionCmd(),
	)
	return root
}

// load merges flags, the optional config file and defaults into c.config.
func (c *cli) load(cmd *cobra.Command, args []string) error {
	if err := c.viper.BindPFlags(cmd.Root().PersistentFlags()); err != nil {
		return err
	}
	if err := c.viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	c.viper.SetConfigName(config.ConfigName)
	c.viper.AddConfigPath(c.viper.GetString("config-dir"))

	if err := c.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
		c.config.Logger().Debug("no config file, taking cli or default")
	}

	if err := c.viper.Unmarshal(c.config); err != nil {
		return err
	}
	c.config.SetLogLevel(c.config.LogLevel)

	c.config.Logger().WithFields(logrus.Fields{
		"curve":         c.config.Curve,
		"format":        c.config.Format,
		"max-attempts":  c.config.MaxAttempts,
		"reject-zero-s": c.config.RejectZeroS,
		"crosscheck":    c.config.CrossCheck,
		"config-dir":    c.config.ConfigDir,
	}).Debug("config")
	return nil
}

func (c *cli) scheme() (*ecdsa.Scheme, error) {
	return ecdsa.New(c.config.Curve,
		ecdsa.WithLogger(c.config.Logger()),
		ecdsa.WithMaxAttempts(c.config.MaxAttempts),
		ecdsa.WithRejectZeroS(c.config.RejectZeroS),
		ecdsa.WithCrossCheck(c.config.CrossCheck),
	)
}

func (c *cli) format() (encoding.Format, error) {
	return encoding.ParseFormat(c.config.Format)
}

func out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}
