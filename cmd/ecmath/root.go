package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// app carries the state shared by all subcommands once flags are parsed.
type app struct {
	v   *viper.Viper
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	root := &cobra.Command{
		Use:           "ecmath",
		Short:         "Elliptic-curve, RSA and number theory toolbox",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "configuration file (yaml, json or toml)")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(
		newECDHCmd(a),
		newCurveCmd(a),
		newRSACmd(a),
		newPrimesCmd(a),
		newSHA3Cmd(a),
	)
	return root
}

// init resolves configuration with the precedence flag > env > file > default
// and builds the logger.
func (a *app) init(cmd *cobra.Command) error {
	v := viper.New()
	v.SetEnvPrefix("ECMATH")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return errors.Wrap(err, "binding flags")
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "reading config %s", path)
		}
	}

	log, err := newLogger(cmd.ErrOrStderr(), v.GetString("log-level"))
	if err != nil {
		return err
	}

	a.v = v
	a.log = log
	if used := v.ConfigFileUsed(); used != "" {
		a.log.Debug("loaded configuration", zap.String("file", used))
	}
	return nil
}
