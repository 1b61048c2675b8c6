package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tendermint/light-relayer/config"
	"github.com/tendermint/light-relayer/libs/log"
)

// ParseConfig retrieves the default environment configuration, sets up the
// relayer root and ensures that the root exists.
func ParseConfig(conf *config.Config) (*config.Config, error) {
	if err := viper.Unmarshal(conf); err != nil {
		return nil, err
	}
	conf.SetRoot(conf.RootDir)
	if err := conf.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("error in config file: %w", err)
	}
	return conf, nil
}

// RootCommand constructs the root command-line entry point for the relayer.
// Home, trace and environment handling are added by cli.PrepareBaseCmd.
func RootCommand(conf *config.Config, logger log.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "relayer",
		Short: "Relay Tendermint headers to an IBC light client on an EVM chain",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == VersionCmd.Name() {
				return nil
			}

			pconf, err := ParseConfig(conf)
			if err != nil {
				return err
			}
			*conf = *pconf

			return log.OverrideWithNewLogger(logger, conf.LogFormat, conf.LogLevel)
		},
	}
	cmd.PersistentFlags().String("log_level", conf.LogLevel, "log level")
	cmd.PersistentFlags().String("log_format", conf.LogFormat, "log format (plain|json)")
	return cmd
}
