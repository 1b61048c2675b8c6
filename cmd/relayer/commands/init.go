package commands

import (
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/cobra"

	"github.com/tendermint/light-relayer/config"
	"github.com/tendermint/light-relayer/internal/evm"
	"github.com/tendermint/light-relayer/libs/log"
)

// MakeInitFilesCommand returns the command to initialize a fresh relayer
// home: the config file, the data directory and the signing key.
func MakeInitFilesCommand(conf *config.Config, logger log.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the relayer home directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.EnsureRoot(conf.RootDir); err != nil {
				return err
			}

			keyFile := conf.Destination.KeyFilePath()
			key, err := evm.LoadOrCreateKey(keyFile)
			if err != nil {
				return err
			}
			addr := crypto.PubkeyToAddress(key.PublicKey)
			logger.Info("initialized relayer home", "home", conf.RootDir, "key_file", keyFile, "address", addr.Hex())
			fmt.Fprintln(cmd.OutOrStdout(), addr.Hex())
			return nil
		},
	}
}
