package commands

import (
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/cobra"

	"github.com/tendermint/light-relayer/config"
	"github.com/tendermint/light-relayer/internal/evm"
)

// MakeKeysCommand returns the keys command and its subcommands.
func MakeKeysCommand(conf *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Manage the destination signing key",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the address transactions are sent from",
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := evm.LoadKey(conf.Destination.KeyFilePath())
			if err != nil {
				return fmt.Errorf("%w (run init to generate a key)", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), crypto.PubkeyToAddress(key.PublicKey).Hex())
			return nil
		},
	})
	return cmd
}
