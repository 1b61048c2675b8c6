package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	tmjson "github.com/tendermint/tendermint/libs/json"
	tmversion "github.com/tendermint/tendermint/version"

	"github.com/tendermint/light-relayer/version"
)

// VersionCmd prints the relayer version.
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version info",
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, err := cmd.Flags().GetBool("verbose")
		if err != nil {
			return err
		}
		if !verbose {
			fmt.Fprintln(cmd.OutOrStdout(), version.Version)
			return nil
		}
		bz, err := tmjson.MarshalIndent(version.Current(tmversion.TMCoreSemVer), "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(bz))
		return nil
	},
}

func init() {
	VersionCmd.Flags().BoolP("verbose", "v", false, "Show client type and library versions")
}
