package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/tendermint/light-relayer/cmd/relayer/commands"
	"github.com/tendermint/light-relayer/config"
	"github.com/tendermint/light-relayer/libs/cli"
	"github.com/tendermint/light-relayer/libs/log"
)

func main() {
	ctx := context.Background()

	conf := config.DefaultConfig()

	logger, err := log.NewDefaultLogger(log.LogFormatPlain, log.LogLevelInfo)
	if err != nil {
		panic(err)
	}

	rcmd := commands.RootCommand(conf, logger)
	rcmd.AddCommand(
		commands.MakeInitFilesCommand(conf, logger),
		commands.MakeRelayCommand(conf, logger),
		commands.MakeStatusCommand(conf),
		commands.MakeKeysCommand(conf),
		commands.VersionCmd,
	)

	home := os.ExpandEnv(filepath.Join("$HOME", config.DefaultRelayerDir))
	if err := cli.RunWithTrace(ctx, cli.PrepareBaseCmd(rcmd, "RELAYER", home)); err != nil {
		os.Exit(1)
	}
}
