package commands

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tendermint/light-relayer/config"
	"github.com/tendermint/light-relayer/libs/cli"
	"github.com/tendermint/light-relayer/libs/log"
)

// clearConfig clears env vars, the given root dir, and resets viper.
func clearConfig(t *testing.T, dir string) *config.Config {
	t.Helper()
	require.NoError(t, os.Unsetenv("RELAYERHOME"))
	require.NoError(t, os.Unsetenv("RELAYER_HOME"))
	require.NoError(t, os.RemoveAll(dir))

	viper.Reset()
	conf := config.DefaultConfig()
	conf.SetRoot(dir)

	return conf
}

// testRootCmd builds the root command with a subcommand doing nothing, so
// the config is parsed without side effects.
func testRootCmd(conf *config.Config, home string) *cobra.Command {
	logger := log.NewNopLogger()
	cmd := RootCommand(conf, logger)
	cmd.AddCommand(
		MakeInitFilesCommand(conf, logger),
		MakeKeysCommand(conf),
		MakeStatusCommand(conf),
		&cobra.Command{Use: "noop", RunE: func(*cobra.Command, []string) error { return nil }},
	)
	return cli.PrepareBaseCmd(cmd, "RELAYER", home)
}

func runWithArgs(ctx context.Context, t *testing.T, cmd *cobra.Command, args []string, env map[string]string) error {
	t.Helper()
	for k, v := range env {
		t.Setenv(k, v)
	}
	cmd.SetArgs(args)
	return cli.RunWithTrace(ctx, cmd)
}

func TestRootHome(t *testing.T) {
	defaultRoot := t.TempDir()
	newRoot := filepath.Join(defaultRoot, "something-else")
	cases := []struct {
		args []string
		env  map[string]string
		root string
	}{
		{[]string{"noop"}, nil, defaultRoot},
		{[]string{"noop", "--home", newRoot}, nil, newRoot},
		{[]string{"noop"}, map[string]string{"RELAYER_HOME": newRoot}, newRoot},
		{[]string{"noop"}, map[string]string{"RELAYERHOME": newRoot}, newRoot},
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	for i, tc := range cases {
		tc := tc
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			conf := clearConfig(t, tc.root)
			t.Cleanup(func() { os.Unsetenv("RELAYER_HOME") })

			err := runWithArgs(ctx, t, testRootCmd(conf, defaultRoot), tc.args, tc.env)
			require.NoError(t, err)

			require.Equal(t, tc.root, conf.RootDir)
			require.Equal(t, tc.root, conf.Destination.RootDir)
			require.Equal(t, tc.root, conf.Relay.RootDir)
		})
	}
}

func TestRootFlagsEnv(t *testing.T) {
	defaults := config.DefaultConfig()
	defaultDir := t.TempDir()

	defaultLogLvl := defaults.LogLevel

	cases := []struct {
		args     []string
		env      map[string]string
		logLevel string
	}{
		{[]string{"noop"}, nil, defaultLogLvl},
		{[]string{"noop", "--log_level", "debug"}, nil, "debug"},
		{[]string{"noop"}, map[string]string{"RELAYER_LOG_LEVEL": "error"}, "error"},
		{[]string{"noop", "--log_level", "warn"}, map[string]string{"RELAYER_LOG_LEVEL": "error"}, "warn"},
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	for i, tc := range cases {
		tc := tc
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			conf := clearConfig(t, defaultDir)

			err := runWithArgs(ctx, t, testRootCmd(conf, defaultDir), tc.args, tc.env)
			require.NoError(t, err)

			assert.Equal(t, tc.logLevel, conf.LogLevel)
		})
	}
}

func TestRootConfig(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cases := []struct {
		args   []string
		logLvl string
	}{
		{[]string{"noop"}, "debug"},                   // should load config
		{[]string{"noop", "--log_level=info"}, "info"}, // flag over rides
	}

	for i, tc := range cases {
		tc := tc
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			defaultRoot := t.TempDir()
			conf := clearConfig(t, defaultRoot)

			configDir := filepath.Join(defaultRoot, "config")
			require.NoError(t, os.MkdirAll(configDir, 0700))
			data := "log_level = \"debug\"\n\n[relay]\nmax_headers = 7\nclient_id = \"07-tendermint-3\"\n"
			require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(data), 0600))

			err := runWithArgs(ctx, t, testRootCmd(conf, defaultRoot), tc.args, nil)
			require.NoError(t, err)

			assert.Equal(t, tc.logLvl, conf.LogLevel)
			assert.Equal(t, 7, conf.Relay.MaxHeaders)
			assert.Equal(t, "07-tendermint-3", conf.Relay.ClientID)
			// untouched sections keep their defaults
			assert.Equal(t, uint64(20000000), conf.Destination.GasLimit)
		})
	}
}

func TestRootInvalidConfig(t *testing.T) {
	defaultRoot := t.TempDir()
	conf := clearConfig(t, defaultRoot)

	configDir := filepath.Join(defaultRoot, "config")
	require.NoError(t, os.MkdirAll(configDir, 0700))
	data := "[relay]\ntrust_level = \"1/5\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(data), 0600))

	err := runWithArgs(context.Background(), t, testRootCmd(conf, defaultRoot), []string{"noop"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[relay]")
}

func TestInitAndShowKey(t *testing.T) {
	ctx := context.Background()
	home := t.TempDir()

	conf := clearConfig(t, home)
	var initOut bytes.Buffer
	cmd := testRootCmd(conf, home)
	cmd.SetOut(&initOut)
	require.NoError(t, runWithArgs(ctx, t, cmd, []string{"init"}, nil))

	_, err := os.Stat(filepath.Join(home, "config", "config.toml"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(home, "config", "relayer_key.txt"))
	require.NoError(t, err)

	conf = clearConfig(t, home+"-unused")
	var showOut bytes.Buffer
	cmd = testRootCmd(conf, home)
	cmd.SetOut(&showOut)
	require.NoError(t, runWithArgs(ctx, t, cmd, []string{"keys", "show"}, nil))

	assert.NotEmpty(t, initOut.String())
	assert.Equal(t, initOut.String(), showOut.String())
}

func TestShowKeyMissing(t *testing.T) {
	home := t.TempDir()
	conf := clearConfig(t, home)

	err := runWithArgs(context.Background(), t, testRootCmd(conf, home), []string{"keys", "show"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run init")
}
