package config

import (
	"bytes"
	"path/filepath"
	"text/template"

	"github.com/creachadair/atomicfile"
	tmos "github.com/tendermint/tendermint/libs/os"
)

// defaultDirPerm is the default permissions used when creating directories.
const defaultDirPerm = 0700

var configTemplate *template.Template

func init() {
	var err error
	if configTemplate, err = template.New("configFileTemplate").Parse(defaultConfigTemplate); err != nil {
		panic(err)
	}
}

// EnsureRoot creates the root, config, and data directories if they don't
// exist, and writes the default config file if there is none.
func EnsureRoot(rootDir string) error {
	for _, dir := range []string{
		rootDir,
		filepath.Join(rootDir, defaultConfigDir),
		filepath.Join(rootDir, defaultDataDir),
	} {
		if err := tmos.EnsureDir(dir, defaultDirPerm); err != nil {
			return err
		}
	}
	return writeDefaultConfigFileIfNone(rootDir)
}

// WriteConfigFile renders config using the template and writes it to
// configFilePath.
func WriteConfigFile(rootDir string, config *Config) error {
	return config.WriteToTemplate(filepath.Join(rootDir, defaultConfigFilePath))
}

// WriteToTemplate writes the config to the exact file specified by
// the path, in the default toml template and does not mangle the path
// or filename at all.
func (cfg *Config) WriteToTemplate(path string) error {
	var buffer bytes.Buffer

	if err := configTemplate.Execute(&buffer, cfg); err != nil {
		return err
	}

	_, err := atomicfile.WriteAll(path, &buffer, 0644)
	return err
}

func writeDefaultConfigFileIfNone(rootDir string) error {
	configFilePath := filepath.Join(rootDir, defaultConfigFilePath)
	if !tmos.FileExists(configFilePath) {
		return WriteConfigFile(rootDir, DefaultConfig())
	}
	return nil
}

// Note: any changes to the comments/variables/mapstructure
// must be reflected in the appropriate struct in config/config.go
const defaultConfigTemplate = `# This is a TOML config file.
# For more information, see https://github.com/toml-lang/toml

# NOTE: Any path below can be absolute (e.g. "/var/relayer/data") or
# relative to the home directory (e.g. "data"). The home directory is
# "$HOME/.light-relayer" by default, but could be changed via $RELAYER_HOME
# env variable or --home cmd flag.

#######################################################################
###                   Main Base Config Options                      ###
#######################################################################

# Database backend: goleveldb | cleveldb | boltdb | rocksdb | badgerdb | memdb
db_backend = "{{ .BaseConfig.DBBackend }}"

# Database directory
db_dir = "{{ js .BaseConfig.DBPath }}"

# Output level for logging: debug | info | warn | error
log_level = "{{ .BaseConfig.LogLevel }}"

# Output format: 'plain' (colored text) or 'json'
log_format = "{{ .BaseConfig.LogFormat }}"

#######################################################################
###                    Source Chain Options                         ###
#######################################################################
[source]

# RPC address of a Tendermint node
rpc_address = "{{ .Source.RPCAddress }}"

# Expected chain id of fetched headers. Empty accepts any chain.
chain_id = "{{ .Source.ChainID }}"

# First height to relay. 0 starts after the trusted height, or at the
# latest height for a new client.
from_height = {{ .Source.FromHeight }}

# Fetch attempts per height before the run is aborted
max_retry_attempts = {{ .Source.MaxRetryAttempts }}

# Pause between two fetch attempts
retry_interval = "{{ .Source.RetryInterval }}"

#######################################################################
###                  Destination Chain Options                      ###
#######################################################################
[destination]

# JSON-RPC address of an EVM node
rpc_address = "{{ .Destination.RPCAddress }}"

# 0 queries the chain id from the node
chain_id = {{ .Destination.ChainID }}

# IBC handler and host contracts
handler_address = "{{ .Destination.HandlerAddress }}"
host_address = "{{ .Destination.HostAddress }}"

# Implementation registered for client_type before the create.
# Empty skips the registration.
light_client_address = "{{ .Destination.LightClientAddress }}"

# Hex encoded secp256k1 key signing transactions. Generated if missing.
key_file = "{{ js .Destination.KeyFile }}"

gas_limit = {{ .Destination.GasLimit }}

# Gas price in wei. 0 lets the node suggest one.
gas_price = {{ .Destination.GasPrice }}

# Blocks, including the one holding the transaction, to wait for
confirmations = {{ .Destination.Confirmations }}

client_type = "{{ .Destination.ClientType }}"

#######################################################################
###                        Relay Options                            ###
#######################################################################
[relay]

# Number of headers relayed before exiting. 0 relays until interrupted.
max_headers = {{ .Relay.MaxHeaders }}

# Skip the header after the create so the first update is non-adjacent
non_adjacent_test = {{ .Relay.NonAdjacentTest }}

# Write the fetched signed header and validator set of every height
# to snapshot_dir
save_headers = {{ .Relay.SaveHeaders }}
snapshot_dir = "{{ js .Relay.SnapshotPath }}"

# Resume an existing client instead of creating one
client_id = "{{ .Relay.ClientID }}"
trusted_height = {{ .Relay.TrustedHeight }}

# Relay records kept in the database. 0 keeps all of them.
keep_records = {{ .Relay.KeepRecords }}

# Parameters of the created client
trust_level = "{{ .Relay.TrustLevel }}"
trusting_period = "{{ .Relay.TrustingPeriod }}"
unbonding_period = "{{ .Relay.UnbondingPeriod }}"
max_clock_drift = "{{ .Relay.MaxClockDrift }}"

#######################################################################
###                         Fee Options                             ###
#######################################################################
[fees]

# Gas price in wei used when a receipt carries none
gas_price_hint = {{ .Fees.GasPriceHint }}

# Price of the destination native token in USD
usd_price_hint = {{ .Fees.USDPriceHint }}

#######################################################################
###                   Instrumentation Options                       ###
#######################################################################
[instrumentation]

# When true, Prometheus metrics are served under /metrics on
# PrometheusListenAddr.
prometheus = {{ .Instrumentation.Prometheus }}

# Address to listen for Prometheus collector(s) connections
prometheus_listen_addr = "{{ .Instrumentation.PrometheusListenAddr }}"

# Instrumentation namespace
namespace = "{{ .Instrumentation.Namespace }}"
`
