package config

import (
	"fmt"
	"math/big"
	"path/filepath"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	tmmath "github.com/tendermint/tendermint/libs/math"
	tmlight "github.com/tendermint/tendermint/light"

	"github.com/tendermint/light-relayer/internal/canonical"
	"github.com/tendermint/light-relayer/internal/evm"
	"github.com/tendermint/light-relayer/internal/relayer"
)

const (
	// LogFormatPlain is a format for colored text
	LogFormatPlain = "plain"
	// LogFormatJSON is a format for json output
	LogFormatJSON = "json"

	// DefaultLogLevel defines a default log level as INFO.
	DefaultLogLevel = "info"
)

// NOTE: Most of the structs & relevant comments + the
// default configuration options were used to manually
// generate the config.toml. Please reflect any changes
// made here in the defaultConfigTemplate constant in
// config/toml.go
// NOTE: libs/cli must know to look in the config dir!
var (
	DefaultRelayerDir = ".light-relayer"
	defaultConfigDir  = "config"
	defaultDataDir    = "data"

	defaultConfigFileName = "config.toml"
	defaultKeyFileName    = "relayer_key.txt"
	defaultHeadersDirName = "headers"

	defaultConfigFilePath = filepath.Join(defaultConfigDir, defaultConfigFileName)
	defaultKeyFilePath    = filepath.Join(defaultConfigDir, defaultKeyFileName)
	defaultHeadersDir     = filepath.Join(defaultDataDir, defaultHeadersDirName)
)

var validate = validator.New()

// Config defines the top level configuration of the relayer.
type Config struct {
	// Top level options use an anonymous struct
	BaseConfig `mapstructure:",squash"`

	Source          *SourceConfig          `mapstructure:"source"`
	Destination     *DestinationConfig     `mapstructure:"destination"`
	Relay           *RelayConfig           `mapstructure:"relay"`
	Fees            *FeesConfig            `mapstructure:"fees"`
	Instrumentation *InstrumentationConfig `mapstructure:"instrumentation"`
}

// DefaultConfig returns a default configuration.
func DefaultConfig() *Config {
	return &Config{
		BaseConfig:      DefaultBaseConfig(),
		Source:          DefaultSourceConfig(),
		Destination:     DefaultDestinationConfig(),
		Relay:           DefaultRelayConfig(),
		Fees:            DefaultFeesConfig(),
		Instrumentation: DefaultInstrumentationConfig(),
	}
}

// TestConfig returns a configuration that can be used for testing
func TestConfig() *Config {
	return &Config{
		BaseConfig:      TestBaseConfig(),
		Source:          TestSourceConfig(),
		Destination:     TestDestinationConfig(),
		Relay:           TestRelayConfig(),
		Fees:            DefaultFeesConfig(),
		Instrumentation: DefaultInstrumentationConfig(),
	}
}

// SetRoot sets the RootDir for all Config structs
func (cfg *Config) SetRoot(root string) *Config {
	cfg.BaseConfig.RootDir = root
	cfg.Destination.RootDir = root
	cfg.Relay.RootDir = root
	return cfg
}

// ValidateBasic performs basic validation (checking param bounds, etc.) and
// returns an error if any check fails.
func (cfg *Config) ValidateBasic() error {
	if err := cfg.BaseConfig.ValidateBasic(); err != nil {
		return err
	}
	if err := cfg.Source.ValidateBasic(); err != nil {
		return errors.Wrap(err, "error in [source] section")
	}
	if err := cfg.Destination.ValidateBasic(); err != nil {
		return errors.Wrap(err, "error in [destination] section")
	}
	if err := cfg.Relay.ValidateBasic(); err != nil {
		return errors.Wrap(err, "error in [relay] section")
	}
	if err := cfg.Fees.ValidateBasic(); err != nil {
		return errors.Wrap(err, "error in [fees] section")
	}
	return errors.Wrap(
		cfg.Instrumentation.ValidateBasic(),
		"error in [instrumentation] section",
	)
}

// RelayerConfig assembles the parameters of a relay run.
func (cfg *Config) RelayerConfig() (relayer.Config, error) {
	params, err := cfg.Relay.ClientParams()
	if err != nil {
		return relayer.Config{}, err
	}
	rc := relayer.Config{
		MaxHeaders:      cfg.Relay.MaxHeaders,
		FromHeight:      cfg.Source.FromHeight,
		NonAdjacentTest: cfg.Relay.NonAdjacentTest,
		ClientType:      cfg.Destination.ClientType,
		Params:          params,
		ClientID:        cfg.Relay.ClientID,
		TrustedHeight:   cfg.Relay.TrustedHeight,
	}
	if cfg.Destination.LightClientAddress != "" {
		rc.LightClientAddress = common.HexToAddress(cfg.Destination.LightClientAddress)
	}
	if cfg.Relay.SaveHeaders {
		rc.SnapshotDir = cfg.Relay.SnapshotDir()
	}
	return rc, nil
}

//-----------------------------------------------------------------------------
// BaseConfig

// BaseConfig defines the base configuration of the relayer.
type BaseConfig struct {
	// The root directory for all data.
	// This should be set in viper so it can unmarshal into this struct
	RootDir string `mapstructure:"home"`

	// Database backend: goleveldb | cleveldb | boltdb | rocksdb | badgerdb | memdb
	DBBackend string `mapstructure:"db_backend" validate:"required"`

	// Database directory
	DBPath string `mapstructure:"db_dir"`

	// Output level for logging
	LogLevel string `mapstructure:"log_level" validate:"oneof=debug info warn error"`

	// Output format: 'plain' (colored text) or 'json'
	LogFormat string `mapstructure:"log_format"`
}

// DefaultBaseConfig returns a default base configuration.
func DefaultBaseConfig() BaseConfig {
	return BaseConfig{
		DBBackend: "goleveldb",
		DBPath:    defaultDataDir,
		LogLevel:  DefaultLogLevel,
		LogFormat: LogFormatPlain,
	}
}

// TestBaseConfig returns a base configuration for testing.
func TestBaseConfig() BaseConfig {
	cfg := DefaultBaseConfig()
	cfg.DBBackend = "memdb"
	return cfg
}

// DBDir returns the full path to the database directory
func (cfg BaseConfig) DBDir() string {
	return rootify(cfg.DBPath, cfg.RootDir)
}

// ValidateBasic performs basic validation (checking param bounds, etc.) and
// returns an error if any check fails.
func (cfg BaseConfig) ValidateBasic() error {
	switch cfg.LogFormat {
	case LogFormatPlain, LogFormatJSON:
	default:
		return errors.New("unknown log_format (must be 'plain' or 'json')")
	}
	return validate.Struct(cfg)
}

//-----------------------------------------------------------------------------
// SourceConfig

// SourceConfig defines how headers are fetched from the Tendermint chain.
type SourceConfig struct {
	// RPC address of a Tendermint node.
	RPCAddress string `mapstructure:"rpc_address" validate:"required"`

	// Expected chain id of fetched headers. Empty accepts any chain.
	ChainID string `mapstructure:"chain_id"`

	// First height to relay. 0 starts after the trusted height, or at the
	// latest height for a new client.
	FromHeight int64 `mapstructure:"from_height" validate:"gte=0"`

	// Fetch attempts per height before the run is aborted.
	MaxRetryAttempts int `mapstructure:"max_retry_attempts" validate:"gt=0"`

	// Pause between two fetch attempts.
	RetryInterval time.Duration `mapstructure:"retry_interval"`
}

// DefaultSourceConfig returns a default configuration for the source chain.
func DefaultSourceConfig() *SourceConfig {
	return &SourceConfig{
		RPCAddress:       "tcp://127.0.0.1:26657",
		MaxRetryAttempts: 10,
		RetryInterval:    2 * time.Second,
	}
}

// TestSourceConfig returns a source configuration for testing.
func TestSourceConfig() *SourceConfig {
	cfg := DefaultSourceConfig()
	cfg.MaxRetryAttempts = 3
	cfg.RetryInterval = 10 * time.Millisecond
	return cfg
}

// ValidateBasic performs basic validation (checking param bounds, etc.) and
// returns an error if any check fails.
func (cfg *SourceConfig) ValidateBasic() error {
	if cfg.RetryInterval < 0 {
		return errors.New("retry_interval can't be negative")
	}
	return validate.Struct(cfg)
}

//-----------------------------------------------------------------------------
// DestinationConfig

// DestinationConfig defines the EVM chain and the IBC contracts the light
// client lives in.
type DestinationConfig struct {
	RootDir string `mapstructure:"home"`

	// JSON-RPC address of an EVM node.
	RPCAddress string `mapstructure:"rpc_address" validate:"required"`

	// 0 queries the chain id from the node.
	ChainID int64 `mapstructure:"chain_id" validate:"gte=0"`

	// Address of the IBC handler contract.
	HandlerAddress string `mapstructure:"handler_address" validate:"required,eth_addr"`

	// Address of the IBC host contract emitting client identifiers.
	HostAddress string `mapstructure:"host_address" validate:"required,eth_addr"`

	// Implementation registered for the client type before the create.
	// Empty skips the registration.
	LightClientAddress string `mapstructure:"light_client_address" validate:"omitempty,eth_addr"`

	// Hex encoded secp256k1 key signing transactions. Generated if missing.
	KeyFile string `mapstructure:"key_file" validate:"required"`

	GasLimit uint64 `mapstructure:"gas_limit" validate:"gt=0"`

	// Gas price in wei. 0 lets the node suggest one.
	GasPrice int64 `mapstructure:"gas_price" validate:"gte=0"`

	// Blocks, including the one holding the transaction, to wait for.
	Confirmations uint64 `mapstructure:"confirmations" validate:"gt=0"`

	ClientType string `mapstructure:"client_type" validate:"required"`
}

// DefaultDestinationConfig returns a default configuration for the
// destination chain.
func DefaultDestinationConfig() *DestinationConfig {
	return &DestinationConfig{
		RPCAddress:     "http://127.0.0.1:8545",
		HandlerAddress: common.Address{}.Hex(),
		HostAddress:    common.Address{}.Hex(),
		KeyFile:        defaultKeyFilePath,
		GasLimit:       20000000,
		Confirmations:  1,
		ClientType:     relayer.DefaultClientType,
	}
}

// TestDestinationConfig returns a destination configuration for testing.
func TestDestinationConfig() *DestinationConfig {
	cfg := DefaultDestinationConfig()
	cfg.HandlerAddress = "0x0000000000000000000000000000000000000001"
	cfg.HostAddress = "0x0000000000000000000000000000000000000002"
	return cfg
}

// KeyFilePath returns the full path to the signing key file.
func (cfg *DestinationConfig) KeyFilePath() string {
	return rootify(cfg.KeyFile, cfg.RootDir)
}

// EVMConfig returns the client configuration. A zero chain id is left nil
// so it is queried on dial.
func (cfg *DestinationConfig) EVMConfig() evm.Config {
	ec := evm.Config{
		Handler:       common.HexToAddress(cfg.HandlerAddress),
		Host:          common.HexToAddress(cfg.HostAddress),
		GasLimit:      cfg.GasLimit,
		Confirmations: cfg.Confirmations,
	}
	if cfg.ChainID > 0 {
		ec.ChainID = big.NewInt(cfg.ChainID)
	}
	if cfg.GasPrice > 0 {
		ec.GasPrice = big.NewInt(cfg.GasPrice)
	}
	return ec
}

// ValidateBasic performs basic validation (checking param bounds, etc.) and
// returns an error if any check fails.
func (cfg *DestinationConfig) ValidateBasic() error {
	return validate.Struct(cfg)
}

//-----------------------------------------------------------------------------
// RelayConfig

// RelayConfig defines the relay loop and the parameters of the created
// client.
type RelayConfig struct {
	RootDir string `mapstructure:"home"`

	// Number of headers relayed before exiting. 0 relays until interrupted.
	MaxHeaders int `mapstructure:"max_headers" validate:"gte=0"`

	// Skip the header after the create so the first update is
	// non-adjacent.
	NonAdjacentTest bool `mapstructure:"non_adjacent_test"`

	// Write the fetched signed header and validator set of every height to
	// the headers directory.
	SaveHeaders  bool   `mapstructure:"save_headers"`
	SnapshotPath string `mapstructure:"snapshot_dir"`

	// Resume an existing client instead of creating one.
	ClientID      string `mapstructure:"client_id"`
	TrustedHeight int64  `mapstructure:"trusted_height" validate:"gte=0"`

	// Relay records kept in the database. 0 keeps all of them.
	KeepRecords uint64 `mapstructure:"keep_records"`

	TrustLevel      string        `mapstructure:"trust_level" validate:"required"`
	TrustingPeriod  time.Duration `mapstructure:"trusting_period"`
	UnbondingPeriod time.Duration `mapstructure:"unbonding_period"`
	MaxClockDrift   time.Duration `mapstructure:"max_clock_drift"`
}

// DefaultRelayConfig returns a default relay configuration.
func DefaultRelayConfig() *RelayConfig {
	params := canonical.DefaultClientParams()
	return &RelayConfig{
		MaxHeaders:      3,
		SnapshotPath:    defaultHeadersDir,
		TrustLevel:      params.TrustLevel.String(),
		TrustingPeriod:  params.TrustingPeriod,
		UnbondingPeriod: params.UnbondingPeriod,
		MaxClockDrift:   params.MaxClockDrift,
	}
}

// TestRelayConfig returns a relay configuration for testing.
func TestRelayConfig() *RelayConfig {
	return DefaultRelayConfig()
}

// SnapshotDir returns the full path to the headers directory.
func (cfg *RelayConfig) SnapshotDir() string {
	return rootify(cfg.SnapshotPath, cfg.RootDir)
}

// ClientParams parses the client policy fields.
func (cfg *RelayConfig) ClientParams() (canonical.ClientParams, error) {
	params := canonical.DefaultClientParams()
	lvl, err := tmmath.ParseFraction(cfg.TrustLevel)
	if err != nil {
		return params, fmt.Errorf("trust_level: %w", err)
	}
	if err := tmlight.ValidateTrustLevel(lvl); err != nil {
		return params, fmt.Errorf("trust_level: %w", err)
	}
	params.TrustLevel = lvl
	params.TrustingPeriod = cfg.TrustingPeriod
	params.UnbondingPeriod = cfg.UnbondingPeriod
	params.MaxClockDrift = cfg.MaxClockDrift
	return params, nil
}

// ValidateBasic performs basic validation (checking param bounds, etc.) and
// returns an error if any check fails.
func (cfg *RelayConfig) ValidateBasic() error {
	if err := validate.Struct(cfg); err != nil {
		return err
	}
	if cfg.TrustedHeight > 0 && cfg.ClientID == "" {
		return errors.New("trusted_height requires client_id")
	}
	if cfg.TrustingPeriod <= 0 {
		return errors.New("trusting_period must be positive")
	}
	if cfg.UnbondingPeriod < cfg.TrustingPeriod {
		return errors.New("unbonding_period can't be shorter than trusting_period")
	}
	if cfg.MaxClockDrift < 0 {
		return errors.New("max_clock_drift can't be negative")
	}
	_, err := cfg.ClientParams()
	return err
}

//-----------------------------------------------------------------------------
// FeesConfig

// FeesConfig defines the prices fees are reported with.
type FeesConfig struct {
	// Gas price in wei used when a receipt carries none.
	GasPriceHint float64 `mapstructure:"gas_price_hint" validate:"gte=0"`

	// Price of the destination native token in USD.
	USDPriceHint float64 `mapstructure:"usd_price_hint" validate:"gte=0"`
}

// DefaultFeesConfig returns a default fees configuration.
func DefaultFeesConfig() *FeesConfig {
	return &FeesConfig{}
}

// ValidateBasic performs basic validation (checking param bounds, etc.) and
// returns an error if any check fails.
func (cfg *FeesConfig) ValidateBasic() error {
	return validate.Struct(cfg)
}

//-----------------------------------------------------------------------------
// InstrumentationConfig

// InstrumentationConfig defines the configuration for metrics reporting.
type InstrumentationConfig struct {
	// When true, Prometheus metrics are served under /metrics on
	// PrometheusListenAddr.
	Prometheus bool `mapstructure:"prometheus"`

	// Address to listen for Prometheus collector(s) connections.
	PrometheusListenAddr string `mapstructure:"prometheus_listen_addr"`

	// Instrumentation namespace.
	Namespace string `mapstructure:"namespace" validate:"required"`
}

// DefaultInstrumentationConfig returns a default configuration for metrics
// reporting.
func DefaultInstrumentationConfig() *InstrumentationConfig {
	return &InstrumentationConfig{
		Prometheus:           false,
		PrometheusListenAddr: ":26660",
		Namespace:            "relayer",
	}
}

// ValidateBasic performs basic validation (checking param bounds, etc.) and
// returns an error if any check fails.
func (cfg *InstrumentationConfig) ValidateBasic() error {
	if cfg.Prometheus && cfg.PrometheusListenAddr == "" {
		return errors.New("prometheus_listen_addr is required when prometheus is on")
	}
	return validate.Struct(cfg)
}

//-----------------------------------------------------------------------------
// Utils

// helper function to make config creation independent of root dir
func rootify(path, root string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
