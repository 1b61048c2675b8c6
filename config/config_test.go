package config

import (
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tmmath "github.com/tendermint/tendermint/libs/math"
)

func TestDefaultConfig(t *testing.T) {
	assert := assert.New(t)

	// set up some defaults
	cfg := DefaultConfig()
	assert.NotNil(cfg.Source)
	assert.NotNil(cfg.Destination)
	assert.NotNil(cfg.Relay)

	// check the root dir stuff...
	cfg.SetRoot("/foo")
	cfg.DBPath = "/opt/data"
	cfg.Relay.SnapshotPath = "snaps"

	assert.Equal("/opt/data", cfg.DBDir())
	assert.Equal("/foo/config/relayer_key.txt", cfg.Destination.KeyFilePath())
	assert.Equal("/foo/snaps", cfg.Relay.SnapshotDir())
}

func TestConfigValidateBasic(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.ValidateBasic())

	cfg.Relay.TrustingPeriod = -10 * time.Second
	err := cfg.ValidateBasic()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[relay]")
}

func TestBaseConfigValidateBasic(t *testing.T) {
	cfg := TestBaseConfig()
	assert.NoError(t, cfg.ValidateBasic())

	cfg.LogFormat = "invalid"
	assert.Error(t, cfg.ValidateBasic())

	cfg = TestBaseConfig()
	cfg.LogLevel = "verbose"
	assert.Error(t, cfg.ValidateBasic())
}

func TestSourceConfigValidateBasic(t *testing.T) {
	testCases := []struct {
		name    string
		modify  func(*SourceConfig)
		wantErr bool
	}{
		{"defaults", func(*SourceConfig) {}, false},
		{"no rpc address", func(c *SourceConfig) { c.RPCAddress = "" }, true},
		{"negative from height", func(c *SourceConfig) { c.FromHeight = -1 }, true},
		{"no attempts", func(c *SourceConfig) { c.MaxRetryAttempts = 0 }, true},
		{"negative interval", func(c *SourceConfig) { c.RetryInterval = -time.Second }, true},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			cfg := TestSourceConfig()
			tc.modify(cfg)
			if tc.wantErr {
				assert.Error(t, cfg.ValidateBasic())
			} else {
				assert.NoError(t, cfg.ValidateBasic())
			}
		})
	}
}

func TestDestinationConfigValidateBasic(t *testing.T) {
	testCases := []struct {
		name    string
		modify  func(*DestinationConfig)
		wantErr bool
	}{
		{"defaults", func(*DestinationConfig) {}, false},
		{"bad handler", func(c *DestinationConfig) { c.HandlerAddress = "0x1234" }, true},
		{"no host", func(c *DestinationConfig) { c.HostAddress = "" }, true},
		{"light client", func(c *DestinationConfig) {
			c.LightClientAddress = "0x00000000000000000000000000000000000000aa"
		}, false},
		{"bad light client", func(c *DestinationConfig) { c.LightClientAddress = "nope" }, true},
		{"no key file", func(c *DestinationConfig) { c.KeyFile = "" }, true},
		{"no gas", func(c *DestinationConfig) { c.GasLimit = 0 }, true},
		{"negative gas price", func(c *DestinationConfig) { c.GasPrice = -1 }, true},
		{"no confirmations", func(c *DestinationConfig) { c.Confirmations = 0 }, true},
		{"no client type", func(c *DestinationConfig) { c.ClientType = "" }, true},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			cfg := TestDestinationConfig()
			tc.modify(cfg)
			if tc.wantErr {
				assert.Error(t, cfg.ValidateBasic())
			} else {
				assert.NoError(t, cfg.ValidateBasic())
			}
		})
	}
}

func TestRelayConfigValidateBasic(t *testing.T) {
	testCases := []struct {
		name    string
		modify  func(*RelayConfig)
		wantErr bool
	}{
		{"defaults", func(*RelayConfig) {}, false},
		{"negative max headers", func(c *RelayConfig) { c.MaxHeaders = -1 }, true},
		{"trusted height without client", func(c *RelayConfig) { c.TrustedHeight = 10 }, true},
		{"resume", func(c *RelayConfig) {
			c.ClientID = "07-tendermint-0"
			c.TrustedHeight = 10
		}, false},
		{"bad trust level", func(c *RelayConfig) { c.TrustLevel = "one third" }, true},
		{"trust level too low", func(c *RelayConfig) { c.TrustLevel = "1/4" }, true},
		{"trust level above one", func(c *RelayConfig) { c.TrustLevel = "4/3" }, true},
		{"zero trusting period", func(c *RelayConfig) { c.TrustingPeriod = 0 }, true},
		{"short unbonding", func(c *RelayConfig) { c.UnbondingPeriod = time.Hour }, true},
		{"negative drift", func(c *RelayConfig) { c.MaxClockDrift = -time.Second }, true},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			cfg := TestRelayConfig()
			tc.modify(cfg)
			if tc.wantErr {
				assert.Error(t, cfg.ValidateBasic())
			} else {
				assert.NoError(t, cfg.ValidateBasic())
			}
		})
	}
}

func TestInstrumentationConfigValidateBasic(t *testing.T) {
	cfg := DefaultInstrumentationConfig()
	assert.NoError(t, cfg.ValidateBasic())

	cfg.Prometheus = true
	cfg.PrometheusListenAddr = ""
	assert.Error(t, cfg.ValidateBasic())
}

func TestRelayerConfig(t *testing.T) {
	cfg := TestConfig().SetRoot("/relayer")
	cfg.Source.FromHeight = 7
	cfg.Relay.MaxHeaders = 0
	cfg.Relay.TrustLevel = "2/3"
	cfg.Relay.ClientID = "07-tendermint-1"
	cfg.Relay.TrustedHeight = 6
	cfg.Destination.LightClientAddress = "0x00000000000000000000000000000000000000aa"

	rc, err := cfg.RelayerConfig()
	require.NoError(t, err)
	assert.Equal(t, int64(7), rc.FromHeight)
	assert.Equal(t, 0, rc.MaxHeaders)
	assert.Equal(t, "07-tendermint", rc.ClientType)
	assert.Equal(t, tmmath.Fraction{Numerator: 2, Denominator: 3}, rc.Params.TrustLevel)
	assert.Equal(t, 14*24*time.Hour, rc.Params.TrustingPeriod)
	assert.Equal(t, "07-tendermint-1", rc.ClientID)
	assert.Equal(t, int64(6), rc.TrustedHeight)
	assert.Equal(t, common.HexToAddress("0xaa"), rc.LightClientAddress)
	assert.Empty(t, rc.SnapshotDir)

	cfg.Relay.SaveHeaders = true
	rc, err = cfg.RelayerConfig()
	require.NoError(t, err)
	assert.Equal(t, "/relayer/data/headers", rc.SnapshotDir)
}

func TestEVMConfig(t *testing.T) {
	cfg := TestDestinationConfig()
	ec := cfg.EVMConfig()
	assert.Nil(t, ec.ChainID)
	assert.Nil(t, ec.GasPrice)
	assert.Equal(t, uint64(20000000), ec.GasLimit)
	assert.Equal(t, common.HexToAddress("0x01"), ec.Handler)
	assert.Equal(t, common.HexToAddress("0x02"), ec.Host)

	cfg.ChainID = 1337
	cfg.GasPrice = 5
	ec = cfg.EVMConfig()
	assert.EqualValues(t, 1337, ec.ChainID.Int64())
	assert.EqualValues(t, 5, ec.GasPrice.Int64())
}
