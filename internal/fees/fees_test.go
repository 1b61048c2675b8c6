package fees

import (
	"context"
	"math/big"
	"testing"

	"github.com/fortytw2/leaktest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tendermint/light-relayer/internal/evm"
	"github.com/tendermint/light-relayer/internal/relayer"
	"github.com/tendermint/light-relayer/libs/log"
)

func event(gasUsed uint64, gasPrice int64) relayer.ReceiptEvent {
	return relayer.ReceiptEvent{
		Action:  "update",
		Height:  101,
		Outcome: evm.OutcomeSuccess,
		Receipt: &evm.Receipt{GasUsed: gasUsed, GasPrice: big.NewInt(gasPrice), GasLimit: 20_000_000},
	}
}

func TestCompute(t *testing.T) {
	testCases := []struct {
		name     string
		ev       relayer.ReceiptEvent
		hint     float64
		usd      float64
		gasPrice float64
		native   float64
	}{
		{"transaction price", event(1_000_000, 2_000_000_000), 5, 2, 2e9, 0.002},
		{"hint for zero price", event(1_000_000, 0), 5e8, 2, 5e8, 0.0005},
		{"no price at all", event(1_000_000, 0), 0, 2, 0, 0},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			fee := Compute(tc.ev, tc.hint, tc.usd)
			assert.Equal(t, tc.gasPrice, fee.GasPrice)
			assert.InDelta(t, tc.native, fee.Native, 1e-12)
			assert.InDelta(t, tc.native*tc.usd, fee.USD, 1e-12)
			assert.EqualValues(t, 20_000_000, fee.GasLimit)
		})
	}

	fee := Compute(relayer.ReceiptEvent{Action: "skip"}, 1, 1)
	assert.Zero(t, fee.Native)
}

func TestReporter(t *testing.T) {
	defer leaktest.Check(t)()

	r := NewReporter(0, 1.5, WithLogger(log.TestingLogger()))
	r.Start(context.Background())

	r.Report(event(1_000_000, 1_000_000_000))
	r.Report(event(3_000_000, 1_000_000_000))
	r.Stop()

	total, count := r.Total()
	require.Equal(t, 2, count)
	assert.EqualValues(t, 4_000_000, total.GasUsed)
	assert.InDelta(t, 0.004, total.Native, 1e-12)
	assert.InDelta(t, 0.006, total.USD, 1e-12)

	// reporting after stop is a no-op
	r.Report(event(1, 1))
	assert.Equal(t, 1, r.Dropped())
	r.Stop()
}

func TestReportNeverBlocks(t *testing.T) {
	defer leaktest.Check(t)()

	r := NewReporter(0, 0, WithBufferSize(1))
	r.Report(event(1, 1))
	r.Report(event(1, 1))
	r.Report(event(1, 1))
	assert.Equal(t, 2, r.Dropped())

	r.Start(context.Background())
	r.Stop()
	_, count := r.Total()
	assert.Equal(t, 1, count)
}

func TestReporterContextCancel(t *testing.T) {
	defer leaktest.Check(t)()

	ctx, cancel := context.WithCancel(context.Background())
	r := NewReporter(0, 0)
	r.Start(ctx)
	cancel()
	r.Stop()
}

func TestReporterContextCancelReportsQueued(t *testing.T) {
	defer leaktest.Check(t)()

	ctx, cancel := context.WithCancel(context.Background())
	r := NewReporter(0, 0, WithBufferSize(8))
	for i := 0; i < 5; i++ {
		r.Report(event(1_000, 1))
	}
	cancel()
	r.Start(ctx)
	r.Stop()

	total, count := r.Total()
	assert.Equal(t, 5, count)
	assert.EqualValues(t, 5_000, total.GasUsed)
	assert.Zero(t, r.Dropped())

	r.Report(event(1, 1))
	assert.Equal(t, 1, r.Dropped())
}
