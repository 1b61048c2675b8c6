// Package fees reports what the relay spends on the destination chain. It
// consumes confirmed receipts in its own goroutine so reporting never slows
// down or fails a relay cycle.
package fees

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/tendermint/light-relayer/internal/evm"
	"github.com/tendermint/light-relayer/internal/relayer"
	"github.com/tendermint/light-relayer/libs/log"
)

const (
	weiPerNative      = 1e18
	defaultBufferSize = 64
)

// Fee is the cost of one transaction.
type Fee struct {
	Action   string
	Height   int64
	ClientID string
	TxHash   common.Hash
	Outcome  evm.Outcome

	GasLimit uint64
	GasUsed  uint64
	// GasPrice in wei, taken from the transaction or the hint when the
	// transaction carries none.
	GasPrice float64
	// Native is the fee in units of the destination's native token.
	Native float64
	USD    float64
}

// Compute prices a receipt. gasPriceHint (wei) replaces a zero gas price and
// usdPrice converts the native fee to USD.
func Compute(ev relayer.ReceiptEvent, gasPriceHint, usdPrice float64) Fee {
	r := ev.Receipt
	fee := Fee{
		Action:   ev.Action,
		Height:   ev.Height,
		ClientID: ev.ClientID,
		Outcome:  ev.Outcome,
		GasPrice: gasPriceHint,
	}
	if r == nil {
		return fee
	}

	fee.TxHash = r.TxHash
	fee.GasLimit = r.GasLimit
	fee.GasUsed = r.GasUsed
	if r.GasPrice != nil && r.GasPrice.Sign() > 0 {
		fee.GasPrice, _ = new(big.Float).SetInt(r.GasPrice).Float64()
	}
	fee.Native = fee.GasPrice * float64(r.GasUsed) / weiPerNative
	fee.USD = fee.Native * usdPrice
	return fee
}

// Reporter logs and accumulates the fee of every reported receipt.
type Reporter struct {
	gasPriceHint float64
	usdPrice     float64
	bufferSize   int

	logger  log.Logger
	metrics *Metrics

	events chan relayer.ReceiptEvent
	done   chan struct{}

	mtx     sync.Mutex
	closed  bool
	dropped int
	total   Fee
	count   int
}

// Option sets an optional parameter of the Reporter.
type Option func(*Reporter)

// WithLogger sets the logger.
func WithLogger(l log.Logger) Option {
	return func(r *Reporter) {
		r.logger = l
	}
}

// WithMetrics sets the metrics.
func WithMetrics(m *Metrics) Option {
	return func(r *Reporter) {
		r.metrics = m
	}
}

// WithBufferSize sets the number of receipts queued before Report drops.
func WithBufferSize(n int) Option {
	return func(r *Reporter) {
		if n > 0 {
			r.bufferSize = n
		}
	}
}

// NewReporter returns a Reporter. It does nothing until Start is called.
func NewReporter(gasPriceHint, usdPrice float64, opts ...Option) *Reporter {
	r := &Reporter{
		gasPriceHint: gasPriceHint,
		usdPrice:     usdPrice,
		bufferSize:   defaultBufferSize,
		logger:       log.NewNopLogger(),
		metrics:      NopMetrics(),
		done:         make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With("module", "fees")
	r.events = make(chan relayer.ReceiptEvent, r.bufferSize)
	return r
}

// Start consumes reported receipts until Stop is called or ctx is done.
// Receipts still queued when ctx is done are reported before the reporter exits.
func (r *Reporter) Start(ctx context.Context) {
	go r.run(ctx)
}

// Stop closes the queue and waits for the queued receipts to be reported.
// Receipts reported afterwards are dropped.
func (r *Reporter) Stop() {
	r.mtx.Lock()
	if !r.closed {
		r.closed = true
		close(r.events)
	}
	r.mtx.Unlock()
	<-r.done
}

// Report queues ev. It never blocks: when the queue is full or closed the
// receipt is dropped. It has the signature of relayer.ReceiptHook.
func (r *Reporter) Report(ev relayer.ReceiptEvent) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if r.closed {
		r.dropped++
		return
	}
	select {
	case r.events <- ev:
	default:
		r.dropped++
		r.metrics.Dropped.Add(1)
	}
}

// Total returns the accumulated fees and the number of reported receipts.
func (r *Reporter) Total() (Fee, int) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return r.total, r.count
}

// Dropped returns the number of receipts that were not reported.
func (r *Reporter) Dropped() int {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return r.dropped
}

func (r *Reporter) run(ctx context.Context) {
	defer close(r.done)

	for {
		select {
		case <-ctx.Done():
			r.drain()
			return
		case ev, ok := <-r.events:
			if !ok {
				return
			}
			r.record(Compute(ev, r.gasPriceHint, r.usdPrice))
		}
	}
}

// drain closes the queue to new receipts and reports the ones already queued.
func (r *Reporter) drain() {
	r.mtx.Lock()
	r.closed = true
	r.mtx.Unlock()

	for {
		select {
		case ev, ok := <-r.events:
			if !ok {
				return
			}
			r.record(Compute(ev, r.gasPriceHint, r.usdPrice))
		default:
			return
		}
	}
}

func (r *Reporter) record(fee Fee) {
	r.mtx.Lock()
	r.total.GasUsed += fee.GasUsed
	r.total.Native += fee.Native
	r.total.USD += fee.USD
	r.count++
	r.mtx.Unlock()

	r.metrics.GasUsed.With("action", fee.Action).Add(float64(fee.GasUsed))
	r.metrics.Native.With("action", fee.Action).Add(fee.Native)
	r.metrics.USD.With("action", fee.Action).Add(fee.USD)

	r.logger.Info("transaction fee",
		"action", fee.Action,
		"height", fee.Height,
		"client_id", fee.ClientID,
		"tx", fee.TxHash.Hex(),
		"outcome", fee.Outcome,
		"gas", fee.GasLimit,
		"gas_used", fee.GasUsed,
		"gas_price", fee.GasPrice,
		"fee", fee.Native,
		"fee_usd", fee.USD,
	)
}
