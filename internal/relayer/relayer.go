// Package relayer drives the lifecycle of a Tendermint light client on the
// destination chain: it creates the client from one source header, then
// keeps it updated with every following header, one cycle at a time.
package relayer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	gogotypes "github.com/gogo/protobuf/types"
	"github.com/google/uuid"
	tmlight "github.com/tendermint/tendermint/light"

	"github.com/tendermint/light-relayer/internal/canonical"
	"github.com/tendermint/light-relayer/internal/envelope"
	"github.com/tendermint/light-relayer/internal/evm"
	"github.com/tendermint/light-relayer/internal/snapshot"
	"github.com/tendermint/light-relayer/libs/log"
	"github.com/tendermint/light-relayer/light/provider"
	"github.com/tendermint/light-relayer/light/store"
	lightproto "github.com/tendermint/light-relayer/proto/tendermint/light"
	"github.com/tendermint/light-relayer/version"
)

// DefaultClientType is the IBC client type of Tendermint light clients.
const DefaultClientType = version.ClientType

// Config holds the parameters of a relay run.
type Config struct {
	// MaxHeaders bounds the number of cycles. Zero relays until the context
	// is cancelled.
	MaxHeaders int
	// FromHeight is the first height relayed. Zero starts after the trusted
	// height when there is one, else at the latest source height.
	FromHeight int64
	// NonAdjacentTest skips the header after the create, so the first update
	// is non-adjacent.
	NonAdjacentTest bool

	ClientType string
	// LightClientAddress is registered for ClientType before the create.
	// The zero address skips registration.
	LightClientAddress common.Address
	Params             canonical.ClientParams

	// ClientID together with TrustedHeight resumes an existing client.
	ClientID      string
	TrustedHeight int64

	// SnapshotDir receives the raw data of every fetched height when set.
	SnapshotDir string
}

// DefaultConfig returns the parameters of a three-header relay.
func DefaultConfig() Config {
	return Config{
		MaxHeaders: 3,
		ClientType: DefaultClientType,
		Params:     canonical.DefaultClientParams(),
	}
}

// ReceiptEvent describes one confirmed destination transaction.
type ReceiptEvent struct {
	Action   string
	Height   int64
	ClientID string
	Outcome  evm.Outcome
	Receipt  *evm.Receipt
}

// ReceiptHook is called for every confirmed transaction. It must not block.
type ReceiptHook func(ReceiptEvent)

// Relayer moves headers from a source chain to the destination client.
type Relayer struct {
	cfg    Config
	source provider.Provider
	dest   evm.Destination

	store     store.Store
	logger    log.Logger
	metrics   *Metrics
	onReceipt ReceiptHook
	now       func() time.Time
	runID     string

	mtx    sync.RWMutex
	state  TrustState
	cycles int
}

// Option sets an optional parameter of the Relayer.
type Option func(*Relayer)

// WithStore persists the trust state and a journal of submissions. A state
// found in the store seeds the relay unless the config names a client and
// trusted height.
func WithStore(s store.Store) Option {
	return func(r *Relayer) {
		r.store = s
	}
}

// WithLogger sets the logger.
func WithLogger(l log.Logger) Option {
	return func(r *Relayer) {
		r.logger = l
	}
}

// WithMetrics sets the metrics.
func WithMetrics(m *Metrics) Option {
	return func(r *Relayer) {
		r.metrics = m
	}
}

// WithReceiptHook registers h for every confirmed transaction.
func WithReceiptHook(h ReceiptHook) Option {
	return func(r *Relayer) {
		r.onReceipt = h
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(r *Relayer) {
		r.now = now
	}
}

// New returns a Relayer with its trust state seeded from cfg or the store.
func New(cfg Config, source provider.Provider, dest evm.Destination, opts ...Option) (*Relayer, error) {
	if cfg.ClientType == "" {
		cfg.ClientType = DefaultClientType
	}
	if err := tmlight.ValidateTrustLevel(cfg.Params.TrustLevel); err != nil {
		return nil, fmt.Errorf("invalid trust level: %w", err)
	}

	r := &Relayer{
		cfg:     cfg,
		source:  source,
		dest:    dest,
		logger:  log.NewNopLogger(),
		metrics: NopMetrics(),
		now:     time.Now,
		runID:   uuid.New().String(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With("module", "relayer", "run", r.runID)

	state, err := r.seed()
	if err != nil {
		return nil, err
	}
	r.state = state
	if state.TrustedHeight > 0 {
		r.metrics.TrustedHeight.Set(float64(state.TrustedHeight))
	}

	return r, nil
}

func (r *Relayer) seed() (TrustState, error) {
	if r.cfg.ClientID != "" && r.cfg.TrustedHeight > 0 {
		return TrustState{
			Phase:         PhaseUpdating,
			ClientID:      r.cfg.ClientID,
			TrustedHeight: r.cfg.TrustedHeight,
		}, nil
	}

	if r.store != nil {
		rec, err := r.store.TrustState()
		switch {
		case err == nil:
			state, err := TrustStateFromProto(rec)
			if err != nil {
				return TrustState{}, fmt.Errorf("restoring trust state: %w", err)
			}
			if r.cfg.ClientID != "" {
				state = state.WithClientID(r.cfg.ClientID)
			}
			return state, nil
		case !errors.Is(err, store.ErrNotFound):
			return TrustState{}, fmt.Errorf("loading trust state: %w", err)
		}
	}

	return NewTrustState().WithClientID(r.cfg.ClientID), nil
}

// TrustState returns the current trust state.
func (r *Relayer) TrustState() TrustState {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return r.state
}

// Cycles returns the number of completed cycles.
func (r *Relayer) Cycles() int {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return r.cycles
}

// RunID identifies this relayer in logs and journal records.
func (r *Relayer) RunID() string { return r.runID }

// Run relays headers until MaxHeaders cycles completed, an error occurs or
// ctx is cancelled. A cycle is never interrupted between submission and
// confirmation except by ctx.
func (r *Relayer) Run(ctx context.Context) error {
	height, err := r.startHeight(ctx)
	if err != nil {
		return err
	}
	r.logger.Info("starting relay", "height", height, "state", r.TrustState().String(), "max_headers", r.cfg.MaxHeaders)

	for r.cfg.MaxHeaders <= 0 || r.Cycles() < r.cfg.MaxHeaders {
		if err := ctx.Err(); err != nil {
			return err
		}

		relayed, err := r.cycle(ctx, height)
		if err != nil {
			return err
		}
		height = relayed + 1
	}

	r.logger.Info("relay finished", "cycles", r.Cycles(), "state", r.TrustState().String())
	return nil
}

func (r *Relayer) startHeight(ctx context.Context) (int64, error) {
	if r.cfg.FromHeight > 0 {
		return r.cfg.FromHeight, nil
	}
	if state := r.TrustState(); state.Phase != PhaseCreatePending {
		return state.TrustedHeight + 1, nil
	}
	latest, err := r.source.LatestHeight(ctx)
	if err != nil {
		return 0, fmt.Errorf("querying latest height: %w", err)
	}
	return latest, nil
}

// cycle relays the header at height and returns the height it relayed.
func (r *Relayer) cycle(ctx context.Context, height int64) (int64, error) {
	start := r.now()

	lb, err := r.source.LightBlock(ctx, height)
	if err != nil {
		return 0, fmt.Errorf("fetching height %d: %w", height, err)
	}
	r.metrics.SourceHeight.Set(float64(lb.Height))

	if r.cfg.SnapshotDir != "" {
		if err := snapshot.Save(r.cfg.SnapshotDir, lb); err != nil {
			r.logger.Error("failed to save header snapshot", "height", lb.Height, "err", err)
		}
	}

	header, err := canonical.LightBlock(lb)
	if err != nil {
		return 0, err
	}

	state := r.TrustState()
	action := state.Next()
	r.logger.Debug("cycle", "height", lb.Height, "action", action.String(), "state", state.String())

	switch action {
	case ActionCreate:
		err = r.create(ctx, header)
	case ActionSkip:
		err = r.skip(header)
	default:
		err = r.update(ctx, header)
	}
	if err != nil {
		return 0, err
	}

	r.mtx.Lock()
	r.cycles++
	r.mtx.Unlock()
	r.metrics.Cycles.Add(1)
	r.metrics.CycleDuration.Observe(r.now().Sub(start).Seconds())

	return lb.Height, nil
}

func (r *Relayer) create(ctx context.Context, header *lightproto.TmHeader) error {
	height := header.Height()
	r.register(ctx)

	lightHeader := header.SignedHeader.Header
	clientState, err := envelope.Encode(
		canonical.ClientState(lightHeader, r.cfg.Params), envelope.TypeURLClientState)
	if err != nil {
		return err
	}
	consensusState, err := envelope.Encode(
		canonical.ConsensusState(lightHeader), envelope.TypeURLConsensusState)
	if err != nil {
		return err
	}

	receipt, err := r.dest.CreateClient(ctx, evm.MsgCreateClient{
		ClientType:          r.cfg.ClientType,
		Height:              uint64(height),
		ClientStateBytes:    clientState,
		ConsensusStateBytes: consensusState,
	})
	if err != nil {
		return ErrSubmission{Method: "createClient", Height: height, Reason: err}
	}

	state := r.TrustState()
	outcome, err := r.settle(ActionCreate.String(), height, state.ClientID, receipt)
	if err != nil {
		return err
	}
	if outcome != evm.OutcomeRejected {
		if err := r.commit(state.Created(height, r.cfg.NonAdjacentTest)); err != nil {
			return err
		}
	}
	r.journal(ActionCreate.String(), height, state.ClientID, receipt, outcome)
	return nil
}

// register binds the light client implementation to the client type. Its
// failures are logged and never block the create.
func (r *Relayer) register(ctx context.Context) {
	if r.cfg.LightClientAddress == (common.Address{}) {
		return
	}

	receipt, err := r.dest.RegisterClientType(ctx, r.cfg.ClientType, r.cfg.LightClientAddress)
	if err != nil {
		r.logger.Error("failed to register client type", "client_type", r.cfg.ClientType, "err", err)
		return
	}
	if _, err := r.settle("register", 0, "", receipt); err != nil {
		r.logger.Error("failed to register client type", "client_type", r.cfg.ClientType, "err", err)
	}
}

func (r *Relayer) skip(header *lightproto.TmHeader) error {
	height := header.Height()
	state := r.TrustState()
	r.logger.Info("skipping header", "height", height, "trusted_height", state.TrustedHeight)

	if err := r.commit(state.Skipped()); err != nil {
		return err
	}
	r.journal(ActionSkip.String(), height, state.ClientID, nil, "skipped")
	return nil
}

func (r *Relayer) update(ctx context.Context, header *lightproto.TmHeader) error {
	height := header.Height()
	state := r.TrustState()

	mode, err := state.UpdateMode(height)
	if err != nil {
		return err
	}
	clientID, err := r.clientID(ctx)
	if err != nil {
		return err
	}

	header.TrustedHeight = state.TrustedHeight
	if mode == ModeNonAdjacent {
		trustedVals, err := r.trustedValidators(ctx, state.TrustedHeight+1)
		if err != nil {
			return err
		}
		header.TrustedValidators = trustedVals
	}
	if err := header.ValidateBasic(); err != nil {
		return fmt.Errorf("invalid update header at height %d: %w", height, err)
	}

	bz, err := envelope.Encode(header, envelope.TypeURLHeader)
	if err != nil {
		return err
	}

	r.logger.Debug("updating client", "client_id", clientID, "height", height,
		"trusted_height", state.TrustedHeight, "mode", mode.String())
	receipt, err := r.dest.UpdateClient(ctx, evm.MsgUpdateClient{ClientId: clientID, Header: bz})
	if err != nil {
		return ErrSubmission{Method: "updateClient", Height: height, Reason: err}
	}

	outcome, err := r.settle(ActionUpdate.String(), height, clientID, receipt)
	if err != nil {
		return err
	}
	if outcome != evm.OutcomeRejected {
		if err := r.commit(r.TrustState().Updated(height, header.ValidatorSet)); err != nil {
			return err
		}
	}
	r.journal(ActionUpdate.String(), height, clientID, receipt, outcome)
	return nil
}

func (r *Relayer) trustedValidators(ctx context.Context, height int64) (*lightproto.ValidatorSet, error) {
	vals, err := r.source.ValidatorSet(ctx, height)
	if err != nil {
		return nil, fmt.Errorf("fetching trusted validators at %d: %w", height, err)
	}
	return canonical.ValidatorSet(vals, height)
}

// clientID returns the configured or cached client id. Otherwise the last
// id generated by the destination is resolved once and cached.
func (r *Relayer) clientID(ctx context.Context) (string, error) {
	state := r.TrustState()
	if state.ClientID != "" {
		return state.ClientID, nil
	}

	ids, err := r.dest.ClientIDs(ctx)
	if err != nil {
		return "", fmt.Errorf("resolving client id: %w", err)
	}
	if len(ids) == 0 {
		return "", ErrNoClientID
	}
	id := ids[len(ids)-1]
	r.logger.Info("resolved client id", "client_id", id)

	if err := r.commit(state.WithClientID(id)); err != nil {
		return "", err
	}
	return id, nil
}

// settle classifies a confirmed transaction, logs it and hands it to the
// receipt hook. A receipt with an unknown status is an error.
func (r *Relayer) settle(action string, height int64, clientID string, receipt *evm.Receipt) (evm.Outcome, error) {
	outcome, err := receipt.Classify()
	if err != nil {
		return "", err
	}
	r.metrics.Submissions.With("action", action, "outcome", string(outcome)).Add(1)

	logger := r.logger.With("action", action, "height", height, "tx", receipt.TxHash.Hex())
	switch outcome {
	case evm.OutcomeSuccess:
		logger.Info("transaction confirmed", "client_id", clientID, "gas_used", receipt.GasUsed)
	case evm.OutcomeAlreadyExists:
		logger.Error("destination already holds this state, treating as accepted", "reason", receipt.RevertReason)
	default:
		logger.Error("transaction rejected, trust state not advanced", "reason", receipt.RevertReason)
	}

	if r.onReceipt != nil {
		r.onReceipt(ReceiptEvent{
			Action:   action,
			Height:   height,
			ClientID: clientID,
			Outcome:  outcome,
			Receipt:  receipt,
		})
	}
	return outcome, nil
}

// commit replaces the trust state and persists it.
func (r *Relayer) commit(state TrustState) error {
	r.mtx.Lock()
	r.state = state
	r.mtx.Unlock()

	if state.TrustedHeight > 0 {
		r.metrics.TrustedHeight.Set(float64(state.TrustedHeight))
	}
	if r.store == nil {
		return nil
	}

	rec, err := state.ToProto(r.now())
	if err != nil {
		return err
	}
	if err := r.store.SaveTrustState(rec); err != nil {
		return fmt.Errorf("saving trust state: %w", err)
	}
	return nil
}

// journal records the outcome of a cycle. Failures are only logged.
func (r *Relayer) journal(action string, height int64, clientID string, receipt *evm.Receipt, outcome evm.Outcome) {
	if r.store == nil {
		return
	}

	rec := &lightproto.RelayRecord{
		Height:   height,
		Action:   action,
		ClientId: clientID,
		Outcome:  string(outcome),
		RunId:    r.runID,
	}
	if receipt != nil {
		rec.TxHash = receipt.TxHash.Bytes()
	}
	if ts, err := gogotypes.TimestampProto(r.now()); err == nil {
		rec.Time = ts
	}
	if err := r.store.SaveRelayRecord(rec); err != nil {
		r.logger.Error("failed to journal relay", "height", height, "err", err)
	}
}
