package relayer

import (
	"fmt"
	"time"

	gogotypes "github.com/gogo/protobuf/types"

	lightproto "github.com/tendermint/light-relayer/proto/tendermint/light"
)

// Phase is the position of the relay in the client lifecycle.
type Phase int32

const (
	// PhaseCreatePending: no client exists yet, the next header creates one.
	PhaseCreatePending Phase = iota
	// PhaseSkipOnce: the next header is not submitted, so the update after
	// it spans more than one height.
	PhaseSkipOnce
	// PhaseUpdating: every header updates the client.
	PhaseUpdating
)

func (p Phase) String() string {
	switch p {
	case PhaseCreatePending:
		return "create_pending"
	case PhaseSkipOnce:
		return "skip_once"
	case PhaseUpdating:
		return "updating"
	default:
		return fmt.Sprintf("phase(%d)", int32(p))
	}
}

// Action is what a cycle does with its header.
type Action int

const (
	ActionCreate Action = iota
	ActionSkip
	ActionUpdate
)

func (a Action) String() string {
	switch a {
	case ActionCreate:
		return "create"
	case ActionSkip:
		return "skip"
	case ActionUpdate:
		return "update"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Mode tells whether an update needs an explicit trusted validator set.
type Mode int

const (
	// ModeAdjacent updates cover exactly one height. The destination
	// derives the trusted validators from the stored next validators hash.
	ModeAdjacent Mode = iota
	// ModeNonAdjacent updates skip heights and carry the validator set at
	// TrustedHeight+1.
	ModeNonAdjacent
)

func (m Mode) String() string {
	if m == ModeAdjacent {
		return "adjacent"
	}
	return "non_adjacent"
}

// TrustState is what the relay remembers between cycles. It is a value:
// transitions return a new state and leave the receiver untouched.
type TrustState struct {
	Phase         Phase
	ClientID      string
	TrustedHeight int64
	// TrustedValidators is the validator set of the header at TrustedHeight,
	// when it is known.
	TrustedValidators *lightproto.ValidatorSet
}

// NewTrustState returns the state of a relay that has not created a client.
func NewTrustState() TrustState {
	return TrustState{Phase: PhaseCreatePending}
}

// Next returns the action the next cycle performs.
func (s TrustState) Next() Action {
	switch s.Phase {
	case PhaseCreatePending:
		return ActionCreate
	case PhaseSkipOnce:
		return ActionSkip
	default:
		return ActionUpdate
	}
}

// Created is the state after a client was created at height. With skipOnce
// the following cycle skips its header.
func (s TrustState) Created(height int64, skipOnce bool) TrustState {
	next := TrustState{
		Phase:         PhaseUpdating,
		ClientID:      s.ClientID,
		TrustedHeight: height,
	}
	if skipOnce {
		next.Phase = PhaseSkipOnce
	}
	return next
}

// Skipped is the state after a skip. The trusted height does not move.
func (s TrustState) Skipped() TrustState {
	s.Phase = PhaseUpdating
	return s
}

// Updated is the state after the client accepted the header at height
// signed by vals.
func (s TrustState) Updated(height int64, vals *lightproto.ValidatorSet) TrustState {
	s.Phase = PhaseUpdating
	s.TrustedHeight = height
	s.TrustedValidators = vals
	return s
}

// WithClientID returns s with its client id set.
func (s TrustState) WithClientID(id string) TrustState {
	s.ClientID = id
	return s
}

// UpdateMode decides how a header at height is submitted on top of s.
func (s TrustState) UpdateMode(height int64) (Mode, error) {
	switch gap := height - s.TrustedHeight; {
	case gap == 1:
		return ModeAdjacent, nil
	case gap > 1:
		return ModeNonAdjacent, nil
	default:
		return 0, ErrNonMonotonicHeight{Trusted: s.TrustedHeight, Height: height}
	}
}

func (s TrustState) String() string {
	return fmt.Sprintf("TrustState{%v client:%q trusted:%d}", s.Phase, s.ClientID, s.TrustedHeight)
}

// ToProto returns the persisted form of s.
func (s TrustState) ToProto(now time.Time) (*lightproto.TrustStateRecord, error) {
	ts, err := gogotypes.TimestampProto(now)
	if err != nil {
		return nil, err
	}
	return &lightproto.TrustStateRecord{
		Phase:             int32(s.Phase),
		ClientId:          s.ClientID,
		TrustedHeight:     s.TrustedHeight,
		TrustedValidators: s.TrustedValidators,
		UpdatedAt:         ts,
	}, nil
}

// TrustStateFromProto restores a persisted state.
func TrustStateFromProto(rec *lightproto.TrustStateRecord) (TrustState, error) {
	if rec == nil {
		return TrustState{}, fmt.Errorf("nil trust state record")
	}
	phase := Phase(rec.Phase)
	switch phase {
	case PhaseCreatePending, PhaseSkipOnce, PhaseUpdating:
	default:
		return TrustState{}, fmt.Errorf("unknown phase %d", rec.Phase)
	}
	if phase != PhaseCreatePending && rec.TrustedHeight <= 0 {
		return TrustState{}, fmt.Errorf("phase %v requires a trusted height", phase)
	}

	return TrustState{
		Phase:             phase,
		ClientID:          rec.ClientId,
		TrustedHeight:     rec.TrustedHeight,
		TrustedValidators: rec.TrustedValidators,
	}, nil
}
