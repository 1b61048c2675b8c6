// Package light holds the canonical messages relayed to the destination
// light client, see light.proto. The structs carry protobuf struct tags and are
// marshaled by gogo/protobuf's table-driven codec; none of them contain maps,
// so encoding is deterministic.
package light

import (
	proto "github.com/gogo/protobuf/proto"
	types "github.com/gogo/protobuf/types"
)

// BlockIDFlag indicates which BlockID a CommitSig is for.
type BlockIDFlag int32

const (
	BLOCK_ID_FLAG_UNKNOWN BlockIDFlag = 0
	BLOCK_ID_FLAG_ABSENT  BlockIDFlag = 1
	BLOCK_ID_FLAG_COMMIT  BlockIDFlag = 2
	BLOCK_ID_FLAG_NIL     BlockIDFlag = 3
)

var BlockIDFlag_name = map[int32]string{
	0: "BLOCK_ID_FLAG_UNKNOWN",
	1: "BLOCK_ID_FLAG_ABSENT",
	2: "BLOCK_ID_FLAG_COMMIT",
	3: "BLOCK_ID_FLAG_NIL",
}

var BlockIDFlag_value = map[string]int32{
	"BLOCK_ID_FLAG_UNKNOWN": 0,
	"BLOCK_ID_FLAG_ABSENT":  1,
	"BLOCK_ID_FLAG_COMMIT":  2,
	"BLOCK_ID_FLAG_NIL":     3,
}

func (x BlockIDFlag) String() string {
	return proto.EnumName(BlockIDFlag_name, int32(x))
}

func init() {
	proto.RegisterEnum("tendermint.light.BlockIDFlag", BlockIDFlag_name, BlockIDFlag_value)
}

// Fraction is a trust level expressed as numerator/denominator.
type Fraction struct {
	Numerator   uint64 `protobuf:"varint,1,opt,name=numerator,proto3" json:"numerator,omitempty"`
	Denominator uint64 `protobuf:"varint,2,opt,name=denominator,proto3" json:"denominator,omitempty"`
}

func (m *Fraction) Reset()         { *m = Fraction{} }
func (m *Fraction) String() string { return proto.CompactTextString(m) }
func (*Fraction) ProtoMessage()    {}

func (m *Fraction) GetNumerator() uint64 {
	if m != nil {
		return m.Numerator
	}
	return 0
}

func (m *Fraction) GetDenominator() uint64 {
	if m != nil {
		return m.Denominator
	}
	return 0
}

// ClientState is the initial state of the destination light client.
type ClientState struct {
	ChainId                      string          `protobuf:"bytes,1,opt,name=chain_id,json=chainId,proto3" json:"chain_id,omitempty"`
	TrustLevel                   *Fraction       `protobuf:"bytes,2,opt,name=trust_level,json=trustLevel,proto3" json:"trust_level,omitempty"`
	TrustingPeriod               *types.Duration `protobuf:"bytes,3,opt,name=trusting_period,json=trustingPeriod,proto3" json:"trusting_period,omitempty"`
	UnbondingPeriod              *types.Duration `protobuf:"bytes,4,opt,name=unbonding_period,json=unbondingPeriod,proto3" json:"unbonding_period,omitempty"`
	MaxClockDrift                *types.Duration `protobuf:"bytes,5,opt,name=max_clock_drift,json=maxClockDrift,proto3" json:"max_clock_drift,omitempty"`
	FrozenHeight                 int64           `protobuf:"varint,6,opt,name=frozen_height,json=frozenHeight,proto3" json:"frozen_height,omitempty"`
	LatestHeight                 int64           `protobuf:"varint,7,opt,name=latest_height,json=latestHeight,proto3" json:"latest_height,omitempty"`
	AllowUpdateAfterExpiry       bool            `protobuf:"varint,8,opt,name=allow_update_after_expiry,json=allowUpdateAfterExpiry,proto3" json:"allow_update_after_expiry,omitempty"`
	AllowUpdateAfterMisbehaviour bool            `protobuf:"varint,9,opt,name=allow_update_after_misbehaviour,json=allowUpdateAfterMisbehaviour,proto3" json:"allow_update_after_misbehaviour,omitempty"`
}

func (m *ClientState) Reset()         { *m = ClientState{} }
func (m *ClientState) String() string { return proto.CompactTextString(m) }
func (*ClientState) ProtoMessage()    {}

func (m *ClientState) GetChainId() string {
	if m != nil {
		return m.ChainId
	}
	return ""
}

func (m *ClientState) GetTrustLevel() *Fraction {
	if m != nil {
		return m.TrustLevel
	}
	return nil
}

func (m *ClientState) GetTrustingPeriod() *types.Duration {
	if m != nil {
		return m.TrustingPeriod
	}
	return nil
}

func (m *ClientState) GetUnbondingPeriod() *types.Duration {
	if m != nil {
		return m.UnbondingPeriod
	}
	return nil
}

func (m *ClientState) GetMaxClockDrift() *types.Duration {
	if m != nil {
		return m.MaxClockDrift
	}
	return nil
}

func (m *ClientState) GetFrozenHeight() int64 {
	if m != nil {
		return m.FrozenHeight
	}
	return 0
}

func (m *ClientState) GetLatestHeight() int64 {
	if m != nil {
		return m.LatestHeight
	}
	return 0
}

func (m *ClientState) GetAllowUpdateAfterExpiry() bool {
	if m != nil {
		return m.AllowUpdateAfterExpiry
	}
	return false
}

func (m *ClientState) GetAllowUpdateAfterMisbehaviour() bool {
	if m != nil {
		return m.AllowUpdateAfterMisbehaviour
	}
	return false
}

type MerkleRoot struct {
	Hash []byte `protobuf:"bytes,1,opt,name=hash,proto3" json:"hash,omitempty"`
}

func (m *MerkleRoot) Reset()         { *m = MerkleRoot{} }
func (m *MerkleRoot) String() string { return proto.CompactTextString(m) }
func (*MerkleRoot) ProtoMessage()    {}

func (m *MerkleRoot) GetHash() []byte {
	if m != nil {
		return m.Hash
	}
	return nil
}

// ConsensusState is the consensus snapshot bound to one trusted height.
type ConsensusState struct {
	Timestamp          *types.Timestamp `protobuf:"bytes,1,opt,name=timestamp,proto3" json:"timestamp,omitempty"`
	Root               *MerkleRoot      `protobuf:"bytes,2,opt,name=root,proto3" json:"root,omitempty"`
	NextValidatorsHash []byte           `protobuf:"bytes,3,opt,name=next_validators_hash,json=nextValidatorsHash,proto3" json:"next_validators_hash,omitempty"`
}

func (m *ConsensusState) Reset()         { *m = ConsensusState{} }
func (m *ConsensusState) String() string { return proto.CompactTextString(m) }
func (*ConsensusState) ProtoMessage()    {}

func (m *ConsensusState) GetTimestamp() *types.Timestamp {
	if m != nil {
		return m.Timestamp
	}
	return nil
}

func (m *ConsensusState) GetRoot() *MerkleRoot {
	if m != nil {
		return m.Root
	}
	return nil
}

func (m *ConsensusState) GetNextValidatorsHash() []byte {
	if m != nil {
		return m.NextValidatorsHash
	}
	return nil
}

// Consensus captures the block and app protocol versions.
type Consensus struct {
	Block uint64 `protobuf:"varint,1,opt,name=block,proto3" json:"block,omitempty"`
	App   uint64 `protobuf:"varint,2,opt,name=app,proto3" json:"app,omitempty"`
}

func (m *Consensus) Reset()         { *m = Consensus{} }
func (m *Consensus) String() string { return proto.CompactTextString(m) }
func (*Consensus) ProtoMessage()    {}

func (m *Consensus) GetBlock() uint64 {
	if m != nil {
		return m.Block
	}
	return 0
}

func (m *Consensus) GetApp() uint64 {
	if m != nil {
		return m.App
	}
	return 0
}

type CanonicalPartSetHeader struct {
	Total uint32 `protobuf:"varint,1,opt,name=total,proto3" json:"total,omitempty"`
	Hash  []byte `protobuf:"bytes,2,opt,name=hash,proto3" json:"hash,omitempty"`
}

func (m *CanonicalPartSetHeader) Reset()         { *m = CanonicalPartSetHeader{} }
func (m *CanonicalPartSetHeader) String() string { return proto.CompactTextString(m) }
func (*CanonicalPartSetHeader) ProtoMessage()    {}

func (m *CanonicalPartSetHeader) GetTotal() uint32 {
	if m != nil {
		return m.Total
	}
	return 0
}

func (m *CanonicalPartSetHeader) GetHash() []byte {
	if m != nil {
		return m.Hash
	}
	return nil
}

type CanonicalBlockID struct {
	Hash          []byte                  `protobuf:"bytes,1,opt,name=hash,proto3" json:"hash,omitempty"`
	PartSetHeader *CanonicalPartSetHeader `protobuf:"bytes,2,opt,name=part_set_header,json=partSetHeader,proto3" json:"part_set_header,omitempty"`
}

func (m *CanonicalBlockID) Reset()         { *m = CanonicalBlockID{} }
func (m *CanonicalBlockID) String() string { return proto.CompactTextString(m) }
func (*CanonicalBlockID) ProtoMessage()    {}

func (m *CanonicalBlockID) GetHash() []byte {
	if m != nil {
		return m.Hash
	}
	return nil
}

func (m *CanonicalBlockID) GetPartSetHeader() *CanonicalPartSetHeader {
	if m != nil {
		return m.PartSetHeader
	}
	return nil
}

// LightHeader is the canonical form of a source-chain block header.
type LightHeader struct {
	Version            *Consensus        `protobuf:"bytes,1,opt,name=version,proto3" json:"version,omitempty"`
	ChainId            string            `protobuf:"bytes,2,opt,name=chain_id,json=chainId,proto3" json:"chain_id,omitempty"`
	Height             int64             `protobuf:"varint,3,opt,name=height,proto3" json:"height,omitempty"`
	Time               *types.Timestamp  `protobuf:"bytes,4,opt,name=time,proto3" json:"time,omitempty"`
	LastBlockId        *CanonicalBlockID `protobuf:"bytes,5,opt,name=last_block_id,json=lastBlockId,proto3" json:"last_block_id,omitempty"`
	LastCommitHash     []byte            `protobuf:"bytes,6,opt,name=last_commit_hash,json=lastCommitHash,proto3" json:"last_commit_hash,omitempty"`
	DataHash           []byte            `protobuf:"bytes,7,opt,name=data_hash,json=dataHash,proto3" json:"data_hash,omitempty"`
	ValidatorsHash     []byte            `protobuf:"bytes,8,opt,name=validators_hash,json=validatorsHash,proto3" json:"validators_hash,omitempty"`
	NextValidatorsHash []byte            `protobuf:"bytes,9,opt,name=next_validators_hash,json=nextValidatorsHash,proto3" json:"next_validators_hash,omitempty"`
	ConsensusHash      []byte            `protobuf:"bytes,10,opt,name=consensus_hash,json=consensusHash,proto3" json:"consensus_hash,omitempty"`
	AppHash            []byte            `protobuf:"bytes,11,opt,name=app_hash,json=appHash,proto3" json:"app_hash,omitempty"`
	LastResultsHash    []byte            `protobuf:"bytes,12,opt,name=last_results_hash,json=lastResultsHash,proto3" json:"last_results_hash,omitempty"`
	EvidenceHash       []byte            `protobuf:"bytes,13,opt,name=evidence_hash,json=evidenceHash,proto3" json:"evidence_hash,omitempty"`
	ProposerAddress    []byte            `protobuf:"bytes,14,opt,name=proposer_address,json=proposerAddress,proto3" json:"proposer_address,omitempty"`
}

func (m *LightHeader) Reset()         { *m = LightHeader{} }
func (m *LightHeader) String() string { return proto.CompactTextString(m) }
func (*LightHeader) ProtoMessage()    {}

func (m *LightHeader) GetVersion() *Consensus {
	if m != nil {
		return m.Version
	}
	return nil
}

func (m *LightHeader) GetChainId() string {
	if m != nil {
		return m.ChainId
	}
	return ""
}

func (m *LightHeader) GetHeight() int64 {
	if m != nil {
		return m.Height
	}
	return 0
}

func (m *LightHeader) GetTime() *types.Timestamp {
	if m != nil {
		return m.Time
	}
	return nil
}

func (m *LightHeader) GetLastBlockId() *CanonicalBlockID {
	if m != nil {
		return m.LastBlockId
	}
	return nil
}

func (m *LightHeader) GetLastCommitHash() []byte {
	if m != nil {
		return m.LastCommitHash
	}
	return nil
}

func (m *LightHeader) GetDataHash() []byte {
	if m != nil {
		return m.DataHash
	}
	return nil
}

func (m *LightHeader) GetValidatorsHash() []byte {
	if m != nil {
		return m.ValidatorsHash
	}
	return nil
}

func (m *LightHeader) GetNextValidatorsHash() []byte {
	if m != nil {
		return m.NextValidatorsHash
	}
	return nil
}

func (m *LightHeader) GetConsensusHash() []byte {
	if m != nil {
		return m.ConsensusHash
	}
	return nil
}

func (m *LightHeader) GetAppHash() []byte {
	if m != nil {
		return m.AppHash
	}
	return nil
}

func (m *LightHeader) GetLastResultsHash() []byte {
	if m != nil {
		return m.LastResultsHash
	}
	return nil
}

func (m *LightHeader) GetEvidenceHash() []byte {
	if m != nil {
		return m.EvidenceHash
	}
	return nil
}

func (m *LightHeader) GetProposerAddress() []byte {
	if m != nil {
		return m.ProposerAddress
	}
	return nil
}

// CommitSig is one validator's entry in a Commit.
type CommitSig struct {
	BlockIdFlag      BlockIDFlag      `protobuf:"varint,1,opt,name=block_id_flag,json=blockIdFlag,proto3,enum=tendermint.light.BlockIDFlag" json:"block_id_flag,omitempty"`
	ValidatorAddress []byte           `protobuf:"bytes,2,opt,name=validator_address,json=validatorAddress,proto3" json:"validator_address,omitempty"`
	Timestamp        *types.Timestamp `protobuf:"bytes,3,opt,name=timestamp,proto3" json:"timestamp,omitempty"`
	Signature        []byte           `protobuf:"bytes,4,opt,name=signature,proto3" json:"signature,omitempty"`
}

func (m *CommitSig) Reset()         { *m = CommitSig{} }
func (m *CommitSig) String() string { return proto.CompactTextString(m) }
func (*CommitSig) ProtoMessage()    {}

func (m *CommitSig) GetBlockIdFlag() BlockIDFlag {
	if m != nil {
		return m.BlockIdFlag
	}
	return BLOCK_ID_FLAG_UNKNOWN
}

func (m *CommitSig) GetValidatorAddress() []byte {
	if m != nil {
		return m.ValidatorAddress
	}
	return nil
}

func (m *CommitSig) GetTimestamp() *types.Timestamp {
	if m != nil {
		return m.Timestamp
	}
	return nil
}

func (m *CommitSig) GetSignature() []byte {
	if m != nil {
		return m.Signature
	}
	return nil
}

// Commit holds the signatures for a header, in validator-set order.
type Commit struct {
	Height     int64             `protobuf:"varint,1,opt,name=height,proto3" json:"height,omitempty"`
	Round      int32             `protobuf:"varint,2,opt,name=round,proto3" json:"round,omitempty"`
	BlockId    *CanonicalBlockID `protobuf:"bytes,3,opt,name=block_id,json=blockId,proto3" json:"block_id,omitempty"`
	Signatures []*CommitSig      `protobuf:"bytes,4,rep,name=signatures,proto3" json:"signatures,omitempty"`
}

func (m *Commit) Reset()         { *m = Commit{} }
func (m *Commit) String() string { return proto.CompactTextString(m) }
func (*Commit) ProtoMessage()    {}

func (m *Commit) GetHeight() int64 {
	if m != nil {
		return m.Height
	}
	return 0
}

func (m *Commit) GetRound() int32 {
	if m != nil {
		return m.Round
	}
	return 0
}

func (m *Commit) GetBlockId() *CanonicalBlockID {
	if m != nil {
		return m.BlockId
	}
	return nil
}

func (m *Commit) GetSignatures() []*CommitSig {
	if m != nil {
		return m.Signatures
	}
	return nil
}

type SignedHeader struct {
	Header *LightHeader `protobuf:"bytes,1,opt,name=header,proto3" json:"header,omitempty"`
	Commit *Commit      `protobuf:"bytes,2,opt,name=commit,proto3" json:"commit,omitempty"`
}

func (m *SignedHeader) Reset()         { *m = SignedHeader{} }
func (m *SignedHeader) String() string { return proto.CompactTextString(m) }
func (*SignedHeader) ProtoMessage()    {}

func (m *SignedHeader) GetHeader() *LightHeader {
	if m != nil {
		return m.Header
	}
	return nil
}

func (m *SignedHeader) GetCommit() *Commit {
	if m != nil {
		return m.Commit
	}
	return nil
}

type Validator struct {
	Address          []byte `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
	PubKey           []byte `protobuf:"bytes,2,opt,name=pub_key,json=pubKey,proto3" json:"pub_key,omitempty"`
	VotingPower      int64  `protobuf:"varint,3,opt,name=voting_power,json=votingPower,proto3" json:"voting_power,omitempty"`
	ProposerPriority int64  `protobuf:"varint,4,opt,name=proposer_priority,json=proposerPriority,proto3" json:"proposer_priority,omitempty"`
}

func (m *Validator) Reset()         { *m = Validator{} }
func (m *Validator) String() string { return proto.CompactTextString(m) }
func (*Validator) ProtoMessage()    {}

func (m *Validator) GetAddress() []byte {
	if m != nil {
		return m.Address
	}
	return nil
}

func (m *Validator) GetPubKey() []byte {
	if m != nil {
		return m.PubKey
	}
	return nil
}

func (m *Validator) GetVotingPower() int64 {
	if m != nil {
		return m.VotingPower
	}
	return 0
}

func (m *Validator) GetProposerPriority() int64 {
	if m != nil {
		return m.ProposerPriority
	}
	return 0
}

type ValidatorSet struct {
	Validators       []*Validator `protobuf:"bytes,1,rep,name=validators,proto3" json:"validators,omitempty"`
	Proposer         *Validator   `protobuf:"bytes,2,opt,name=proposer,proto3" json:"proposer,omitempty"`
	TotalVotingPower int64        `protobuf:"varint,3,opt,name=total_voting_power,json=totalVotingPower,proto3" json:"total_voting_power,omitempty"`
}

func (m *ValidatorSet) Reset()         { *m = ValidatorSet{} }
func (m *ValidatorSet) String() string { return proto.CompactTextString(m) }
func (*ValidatorSet) ProtoMessage()    {}

func (m *ValidatorSet) GetValidators() []*Validator {
	if m != nil {
		return m.Validators
	}
	return nil
}

func (m *ValidatorSet) GetProposer() *Validator {
	if m != nil {
		return m.Proposer
	}
	return nil
}

func (m *ValidatorSet) GetTotalVotingPower() int64 {
	if m != nil {
		return m.TotalVotingPower
	}
	return 0
}

// TmHeader is the update message submitted to the destination light client.
// TrustedValidators is only set for non-adjacent updates.
type TmHeader struct {
	SignedHeader      *SignedHeader `protobuf:"bytes,1,opt,name=signed_header,json=signedHeader,proto3" json:"signed_header,omitempty"`
	ValidatorSet      *ValidatorSet `protobuf:"bytes,2,opt,name=validator_set,json=validatorSet,proto3" json:"validator_set,omitempty"`
	TrustedHeight     int64         `protobuf:"varint,3,opt,name=trusted_height,json=trustedHeight,proto3" json:"trusted_height,omitempty"`
	TrustedValidators *ValidatorSet `protobuf:"bytes,4,opt,name=trusted_validators,json=trustedValidators,proto3" json:"trusted_validators,omitempty"`
}

func (m *TmHeader) Reset()         { *m = TmHeader{} }
func (m *TmHeader) String() string { return proto.CompactTextString(m) }
func (*TmHeader) ProtoMessage()    {}

func (m *TmHeader) GetSignedHeader() *SignedHeader {
	if m != nil {
		return m.SignedHeader
	}
	return nil
}

func (m *TmHeader) GetValidatorSet() *ValidatorSet {
	if m != nil {
		return m.ValidatorSet
	}
	return nil
}

func (m *TmHeader) GetTrustedHeight() int64 {
	if m != nil {
		return m.TrustedHeight
	}
	return 0
}

func (m *TmHeader) GetTrustedValidators() *ValidatorSet {
	if m != nil {
		return m.TrustedValidators
	}
	return nil
}

// TrustStateRecord is the persisted form of the relayer's trust state.
type TrustStateRecord struct {
	Phase             int32            `protobuf:"varint,1,opt,name=phase,proto3" json:"phase,omitempty"`
	ClientId          string           `protobuf:"bytes,2,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	TrustedHeight     int64            `protobuf:"varint,3,opt,name=trusted_height,json=trustedHeight,proto3" json:"trusted_height,omitempty"`
	TrustedValidators *ValidatorSet    `protobuf:"bytes,4,opt,name=trusted_validators,json=trustedValidators,proto3" json:"trusted_validators,omitempty"`
	UpdatedAt         *types.Timestamp `protobuf:"bytes,5,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
}

func (m *TrustStateRecord) Reset()         { *m = TrustStateRecord{} }
func (m *TrustStateRecord) String() string { return proto.CompactTextString(m) }
func (*TrustStateRecord) ProtoMessage()    {}

func (m *TrustStateRecord) GetPhase() int32 {
	if m != nil {
		return m.Phase
	}
	return 0
}

func (m *TrustStateRecord) GetClientId() string {
	if m != nil {
		return m.ClientId
	}
	return ""
}

func (m *TrustStateRecord) GetTrustedHeight() int64 {
	if m != nil {
		return m.TrustedHeight
	}
	return 0
}

func (m *TrustStateRecord) GetTrustedValidators() *ValidatorSet {
	if m != nil {
		return m.TrustedValidators
	}
	return nil
}

func (m *TrustStateRecord) GetUpdatedAt() *types.Timestamp {
	if m != nil {
		return m.UpdatedAt
	}
	return nil
}

// RelayRecord logs the outcome of one relayed height.
type RelayRecord struct {
	Height   int64            `protobuf:"varint,1,opt,name=height,proto3" json:"height,omitempty"`
	Action   string           `protobuf:"bytes,2,opt,name=action,proto3" json:"action,omitempty"`
	ClientId string           `protobuf:"bytes,3,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	TxHash   []byte           `protobuf:"bytes,4,opt,name=tx_hash,json=txHash,proto3" json:"tx_hash,omitempty"`
	Outcome  string           `protobuf:"bytes,5,opt,name=outcome,proto3" json:"outcome,omitempty"`
	RunId    string           `protobuf:"bytes,6,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	Time     *types.Timestamp `protobuf:"bytes,7,opt,name=time,proto3" json:"time,omitempty"`
}

func (m *RelayRecord) Reset()         { *m = RelayRecord{} }
func (m *RelayRecord) String() string { return proto.CompactTextString(m) }
func (*RelayRecord) ProtoMessage()    {}

func (m *RelayRecord) GetHeight() int64 {
	if m != nil {
		return m.Height
	}
	return 0
}

func (m *RelayRecord) GetAction() string {
	if m != nil {
		return m.Action
	}
	return ""
}

func (m *RelayRecord) GetClientId() string {
	if m != nil {
		return m.ClientId
	}
	return ""
}

func (m *RelayRecord) GetTxHash() []byte {
	if m != nil {
		return m.TxHash
	}
	return nil
}

func (m *RelayRecord) GetOutcome() string {
	if m != nil {
		return m.Outcome
	}
	return ""
}

func (m *RelayRecord) GetRunId() string {
	if m != nil {
		return m.RunId
	}
	return ""
}

func (m *RelayRecord) GetTime() *types.Timestamp {
	if m != nil {
		return m.Time
	}
	return nil
}
