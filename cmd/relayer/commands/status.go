package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	gogotypes "github.com/gogo/protobuf/types"
	"github.com/spf13/cobra"
	tmjson "github.com/tendermint/tendermint/libs/json"

	"github.com/tendermint/light-relayer/config"
	"github.com/tendermint/light-relayer/internal/relayer"
	"github.com/tendermint/light-relayer/light/store"
	dbs "github.com/tendermint/light-relayer/light/store/db"
	lightproto "github.com/tendermint/light-relayer/proto/tendermint/light"
)

type statusInfo struct {
	Phase             string       `json:"phase"`
	ClientID          string       `json:"client_id,omitempty"`
	TrustedHeight     int64        `json:"trusted_height"`
	TrustedValidators int          `json:"trusted_validators"`
	UpdatedAt         time.Time    `json:"updated_at"`
	LastRelayedHeight int64        `json:"last_relayed_height"`
	Records           []recordInfo `json:"records"`
}

type recordInfo struct {
	Height   int64     `json:"height"`
	Action   string    `json:"action"`
	ClientID string    `json:"client_id,omitempty"`
	Outcome  string    `json:"outcome"`
	TxHash   string    `json:"tx_hash,omitempty"`
	RunID    string    `json:"run_id"`
	Time     time.Time `json:"time"`
}

// MakeStatusCommand returns the command printing the persisted trust state
// and the most recent relay records.
func MakeStatusCommand(conf *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the trust state and the latest relayed heights",
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, err := cmd.Flags().GetInt("records")
			if err != nil {
				return err
			}

			db, err := conf.OpenDB()
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer db.Close()

			info, err := loadStatus(dbs.New(db), limit)
			if err != nil {
				return err
			}
			bz, err := tmjson.MarshalIndent(info, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(bz))
			return nil
		},
	}
	cmd.Flags().Int("records", 10, "number of relay records shown")
	return cmd
}

func loadStatus(st store.Store, limit int) (*statusInfo, error) {
	info := &statusInfo{Phase: relayer.PhaseCreatePending.String()}

	rec, err := st.TrustState()
	switch {
	case errors.Is(err, store.ErrNotFound):
	case err != nil:
		return nil, err
	default:
		state, err := relayer.TrustStateFromProto(rec)
		if err != nil {
			return nil, err
		}
		info.Phase = state.Phase.String()
		info.ClientID = state.ClientID
		info.TrustedHeight = state.TrustedHeight
		info.TrustedValidators = len(state.TrustedValidators.GetValidators())
		info.UpdatedAt = timestamp(rec.UpdatedAt)
	}

	if info.LastRelayedHeight, err = st.LastRelayedHeight(); err != nil {
		return nil, err
	}
	records, err := st.RelayRecords(limit)
	if err != nil {
		return nil, err
	}
	info.Records = make([]recordInfo, 0, len(records))
	for _, r := range records {
		info.Records = append(info.Records, newRecordInfo(r))
	}
	return info, nil
}

func newRecordInfo(r *lightproto.RelayRecord) recordInfo {
	ri := recordInfo{
		Height:   r.Height,
		Action:   r.Action,
		ClientID: r.ClientId,
		Outcome:  r.Outcome,
		RunID:    r.RunId,
		Time:     timestamp(r.Time),
	}
	if len(r.TxHash) > 0 {
		ri.TxHash = hexutil.Encode(r.TxHash)
	}
	return ri
}

func timestamp(ts *gogotypes.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	t, err := gogotypes.TimestampFromProto(ts)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}
