// Package envelope wraps canonical messages in the type-tagged Any container
// the destination light client decodes.
package envelope

import (
	"errors"
	"fmt"

	"github.com/gogo/protobuf/proto"
	gogotypes "github.com/gogo/protobuf/types"
)

// Type URLs expected by the destination contracts.
const (
	TypeURLClientState    = "/tendermint.types.ClientState"
	TypeURLConsensusState = "/tendermint.types.ConsensusState"
	TypeURLHeader         = "/tendermint.types.TmHeader"
)

// ErrTypeURLMismatch is returned by Decode when the envelope carries a
// different type URL than the one requested.
type ErrTypeURLMismatch struct {
	Expected string
	Got      string
}

func (e ErrTypeURLMismatch) Error() string {
	return fmt.Sprintf("envelope type url mismatch: expected %q, got %q", e.Expected, e.Got)
}

// Encode serializes msg and wraps it as {type_url, value}. The wrapper is
// serialized the same way.
func Encode(msg proto.Message, typeURL string) ([]byte, error) {
	if msg == nil {
		return nil, errors.New("cannot encode nil message")
	}
	if typeURL == "" {
		return nil, errors.New("empty type url")
	}

	value, err := proto.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", typeURL, err)
	}

	bz, err := proto.Marshal(&gogotypes.Any{
		TypeUrl: typeURL,
		Value:   value,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal any(%s): %w", typeURL, err)
	}

	return bz, nil
}

// Decode unwraps bz and unmarshals its value into msg, rejecting any envelope
// whose type URL is not typeURL.
func Decode(bz []byte, typeURL string, msg proto.Message) error {
	var any gogotypes.Any
	if err := proto.Unmarshal(bz, &any); err != nil {
		return fmt.Errorf("unmarshal any: %w", err)
	}
	if any.TypeUrl != typeURL {
		return ErrTypeURLMismatch{Expected: typeURL, Got: any.TypeUrl}
	}
	if err := proto.Unmarshal(any.Value, msg); err != nil {
		return fmt.Errorf("unmarshal %s: %w", typeURL, err)
	}

	return nil
}
