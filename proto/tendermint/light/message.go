package light

import (
	"errors"
	"fmt"
)

// ValidateBasic checks that the total voting power matches the members'.
func (m *ValidatorSet) ValidateBasic() error {
	if m == nil {
		return errors.New("validator set cannot be nil")
	}
	if len(m.Validators) == 0 {
		return errors.New("validator set is empty")
	}

	var sum int64
	for i, v := range m.Validators {
		if v == nil {
			return fmt.Errorf("nil validator at index %d", i)
		}
		if len(v.PubKey) == 0 {
			return fmt.Errorf("validator %X has no public key", v.Address)
		}
		if v.VotingPower < 0 {
			return fmt.Errorf("validator %X has negative voting power %d", v.Address, v.VotingPower)
		}
		sum += v.VotingPower
	}
	if sum != m.TotalVotingPower {
		return fmt.Errorf("total voting power %d does not match sum of validators %d", m.TotalVotingPower, sum)
	}

	return nil
}

// ValidateBasic checks that the header and commit agree on the height.
func (m *SignedHeader) ValidateBasic() error {
	if m == nil {
		return errors.New("signed header cannot be nil")
	}
	if m.Header == nil {
		return errors.New("missing header")
	}
	if m.Commit == nil {
		return errors.New("missing commit")
	}
	if m.Header.Height <= 0 {
		return fmt.Errorf("non-positive header height %d", m.Header.Height)
	}
	if m.Commit.Height != m.Header.Height {
		return fmt.Errorf("header and commit height mismatch: %d vs %d", m.Header.Height, m.Commit.Height)
	}

	return nil
}

// ValidateBasic validates an update message before it is encoded.
func (m *TmHeader) ValidateBasic() error {
	if m == nil {
		return errors.New("header cannot be nil")
	}
	if err := m.SignedHeader.ValidateBasic(); err != nil {
		return fmt.Errorf("invalid signed header: %w", err)
	}
	if err := m.ValidatorSet.ValidateBasic(); err != nil {
		return fmt.Errorf("invalid validator set: %w", err)
	}

	sigs, vals := len(m.SignedHeader.Commit.Signatures), len(m.ValidatorSet.Validators)
	if sigs != vals {
		return fmt.Errorf("commit has %d signatures, validator set has %d validators", sigs, vals)
	}

	if m.TrustedHeight < 0 {
		return fmt.Errorf("negative trusted height %d", m.TrustedHeight)
	}
	if m.TrustedHeight >= m.SignedHeader.Header.Height {
		return fmt.Errorf("trusted height %d is not below header height %d",
			m.TrustedHeight, m.SignedHeader.Header.Height)
	}
	if m.TrustedValidators != nil {
		if err := m.TrustedValidators.ValidateBasic(); err != nil {
			return fmt.Errorf("invalid trusted validators: %w", err)
		}
	}

	return nil
}

// Height returns the header height, or 0 if unset.
func (m *TmHeader) Height() int64 {
	return m.GetSignedHeader().GetHeader().GetHeight()
}
