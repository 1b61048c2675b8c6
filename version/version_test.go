package version

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCurrent(t *testing.T) {
	info := Current("0.34.24")
	require.Equal(t, Version, info.Version)
	require.Equal(t, "07-tendermint", info.ClientType)
	require.Equal(t, "0.34.24", info.Tendermint)
}
