package version

var (
	// GitCommit is the current HEAD set using ldflags.
	GitCommit string

	// Version is the built softwares version.
	Version = RelayerSemVer
)

func init() {
	if GitCommit != "" {
		Version += "-" + GitCommit
	}
}

const (
	// RelayerSemVer is the current version of the relayer.
	// Must be a string because scripts like dist.sh read this file.
	RelayerSemVer = "0.1.0"

	// ClientType is the light client implementation the relayer speaks to.
	ClientType = "07-tendermint"
)

// Info is printed by the version command.
type Info struct {
	Version    string `json:"version"`
	GitCommit  string `json:"git_commit,omitempty"`
	ClientType string `json:"client_type"`
	Tendermint string `json:"tendermint"`
}

// Current returns the version information of the running binary.
func Current(tendermint string) Info {
	return Info{
		Version:    Version,
		GitCommit:  GitCommit,
		ClientType: ClientType,
		Tendermint: tendermint,
	}
}
