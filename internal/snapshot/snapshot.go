// Package snapshot persists the raw source-chain data of each relayed height
// as tendermint JSON, one pair of files per height:
//
//	header.<height>.signed_header.json
//	header.<height>.validator_set.json
//
// The files are written before conversion, so a header that fails to
// canonicalize can still be inspected or replayed.
package snapshot

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/creachadair/atomicfile"
	tmjson "github.com/tendermint/tendermint/libs/json"
	"github.com/tendermint/tendermint/types"
)

const (
	filePrefix         = "header."
	signedHeaderSuffix = ".signed_header.json"
	validatorSetSuffix = ".validator_set.json"
)

// ErrNotFound is returned by Load when no snapshot exists for a height.
var ErrNotFound = errors.New("snapshot not found")

// SignedHeaderFile returns the path of the signed header snapshot at height.
func SignedHeaderFile(dir string, height int64) string {
	return filepath.Join(dir, fmt.Sprintf("%s%d%s", filePrefix, height, signedHeaderSuffix))
}

// ValidatorSetFile returns the path of the validator set snapshot at height.
func ValidatorSetFile(dir string, height int64) string {
	return filepath.Join(dir, fmt.Sprintf("%s%d%s", filePrefix, height, validatorSetSuffix))
}

// Save writes both files for lb, creating dir if needed. Each file is
// replaced atomically.
func Save(dir string, lb *types.LightBlock) error {
	if lb == nil || lb.SignedHeader == nil || lb.Header == nil {
		return errors.New("snapshot: light block has no header")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}

	if err := writeJSON(SignedHeaderFile(dir, lb.Height), lb.SignedHeader); err != nil {
		return err
	}
	return writeJSON(ValidatorSetFile(dir, lb.Height), lb.ValidatorSet)
}

// Load reads the snapshot of height back into a light block.
func Load(dir string, height int64) (*types.LightBlock, error) {
	sh := new(types.SignedHeader)
	if err := readJSON(SignedHeaderFile(dir, height), sh); err != nil {
		return nil, err
	}
	vals, err := LoadValidatorSet(dir, height)
	if err != nil {
		return nil, err
	}

	return &types.LightBlock{SignedHeader: sh, ValidatorSet: vals}, nil
}

// LoadValidatorSet reads only the validator set snapshot of height.
func LoadValidatorSet(dir string, height int64) (*types.ValidatorSet, error) {
	vals := new(types.ValidatorSet)
	if err := readJSON(ValidatorSetFile(dir, height), vals); err != nil {
		return nil, err
	}
	return vals, nil
}

// Heights lists, in ascending order, the heights with a signed header
// snapshot in dir.
func Heights(dir string) ([]int64, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}

	var heights []int64
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, signedHeaderSuffix) {
			continue
		}
		h, err := strconv.ParseInt(strings.TrimSuffix(strings.TrimPrefix(name, filePrefix), signedHeaderSuffix), 10, 64)
		if err != nil || h <= 0 {
			continue
		}
		heights = append(heights, h)
	}
	sort.Slice(heights, func(i, j int) bool { return heights[i] < heights[j] })

	return heights, nil
}

func writeJSON(path string, v interface{}) error {
	bz, err := tmjson.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("snapshot: marshal %s: %w", filepath.Base(path), err)
	}
	if _, err := atomicfile.WriteAll(path, bytes.NewReader(bz), 0o644); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	return nil
}

func readJSON(path string, v interface{}) error {
	bz, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrNotFound, filepath.Base(path))
	}
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := tmjson.Unmarshal(bz, v); err != nil {
		return fmt.Errorf("snapshot: unmarshal %s: %w", filepath.Base(path), err)
	}
	return nil
}
