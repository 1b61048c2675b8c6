package evm

import (
	"bytes"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/creachadair/atomicfile"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// LoadOrCreateKey reads the secp256k1 key stored as 0x-prefixed hex at path.
// When the file does not exist a new key is generated and written with mode
// 0600.
func LoadOrCreateKey(path string) (*ecdsa.PrivateKey, error) {
	bz, err := os.ReadFile(path)
	switch {
	case err == nil:
		return parseKey(bz)
	case !errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("read key file: %w", err)
	}

	key, err := crypto.GenerateKey()
	if err != nil {
		return nil, err
	}
	if err := SaveKey(path, key); err != nil {
		return nil, err
	}
	return key, nil
}

// LoadKey reads the key stored at path.
func LoadKey(path string) (*ecdsa.PrivateKey, error) {
	bz, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read key file: %w", err)
	}
	return parseKey(bz)
}

// SaveKey atomically writes key to path.
func SaveKey(path string, key *ecdsa.PrivateKey) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create key dir: %w", err)
	}
	enc := hexutil.Encode(crypto.FromECDSA(key))
	if _, err := atomicfile.WriteAll(path, bytes.NewReader([]byte(enc)), 0o600); err != nil {
		return fmt.Errorf("write key file: %w", err)
	}
	return nil
}

func parseKey(bz []byte) (*ecdsa.PrivateKey, error) {
	s := strings.TrimSpace(string(bz))
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	key, err := crypto.HexToECDSA(s)
	if err != nil {
		return nil, fmt.Errorf("parse key file: %w", err)
	}
	return key, nil
}
