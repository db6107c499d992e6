//go:build !wirepack_nosha

package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
)

const sha256Enabled = true

// sha256State wraps the FIPS 180-4 implementation from crypto/sha256.
type sha256State struct {
	h hash.Hash
}

func newSHA256State() *sha256State {
	return &sha256State{h: sha256.New()}
}

func (s *sha256State) write(data []byte) {
	// hash.Hash.Write never returns an error.
	s.h.Write(data)
}

func (s *sha256State) sumHex() string {
	return hex.EncodeToString(s.h.Sum(nil))
}

func sha256Hex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
