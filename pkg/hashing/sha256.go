package hashing

import "errors"

// DisabledDigest is returned by SHA256 and Stream.Final when the module is
// built with the wirepack_nosha tag. It is a sentinel, not an error.
const DisabledDigest = "sha256-disabled"

// ErrDigestFinalized is reported when Update is called after Final. The
// stream stays in its finalized state; the error is informational.
var ErrDigestFinalized = errors.New("hashing: update after final")

// SHA256 returns the lowercase hex SHA-256 digest of data, or
// DisabledDigest when the digest is compiled out.
func SHA256(data []byte) string {
	if !sha256Enabled {
		return DisabledDigest
	}
	return sha256Hex(data)
}

// SHA256Stream computes a SHA-256 digest incrementally. The zero value is
// not usable; call NewSHA256Stream.
type SHA256Stream struct {
	state     *sha256State
	digest    string
	finalized bool
}

// NewSHA256Stream returns a stream ready for Update calls.
func NewSHA256Stream() *SHA256Stream {
	return &SHA256Stream{state: newSHA256State()}
}

// Update absorbs data into the digest. Calling Update after Final is a
// usage error: the data is discarded and ErrDigestFinalized is returned.
func (s *SHA256Stream) Update(data []byte) error {
	if !sha256Enabled {
		return nil
	}
	if s.finalized {
		return ErrDigestFinalized
	}
	s.state.write(data)
	return nil
}

// Final returns the lowercase hex digest of everything absorbed so far and
// freezes the stream. Repeated calls return the same digest.
func (s *SHA256Stream) Final() string {
	if !sha256Enabled {
		return DisabledDigest
	}
	if !s.finalized {
		s.digest = s.state.sumHex()
		s.finalized = true
	}
	return s.digest
}
