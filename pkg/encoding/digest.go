package encoding

import "github.com/cespare/xxhash/v2"

// Digest returns the xxhash64 of e's encoding.
func Digest(e Encodable) uint64 {
	return xxhash.Sum64(e.Encode())
}

// DigestBytes returns the xxhash64 of raw encoded bytes, e.g. as read back from disk.
func DigestBytes(data []byte) uint64 {
	return xxhash.Sum64(data)
}
