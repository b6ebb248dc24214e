package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// HashHeader is the request header carrying the hex HMAC-SHA256 of the
// request body.
const HashHeader = "HashSHA256"

// Hasher provides keyed HMAC-SHA256 hashing for request integrity checks.
// It keeps a pool of reusable hash instances configured with its key.
//
// Purpose of the pool:
//   - Avoid repeated allocations of new hash.Hash instances
//   - Reduce GC pressure in high-throughput hashing paths
type Hasher struct {
	pool sync.Pool
}

// NewHasher creates a Hasher keyed with hashKey.
//
// Example usage:
//
//	h := utils.NewHasher("pairing-key")
//	sig := h.Sign(body)
func NewHasher(hashKey string) *Hasher {
	key := []byte(hashKey)
	return &Hasher{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, key)
			},
		},
	}
}

// Hash computes an HMAC-SHA256 digest over data using a pooled hasher.
func (h *Hasher) Hash(data []byte) []byte {
	hasher := h.pool.Get().(hash.Hash)
	hasher.Reset()

	hasher.Write(data)
	sum := hasher.Sum(nil)

	hasher.Reset()
	h.pool.Put(hasher)

	return sum
}

// Sign returns the hex-encoded digest of data.
func (h *Hasher) Sign(data []byte) string {
	return hex.EncodeToString(h.Hash(data))
}

// Verify reports whether signature is the hex digest of data. The
// comparison is constant-time.
func (h *Hasher) Verify(data []byte, signature string) bool {
	got, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(got, h.Hash(data))
}

// HashString computes an HMAC-SHA256 signature over the given string
// using the provided hash key and returns the result as a hex-encoded string.
//
// Unlike [Hasher], this function creates a new HMAC instance on each call.
// Suitable for one-off hashing.
//
// Example usage:
//
//	signature := utils.HashString("some data", "my-secret-key")
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(hashString([]byte(data), hashKey))
}

// hashString computes an HMAC-SHA256 digest over the given byte slice
// using the provided hash key.
func hashString(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}
