// Package oid generates opaque document ids: 24-character hex tokens
// containing a big-endian second timestamp, a per-process nonce, and an
// atomic counter. Tokens from one generator never collide, and tokens
// created later sort lexicographically after tokens created earlier.
package oid

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// TokenLen is the length of a generated id in hex characters.
const TokenLen = 24

// Generator produces unique id tokens. The zero value is not usable; use
// NewGenerator.
type Generator struct {
	nonce   [5]byte
	counter uint32
}

// NewGenerator returns a Generator with a fresh process nonce and a
// randomly seeded counter.
func NewGenerator() *Generator {
	g := &Generator{}

	// Derive the nonce from a random UUID so two engine instances in the
	// same process still produce disjoint id spaces.
	id := uuid.New()
	copy(g.nonce[:], id[:5])

	var seed [4]byte
	if _, err := rand.Read(seed[:]); err == nil {
		g.counter = binary.BigEndian.Uint32(seed[:])
	}
	return g
}

// NewID returns the next id token.
func (g *Generator) NewID() string {
	var raw [12]byte
	binary.BigEndian.PutUint32(raw[0:4], uint32(time.Now().Unix()))
	copy(raw[4:9], g.nonce[:])

	n := atomic.AddUint32(&g.counter, 1)
	raw[9] = byte(n >> 16)
	raw[10] = byte(n >> 8)
	raw[11] = byte(n)

	return hex.EncodeToString(raw[:])
}

// IsToken reports whether s looks like a generated id token: exactly
// TokenLen lowercase hex characters.
func IsToken(s string) bool {
	if len(s) != TokenLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
