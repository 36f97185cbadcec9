// Package random provides the randomness sources used by the payment
// simulator. Everything takes the source as a parameter so tests can force
// deterministic outcomes.
package random

import (
	crand "crypto/rand"
	"math/rand/v2"
)

const (
	CharsetUpperAlphaNumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	CharsetDigits            = "0123456789"
)

// Source is the subset of math/rand/v2.Rand the simulator depends on.
type Source interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// IntN returns a value in [0, n).
	IntN(n int) int
}

// CryptoRand returns a ChaCha8 generator seeded from crypto/rand.
func CryptoRand() *rand.Rand {
	var seed [32]byte
	crand.Reader.Read(seed[:])
	return rand.New(rand.NewChaCha8(seed))
}

// String draws length characters from charset using r.
func String(r Source, charset string, length int) string {
	options := []rune(charset)

	temp := make([]rune, length)
	for index := range temp {
		temp[index] = options[r.IntN(len(options))]
	}
	return string(temp)
}
