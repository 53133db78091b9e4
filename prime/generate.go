package prime

import (
	"crypto/rand"
	"io"

	"github.com/go-errors/errors"

	"github.com/privacybydesign/paillier/big"
	"github.com/privacybydesign/paillier/internal/common"
)

// ErrSearchExhausted is returned when MaxAttempts candidates were drawn without
// finding a probable prime.
var ErrSearchExhausted = common.ErrSearchExhausted

// Generator searches for probable primes below 2^bits.
type Generator struct {
	// Random is the source of candidates and Miller-Rabin witnesses.
	// If nil, crypto/rand.Reader is used.
	Random io.Reader
	// Rounds is the number of Miller-Rabin rounds a candidate must pass.
	Rounds uint
	// MaxAttempts bounds the number of candidates drawn; zero or less means no bound.
	MaxAttempts int
	// Tick, if set, is called for every rejected candidate.
	Tick func()
}

// Generate returns a probable prime drawn uniformly from the odd integers in
// [0, 2^bits) that pass Rounds rounds of ProbablyPrime.
//
// Without MaxAttempts the search has no bound; it terminates with probability one
// after O(bits) candidates on average.
func (g *Generator) Generate(bits uint) (*big.Int, error) {
	rnd := g.Random
	if rnd == nil {
		rnd = rand.Reader
	}

	for attempt := 1; ; attempt++ {
		if g.MaxAttempts > 0 && attempt > g.MaxAttempts {
			return nil, errors.Errorf("prime search after %d candidates: %w", g.MaxAttempts, ErrSearchExhausted)
		}

		p, err := big.RandBits(rnd, bits)
		if err != nil {
			return nil, common.RandomSourceError(err)
		}

		if p.IsOdd() {
			ok, err := ProbablyPrime(rnd, p, g.Rounds)
			if err != nil {
				return nil, err
			}
			if ok {
				return p, nil
			}
		}

		if g.Tick != nil {
			g.Tick()
		}
	}
}

// Generate returns a probable prime below 2^bits that passes rounds rounds of
// Miller-Rabin, using rnd for all randomness and no bound on the number of candidates.
func Generate(rnd io.Reader, bits, rounds uint) (*big.Int, error) {
	g := Generator{Random: rnd, Rounds: rounds}
	return g.Generate(bits)
}
