package paillier

import (
	"crypto/rand"
	"io"

	"github.com/go-errors/errors"
	"github.com/sirupsen/logrus"

	"github.com/privacybydesign/paillier/big"
	"github.com/privacybydesign/paillier/internal/common"
	"github.com/privacybydesign/paillier/prime"
)

// KeyPairBuilder holds the configuration of a key pair generation run. It is a value:
// every configuration method returns an updated copy and leaves the receiver alone, so
// a builder can be shared by concurrent Finalize calls.
type KeyPairBuilder struct {
	bits        uint
	certainty   uint
	maxAttempts int
	random      io.Reader
	follower    ProgressFollower
}

// NewKeyPairBuilder returns a builder for 512 bit primes tested with 4 Miller-Rabin rounds.
func NewKeyPairBuilder() KeyPairBuilder {
	return KeyPairBuilder{
		bits:      DefaultBits,
		certainty: DefaultCertainty,
	}
}

// Bits sets the bit length of each of p and q. g is drawn below 2^bits as well.
func (b KeyPairBuilder) Bits(bits uint) KeyPairBuilder {
	b.bits = bits
	return b
}

// Certainty sets the number of Miller-Rabin rounds p and q must pass.
func (b KeyPairBuilder) Certainty(rounds uint) KeyPairBuilder {
	b.certainty = rounds
	return b
}

// Parameters sets both the bit length and the certainty, e.g. from DefaultParameters.
func (b KeyPairBuilder) Parameters(params KeyParameters) KeyPairBuilder {
	b.bits = params.Bits
	b.certainty = params.Certainty
	return b
}

// MaxAttempts bounds each of the searches for p, q and g to the given number of
// candidates; when a search runs out Finalize returns ErrSearchExhausted.
// Zero, the default, means the searches are unbounded.
func (b KeyPairBuilder) MaxAttempts(attempts int) KeyPairBuilder {
	b.maxAttempts = attempts
	return b
}

// Random sets the source of all randomness used by Finalize. It must be
// cryptographically secure, and safe for concurrent use if the builder is shared.
// nil selects crypto/rand.Reader.
func (b KeyPairBuilder) Random(rnd io.Reader) KeyPairBuilder {
	b.random = rnd
	return b
}

// Follower sets the ProgressFollower notified during Finalize.
func (b KeyPairBuilder) Follower(f ProgressFollower) KeyPairBuilder {
	b.follower = f
	return b
}

// BitsValue returns the configured bit length of p and q.
func (b KeyPairBuilder) BitsValue() uint { return b.bits }

// CertaintyValue returns the configured number of Miller-Rabin rounds.
func (b KeyPairBuilder) CertaintyValue() uint { return b.certainty }

// Finalize generates two probable primes p and q and derives a key pair from them.
// It blocks until the searches complete; there is no cancellation other than
// MaxAttempts.
//
// A bit length below MinBits is rejected with ErrInvalidConfiguration before the
// random source is touched. If the random source cannot be read the error is
// ErrRandomSource and no key material is returned.
func (b KeyPairBuilder) Finalize() (*KeyPair, error) {
	if b.bits < MinBits {
		return nil, errors.Errorf("%w: need at least %d bits, got %d", ErrInvalidConfiguration, MinBits, b.bits)
	}

	rnd := b.random
	if rnd == nil {
		rnd = rand.Reader
	}
	var probe [1]byte
	if _, err := io.ReadFull(rnd, probe[:]); err != nil {
		return nil, common.RandomSourceError(err)
	}

	follower := b.follower
	if follower == nil {
		follower = &EmptyFollower{}
	}
	log := Logger.WithFields(logrus.Fields{"bits": b.bits, "certainty": b.certainty})

	log.Debug("generate p and q")
	gen := prime.Generator{
		Random:      rnd,
		Rounds:      b.certainty,
		MaxAttempts: b.maxAttempts,
		Tick:        follower.Tick,
	}
	var primes [2]*big.Int
	for i, desc := range []string{"p", "q"} {
		follower.StepStart(desc, 0)
		p, err := b.generatePrime(&gen)
		if err != nil {
			return nil, err
		}
		follower.StepDone()
		primes[i] = p
	}
	log.Debug("done")

	follower.StepStart("g", 0)
	deriver := KeyDeriver{
		Random:      rnd,
		MaxAttempts: b.maxAttempts,
		Tick:        follower.Tick,
	}
	pk, sk, err := deriver.Derive(primes[0], primes[1], b.bits)
	if err != nil {
		return nil, err
	}
	follower.StepDone()

	return &KeyPair{
		PublicKey:  pk,
		PrivateKey: sk,
		p:          primes[0],
		q:          primes[1],
	}, nil
}

// generatePrime draws from gen until it yields a prime of at least 3. The
// primality test reports 1 as prime, which cannot serve as a factor of n.
func (b KeyPairBuilder) generatePrime(gen *prime.Generator) (*big.Int, error) {
	for {
		p, err := gen.Generate(b.bits)
		if err != nil {
			return nil, err
		}
		if p.Cmp(bigTHREE) >= 0 {
			return p, nil
		}
		if gen.Tick != nil {
			gen.Tick()
		}
	}
}
