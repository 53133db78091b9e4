package paillier

import (
	"crypto/rand"
	"io"

	"github.com/go-errors/errors"

	"github.com/privacybydesign/paillier/big"
	"github.com/privacybydesign/paillier/internal/common"
)

var (
	bigONE   = big.NewInt(1)
	bigTHREE = big.NewInt(3)
)

// L computes (u-1)/n, rounding towards zero.
func L(u, n *big.Int) *big.Int {
	r := new(big.Int).Sub(u, bigONE)
	return r.Quo(r, n)
}

// carmichael computes lambda(p*q) = lcm(p-1, q-1).
func carmichael(p, q *big.Int) *big.Int {
	pMinusOne := new(big.Int).Sub(p, bigONE)
	qMinusOne := new(big.Int).Sub(q, bigONE)
	return new(big.Int).Lcm(pMinusOne, qMinusOne)
}

// KeyDeriver turns two probable primes into a Paillier key pair.
type KeyDeriver struct {
	// Random is the source g is drawn from. If nil, crypto/rand.Reader is used.
	Random io.Reader
	// MaxAttempts bounds the number of g candidates; zero or less means no bound.
	MaxAttempts int
	// Tick, if set, is called for every rejected candidate for g.
	Tick func()
}

// Derive computes n = p*q, n^2 and lambda = lcm(p-1, q-1), and then searches for a
// generator g in [0, 2^bits) for which L(g^lambda mod n^2) is invertible modulo n.
// mu is that inverse.
func (d *KeyDeriver) Derive(p, q *big.Int, bits uint) (*PublicKey, *PrivateKey, error) {
	if p.Cmp(bigTHREE) < 0 || q.Cmp(bigTHREE) < 0 {
		return nil, nil, errors.Errorf("%w: p and q must be at least 3", ErrInvalidConfiguration)
	}
	rnd := d.Random
	if rnd == nil {
		rnd = rand.Reader
	}

	n := new(big.Int).Mul(p, q)
	nSquared := new(big.Int).Mul(n, n)

	Logger.Debug("generate lambda")
	lambda := carmichael(p, q)

	// g can only be tested once lambda is known
	Logger.Debug("generate g")
	var g, mu *big.Int
	u := new(big.Int)
	for attempt := 1; ; attempt++ {
		if d.MaxAttempts > 0 && attempt > d.MaxAttempts {
			return nil, nil, errors.Errorf("search for g after %d candidates: %w", d.MaxAttempts, ErrSearchExhausted)
		}

		candidate, err := big.RandBits(rnd, bits)
		if err != nil {
			return nil, nil, common.RandomSourceError(err)
		}

		helper := L(u.Exp(candidate, lambda, nSquared), n)
		if common.Coprime(helper, n) {
			var ok bool
			if mu, ok = common.ModInverse(helper, n); !ok {
				return nil, nil, errors.Errorf("%w: L(g^lambda mod n^2) has no inverse modulo n", ErrInvariantViolation)
			}
			g = candidate
			Logger.WithField("attempts", attempt).Trace("found g")
			break
		}

		if d.Tick != nil {
			d.Tick()
		}
	}

	Logger.Debug("create private key")
	pk := &PublicKey{
		Bits:     bits,
		N:        n,
		NSquared: nSquared,
		G:        g,
	}
	sk := &PrivateKey{
		Lambda: lambda,
		Mu:     mu,
	}
	return pk, sk, nil
}

// Derive is KeyDeriver.Derive reading from rnd, without a bound on the search for g.
func Derive(rnd io.Reader, p, q *big.Int, bits uint) (*PublicKey, *PrivateKey, error) {
	d := KeyDeriver{Random: rnd}
	return d.Derive(p, q, bits)
}
