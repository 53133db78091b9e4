package paillier

import (
	"sync"

	"github.com/bwesterb/go-exptable"
	"github.com/go-errors/errors"
	"github.com/multiformats/go-multihash"

	"github.com/privacybydesign/paillier/big"
	"github.com/privacybydesign/paillier/cbor"
	"github.com/privacybydesign/paillier/internal/common"
)

// Window size of the fixed-base exponentiation table for g.
const gTableWindow = 7

type (
	// PublicKey is the public half of a Paillier key pair.
	PublicKey struct {
		Bits     uint     // Bit length p and q were generated with
		N        *big.Int // Modulus n = p*q
		NSquared *big.Int // n^2
		G        *big.Int // Generator g

		gTable     exptable.Table
		gTableOnce sync.Once
	}

	// PrivateKey is the private half of a Paillier key pair.
	PrivateKey struct {
		Lambda *big.Int // lcm(p-1, q-1)
		Mu     *big.Int // L(g^lambda mod n^2)^-1 mod n
	}

	// KeyPair holds a public and a private key produced by the same generation run.
	KeyPair struct {
		PublicKey  *PublicKey
		PrivateKey *PrivateKey

		// The primes are kept for validation only and never exported.
		p, q *big.Int
	}
)

// ExpG computes g^exp mod n^2 using a table that is computed on first use.
// exp must not be negative.
func (pk *PublicKey) ExpG(exp *big.Int) *big.Int {
	if exp.Sign() < 0 {
		panic("paillier: negative exponent for ExpG")
	}
	ret := new(big.Int)
	if exp.Sign() == 0 {
		return ret.SetInt64(1)
	}
	if exp.BitLen() >= pk.NSquared.BitLen() {
		// beyond the range the table was computed for
		return ret.Exp(pk.G, exp, pk.NSquared)
	}

	pk.gTableOnce.Do(func() {
		base := new(big.Int).Mod(pk.G, pk.NSquared)
		pk.gTable.Compute(base.Go(), pk.NSquared.Go(), gTableWindow)
	})
	pk.gTable.Exp(ret.Go(), exp.Go())
	return ret
}

// fingerprintInput is the CBOR structure hashed by Fingerprint.
type fingerprintInput struct {
	Bits uint   `cbor:"1,keyasint"`
	N    []byte `cbor:"2,keyasint"`
	G    []byte `cbor:"3,keyasint"`
}

// Fingerprint identifies the public key by a SHA2-256 multihash over the
// deterministic CBOR encoding of its bit length, n and g.
func (pk *PublicKey) Fingerprint() (multihash.Multihash, error) {
	bts, err := cbor.Marshal(fingerprintInput{Bits: pk.Bits, N: pk.N.Bytes(), G: pk.G.Bytes()})
	if err != nil {
		return nil, errors.WrapPrefix(err, "failed to encode public key", 0)
	}
	return multihash.Sum(bts, multihash.SHA2_256, -1)
}

// Validate checks the relations between the keys: n^2 = n*n, L(g^lambda mod n^2)
// is invertible modulo n and mu is its inverse. When the primes are known it also
// checks n = p*q and lambda = lcm(p-1, q-1).
func (kp *KeyPair) Validate() error {
	pk, sk := kp.PublicKey, kp.PrivateKey
	if pk == nil || sk == nil || pk.N == nil || pk.NSquared == nil || pk.G == nil ||
		sk.Lambda == nil || sk.Mu == nil {
		return errors.Errorf("%w: incomplete key pair", ErrInvariantViolation)
	}
	if pk.N.Sign() <= 0 {
		return errors.Errorf("%w: n is not positive", ErrInvariantViolation)
	}
	if sk.Lambda.Sign() < 0 {
		return errors.Errorf("%w: lambda is negative", ErrInvariantViolation)
	}
	if sk.Mu.Sign() < 0 {
		return errors.Errorf("%w: mu is negative", ErrInvariantViolation)
	}

	if new(big.Int).Mul(pk.N, pk.N).Cmp(pk.NSquared) != 0 {
		return errors.Errorf("%w: n_squared != n*n", ErrInvariantViolation)
	}

	helper := L(pk.ExpG(sk.Lambda), pk.N)
	if !common.Coprime(helper, pk.N) {
		return errors.Errorf("%w: g is not admissible", ErrInvariantViolation)
	}
	check := new(big.Int).Mul(sk.Mu, helper)
	if check.Mod(check, pk.N).Cmp(bigONE) != 0 {
		return errors.Errorf("%w: mu is not the inverse of L(g^lambda mod n^2)", ErrInvariantViolation)
	}

	if kp.p == nil || kp.q == nil {
		return nil
	}
	if new(big.Int).Mul(kp.p, kp.q).Cmp(pk.N) != 0 {
		return errors.Errorf("%w: n != p*q", ErrInvariantViolation)
	}
	if carmichael(kp.p, kp.q).Cmp(sk.Lambda) != 0 {
		return errors.Errorf("%w: lambda != lcm(p-1, q-1)", ErrInvariantViolation)
	}
	return nil
}
