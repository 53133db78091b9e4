// Package big contains a mostly API-compatible "math/big".Int, extended with uniform
// sampling from an explicit random source.
package big

import (
	"fmt"
	"io"
	"math/big"

	"github.com/go-errors/errors"
)

// Int is an API-compatible "math/big".Int.
type Int big.Int

var one = big.NewInt(1)

// RandInt returns a uniform random value in [0, max), read from rnd by rejection
// sampling. Every call consumes rnd in the same way for the same max, so a seeded
// reader yields reproducible values. It panics if max <= 0.
func RandInt(rnd io.Reader, max *Int) (*Int, error) {
	if max.Sign() <= 0 {
		panic("big: argument to RandInt is <= 0")
	}
	n := new(big.Int).Sub(max.Go(), one)
	bitLen := n.BitLen()
	if bitLen == 0 {
		// the only valid result is 0
		return new(Int), nil
	}

	b := uint(bitLen % 8)
	if b == 0 {
		b = 8
	}
	bytes := make([]byte, (bitLen+7)/8)
	for {
		if _, err := io.ReadFull(rnd, bytes); err != nil {
			return nil, errors.WrapPrefix(err, "reading random source failed", 0)
		}
		// Clear bits in the first byte so the candidate has at most bitLen bits.
		bytes[0] &= uint8(int(1<<b) - 1)
		n.SetBytes(bytes)
		if n.Cmp(max.Go()) < 0 {
			return Convert(n), nil
		}
	}
}

// RandBits returns a uniform random value in [0, 2^bits).
func RandBits(rnd io.Reader, bits uint) (*Int, error) {
	return RandInt(rnd, Convert(new(big.Int).Lsh(one, bits)))
}

// RandRange returns a uniform random value in the half-open range [lo, hi).
func RandRange(rnd io.Reader, lo, hi *Int) (*Int, error) {
	if lo.Cmp(hi) >= 0 {
		return nil, errors.Errorf("empty range [%v, %v)", lo, hi)
	}
	i, err := RandInt(rnd, new(Int).Sub(hi, lo))
	if err != nil {
		return nil, err
	}
	return i.Add(i, lo), nil
}

// Convert from a "math/big".Int
func Convert(x *big.Int) *Int {
	return (*Int)(x)
}

// Convert to a "math/big".Int
func (i *Int) Go() *big.Int {
	return (*big.Int)(i)
}

// IsOdd reports whether i is odd.
func (i *Int) IsOdd() bool                 { return i.Bit(0) == 1 }

// Lcm sets i to the least common multiple of x and y, computed as x*y / gcd(x, y),
// and returns i. The result is zero if either argument is zero.
func (i *Int) Lcm(x, y *Int) *Int {
	if x.Sign() == 0 || y.Sign() == 0 {
		return i.SetInt64(0)
	}
	gcd := new(Int).GCD(nil, nil, x, y)
	prod := new(Int).Mul(x, y)
	return i.Quo(prod.Abs(prod), gcd)
}

// "math/big".Int API
// We are liberal with using the conversion functions above; these are inlined by the compiler.

func NewInt(x int64) *Int { return Convert(big.NewInt(x)) }

func (i *Int) Format(s fmt.State, ch rune) { i.Go().Format(s, ch) }
func (i *Int) Bit(j int) uint              { return i.Go().Bit(j) }
func (i *Int) Bytes() []byte               { return i.Go().Bytes() }
func (i *Int) BitLen() int                 { return i.Go().BitLen() }
func (i *Int) Int64() int64                { return i.Go().Int64() }
func (i *Int) Sign() int                   { return i.Go().Sign() }
func (i *Int) Cmp(y *Int) int              { return i.Go().Cmp(y.Go()) }
func (i *Int) ProbablyPrime(n int) bool    { return i.Go().ProbablyPrime(n) }
func (i *Int) String() string              { return i.Go().String() }
func (i *Int) SetInt64(x int64) *Int       { return Convert(i.Go().SetInt64(x)) }
func (i *Int) Set(x *Int) *Int             { return Convert(i.Go().Set(x.Go())) }
func (i *Int) Abs(x *Int) *Int             { return Convert(i.Go().Abs(x.Go())) }
func (i *Int) Add(x, y *Int) *Int          { return Convert(i.Go().Add(x.Go(), y.Go())) }
func (i *Int) Sub(x, y *Int) *Int          { return Convert(i.Go().Sub(x.Go(), y.Go())) }
func (i *Int) Mul(x, y *Int) *Int          { return Convert(i.Go().Mul(x.Go(), y.Go())) }
func (i *Int) Quo(x, y *Int) *Int          { return Convert(i.Go().Quo(x.Go(), y.Go())) }
func (i *Int) Mod(x, y *Int) *Int          { return Convert(i.Go().Mod(x.Go(), y.Go())) }
func (i *Int) Lsh(x *Int, n uint) *Int     { return Convert(i.Go().Lsh(x.Go(), n)) }
func (i *Int) Rsh(x *Int, n uint) *Int     { return Convert(i.Go().Rsh(x.Go(), n)) }
func (i *Int) Exp(x, y, m *Int) *Int {
	return Convert(i.Go().Exp(x.Go(), y.Go(), m.Go()))
}

// GCD accepts nil for x and y like its "math/big" counterpart.
func (i *Int) GCD(x, y, a, b *Int) *Int {
	var gx, gy *big.Int
	if x != nil {
		gx = x.Go()
	}
	if y != nil {
		gy = y.Go()
	}
	return Convert(i.Go().GCD(gx, gy, a.Go(), b.Go()))
}

// ModInverse returns nil if g and n are not relatively prime, as "math/big" does.
func (i *Int) ModInverse(g, n *Int) *Int {
	if i.Go().ModInverse(g.Go(), n.Go()) == nil {
		return nil
	}
	return i
}
func (i *Int) SetString(s string, base int) (*Int, bool) {
	z, b := i.Go().SetString(s, base)
	return Convert(z), b
}
