// Copyright 2016 Maarten Everts. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package common

import (
	"github.com/privacybydesign/paillier/big"
)

// Some utility code (mostly math stuff) shared by the prime search and
// the key derivation.

// Often we need to refer to the same small constant big numbers, no point in
// creating them again and again.
var bigONE = big.NewInt(1)

// ModInverse returns ia, the inverse of a modulo n. ok is false when a and n are
// not coprime, in which case there is no inverse.
// This function was taken from Go's RSA implementation
func ModInverse(a, n *big.Int) (ia *big.Int, ok bool) {
	g := new(big.Int)
	x := new(big.Int)
	g.GCD(x, nil, a, n)
	if g.Cmp(bigONE) != 0 {
		return
	}

	return x.Mod(x, n), true
}

// Coprime reports whether gcd(a, n) = 1.
func Coprime(a, n *big.Int) bool {
	return new(big.Int).GCD(nil, nil, a, n).Cmp(bigONE) == 0
}

// SplitPowerOfTwo writes x = 2^r * s with s odd, by halving x while it is even.
// x must be positive.
func SplitPowerOfTwo(x *big.Int) (r uint, s *big.Int) {
	s = new(big.Int).Set(x)
	for s.Sign() > 0 && !s.IsOdd() {
		s.Rsh(s, 1)
		r++
	}
	return r, s
}
