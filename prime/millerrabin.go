// Package prime generates probable primes with the Miller-Rabin test, drawing all
// randomness (candidates as well as witnesses) from a caller-provided source.
package prime

import (
	"io"

	"github.com/privacybydesign/paillier/big"
	"github.com/privacybydesign/paillier/internal/common"
)

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// ProbablyPrime runs rounds of the Miller-Rabin test on n, drawing each witness
// uniformly from [2, n-1) out of rnd. If n is prime it returns true; if n is
// composite it returns true with probability at most 4^-rounds.
//
// n must be odd: even candidates are filtered out by the caller. Every n <= 3 is
// reported prime without reading from rnd. The only error is a failed read from rnd.
func ProbablyPrime(rnd io.Reader, n *big.Int, rounds uint) (bool, error) {
	if n.Cmp(three) <= 0 {
		return true, nil
	}

	nMinusOne := new(big.Int).Sub(n, one)
	r, s := common.SplitPowerOfTwo(nMinusOne)

	x := new(big.Int)
NextWitness:
	for i := uint(0); i < rounds; i++ {
		a, err := big.RandRange(rnd, two, nMinusOne)
		if err != nil {
			return false, common.RandomSourceError(err)
		}

		x.Exp(a, s, n)
		if x.Cmp(one) == 0 || x.Cmp(nMinusOne) == 0 {
			continue
		}

		for j := uint(1); j < r; j++ {
			x.Exp(x, two, n)
			if x.Cmp(one) == 0 {
				return false, nil
			}
			if x.Cmp(nMinusOne) == 0 {
				continue NextWitness
			}
		}

		return false, nil
	}

	return true, nil
}
