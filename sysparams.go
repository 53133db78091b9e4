// Copyright 2016 Maarten Everts. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paillier

import (
	"sort"
)

const (
	// DefaultBits is the default bit length of each of p and q.
	DefaultBits = 512
	// DefaultCertainty is the default number of Miller-Rabin rounds.
	DefaultCertainty = 4
	// MinBits is the smallest bit length of p and q that Finalize accepts. Below it
	// the candidates are so few that the search for g need not terminate.
	MinBits = 16
)

// KeyParameters holds the bit length of the primes and the number of Miller-Rabin
// rounds each of them must pass.
type KeyParameters struct {
	Bits      uint
	Certainty uint
}

// DefaultParameters holds per prime length the parameters we recommend. A composite
// passes k rounds with probability at most 4^-k.
var DefaultParameters = map[int]KeyParameters{
	512:  {Bits: 512, Certainty: DefaultCertainty},
	1024: {Bits: 1024, Certainty: 32},
	1536: {Bits: 1536, Certainty: 40},
	2048: {Bits: 2048, Certainty: 64},
}

// getAvailableKeyLengths returns the keylengths for the provided map of
// parameters.
func getAvailableKeyLengths(params map[int]KeyParameters) []int {
	lengths := make([]int, 0, len(params))
	for k := range params {
		lengths = append(lengths, k)
	}
	sort.Ints(lengths)
	return lengths
}

// DefaultKeyLengths is a slice of integers holding the prime lengths for which
// parameters are available.
var DefaultKeyLengths = getAvailableKeyLengths(DefaultParameters)
