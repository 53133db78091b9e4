// Copyright 2016 Maarten Everts. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package paillier generates key pairs for the Paillier cryptosystem. Two probable
// primes p and q are found with the Miller-Rabin test, after which the public key
// (n, n^2, g) and the private key (lambda, mu) are derived from them.
//
// Key generation reads all of its randomness from a single io.Reader, which
// defaults to crypto/rand.Reader:
//
//	keys, err := paillier.NewKeyPairBuilder().Bits(1024).Certainty(32).Finalize()
//
// Encryption and decryption are not part of this package.
package paillier
