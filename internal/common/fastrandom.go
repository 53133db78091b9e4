package common

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/binary"
	"sync/atomic"
)

// CPRNG is a simple thread-safe cryptographically secure pseudo-random number generator.
// Implemented with AES in counter mode with the seed as key and an
// atomic uint64 as counter. Two CPRNGs with the same seed produce the same stream,
// which makes key generation reproducible when one is passed as the random source.
type CPRNG struct {
	block   cipher.Block
	counter uint64
}

func NewCPRNG(seed *[32]byte) (*CPRNG, error) {
	c, err := aes.NewCipher(seed[:])
	if err != nil {
		return nil, err
	}
	return &CPRNG{
		block:   c,
		counter: 0,
	}, nil
}

// NewCPRNGFromLabel seeds a CPRNG with the SHA-256 hash of label.
func NewCPRNGFromLabel(label string) *CPRNG {
	seed := sha256.Sum256([]byte(label))
	c, err := NewCPRNG(&seed)
	if err != nil {
		panic(err) // a 32 byte key is always a valid AES key
	}
	return c
}

func (c *CPRNG) Read(buf []byte) (n int, err error) {
	var pt, ct [16]byte
	n = len(buf)
	if n == 0 {
		return
	}

	// Number of blocks required
	nBlocks := uint64(((len(buf) - 1) / 16) + 1)

	// Atomically increment counter by the number of blocks and set iv to
	// the first available block.
	iv := atomic.AddUint64(&c.counter, nBlocks) - nBlocks
	for {
		binary.LittleEndian.PutUint64(pt[:], iv)
		iv++

		// Still 16 bytes to go?  Then encrypt directly into buf.
		if len(buf) >= 16 {
			c.block.Encrypt(buf, pt[:])
			buf = buf[16:]
			continue
		}
		if len(buf) == 0 {
			break
		}

		// Otherwise, encrypt into ct and copy into buf.
		c.block.Encrypt(ct[:], pt[:])
		copy(buf, ct[:len(buf)])
		break
	}
	return
}
