package paillier

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultKeyLengths(t *testing.T) {
	assert.Equal(t, []int{512, 1024, 1536, 2048}, DefaultKeyLengths)
	assert.True(t, sort.IntsAreSorted(DefaultKeyLengths))
}

func TestDefaultParameters(t *testing.T) {
	for length, params := range DefaultParameters {
		assert.Equal(t, uint(length), params.Bits)
		assert.GreaterOrEqual(t, params.Certainty, uint(DefaultCertainty))
	}
	assert.Equal(t, KeyParameters{Bits: DefaultBits, Certainty: DefaultCertainty}, DefaultParameters[DefaultBits])
}
