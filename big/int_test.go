package big

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandBits(t *testing.T) {
	for _, bits := range []uint{1, 8, 100, 512} {
		for i := 0; i < 20; i++ {
			x, err := RandBits(rand.Reader, bits)
			require.NoError(t, err)
			require.True(t, x.Sign() >= 0)
			require.LessOrEqual(t, x.BitLen(), int(bits))
		}
	}
}

func TestRandBitsZero(t *testing.T) {
	x, err := RandBits(rand.Reader, 0)
	require.NoError(t, err)
	require.Zero(t, x.Sign())
}

func TestRandRange(t *testing.T) {
	lo, hi := NewInt(2), NewInt(9)
	seen := map[int64]bool{}
	for i := 0; i < 500; i++ {
		x, err := RandRange(rand.Reader, lo, hi)
		require.NoError(t, err)
		require.True(t, x.Cmp(lo) >= 0 && x.Cmp(hi) < 0, "out of range: %v", x)
		seen[x.Int64()] = true
	}
	require.Len(t, seen, 7)
}

func TestRandRangeSingleton(t *testing.T) {
	// A range of one element needs no randomness at all.
	x, err := RandRange(bytes.NewReader(nil), NewInt(2), NewInt(3))
	require.NoError(t, err)
	require.Equal(t, int64(2), x.Int64())
}

func TestRandRangeEmpty(t *testing.T) {
	_, err := RandRange(rand.Reader, NewInt(5), NewInt(5))
	require.Error(t, err)
}

func TestRandIntReadFailure(t *testing.T) {
	_, err := RandInt(bytes.NewReader(nil), new(Int).Lsh(NewInt(1), 64))
	require.Error(t, err)
}

func TestLcm(t *testing.T) {
	require.Equal(t, int64(60), new(Int).Lcm(NewInt(10), NewInt(12)).Int64())
	require.Equal(t, int64(21), new(Int).Lcm(NewInt(7), NewInt(3)).Int64())
	require.Equal(t, int64(0), new(Int).Lcm(NewInt(0), NewInt(12)).Int64())

	s := "8931748931759284679376938475395713602744853768923750102"
	x, ok := new(Int).SetString(s, 10)
	require.True(t, ok)
	require.Zero(t, x.Cmp(new(Int).Lcm(x, x)))
}

func TestModInverse(t *testing.T) {
	require.Equal(t, int64(4), new(Int).ModInverse(NewInt(3), NewInt(11)).Int64())
	require.Nil(t, new(Int).ModInverse(NewInt(11), NewInt(143)))
}

func TestIsOdd(t *testing.T) {
	require.True(t, NewInt(97).IsOdd())
	require.False(t, NewInt(96).IsOdd())
	require.False(t, NewInt(0).IsOdd())
}
