package digest

import (
	"crypto"
	"crypto/sha1"
	stdsha256 "crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-ecdsa/pkg/ecc"
)

func TestAlgorithm(t *testing.T) {
	tests := []struct {
		bits int
		alg  crypto.Hash
		size int
	}{
		{192, crypto.SHA1, 20},
		{256, crypto.SHA256, 32},
		{384, crypto.SHA384, 48},
		{512, crypto.SHA512, 64},
	}

	for _, test := range tests {
		alg, err := Algorithm(test.bits)
		require.NoError(t, err)
		assert.Equal(t, test.alg, alg)

		size, err := Size(test.bits)
		require.NoError(t, err)
		assert.Equal(t, test.size, size)

		sum, err := Sum(test.bits, []byte("abc"))
		require.NoError(t, err)
		assert.Len(t, sum, test.size)
	}
}

func TestUnsupported(t *testing.T) {
	for _, bits := range []int{0, 160, 224, 255, 521} {
		_, err := Algorithm(bits)
		require.Error(t, err, "bit size %d", bits)
		assert.True(t, errors.Is(err, ecc.ErrUnsupportedCurveBitSize))

		_, err = New(bits)
		assert.Error(t, err)
		_, err = Int(bits, []byte("x"))
		assert.Error(t, err)
	}
}

func TestKnownDigests(t *testing.T) {
	msg := []byte("abc")

	sum, err := Sum(256, msg)
	require.NoError(t, err)
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", hex.EncodeToString(sum))

	sum, err = Sum(192, msg)
	require.NoError(t, err)
	assert.Equal(t, "a9993e364706816aba3e25717850c26c9cd0d89d", hex.EncodeToString(sum))
}

func TestMatchesStandardLibrary(t *testing.T) {
	msg := []byte("Hello World!")

	s1 := sha1.Sum(msg)
	s256 := stdsha256.Sum256(msg)
	s384 := sha512.Sum384(msg)
	s512 := sha512.Sum512(msg)

	expected := map[int][]byte{
		192: s1[:],
		256: s256[:],
		384: s384[:],
		512: s512[:],
	}

	for bits, want := range expected {
		got, err := Sum(bits, msg)
		require.NoError(t, err)
		assert.Equal(t, want, got, "bit size %d", bits)
	}
}

func TestInt(t *testing.T) {
	msg := []byte("Hello World!")
	sum := stdsha256.Sum256(msg)

	z, err := Int(256, msg)
	require.NoError(t, err)
	assert.Equal(t, 0, new(big.Int).SetBytes(sum[:]).Cmp(z))

	// 512-bit digests are not truncated to the curve size
	z, err = Int(512, msg)
	require.NoError(t, err)
	assert.Greater(t, z.BitLen(), 256)
}
