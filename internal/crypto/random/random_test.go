package random

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"io"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-ecdsa/internal/crypto/curves"
	"github.com/smallyu/go-ecdsa/internal/logging"
	"github.com/smallyu/go-ecdsa/pkg/ecc"
)

// countingReader serves bytes from a deterministic stream and counts them.
type countingReader struct {
	r    io.Reader
	read int
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.read += n
	return n, err
}

// blocks returns n 32-byte blocks, block i filled with byte i.
func blocks(n int) []byte {
	var buf bytes.Buffer
	for i := 0; i < n; i++ {
		buf.Write(bytes.Repeat([]byte{byte(i)}, 32))
	}
	return buf.Bytes()
}

func secp256k1(t *testing.T) *curves.Params {
	t.Helper()
	params, err := curves.Lookup("secp256k1")
	require.NoError(t, err)
	return params
}

func TestPrivateKeyInRange(t *testing.T) {
	params := secp256k1(t)
	g := New(params, WithLogger(logging.NewTestEntry(t)))

	seen := make(map[string]bool)
	for i := 0; i < 16; i++ {
		k, err := g.PrivateKey()
		require.NoError(t, err)
		assert.Equal(t, 1, k.Sign())
		assert.Equal(t, -1, k.Cmp(params.N))

		seen[k.String()] = true
	}
	assert.Len(t, seen, 16)
}

func TestDeterministicSource(t *testing.T) {
	params := secp256k1(t)
	stream := blocks(1)

	g := New(params, WithReader(bytes.NewReader(stream)))
	k, err := g.PrivateKey()
	require.NoError(t, err)

	sum := sha256.Sum256(stream[:32])
	assert.Equal(t, 0, new(big.Int).SetBytes(sum[:]).Cmp(k))
}

func TestRejectionSampling(t *testing.T) {
	params := secp256k1(t)
	bound := new(big.Int).Lsh(big.NewInt(1), 254)

	const draws = 64
	stream := blocks(draws)

	// replay the draws to find the first candidate below the bound
	var want *big.Int
	accepted := 0
	for i := 0; i < draws; i++ {
		sum := sha256.Sum256(stream[i*32 : (i+1)*32])
		v := new(big.Int).SetBytes(sum[:])
		if v.Sign() > 0 && v.Cmp(bound) < 0 {
			want = v
			accepted = i + 1
			break
		}
	}
	require.NotNil(t, want, "fixture has no candidate below the bound")

	r := &countingReader{r: bytes.NewReader(stream)}
	g := New(params, WithReader(r), WithLogger(logging.NewTestEntry(t)))

	k, err := g.Scalar(bound)
	require.NoError(t, err)
	assert.Equal(t, 0, want.Cmp(k))
	assert.Equal(t, accepted*32, r.read)
}

func TestEntropyExhausted(t *testing.T) {
	params := secp256k1(t)
	r := &countingReader{r: bytes.NewReader(blocks(8))}

	g := New(params, WithReader(r), WithMaxAttempts(3))

	// only the value 1 is acceptable below 2
	_, err := g.Scalar(big.NewInt(2))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ecc.ErrEntropyExhausted))
	assert.Equal(t, 3*32, r.read)
}

func TestInvalidRange(t *testing.T) {
	g := New(secp256k1(t))

	for _, bound := range []*big.Int{nil, big.NewInt(-4), big.NewInt(0), big.NewInt(1)} {
		_, err := g.Scalar(bound)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ecc.ErrInvalidRange), "bound %v", bound)
	}
}

func TestUninitializedCurve(t *testing.T) {
	g := New(nil)

	_, err := g.PrivateKey()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ecc.ErrUninitializedCurve))

	_, err = g.Scalar(big.NewInt(10))
	assert.True(t, errors.Is(err, ecc.ErrUninitializedCurve))
}

func TestInvalidCurve(t *testing.T) {
	params := secp256k1(t)
	params.B = new(big.Int).Add(params.P, big.NewInt(7))

	_, err := New(params).PrivateKey()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ecc.ErrInvalidCurveParameters))
}

func TestUnsupportedBitSize(t *testing.T) {
	params := secp256k1(t)
	params.BitSize = 224

	_, err := New(params).PrivateKey()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ecc.ErrUnsupportedCurveBitSize))
}

func TestShortEntropy(t *testing.T) {
	g := New(secp256k1(t), WithReader(bytes.NewReader(make([]byte, 10))))

	_, err := g.PrivateKey()
	require.Error(t, err)
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
}

func TestMask(t *testing.T) {
	tests := []struct {
		bitSize int
		in      []byte
		want    byte
	}{
		{256, bytes.Repeat([]byte{0xFF}, 32), 0xFF},
		{252, bytes.Repeat([]byte{0xFF}, 32), 0x0F},
		{521, bytes.Repeat([]byte{0xFF}, 66), 0x01},
		{9, []byte{0xFF, 0xFF}, 0x01},
	}

	for _, test := range tests {
		buf := append([]byte(nil), test.in...)
		mask(buf, test.bitSize)
		assert.Equal(t, test.want, buf[0], "bit size %d", test.bitSize)
		assert.Equal(t, test.in[1:], buf[1:])
	}
}
