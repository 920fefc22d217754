package verify

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-ecdsa/internal/crypto/curves"
	"github.com/smallyu/go-ecdsa/internal/crypto/digest"
	"github.com/smallyu/go-ecdsa/internal/logging"
	"github.com/smallyu/go-ecdsa/internal/protocol/sign"
	"github.com/smallyu/go-ecdsa/pkg/ecc"
)

var message = []byte("Hello World!")

func setup(t *testing.T, d int64) (*curves.Params, curves.Point, *ecc.Signature) {
	t.Helper()
	params, err := curves.Lookup("secp256k1")
	require.NoError(t, err)

	key := big.NewInt(d)
	pub := curves.NewGroup(params).ScalarBaseMult(key)

	sig, err := sign.Sign(params, key, message, sign.Options{})
	require.NoError(t, err)
	return params, pub, sig
}

func TestVerify(t *testing.T) {
	params, pub, sig := setup(t, 1)
	v := New(params, logging.NewTestEntry(t))

	// d = 1 derives G itself
	assert.True(t, pub.Equal(params.G))

	ok, err := v.Verify(pub, sig, message)
	require.NoError(t, err)
	assert.True(t, ok)

	t.Run("altered message", func(t *testing.T) {
		ok, err := v.Verify(pub, sig, []byte("Hello World?"))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("altered r", func(t *testing.T) {
		bad := &ecc.Signature{R: new(big.Int).Add(sig.R, big.NewInt(1)), S: sig.S}
		ok, err := v.Verify(pub, bad, message)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("altered s", func(t *testing.T) {
		bad := &ecc.Signature{R: sig.R, S: new(big.Int).Xor(sig.S, big.NewInt(1))}
		ok, err := v.Verify(pub, bad, message)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("other key", func(t *testing.T) {
		other := curves.NewGroup(params).ScalarBaseMult(big.NewInt(2))
		ok, err := v.Verify(other, sig, message)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestOutOfRange(t *testing.T) {
	params, pub, sig := setup(t, 12345)
	N := params.N

	tests := []struct {
		name string
		r, s *big.Int
	}{
		{"zero r", big.NewInt(0), sig.S},
		{"zero s", sig.R, big.NewInt(0)},
		{"negative s", sig.R, new(big.Int).Neg(sig.S)},
		{"r equal to N", new(big.Int).Set(N), sig.S},
		{"s above N", sig.R, new(big.Int).Add(sig.S, N)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ok, err := Verify(params, pub, &ecc.Signature{R: test.r, S: test.s}, message)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestSumAtInfinity(t *testing.T) {
	params, err := curves.Lookup("secp256k1")
	require.NoError(t, err)
	N := params.N

	// With Q = G and s = 1 the sum is (z + r)·G, which vanishes for r = -z.
	z, err := digest.Int(params.BitSize, message)
	require.NoError(t, err)
	r := new(big.Int).Mod(z, N)
	r.Sub(N, r)

	ok, err := Verify(params, params.G, &ecc.Signature{R: r, S: big.NewInt(1)}, message)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCannotRun(t *testing.T) {
	params, pub, sig := setup(t, 7)

	t.Run("no curve", func(t *testing.T) {
		_, err := Verify(nil, pub, sig, message)
		assert.True(t, errors.Is(err, ecc.ErrUninitializedCurve))
	})

	t.Run("invalid curve", func(t *testing.T) {
		bad := params.Copy()
		bad.A = big.NewInt(1)
		_, err := Verify(bad, pub, sig, message)
		assert.True(t, errors.Is(err, ecc.ErrInvalidCurveParameters))
	})

	t.Run("unsupported bit size", func(t *testing.T) {
		bad := params.Copy()
		bad.BitSize = 224
		_, err := Verify(bad, pub, sig, message)
		assert.True(t, errors.Is(err, ecc.ErrUnsupportedCurveBitSize))
	})

	t.Run("public key at infinity", func(t *testing.T) {
		_, err := Verify(params, curves.Infinity(), sig, message)
		assert.True(t, errors.Is(err, ecc.ErrInvalidPublicKey))
	})

	t.Run("public key off the curve", func(t *testing.T) {
		x, y, _ := pub.Coords()
		_, err := Verify(params, curves.NewPoint(x, y.Add(y, big.NewInt(1))), sig, message)
		assert.True(t, errors.Is(err, ecc.ErrInvalidPublicKey))
	})

	t.Run("incomplete signature", func(t *testing.T) {
		_, err := Verify(params, pub, nil, message)
		assert.True(t, errors.Is(err, ecc.ErrInvalidSignature))

		_, err = Verify(params, pub, &ecc.Signature{R: sig.R}, message)
		assert.True(t, errors.Is(err, ecc.ErrInvalidSignature))
	})
}
