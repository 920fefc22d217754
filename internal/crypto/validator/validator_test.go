package validator

import (
	"crypto/sha1"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-ecdsa/internal/crypto/curves"
	"github.com/smallyu/go-ecdsa/internal/logging"
	"github.com/smallyu/go-ecdsa/pkg/ecc"
)

// toy17 is y² = x³ + 2x + 2 over F17 with G = (5, 1) of order 19.
func toy17() *curves.Params {
	return &curves.Params{
		Name:    "toy17",
		P:       big.NewInt(17),
		A:       big.NewInt(2),
		B:       big.NewInt(2),
		G:       curves.NewPoint(big.NewInt(5), big.NewInt(1)),
		N:       big.NewInt(19),
		H:       1,
		BitSize: 8,
	}
}

func secp256k1(t *testing.T) *curves.Params {
	t.Helper()
	params, err := curves.Lookup("secp256k1")
	require.NoError(t, err)
	return params
}

func requireCheck(t *testing.T, err error, check Check) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ecc.ErrInvalidCurveParameters), "error %v should unwrap to ErrInvalidCurveParameters", err)

	var verr *Error
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, check, verr.Check, "failed check: %s", verr.Reason)
}

func TestValidCurves(t *testing.T) {
	v := New(logging.NewTestEntry(t))

	require.NoError(t, v.Validate(secp256k1(t)))
	require.NoError(t, v.Validate(toy17()))
	require.NoError(t, Validate(secp256k1(t)))
}

func TestUninitialized(t *testing.T) {
	err := Validate(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ecc.ErrUninitializedCurve))
	assert.False(t, errors.Is(err, ecc.ErrInvalidCurveParameters))
}

func TestRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(t *testing.T) *curves.Params
		check  Check
	}{
		{
			name: "missing modulus",
			mutate: func(t *testing.T) *curves.Params {
				p := secp256k1(t)
				p.P = nil
				return p
			},
			check: CheckComplete,
		},
		{
			name: "zero cofactor",
			mutate: func(t *testing.T) *curves.Params {
				p := toy17()
				p.H = 0
				return p
			},
			check: CheckComplete,
		},
		{
			name: "zero coefficients are singular",
			mutate: func(t *testing.T) *curves.Params {
				p := toy17()
				p.A = big.NewInt(0)
				p.B = big.NewInt(0)
				return p
			},
			check: CheckNonSingular,
		},
		{
			name: "vanishing discriminant",
			mutate: func(t *testing.T) *curves.Params {
				// 4·(-3)³ + 27·2² = 0
				p := toy17()
				p.A = big.NewInt(14)
				p.B = big.NewInt(2)
				return p
			},
			check: CheckNonSingular,
		},
		{
			name: "B above P",
			mutate: func(t *testing.T) *curves.Params {
				p := secp256k1(t)
				p.B = new(big.Int).Set(p.P)
				p.B.Add(p.B, big.NewInt(7))
				return p
			},
			check: CheckCoefficientRange,
		},
		{
			name: "negative B",
			mutate: func(t *testing.T) *curves.Params {
				p := toy17()
				p.B = big.NewInt(-15)
				return p
			},
			check: CheckCoefficientRange,
		},
		{
			name: "seed mismatch",
			mutate: func(t *testing.T) *curves.Params {
				p := secp256k1(t)
				p.Seed = big.NewInt(1)
				return p
			},
			check: CheckSeed,
		},
		{
			name: "base point off the curve",
			mutate: func(t *testing.T) *curves.Params {
				p := secp256k1(t)
				x, y, _ := p.G.Coords()
				p.G = curves.NewPoint(x, y.Add(y, big.NewInt(1)))
				return p
			},
			check: CheckBasePoint,
		},
		{
			name: "base point at infinity",
			mutate: func(t *testing.T) *curves.Params {
				p := toy17()
				p.G = curves.Infinity()
				return p
			},
			check: CheckBasePoint,
		},
		{
			name: "wrong order",
			mutate: func(t *testing.T) *curves.Params {
				p := secp256k1(t)
				p.N.Sub(p.N, big.NewInt(1))
				return p
			},
			check: CheckOrder,
		},
		{
			name: "zero order",
			mutate: func(t *testing.T) *curves.Params {
				p := toy17()
				p.N = big.NewInt(0)
				return p
			},
			check: CheckOrder,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			v := New(logging.NewTestEntry(t))
			requireCheck(t, v.Validate(test.mutate(t)), test.check)
		})
	}
}

func TestSeedMatch(t *testing.T) {
	params := toy17()

	// find a seed whose SHA-1 digest reduces to B modulo 17
	var seed *big.Int
	for i := int64(1); i < 2000; i++ {
		s := big.NewInt(i)
		sum := sha1.Sum(s.Bytes())
		h := new(big.Int).SetBytes(sum[:])
		if h.Mod(h, params.P).Cmp(params.B) == 0 {
			seed = s
			break
		}
	}
	require.NotNil(t, seed, "no matching seed found")

	params.Seed = seed
	require.NoError(t, Validate(params))

	params.Seed = new(big.Int).Add(seed, big.NewInt(1))
	if err := Validate(params); err != nil {
		requireCheck(t, err, CheckSeed)
	}
}

func TestErrorMessage(t *testing.T) {
	p := toy17()
	p.N = big.NewInt(18)

	err := Validate(p)
	requireCheck(t, err, CheckOrder)
	assert.Contains(t, err.Error(), `"toy17"`)
	assert.Contains(t, err.Error(), "order")
}

func TestCheckString(t *testing.T) {
	assert.Equal(t, "non-singular", CheckNonSingular.String())
	assert.Equal(t, "check(99)", Check(99).String())
}
