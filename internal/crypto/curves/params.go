package curves

import (
	"math/big"
)

// Params describes a short Weierstrass curve y² = x³ + Ax + B over the prime
// field of order P, together with its base point G of prime order N.
//
// A Params value is treated as immutable once built. Lookup hands out a fresh
// copy on every call, so callers never share big.Int state.
type Params struct {
	Name    string   // the canonical name of the curve
	P       *big.Int // the order of the underlying field
	A       *big.Int // the linear coefficient of the curve equation
	B       *big.Int // the constant of the curve equation
	G       Point    // the base point
	N       *big.Int // the order of the base point
	H       int      // the cofactor
	Seed    *big.Int // optional seed justifying B, nil when absent
	BitSize int      // the size of the underlying field
}

// ByteLen returns the width in bytes of a serialized field element or scalar.
func (p *Params) ByteLen() int {
	return p.BitSize / 8
}

// Copy returns a deep copy of p.
func (p *Params) Copy() *Params {
	c := &Params{
		Name:    p.Name,
		P:       copyInt(p.P),
		A:       copyInt(p.A),
		B:       copyInt(p.B),
		G:       p.G.clone(),
		N:       copyInt(p.N),
		H:       p.H,
		Seed:    copyInt(p.Seed),
		BitSize: p.BitSize,
	}
	return c
}

func copyInt(x *big.Int) *big.Int {
	if x == nil {
		return nil
	}
	return new(big.Int).Set(x)
}

func mustHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("curves: invalid hex constant " + s)
	}
	return v
}
