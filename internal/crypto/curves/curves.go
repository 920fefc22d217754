package curves

import (
	"math/big"

	"github.com/smallyu/go-ecdsa/internal/crypto/field"
)

var (
	three = big.NewInt(3)
)

// Curve defines the group operations needed by key generation, signing and
// verification.
type Curve interface {
	// Params returns the curve parameters (P, A, B, G, N, etc.)
	Params() *Params

	// IsOnCurve reports whether a finite point satisfies the curve equation.
	IsOnCurve(p Point) bool

	// Double returns 2*p.
	Double(p Point) Point

	// Add combines two points.
	Add(p1, p2 Point) Point

	// Multiply computes k * p
	Multiply(k *big.Int, p Point) Point

	// ScalarBaseMult computes k * G (base point multiplication)
	ScalarBaseMult(k *big.Int) Point
}

// Group implements Curve over a single parameter set with affine
// coordinates and math/big arithmetic.
//
// None of the operations run in constant time: scalar multiplication is a
// plain double-and-add whose running time and intermediate values depend on
// the bit pattern of the scalar.
type Group struct {
	params *Params
}

var _ Curve = (*Group)(nil)

// NewGroup returns the group of points of the curve described by params.
func NewGroup(params *Params) *Group {
	return &Group{params: params}
}

// NewSecp256k1 returns a new instance of the secp256k1 group.
func NewSecp256k1() *Group {
	return NewGroup(Secp256k1.Params())
}

func (g *Group) Params() *Params {
	return g.params
}

// IsOnCurve reports whether Y² ≡ X³ + AX + B (mod P). The point at infinity
// is not considered to be on the curve since it has no affine coordinates.
func (g *Group) IsOnCurve(p Point) bool {
	x, y, ok := p.Coords()
	if !ok {
		return false
	}
	P := g.params.P
	if x.Sign() < 0 || x.Cmp(P) >= 0 || y.Sign() < 0 || y.Cmp(P) >= 0 {
		return false
	}

	lhs := field.Mul(y, y, P)
	return lhs.Cmp(g.Polynomial(x)) == 0
}

// Polynomial returns x³ + Ax + B mod P.
func (g *Group) Polynomial(x *big.Int) *big.Int {
	x3 := new(big.Int).Mul(x, x)
	x3.Add(x3, g.params.A) // x² + a
	x3.Mul(x3, x)          // x³ + ax
	x3.Add(x3, g.params.B) // x³ + ax + b

	return x3.Mod(x3, g.params.P)
}

// Double returns 2*p.
//
// The tangent is vertical when Y = 0. That case is not special-cased: the
// inverse of zero evaluates to zero and the returned point is meaningless.
// Curves of prime order, secp256k1 included, have no such point.
func (g *Group) Double(p Point) Point {
	x, y, ok := p.Coords()
	if !ok {
		return Infinity()
	}
	P := g.params.P

	// slope = (3x² + a) / (2y) mod p
	num := new(big.Int).Mul(x, x)
	num.Mul(num, three)
	num.Add(num, g.params.A)
	den := new(big.Int).Lsh(y, 1)
	slope := field.Div(num, den, P)

	// x' = slope² - 2x, y' = slope(x - x') - y
	xR := new(big.Int).Mul(slope, slope)
	xR.Sub(xR, new(big.Int).Lsh(x, 1))
	xR.Mod(xR, P)

	yR := new(big.Int).Sub(x, xR)
	yR.Mul(yR, slope)
	yR.Sub(yR, y)
	yR.Mod(yR, P)

	return Point{x: xR, y: yR, finite: true}
}

// Add returns p1 + p2. Infinity is the identity; points sharing X with
// different Y are inverses and sum to infinity; equal points are doubled.
func (g *Group) Add(p1, p2 Point) Point {
	x1, y1, ok1 := p1.Coords()
	if !ok1 {
		return p2.clone()
	}
	x2, y2, ok2 := p2.Coords()
	if !ok2 {
		return p1.clone()
	}

	if x1.Cmp(x2) == 0 {
		if y1.Cmp(y2) != 0 {
			return Infinity()
		}
		return g.Double(p1)
	}

	P := g.params.P

	// slope = (y2 - y1) / (x2 - x1) mod p
	slope := field.Div(new(big.Int).Sub(y2, y1), new(big.Int).Sub(x2, x1), P)

	// x' = slope² - x1 - x2, y' = slope(x1 - x') - y1
	xR := new(big.Int).Mul(slope, slope)
	xR.Sub(xR, x1)
	xR.Sub(xR, x2)
	xR.Mod(xR, P)

	yR := new(big.Int).Sub(x1, xR)
	yR.Mul(yR, slope)
	yR.Sub(yR, y1)
	yR.Mod(yR, P)

	return Point{x: xR, y: yR, finite: true}
}

// Negate returns -p.
func (g *Group) Negate(p Point) Point {
	x, y, ok := p.Coords()
	if !ok {
		return Infinity()
	}
	return Point{x: x, y: field.Sub(g.params.P, y, g.params.P), finite: true}
}

// Multiply computes k*p with double-and-add, scanning the bits of k from the
// least significant one. The result is infinity when k is not positive or p
// is the point at infinity.
func (g *Group) Multiply(k *big.Int, p Point) Point {
	if k == nil || k.Sign() <= 0 || p.IsInfinity() {
		return Infinity()
	}

	result := Infinity()
	current := p
	for i := 0; i < k.BitLen(); i++ {
		if k.Bit(i) == 1 {
			result = g.Add(result, current)
		}
		current = g.Double(current)
	}

	return result
}

// ScalarBaseMult computes k*G.
func (g *Group) ScalarBaseMult(k *big.Int) Point {
	return g.Multiply(k, g.params.G)
}

// Equal reports whether p and q are the same point, comparing coordinates
// modulo P.
func (g *Group) Equal(p, q Point) bool {
	px, py, pok := p.Coords()
	qx, qy, qok := q.Coords()
	if !pok || !qok {
		return pok == qok
	}
	P := g.params.P
	return field.Mod(px, P).Cmp(field.Mod(qx, P)) == 0 &&
		field.Mod(py, P).Cmp(field.Mod(qy, P)) == 0
}
