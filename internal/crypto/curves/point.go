package curves

import (
	"fmt"
	"math/big"
)

// Point is either a finite affine point (X, Y) or the point at infinity, the
// identity element of the group. The zero value is the point at infinity.
//
// Coordinates are only reachable through Coords, which forces every caller to
// handle the infinity case.
type Point struct {
	x, y   *big.Int
	finite bool
}

// Infinity returns the identity element of the group.
func Infinity() Point {
	return Point{}
}

// NewPoint returns the finite point (x, y). The coordinates are copied.
func NewPoint(x, y *big.Int) Point {
	return Point{
		x:      new(big.Int).Set(x),
		y:      new(big.Int).Set(y),
		finite: true,
	}
}

// IsInfinity reports whether p is the point at infinity.
func (p Point) IsInfinity() bool {
	return !p.finite
}

// Coords returns copies of the affine coordinates of p. ok is false when p is
// the point at infinity, in which case x and y are nil.
func (p Point) Coords() (x, y *big.Int, ok bool) {
	if !p.finite {
		return nil, nil, false
	}
	return new(big.Int).Set(p.x), new(big.Int).Set(p.y), true
}

// Equal reports whether p and q are the same point. Two points at infinity are
// equal; a finite point never equals infinity.
func (p Point) Equal(q Point) bool {
	if !p.finite || !q.finite {
		return p.finite == q.finite
	}
	return p.x.Cmp(q.x) == 0 && p.y.Cmp(q.y) == 0
}

// String implements fmt.Stringer.
func (p Point) String() string {
	if !p.finite {
		return "Infinity"
	}
	return fmt.Sprintf("(%X, %X)", p.x, p.y)
}

func (p Point) clone() Point {
	if !p.finite {
		return Infinity()
	}
	return NewPoint(p.x, p.y)
}
