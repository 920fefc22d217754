// Package encoding turns scalars, points and signatures into bytes and text,
// and back.
package encoding

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-ecdsa/internal/crypto/curves"
	"github.com/smallyu/go-ecdsa/internal/crypto/field"
	"github.com/smallyu/go-ecdsa/pkg/ecc"
)

const (
	prefixEven         = 0x02
	prefixOdd          = 0x03
	prefixUncompressed = 0x04
)

// Scalar returns k as a big-endian unsigned integer left-padded to byteLen
// bytes. It fails if k is negative or does not fit.
func Scalar(k *big.Int, byteLen int) ([]byte, error) {
	if k == nil || k.Sign() < 0 {
		return nil, ecc.NewError(ecc.ErrInvalidEncoding, "encoding: scalar must be non-negative")
	}
	if (k.BitLen()+7)/8 > byteLen {
		return nil, ecc.NewError(ecc.ErrInvalidEncoding,
			fmt.Sprintf("encoding: scalar does not fit in %d bytes", byteLen))
	}
	return k.FillBytes(make([]byte, byteLen)), nil
}

// Compressed encodes p as 0x02 or 0x03, by the parity of Y, followed by X.
func Compressed(p curves.Point, byteLen int) ([]byte, error) {
	x, y, ok := p.Coords()
	if !ok {
		return nil, ecc.NewError(ecc.ErrInvalidEncoding, "encoding: cannot encode the point at infinity")
	}
	xb, err := Scalar(x, byteLen)
	if err != nil {
		return nil, err
	}

	prefix := byte(prefixEven)
	if y.Bit(0) == 1 {
		prefix = prefixOdd
	}
	return append([]byte{prefix}, xb...), nil
}

// Uncompressed encodes p as 0x04 followed by X and Y.
func Uncompressed(p curves.Point, byteLen int) ([]byte, error) {
	x, y, ok := p.Coords()
	if !ok {
		return nil, ecc.NewError(ecc.ErrInvalidEncoding, "encoding: cannot encode the point at infinity")
	}
	xb, err := Scalar(x, byteLen)
	if err != nil {
		return nil, err
	}
	yb, err := Scalar(y, byteLen)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, 1+2*byteLen)
	out = append(out, prefixUncompressed)
	out = append(out, xb...)
	return append(out, yb...), nil
}

// ParsePoint decodes a compressed or uncompressed point and checks that it
// lies on the curve.
func ParsePoint(params *curves.Params, data []byte) (curves.Point, error) {
	if params == nil {
		return curves.Infinity(), ecc.NewError(ecc.ErrUninitializedCurve, "encoding: no curve parameters")
	}
	group := curves.NewGroup(params)
	n := params.ByteLen()

	if len(data) == 0 {
		return curves.Infinity(), ecc.NewError(ecc.ErrInvalidEncoding, "encoding: empty point")
	}

	var p curves.Point
	switch data[0] {
	case prefixUncompressed:
		if len(data) != 1+2*n {
			return curves.Infinity(), ecc.NewError(ecc.ErrInvalidEncoding,
				fmt.Sprintf("encoding: uncompressed point must be %d bytes, got %d", 1+2*n, len(data)))
		}
		x := new(big.Int).SetBytes(data[1 : 1+n])
		y := new(big.Int).SetBytes(data[1+n:])
		p = curves.NewPoint(x, y)

	case prefixEven, prefixOdd:
		if len(data) != 1+n {
			return curves.Infinity(), ecc.NewError(ecc.ErrInvalidEncoding,
				fmt.Sprintf("encoding: compressed point must be %d bytes, got %d", 1+n, len(data)))
		}
		x := new(big.Int).SetBytes(data[1:])
		if x.Cmp(params.P) >= 0 {
			return curves.Infinity(), ecc.NewError(ecc.ErrInvalidEncoding, "encoding: X is not a field element")
		}
		y := field.Sqrt(group.Polynomial(x), params.P)
		if y == nil {
			return curves.Infinity(), ecc.NewError(ecc.ErrInvalidEncoding, "encoding: X has no matching Y on the curve")
		}
		if y.Bit(0) != uint(data[0]&1) {
			y = field.Sub(params.P, y, params.P)
		}
		p = curves.NewPoint(x, y)

	default:
		return curves.Infinity(), ecc.NewError(ecc.ErrInvalidEncoding,
			fmt.Sprintf("encoding: unknown point prefix 0x%02x", data[0]))
	}

	if !group.IsOnCurve(p) {
		return curves.Infinity(), ecc.NewError(ecc.ErrInvalidEncoding, "encoding: point is not on the curve")
	}
	return p, nil
}
