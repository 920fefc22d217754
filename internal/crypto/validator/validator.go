// Package validator checks that a parameter set describes a usable short
// Weierstrass curve before any key, nonce or signature is derived from it.
package validator

import (
	"crypto/sha1"
	"fmt"
	"math/big"

	"github.com/sirupsen/logrus"

	"github.com/smallyu/go-ecdsa/internal/crypto/curves"
	"github.com/smallyu/go-ecdsa/internal/crypto/field"
	"github.com/smallyu/go-ecdsa/internal/logging"
	"github.com/smallyu/go-ecdsa/pkg/ecc"
)

// Check names one of the curve parameter checks, in the order they run.
type Check int

const (
	// CheckComplete verifies that every mandatory parameter is present.
	CheckComplete Check = iota + 1
	// CheckNonSingular verifies 4A³ + 27B² ≢ 0 (mod P).
	CheckNonSingular
	// CheckCoefficientRange verifies 0 ≤ B < P.
	CheckCoefficientRange
	// CheckSeed verifies SHA-1(seed) mod P == B when a seed is present.
	CheckSeed
	// CheckBasePoint verifies that G satisfies the curve equation.
	CheckBasePoint
	// CheckOrder verifies N > 0 and N·G = Infinity.
	CheckOrder
)

func (c Check) String() string {
	switch c {
	case CheckComplete:
		return "complete"
	case CheckNonSingular:
		return "non-singular"
	case CheckCoefficientRange:
		return "coefficient range"
	case CheckSeed:
		return "seed"
	case CheckBasePoint:
		return "base point"
	case CheckOrder:
		return "order"
	default:
		return fmt.Sprintf("check(%d)", int(c))
	}
}

// Error reports the first failed check. It unwraps to
// ecc.ErrInvalidCurveParameters.
type Error struct {
	Curve  string
	Check  Check
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("validator: curve %q failed %s check: %s", e.Curve, e.Check, e.Reason)
}

func (e *Error) Unwrap() error {
	return ecc.ErrInvalidCurveParameters
}

var (
	four        = big.NewInt(4)
	twentySeven = big.NewInt(27)
)

// Validator runs the curve parameter checks. The zero value is not usable;
// construct it with New.
type Validator struct {
	log *logrus.Entry
}

// New returns a Validator logging its verdicts to log. A nil log discards
// them.
func New(log *logrus.Entry) *Validator {
	return &Validator{log: logging.Component(log, "validator")}
}

// Validate runs the checks with a discarding logger.
func Validate(params *curves.Params) error {
	return New(nil).Validate(params)
}

// Validate runs every check in order and stops at the first failure. A nil
// params yields ecc.ErrUninitializedCurve; any failed check yields *Error.
// The result is not cached.
func (v *Validator) Validate(params *curves.Params) error {
	if params == nil {
		return ecc.NewError(ecc.ErrUninitializedCurve, "validator: no curve parameters")
	}

	checks := []struct {
		check Check
		run   func(*curves.Params) string
	}{
		{CheckComplete, checkComplete},
		{CheckNonSingular, checkNonSingular},
		{CheckCoefficientRange, checkCoefficientRange},
		{CheckSeed, checkSeed},
		{CheckBasePoint, checkBasePoint},
		{CheckOrder, checkOrder},
	}

	for _, c := range checks {
		if reason := c.run(params); reason != "" {
			err := &Error{Curve: params.Name, Check: c.check, Reason: reason}
			v.log.WithFields(logrus.Fields{
				"curve": params.Name,
				"check": c.check.String(),
			}).Debug(reason)
			return err
		}
	}

	v.log.WithField("curve", params.Name).Debug("curve parameters are valid")
	return nil
}

func checkComplete(params *curves.Params) string {
	switch {
	case params.P == nil || params.P.Cmp(big.NewInt(2)) <= 0:
		return "modulus P is missing or too small"
	case params.A == nil:
		return "coefficient A is missing"
	case params.B == nil:
		return "coefficient B is missing"
	case params.N == nil:
		return "order N is missing"
	case params.H < 1:
		return "cofactor H must be positive"
	}
	return ""
}

// 4A³ + 27B² mod P must not vanish.
func checkNonSingular(params *curves.Params) string {
	P := params.P

	a3 := new(big.Int).Exp(params.A, big.NewInt(3), nil)
	a3.Mul(a3, four)
	b2 := new(big.Int).Mul(params.B, params.B)
	b2.Mul(b2, twentySeven)

	if field.Add(a3, b2, P).Sign() == 0 {
		return "discriminant 4A³ + 27B² is zero modulo P"
	}
	return ""
}

func checkCoefficientRange(params *curves.Params) string {
	if params.B.Sign() < 0 || params.B.Cmp(params.P) >= 0 {
		return "coefficient B is outside [0, P)"
	}
	return ""
}

// The seed digest is always SHA-1, whatever the curve size.
func checkSeed(params *curves.Params) string {
	if params.Seed == nil {
		return ""
	}
	sum := sha1.Sum(params.Seed.Bytes())
	h := field.Mod(new(big.Int).SetBytes(sum[:]), params.P)
	if h.Cmp(params.B) != 0 {
		return "SHA-1 of the seed does not match coefficient B"
	}
	return ""
}

func checkBasePoint(params *curves.Params) string {
	if params.G.IsInfinity() {
		return "base point G is the point at infinity"
	}
	if !curves.NewGroup(params).IsOnCurve(params.G) {
		return "base point G does not satisfy the curve equation"
	}
	return ""
}

func checkOrder(params *curves.Params) string {
	if params.N.Sign() <= 0 {
		return "order N must be positive"
	}
	if !curves.NewGroup(params).Multiply(params.N, params.G).IsInfinity() {
		return "N·G is not the point at infinity"
	}
	return ""
}
