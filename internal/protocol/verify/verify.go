// Package verify checks ECDSA signatures.
//
// A signature that does not check out is reported as false. An error means
// the verification could not run at all: no usable curve, no digest for the
// curve size, an unusable public key or a signature with missing parts.
package verify

import (
	"math/big"

	"github.com/sirupsen/logrus"

	"github.com/smallyu/go-ecdsa/internal/crypto/curves"
	"github.com/smallyu/go-ecdsa/internal/crypto/digest"
	"github.com/smallyu/go-ecdsa/internal/crypto/field"
	"github.com/smallyu/go-ecdsa/internal/crypto/validator"
	"github.com/smallyu/go-ecdsa/internal/logging"
	"github.com/smallyu/go-ecdsa/pkg/ecc"
)

// Verifier checks signatures on one curve. It holds no per-call state and
// is safe for concurrent use.
type Verifier struct {
	params    *curves.Params
	group     *curves.Group
	log       *logrus.Entry
	validator *validator.Validator
}

// New returns a Verifier for the curve described by params.
func New(params *curves.Params, log *logrus.Entry) *Verifier {
	v := &Verifier{
		params:    params,
		log:       logging.Component(log, "verify"),
		validator: validator.New(log),
	}
	if params != nil {
		v.group = curves.NewGroup(params)
	}
	return v
}

// Verify is New(params, nil).Verify(pub, sig, msg).
func Verify(params *curves.Params, pub curves.Point, sig *ecc.Signature, msg []byte) (bool, error) {
	return New(params, nil).Verify(pub, sig, msg)
}

// Verify reports whether sig is a signature of msg under the public key pub.
func (v *Verifier) Verify(pub curves.Point, sig *ecc.Signature, msg []byte) (bool, error) {
	if v.params == nil {
		return false, ecc.NewError(ecc.ErrUninitializedCurve, "verify: no curve parameters")
	}
	if err := v.validator.Validate(v.params); err != nil {
		return false, err
	}
	if pub.IsInfinity() {
		return false, ecc.NewError(ecc.ErrInvalidPublicKey, "verify: public key is the point at infinity")
	}
	if !v.group.IsOnCurve(pub) {
		return false, ecc.NewError(ecc.ErrInvalidPublicKey, "verify: public key is not on the curve")
	}
	if sig == nil || sig.R == nil || sig.S == nil {
		return false, ecc.NewError(ecc.ErrInvalidSignature, "verify: signature is incomplete")
	}

	// 1. Hash the message to z.
	z, err := digest.Int(v.params.BitSize, msg)
	if err != nil {
		return false, err
	}

	N := v.params.N
	r, s := sig.R, sig.S
	if !inRange(r, N) || !inRange(s, N) {
		v.log.Debug("signature component outside [1, N)")
		return false, nil
	}

	// 2. w = s⁻¹ mod N
	w := field.ModularInverse(s, N)

	// 3. u1 = w·z·H mod N, u2 = w·r·H mod N
	H := big.NewInt(int64(v.params.H))
	u1 := field.Mul(field.Mul(w, z, N), H, N)
	u2 := field.Mul(field.Mul(w, r, N), H, N)

	// 4. sum = u1·G + u2·Q
	sum := v.group.Add(v.group.ScalarBaseMult(u1), v.group.Multiply(u2, pub))

	// 5. valid iff sum.X == r
	x, _, ok := sum.Coords()
	if !ok {
		v.log.Debug("u1·G + u2·Q is the point at infinity")
		return false, nil
	}
	return x.Cmp(r) == 0, nil
}

func inRange(x, n *big.Int) bool {
	return x.Sign() > 0 && x.Cmp(n) < 0
}
