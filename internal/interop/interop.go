// Package interop cross-checks keys and signatures against the decred
// secp256k1 implementation.
package interop

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/sirupsen/logrus"

	"github.com/smallyu/go-ecdsa/internal/crypto/curves"
	"github.com/smallyu/go-ecdsa/internal/logging"
	"github.com/smallyu/go-ecdsa/pkg/ecc"
)

// ErrMismatch is returned when a value disagrees with the reference
// implementation.
var ErrMismatch = errors.New("interop: mismatch with decred secp256k1")

// Checker compares results with decred. Only secp256k1 is supported.
type Checker struct {
	log *logrus.Entry
}

// NewChecker returns a Checker for the curve described by params.
func NewChecker(params *curves.Params, log *logrus.Entry) (*Checker, error) {
	if params == nil {
		return nil, ecc.NewError(ecc.ErrUninitializedCurve, "interop: no curve parameters")
	}
	if params.Name != curves.Secp256k1.String() {
		return nil, ecc.NewError(ecc.ErrUnsupportedCurveName,
			fmt.Sprintf("interop: no reference implementation for %q", params.Name))
	}
	return &Checker{log: logging.Component(log, "interop")}, nil
}

// PublicKey derives d·G with decred.
func PublicKey(d *big.Int) (curves.Point, error) {
	priv, err := privateKey(d)
	if err != nil {
		return curves.Infinity(), err
	}
	pub := priv.PubKey()
	return curves.NewPoint(pub.X(), pub.Y()), nil
}

// Sign signs SHA-256(msg) with decred's RFC 6979 signer.
func Sign(d *big.Int, msg []byte) (*ecc.Signature, error) {
	priv, err := privateKey(d)
	if err != nil {
		return nil, err
	}
	hash := sha256.Sum256(msg)
	sig := ecdsa.Sign(priv, hash[:])

	r, s := sig.R(), sig.S()
	rb, sb := r.Bytes(), s.Bytes()
	return &ecc.Signature{
		R: new(big.Int).SetBytes(rb[:]),
		S: new(big.Int).SetBytes(sb[:]),
	}, nil
}

// Verify checks sig over SHA-256(msg) with decred.
func Verify(pub curves.Point, sig *ecc.Signature, msg []byte) (bool, error) {
	pk, err := publicKey(pub)
	if err != nil {
		return false, err
	}
	if sig == nil || sig.R == nil || sig.S == nil {
		return false, ecc.NewError(ecc.ErrInvalidSignature, "interop: signature is incomplete")
	}

	var r, s secp256k1.ModNScalar
	if !scalar(&r, sig.R) || !scalar(&s, sig.S) {
		return false, nil
	}

	hash := sha256.Sum256(msg)
	return ecdsa.NewSignature(&r, &s).Verify(hash[:], pk), nil
}

// CheckPublicKey fails with ErrMismatch unless decred derives pub from d.
func (c *Checker) CheckPublicKey(d *big.Int, pub curves.Point) error {
	ref, err := PublicKey(d)
	if err != nil {
		return err
	}
	if !ref.Equal(pub) {
		c.log.WithFields(logrus.Fields{
			"expected": ref.String(),
			"actual":   pub.String(),
		}).Error("public key mismatch")
		return fmt.Errorf("public key: %w", ErrMismatch)
	}
	c.log.Debug("public key matches")
	return nil
}

// CheckSignature fails with ErrMismatch unless decred accepts sig.
func (c *Checker) CheckSignature(pub curves.Point, sig *ecc.Signature, msg []byte) error {
	ok, err := Verify(pub, sig, msg)
	if err != nil {
		return err
	}
	if !ok {
		c.log.Error("signature rejected by decred")
		return fmt.Errorf("signature: %w", ErrMismatch)
	}
	c.log.Debug("signature accepted")
	return nil
}

func privateKey(d *big.Int) (*secp256k1.PrivateKey, error) {
	var k secp256k1.ModNScalar
	if d == nil || d.Sign() <= 0 || !scalar(&k, d) || k.IsZero() {
		return nil, ecc.NewError(ecc.ErrInvalidPrivateKey, "interop: private key is outside [1, N)")
	}
	return secp256k1.NewPrivateKey(&k), nil
}

func publicKey(p curves.Point) (*secp256k1.PublicKey, error) {
	x, y, ok := p.Coords()
	if !ok {
		return nil, ecc.NewError(ecc.ErrInvalidPublicKey, "interop: public key is the point at infinity")
	}

	var fx, fy secp256k1.FieldVal
	if x.Sign() < 0 || y.Sign() < 0 || fx.SetByteSlice(x.Bytes()) || fy.SetByteSlice(y.Bytes()) {
		return nil, ecc.NewError(ecc.ErrInvalidPublicKey, "interop: coordinate is not a field element")
	}
	pk := secp256k1.NewPublicKey(&fx, &fy)
	if !pk.IsOnCurve() {
		return nil, ecc.NewError(ecc.ErrInvalidPublicKey, "interop: public key is not on the curve")
	}
	return pk, nil
}

// scalar loads x into s and reports whether x lies in [0, N).
func scalar(s *secp256k1.ModNScalar, x *big.Int) bool {
	if x.Sign() < 0 || x.BitLen() > 256 {
		return false
	}
	return !s.SetByteSlice(x.Bytes())
}
