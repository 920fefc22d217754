// Package ecdsa is the entry point of the library: key generation, signing
// and verification on a named curve.
//
//	scheme, err := ecdsa.New("secp256k1")
//	priv, err := scheme.GeneratePrivateKey()
//	pub, err := scheme.PublicKey(priv)
//	sig, err := scheme.Sign(priv, []byte("Hello World!"))
//	ok, err := scheme.Verify(pub, sig, []byte("Hello World!"))
package ecdsa

import (
	"context"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/smallyu/go-ecdsa/internal/crypto/curves"
	"github.com/smallyu/go-ecdsa/internal/crypto/random"
	"github.com/smallyu/go-ecdsa/internal/crypto/validator"
	"github.com/smallyu/go-ecdsa/internal/encoding"
	"github.com/smallyu/go-ecdsa/internal/interop"
	"github.com/smallyu/go-ecdsa/internal/logging"
	"github.com/smallyu/go-ecdsa/internal/protocol/sign"
	"github.com/smallyu/go-ecdsa/internal/protocol/verify"
	"github.com/smallyu/go-ecdsa/pkg/ecc"
)

// Scheme binds the ECDSA operations to one curve. It holds no per-call state
// and is safe for concurrent use when its entropy source is.
type Scheme struct {
	params *curves.Params
	group  *curves.Group

	log         *logrus.Entry
	rand        io.Reader
	maxAttempts int
	rejectZeroS bool
	crossCheck  bool
	checker     *interop.Checker
}

var (
	_ ecc.KeyGenerator = (*Scheme)(nil)
	_ ecc.Signer       = (*Scheme)(nil)
	_ ecc.Verifier     = (*Scheme)(nil)
)

// New returns a Scheme for the named curve. Unknown names fail with
// ecc.ErrUnsupportedCurveName.
func New(curveName string, opts ...Option) (*Scheme, error) {
	params, err := curves.Lookup(curveName)
	if err != nil {
		return nil, err
	}

	s := &Scheme{
		params: params,
		group:  curves.NewGroup(params),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.crossCheck {
		s.checker, err = interop.NewChecker(params, s.log)
		if err != nil {
			return nil, err
		}
	}

	logging.Component(s.log, "ecdsa").WithFields(logrus.Fields{
		"curve":       params.Name,
		"crosscheck":  s.crossCheck,
		"rejectZeroS": s.rejectZeroS,
	}).Debug("scheme ready")
	return s, nil
}

// Curve returns the canonical name of the curve.
func (s *Scheme) Curve() string {
	return s.params.Name
}

// ByteLen returns the width of a serialized scalar or coordinate.
func (s *Scheme) ByteLen() int {
	return s.params.ByteLen()
}

// ValidateCurve runs the curve parameter checks.
func (s *Scheme) ValidateCurve() error {
	return validator.New(s.log).Validate(s.params)
}

// GeneratePrivateKey returns a fresh private key in [1, N).
func (s *Scheme) GeneratePrivateKey() (*ecc.PrivateKey, error) {
	d, err := random.New(s.params, s.randomOptions()...).PrivateKey()
	if err != nil {
		return nil, err
	}
	return &ecc.PrivateKey{Curve: s.params.Name, D: d}, nil
}

// PublicKey derives Q = d·G.
func (s *Scheme) PublicKey(priv *ecc.PrivateKey) (*ecc.PublicKey, error) {
	d, err := s.scalar(priv)
	if err != nil {
		return nil, err
	}
	if err := s.ValidateCurve(); err != nil {
		return nil, err
	}

	q := s.group.ScalarBaseMult(d)
	if s.checker != nil {
		if err := s.checker.CheckPublicKey(d, q); err != nil {
			return nil, err
		}
	}

	x, y, ok := q.Coords()
	if !ok {
		return nil, ecc.NewError(ecc.ErrInvalidPublicKey, "ecdsa: derived public key is the point at infinity")
	}
	return &ecc.PublicKey{Curve: s.params.Name, X: x, Y: y}, nil
}

// Sign hashes message with the digest of the curve and signs it.
func (s *Scheme) Sign(priv *ecc.PrivateKey, message []byte) (*ecc.Signature, error) {
	d, err := s.scalar(priv)
	if err != nil {
		return nil, err
	}

	sig, err := sign.Sign(s.params, d, message, s.signOptions())
	if err != nil {
		return nil, err
	}

	if s.checker != nil {
		if err := s.checker.CheckSignature(s.group.ScalarBaseMult(d), sig, message); err != nil {
			return nil, err
		}
	}
	return sig, nil
}

// SignBatch signs messages concurrently. The result is index-aligned with
// messages.
func (s *Scheme) SignBatch(ctx context.Context, priv *ecc.PrivateKey, messages [][]byte) ([]*ecc.Signature, error) {
	d, err := s.scalar(priv)
	if err != nil {
		return nil, err
	}

	sigs, err := sign.SignBatch(ctx, s.params, d, messages, s.signOptions())
	if err != nil {
		return nil, err
	}

	if s.checker != nil {
		q := s.group.ScalarBaseMult(d)
		for i, sig := range sigs {
			if err := s.checker.CheckSignature(q, sig, messages[i]); err != nil {
				return nil, fmt.Errorf("message %d: %w", i, err)
			}
		}
	}
	return sigs, nil
}

// Verify reports whether sig is a valid signature of message under pub.
func (s *Scheme) Verify(pub *ecc.PublicKey, sig *ecc.Signature, message []byte) (bool, error) {
	q, err := s.point(pub)
	if err != nil {
		return false, err
	}

	ok, err := verify.New(s.params, s.log).Verify(q, sig, message)
	if err != nil {
		return false, err
	}

	if s.checker != nil {
		ref, err := interop.Verify(q, sig, message)
		if err != nil {
			return false, err
		}
		if ref != ok {
			return false, fmt.Errorf("verification verdict %t: %w", ok, interop.ErrMismatch)
		}
	}
	return ok, nil
}

// MarshalPublicKey encodes pub as a compressed or uncompressed point.
func (s *Scheme) MarshalPublicKey(pub *ecc.PublicKey, compressed bool) ([]byte, error) {
	q, err := s.point(pub)
	if err != nil {
		return nil, err
	}
	if compressed {
		return encoding.Compressed(q, s.params.ByteLen())
	}
	return encoding.Uncompressed(q, s.params.ByteLen())
}

// ParsePublicKey decodes a compressed or uncompressed point.
func (s *Scheme) ParsePublicKey(data []byte) (*ecc.PublicKey, error) {
	q, err := encoding.ParsePoint(s.params, data)
	if err != nil {
		return nil, err
	}
	x, y, _ := q.Coords()
	return &ecc.PublicKey{Curve: s.params.Name, X: x, Y: y}, nil
}

// MarshalSignature returns the DER encoding of sig.
func (s *Scheme) MarshalSignature(sig *ecc.Signature) ([]byte, error) {
	return encoding.Signature(sig)
}

// ParseSignature decodes a DER signature.
func (s *Scheme) ParseSignature(data []byte) (*ecc.Signature, error) {
	return encoding.ParseSignature(data)
}

func (s *Scheme) randomOptions() []random.Option {
	opts := []random.Option{
		random.WithReader(s.rand),
		random.WithMaxAttempts(s.maxAttempts),
	}
	if s.log != nil {
		opts = append(opts, random.WithLogger(s.log))
	}
	return opts
}

func (s *Scheme) signOptions() sign.Options {
	return sign.Options{
		Rand:             s.rand,
		Logger:           s.log,
		MaxNonceAttempts: s.maxAttempts,
		MaxDrawAttempts:  s.maxAttempts,
		RejectZeroS:      s.rejectZeroS,
	}
}

func (s *Scheme) sameCurve(name string) bool {
	return name == "" || strings.EqualFold(name, s.params.Name)
}

// scalar checks that priv belongs to this curve and lies in [1, N).
func (s *Scheme) scalar(priv *ecc.PrivateKey) (*big.Int, error) {
	if priv == nil || priv.D == nil {
		return nil, ecc.NewError(ecc.ErrInvalidPrivateKey, "ecdsa: missing private key")
	}
	if !s.sameCurve(priv.Curve) {
		return nil, ecc.NewError(ecc.ErrInvalidPrivateKey,
			fmt.Sprintf("ecdsa: private key is for %q, not %q", priv.Curve, s.params.Name))
	}
	if priv.D.Sign() <= 0 || priv.D.Cmp(s.params.N) >= 0 {
		return nil, ecc.NewError(ecc.ErrInvalidPrivateKey, "ecdsa: private key is outside [1, N)")
	}
	return priv.D, nil
}

// point checks that pub belongs to this curve and returns it as a point.
func (s *Scheme) point(pub *ecc.PublicKey) (curves.Point, error) {
	if pub == nil || pub.X == nil || pub.Y == nil {
		return curves.Infinity(), ecc.NewError(ecc.ErrInvalidPublicKey, "ecdsa: missing public key")
	}
	if !s.sameCurve(pub.Curve) {
		return curves.Infinity(), ecc.NewError(ecc.ErrInvalidPublicKey,
			fmt.Sprintf("ecdsa: public key is for %q, not %q", pub.Curve, s.params.Name))
	}
	q := curves.NewPoint(pub.X, pub.Y)
	if !s.group.IsOnCurve(q) {
		return curves.Infinity(), ecc.NewError(ecc.ErrInvalidPublicKey, "ecdsa: public key is not on the curve")
	}
	return q, nil
}
