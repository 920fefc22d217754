// Package random draws secret scalars (private keys and signing nonces) for a
// curve by rejection sampling over a cryptographic entropy source.
package random

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/sirupsen/logrus"

	"github.com/smallyu/go-ecdsa/internal/crypto/curves"
	"github.com/smallyu/go-ecdsa/internal/crypto/digest"
	"github.com/smallyu/go-ecdsa/internal/crypto/validator"
	"github.com/smallyu/go-ecdsa/internal/logging"
	"github.com/smallyu/go-ecdsa/pkg/ecc"
)

// DefaultMaxAttempts bounds the number of draws Scalar makes before giving up
// with ecc.ErrEntropyExhausted.
const DefaultMaxAttempts = 256

var one = big.NewInt(1)

// Generator produces scalars for one curve. It is safe for concurrent use
// when its entropy source is.
type Generator struct {
	params      *curves.Params
	rand        io.Reader
	log         *logrus.Entry
	validator   *validator.Validator
	maxAttempts int
}

// Option configures a Generator.
type Option func(*Generator)

// WithReader sets the entropy source. The default is crypto/rand.Reader.
func WithReader(r io.Reader) Option {
	return func(g *Generator) {
		if r != nil {
			g.rand = r
		}
	}
}

// WithLogger sets the logger. Rejected draws are logged at debug level.
func WithLogger(log *logrus.Entry) Option {
	return func(g *Generator) {
		g.log = logging.Component(log, "random")
		g.validator = validator.New(log)
	}
}

// WithMaxAttempts sets the draw ceiling. Values below one are ignored.
func WithMaxAttempts(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.maxAttempts = n
		}
	}
}

// New returns a Generator for the curve described by params. A nil params is
// accepted here and reported as ecc.ErrUninitializedCurve on first use.
func New(params *curves.Params, opts ...Option) *Generator {
	g := &Generator{
		params:      params,
		rand:        rand.Reader,
		log:         logging.Discard(),
		validator:   validator.New(nil),
		maxAttempts: DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Scalar returns a value uniformly distributed in [1, bound).
//
// Each attempt:
//  1. reads ceil(bitSize/8) bytes from the entropy source
//  2. masks the high bits of the first byte down to bitSize bits
//  3. hashes the masked bytes with the digest of the curve
//  4. reads the digest as a big-endian integer and keeps it if it lies in
//     [1, bound)
//
// The digest output length, not bitSize, fixes the width of the candidate,
// which shifts the acceptance rate when the two differ.
func (g *Generator) Scalar(bound *big.Int) (*big.Int, error) {
	if g.params == nil {
		return nil, ecc.NewError(ecc.ErrUninitializedCurve, "random: no curve parameters")
	}
	if bound == nil || bound.Cmp(one) <= 0 {
		return nil, ecc.NewError(ecc.ErrInvalidRange,
			fmt.Sprintf("random: upper bound %v must be greater than one", bound))
	}
	if err := g.validator.Validate(g.params); err != nil {
		return nil, err
	}

	bitSize := g.params.BitSize
	h, err := digest.New(bitSize)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, (bitSize+7)/8)
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		if _, err := io.ReadFull(g.rand, buf); err != nil {
			return nil, fmt.Errorf("random: reading entropy: %w", err)
		}
		mask(buf, bitSize)

		h.Reset()
		h.Write(buf)
		k := new(big.Int).SetBytes(h.Sum(nil))

		if k.Sign() > 0 && k.Cmp(bound) < 0 {
			return k, nil
		}
		g.log.WithFields(logrus.Fields{
			"curve":   g.params.Name,
			"attempt": attempt,
		}).Debug("candidate outside [1, bound), drawing again")
	}

	return nil, ecc.NewError(ecc.ErrEntropyExhausted,
		fmt.Sprintf("random: no scalar in range after %d attempts", g.maxAttempts))
}

// PrivateKey returns a scalar in [1, N).
func (g *Generator) PrivateKey() (*big.Int, error) {
	if g.params == nil {
		return nil, ecc.NewError(ecc.ErrUninitializedCurve, "random: no curve parameters")
	}
	return g.Scalar(g.params.N)
}

// mask clears the bits of buf[0] above bitSize.
func mask(buf []byte, bitSize int) {
	if excess := len(buf)*8 - bitSize; excess > 0 {
		buf[0] &= 0xFF >> uint(excess)
	}
}
