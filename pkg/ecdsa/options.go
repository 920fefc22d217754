package ecdsa

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Option configures a Scheme.
type Option func(*Scheme)

// WithLogger routes debug output of every component to log.
func WithLogger(log *logrus.Entry) Option {
	return func(s *Scheme) {
		s.log = log
	}
}

// WithRand sets the entropy source for private keys and nonces. It must be
// safe for concurrent use if SignBatch is called.
func WithRand(r io.Reader) Option {
	return func(s *Scheme) {
		s.rand = r
	}
}

// WithMaxAttempts bounds the scalar rejection sampling and the nonce retries.
func WithMaxAttempts(n int) Option {
	return func(s *Scheme) {
		s.maxAttempts = n
	}
}

// WithRejectZeroS makes Sign draw a new nonce when s = 0.
func WithRejectZeroS(reject bool) Option {
	return func(s *Scheme) {
		s.rejectZeroS = reject
	}
}

// WithCrossCheck compares every derived public key, signature and
// verification verdict with the decred secp256k1 implementation.
func WithCrossCheck(enabled bool) Option {
	return func(s *Scheme) {
		s.crossCheck = enabled
	}
}
