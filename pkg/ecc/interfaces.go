package ecc

import (
	"context"
	"math/big"
)

// PrivateKey is a secret scalar in [1, N) for a given curve. It is a value:
// callers own its lifetime and must not reuse it across curves.
type PrivateKey struct {
	Curve string
	D     *big.Int
}

// PublicKey holds the affine coordinates of Q = d*G. The point at infinity
// is never a valid public key.
type PublicKey struct {
	Curve string
	X     *big.Int
	Y     *big.Int
}

// Signature is an ECDSA signature. R is the x-coordinate of the ephemeral
// point k*G, S is the signature proof.
type Signature struct {
	R *big.Int
	S *big.Int
}

// KeyGenerator produces private keys and derives public keys on one curve.
type KeyGenerator interface {
	// GeneratePrivateKey returns a uniformly distributed scalar in [1, N).
	GeneratePrivateKey() (*PrivateKey, error)

	// PublicKey derives Q = d*G.
	PublicKey(priv *PrivateKey) (*PublicKey, error)
}

// Signer produces ECDSA signatures.
type Signer interface {
	// Sign hashes message with the curve digest and signs it.
	Sign(priv *PrivateKey, message []byte) (*Signature, error)

	// SignBatch signs every message independently, each with its own nonce.
	// The returned slice is index-aligned with messages.
	SignBatch(ctx context.Context, priv *PrivateKey, messages [][]byte) ([]*Signature, error)
}

// Verifier checks ECDSA signatures.
//
// A signature that does not check out is reported as (false, nil). An error
// means the verifier could not run at all, for instance because the curve
// parameters are invalid or the public key is not on the curve.
type Verifier interface {
	Verify(pub *PublicKey, sig *Signature, message []byte) (bool, error)
}
