// Package digest maps a curve bit size to the hash function used to turn a
// message into the integer z of the ECDSA equations.
package digest

import (
	"crypto"
	"crypto/sha1"
	"crypto/sha512"
	"fmt"
	"hash"
	"math/big"

	"github.com/minio/sha256-simd"

	"github.com/smallyu/go-ecdsa/pkg/ecc"
)

// Algorithm returns the hash function for a curve of the given bit size:
// 192 → SHA-1, 256 → SHA-256, 384 → SHA-384, 512 → SHA-512. Every other size,
// 224 included, is unsupported.
func Algorithm(bitSize int) (crypto.Hash, error) {
	switch bitSize {
	case 192:
		return crypto.SHA1, nil
	case 256:
		return crypto.SHA256, nil
	case 384:
		return crypto.SHA384, nil
	case 512:
		return crypto.SHA512, nil
	default:
		return 0, ecc.NewError(ecc.ErrUnsupportedCurveBitSize,
			fmt.Sprintf("digest: no hash algorithm for %d-bit curves", bitSize))
	}
}

// New returns a fresh hash.Hash for the given bit size.
func New(bitSize int) (hash.Hash, error) {
	alg, err := Algorithm(bitSize)
	if err != nil {
		return nil, err
	}

	switch alg {
	case crypto.SHA1:
		return sha1.New(), nil
	case crypto.SHA256:
		return sha256.New(), nil
	case crypto.SHA384:
		return sha512.New384(), nil
	default:
		return sha512.New(), nil
	}
}

// Size returns the output length in bytes of the hash for the bit size.
func Size(bitSize int) (int, error) {
	alg, err := Algorithm(bitSize)
	if err != nil {
		return 0, err
	}
	return alg.Size(), nil
}

// Sum hashes msg with the algorithm for the bit size.
func Sum(bitSize int, msg []byte) ([]byte, error) {
	h, err := New(bitSize)
	if err != nil {
		return nil, err
	}
	h.Write(msg)
	return h.Sum(nil), nil
}

// Int hashes msg and reads the digest as a big-endian unsigned integer. The
// value is neither truncated nor reduced modulo the curve order, so it may
// exceed N.
func Int(bitSize int, msg []byte) (*big.Int, error) {
	sum, err := Sum(bitSize, msg)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(sum), nil
}
