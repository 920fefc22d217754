package sign

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// State is a step of the signing state machine.
//
//	Start → ParamsValidated → Hashed → NonceGenerated → PointComputed
//	PointComputed → Signed | Retry
//	Retry → NonceGenerated
type State int

const (
	StateStart State = iota
	StateParamsValidated
	StateHashed
	StateNonceGenerated
	StatePointComputed
	StateRetry
	StateSigned
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "Start"
	case StateParamsValidated:
		return "ParamsValidated"
	case StateHashed:
		return "Hashed"
	case StateNonceGenerated:
		return "NonceGenerated"
	case StatePointComputed:
		return "PointComputed"
	case StateRetry:
		return "Retry"
	case StateSigned:
		return "Signed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// DefaultMaxNonceAttempts bounds the number of nonces drawn for a single
// signature.
const DefaultMaxNonceAttempts = 16

// Options configures signing.
type Options struct {
	// Rand is the entropy source for nonces. Nil means crypto/rand.Reader.
	Rand io.Reader

	// Logger receives state transitions and retries at debug level. Nil
	// discards them.
	Logger *logrus.Entry

	// MaxNonceAttempts caps the nonces drawn before failing with
	// ecc.ErrEntropyExhausted. Zero means DefaultMaxNonceAttempts.
	MaxNonceAttempts int

	// MaxDrawAttempts caps the rejection sampling of each nonce. Zero means
	// random.DefaultMaxAttempts.
	MaxDrawAttempts int

	// RejectZeroS retries with a fresh nonce when s = 0 instead of returning
	// the degenerate signature.
	RejectZeroS bool
}

func (o Options) maxNonceAttempts() int {
	if o.MaxNonceAttempts > 0 {
		return o.MaxNonceAttempts
	}
	return DefaultMaxNonceAttempts
}
