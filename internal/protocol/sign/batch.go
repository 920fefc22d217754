package sign

import (
	"context"
	"math/big"

	"golang.org/x/sync/errgroup"

	"github.com/smallyu/go-ecdsa/internal/crypto/curves"
	"github.com/smallyu/go-ecdsa/pkg/ecc"
)

// SignBatch signs every message with the same key, one goroutine per
// message. Each signature runs its own state machine and draws its own
// nonce. The first failure cancels the remaining work; results keep the
// order of messages.
//
// opts.Rand is read from several goroutines at once and must be safe for
// concurrent use.
func SignBatch(ctx context.Context, params *curves.Params, key *big.Int, messages [][]byte, opts Options) ([]*ecc.Signature, error) {
	if params == nil {
		return nil, ecc.NewError(ecc.ErrUninitializedCurve, "sign: no curve parameters")
	}
	if len(messages) == 0 {
		return nil, nil
	}

	sigs := make([]*ecc.Signature, len(messages))
	g, ctx := errgroup.WithContext(ctx)

	for i, msg := range messages {
		i, msg := i, msg
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sig, err := Sign(params.Copy(), key, msg, opts)
			if err != nil {
				return err
			}
			sigs[i] = sig
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sigs, nil
}
