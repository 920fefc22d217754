package benchmark

import (
	"context"
	"fmt"
	"math/big"
	"testing"

	"github.com/smallyu/go-ecdsa/internal/crypto/curves"
	"github.com/smallyu/go-ecdsa/internal/crypto/validator"
	"github.com/smallyu/go-ecdsa/internal/logging"
	"github.com/smallyu/go-ecdsa/pkg/ecc"
	"github.com/smallyu/go-ecdsa/pkg/ecdsa"
)

var message = []byte("Hello World!")

// setup returns a scheme and a key pair for benchmarking.
func setup(b *testing.B) (*ecdsa.Scheme, *ecc.PrivateKey, *ecc.PublicKey) {
	b.Helper()
	scheme, err := ecdsa.New("secp256k1")
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	priv, err := scheme.GeneratePrivateKey()
	if err != nil {
		b.Fatalf("GeneratePrivateKey failed: %v", err)
	}
	pub, err := scheme.PublicKey(priv)
	if err != nil {
		b.Fatalf("PublicKey failed: %v", err)
	}
	return scheme, priv, pub
}

func BenchmarkScalarBaseMult(b *testing.B) {
	g := curves.NewSecp256k1()
	k, _ := new(big.Int).SetString("C6047F9441ED7D6D3045406E95C07CD85C778E4B8CEF3CA7ABAC09B95C709EE5", 16)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.ScalarBaseMult(k)
	}
}

func BenchmarkValidate(b *testing.B) {
	params := curves.Secp256k1.Params()
	v := validator.New(logging.Discard())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := v.Validate(params); err != nil {
			b.Fatalf("Validate failed: %v", err)
		}
	}
}

func BenchmarkSign(b *testing.B) {
	scheme, priv, _ := setup(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := scheme.Sign(priv, message); err != nil {
			b.Fatalf("Sign failed: %v", err)
		}
	}
}

func BenchmarkVerify(b *testing.B) {
	scheme, priv, pub := setup(b)
	sig, err := scheme.Sign(priv, message)
	if err != nil {
		b.Fatalf("Sign failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ok, err := scheme.Verify(pub, sig, message)
		if err != nil || !ok {
			b.Fatalf("Verify failed: ok=%t err=%v", ok, err)
		}
	}
}

func BenchmarkSignBatch(b *testing.B) {
	for _, n := range []int{4, 16} {
		b.Run(fmt.Sprintf("N=%d", n), func(b *testing.B) {
			scheme, priv, _ := setup(b)
			messages := make([][]byte, n)
			for i := range messages {
				messages[i] = []byte(fmt.Sprintf("message %d", i))
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := scheme.SignBatch(context.Background(), priv, messages); err != nil {
					b.Fatalf("SignBatch failed: %v", err)
				}
			}
		})
	}
}
