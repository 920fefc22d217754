//go:build js && wasm

package main

import (
	"encoding/json"
	"fmt"
	"math/big"
	"syscall/js"

	"github.com/smallyu/go-ecdsa/internal/encoding"
	"github.com/smallyu/go-ecdsa/pkg/ecc"
	"github.com/smallyu/go-ecdsa/pkg/ecdsa"
)

const curveName = "secp256k1"

var scheme *ecdsa.Scheme

func main() {
	c := make(chan struct{})

	var err error
	scheme, err = ecdsa.New(curveName)
	if err != nil {
		fmt.Printf("failed to initialize %s: %v\n", curveName, err)
		return
	}

	fmt.Println("Go ECDSA WASM Initialized")

	js.Global().Set("GoECDSA", map[string]interface{}{
		"keygen":    js.FuncOf(KeyGen),
		"publicKey": js.FuncOf(PublicKey),
		"sign":      js.FuncOf(Sign),
		"verify":    js.FuncOf(Verify),
	})

	<-c
}

type keyPair struct {
	Private string `json:"private"`
	X       string `json:"x"`
	Y       string `json:"y"`
}

type signature struct {
	R string `json:"r"`
	S string `json:"s"`
}

// KeyGen draws a fresh key pair.
// Returns:
// JSON object {private, x, y} with hex values
func KeyGen(this js.Value, args []js.Value) interface{} {
	priv, err := scheme.GeneratePrivateKey()
	if err != nil {
		return fmt.Sprintf("error: keygen failed: %v", err)
	}
	return publicKeyResponse(priv)
}

// PublicKey derives the public key of a private scalar.
// Arguments:
// 0: private key (hex)
// Returns:
// JSON object {private, x, y}
func PublicKey(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (privateHex)"
	}

	priv, err := privateKey(args[0].String())
	if err != nil {
		return err.Error()
	}
	return publicKeyResponse(priv)
}

// Sign signs a UTF-8 message.
// Arguments:
// 0: private key (hex)
// 1: message
// Returns:
// JSON object {r, s}
func Sign(this js.Value, args []js.Value) interface{} {
	if len(args) != 2 {
		return "error: expected 2 arguments (privateHex, message)"
	}

	priv, err := privateKey(args[0].String())
	if err != nil {
		return err.Error()
	}

	sig, err := scheme.Sign(priv, []byte(args[1].String()))
	if err != nil {
		return fmt.Sprintf("error: sign failed: %v", err)
	}

	return toJSON(signature{R: encoding.Hex(sig.R), S: encoding.Hex(sig.S)})
}

// Verify checks a signature.
// Arguments:
// 0: JSON object {x, y}
// 1: JSON object {r, s}
// 2: message
// Returns:
// bool, or an error string when the check could not run
func Verify(this js.Value, args []js.Value) interface{} {
	if len(args) != 3 {
		return "error: expected 3 arguments (jsonPublicKey, jsonSignature, message)"
	}

	var kp keyPair
	if err := json.Unmarshal([]byte(args[0].String()), &kp); err != nil {
		return fmt.Sprintf("error: invalid public key json: %v", err)
	}
	var dto signature
	if err := json.Unmarshal([]byte(args[1].String()), &dto); err != nil {
		return fmt.Sprintf("error: invalid signature json: %v", err)
	}

	values, err := parseHex(kp.X, kp.Y, dto.R, dto.S)
	if err != nil {
		return err.Error()
	}

	pub := &ecc.PublicKey{Curve: curveName, X: values[0], Y: values[1]}
	sig := &ecc.Signature{R: values[2], S: values[3]}

	ok, err := scheme.Verify(pub, sig, []byte(args[2].String()))
	if err != nil {
		return fmt.Sprintf("error: verify failed: %v", err)
	}
	return ok
}

func privateKey(s string) (*ecc.PrivateKey, error) {
	values, err := parseHex(s)
	if err != nil {
		return nil, err
	}
	return &ecc.PrivateKey{Curve: curveName, D: values[0]}, nil
}

func publicKeyResponse(priv *ecc.PrivateKey) interface{} {
	pub, err := scheme.PublicKey(priv)
	if err != nil {
		return fmt.Sprintf("error: public key failed: %v", err)
	}

	return toJSON(keyPair{
		Private: encoding.Hex(priv.D),
		X:       encoding.Hex(pub.X),
		Y:       encoding.Hex(pub.Y),
	})
}

func parseHex(values ...string) ([]*big.Int, error) {
	out := make([]*big.Int, len(values))
	for i, v := range values {
		n, err := encoding.ParseHex(v)
		if err != nil {
			return nil, fmt.Errorf("error: invalid hex %q: %v", v, err)
		}
		out[i] = n
	}
	return out, nil
}

func toJSON(v interface{}) interface{} {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(b)
}
