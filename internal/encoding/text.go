package encoding

import (
	"encoding/base64"
	"encoding/pem"
	"fmt"
	"math/big"
	"strings"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"

	"github.com/smallyu/go-ecdsa/pkg/ecc"
)

// PEM block types.
const (
	PrivateKeyLabel = "PRIVATE KEY"
	PublicKeyLabel  = "PUBLIC KEY"
)

// Hex returns x in upper-case hexadecimal without prefix or leading zeros.
func Hex(x *big.Int) string {
	return strings.ToUpper(x.Text(16))
}

// Octal returns x in octal without prefix or leading zeros.
func Octal(x *big.Int) string {
	return x.Text(8)
}

// Decimal returns x in decimal.
func Decimal(x *big.Int) string {
	return x.Text(10)
}

// ParseHex reads a hexadecimal integer, with or without a 0x prefix.
func ParseHex(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	v, ok := new(big.Int).SetString(s, 16)
	if !ok || v.Sign() < 0 {
		return nil, ecc.NewError(ecc.ErrInvalidEncoding, fmt.Sprintf("encoding: %q is not a hexadecimal integer", s))
	}
	return v, nil
}

// Base64 returns the standard, padded Base64 text of b.
func Base64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// Base58 returns the Bitcoin-alphabet Base58 text of b.
func Base58(b []byte) string {
	return base58.Encode(b)
}

// ParseBase58 is the inverse of Base58.
func ParseBase58(s string) ([]byte, error) {
	b, err := base58.Decode(s)
	if err != nil {
		return nil, ecc.Error{Err: ecc.ErrInvalidEncoding, Description: fmt.Sprintf("encoding: invalid base58: %v", err)}
	}
	return b, nil
}

// DER encodes the values as an ASN.1 SEQUENCE of INTEGERs: one for a scalar,
// two for a point or a signature.
func DER(values ...*big.Int) ([]byte, error) {
	if len(values) == 0 {
		return nil, ecc.NewError(ecc.ErrInvalidEncoding, "encoding: nothing to encode")
	}
	for _, v := range values {
		if v == nil {
			return nil, ecc.NewError(ecc.ErrInvalidEncoding, "encoding: nil integer")
		}
	}

	var b cryptobyte.Builder
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		for _, v := range values {
			b.AddASN1BigInt(v)
		}
	})
	out, err := b.Bytes()
	if err != nil {
		return nil, fmt.Errorf("encoding: building DER: %w", err)
	}
	return out, nil
}

// ParseDER decodes a SEQUENCE of INTEGERs produced by DER.
func ParseDER(data []byte) ([]*big.Int, error) {
	var (
		input = cryptobyte.String(data)
		seq   cryptobyte.String
	)
	if !input.ReadASN1(&seq, asn1.SEQUENCE) || !input.Empty() {
		return nil, ecc.NewError(ecc.ErrInvalidEncoding, "encoding: malformed DER sequence")
	}

	var values []*big.Int
	for !seq.Empty() {
		v := new(big.Int)
		if !seq.ReadASN1Integer(v) {
			return nil, ecc.NewError(ecc.ErrInvalidEncoding, "encoding: malformed DER integer")
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return nil, ecc.NewError(ecc.ErrInvalidEncoding, "encoding: empty DER sequence")
	}
	return values, nil
}

// DERBase64 is the Base64 text of DER(values...).
func DERBase64(values ...*big.Int) (string, error) {
	der, err := DER(values...)
	if err != nil {
		return "", err
	}
	return Base64(der), nil
}

// PEM wraps b in a PEM block with the given label. Lines are 64 characters.
func PEM(label string, b []byte) string {
	return string(pem.EncodeToMemory(&pem.Block{Type: label, Bytes: b}))
}

// ParsePEM returns the label and contents of the first PEM block in data.
func ParsePEM(data []byte) (string, []byte, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return "", nil, ecc.NewError(ecc.ErrInvalidEncoding, "encoding: no PEM block found")
	}
	return block.Type, block.Bytes, nil
}

// Signature returns the DER encoding of (r, s).
func Signature(sig *ecc.Signature) ([]byte, error) {
	if sig == nil {
		return nil, ecc.NewError(ecc.ErrInvalidSignature, "encoding: nil signature")
	}
	return DER(sig.R, sig.S)
}

// ParseSignature is the inverse of Signature.
func ParseSignature(data []byte) (*ecc.Signature, error) {
	values, err := ParseDER(data)
	if err != nil {
		return nil, err
	}
	if len(values) != 2 {
		return nil, ecc.NewError(ecc.ErrInvalidSignature,
			fmt.Sprintf("encoding: signature needs 2 integers, got %d", len(values)))
	}
	return &ecc.Signature{R: values[0], S: values[1]}, nil
}
