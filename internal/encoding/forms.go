package encoding

import (
	"encoding/hex"
	"math/big"
	"strings"

	"github.com/smallyu/go-ecdsa/internal/crypto/curves"
	"github.com/smallyu/go-ecdsa/pkg/ecc"
)

// PublicKeyForms holds a public key in every supported representation.
type PublicKeyForms struct {
	X, Y         *big.Int
	Compressed   []byte
	Uncompressed []byte
}

// NewPublicKeyForms encodes pub for the curve described by params.
func NewPublicKeyForms(params *curves.Params, pub curves.Point) (*PublicKeyForms, error) {
	if params == nil {
		return nil, ecc.NewError(ecc.ErrUninitializedCurve, "encoding: no curve parameters")
	}
	x, y, ok := pub.Coords()
	if !ok {
		return nil, ecc.NewError(ecc.ErrInvalidPublicKey, "encoding: public key is the point at infinity")
	}

	n := params.ByteLen()
	compressed, err := Compressed(pub, n)
	if err != nil {
		return nil, err
	}
	uncompressed, err := Uncompressed(pub, n)
	if err != nil {
		return nil, err
	}

	return &PublicKeyForms{
		X:            x,
		Y:            y,
		Compressed:   compressed,
		Uncompressed: uncompressed,
	}, nil
}

// Hex concatenates the hexadecimal X and Y, each without leading zeros.
func (f *PublicKeyForms) Hex() string {
	return Hex(f.X) + Hex(f.Y)
}

// Octal concatenates the octal X and Y.
func (f *PublicKeyForms) Octal() string {
	return Octal(f.X) + Octal(f.Y)
}

// Decimal concatenates the decimal X and Y.
func (f *PublicKeyForms) Decimal() string {
	return Decimal(f.X) + Decimal(f.Y)
}

// CompressedHex is the upper-case hex of the compressed encoding.
func (f *PublicKeyForms) CompressedHex() string {
	return bytesHex(f.Compressed)
}

// UncompressedHex is the upper-case hex of the uncompressed encoding.
func (f *PublicKeyForms) UncompressedHex() string {
	return bytesHex(f.Uncompressed)
}

// Base64 is the Base64 of the uncompressed encoding.
func (f *PublicKeyForms) Base64() string {
	return Base64(f.Uncompressed)
}

// Base58 is the Base58 of the compressed encoding.
func (f *PublicKeyForms) Base58() string {
	return Base58(f.Compressed)
}

// DER is the Base64 of the SEQUENCE { X, Y }.
func (f *PublicKeyForms) DER() (string, error) {
	return DERBase64(f.X, f.Y)
}

// PEM wraps the uncompressed encoding in a PUBLIC KEY block.
func (f *PublicKeyForms) PEM() string {
	return PEM(PublicKeyLabel, f.Uncompressed)
}

// Render picks the representation matching format.
func (f *PublicKeyForms) Render(format Format) (string, error) {
	switch format {
	case FormatHex:
		return f.UncompressedHex(), nil
	case FormatOctal:
		return f.Octal(), nil
	case FormatDecimal:
		return f.Decimal(), nil
	case FormatBase64:
		return f.Base64(), nil
	case FormatBase58:
		return f.Base58(), nil
	case FormatDER:
		return f.DER()
	case FormatPEM:
		return f.PEM(), nil
	default:
		return "", ecc.NewError(ecc.ErrInvalidEncoding, "encoding: unknown format "+format.String())
	}
}

func bytesHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}
