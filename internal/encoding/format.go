package encoding

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/smallyu/go-ecdsa/pkg/ecc"
)

// Format selects a text rendering for keys and signatures.
type Format int

const (
	FormatHex Format = iota
	FormatOctal
	FormatDecimal
	FormatBase64
	FormatBase58
	FormatDER
	FormatPEM
)

var formatNames = map[Format]string{
	FormatHex:     "hex",
	FormatOctal:   "octal",
	FormatDecimal: "decimal",
	FormatBase64:  "base64",
	FormatBase58:  "base58",
	FormatDER:     "der",
	FormatPEM:     "pem",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("format(%d)", int(f))
}

// ParseFormat resolves a format name, ignoring case.
func ParseFormat(name string) (Format, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for f, fn := range formatNames {
		if fn == n {
			return f, nil
		}
	}
	return 0, ecc.NewError(ecc.ErrInvalidEncoding, fmt.Sprintf("encoding: unknown format %q", name))
}

// FormatNames lists the accepted format names.
func FormatNames() []string {
	names := make([]string, 0, len(formatNames))
	for f := FormatHex; f <= FormatPEM; f++ {
		names = append(names, formatNames[f])
	}
	return names
}

// Scalar renders a private key or other scalar. The byte-oriented formats use
// the fixed-width big-endian encoding of k; PEM uses the PRIVATE KEY label.
func (f Format) Scalar(k *big.Int, byteLen int) (string, error) {
	switch f {
	case FormatHex:
		return Hex(k), nil
	case FormatOctal:
		return Octal(k), nil
	case FormatDecimal:
		return Decimal(k), nil
	case FormatDER:
		return DERBase64(k)
	}

	b, err := Scalar(k, byteLen)
	if err != nil {
		return "", err
	}
	switch f {
	case FormatBase64:
		return Base64(b), nil
	case FormatBase58:
		return Base58(b), nil
	case FormatPEM:
		return PEM(PrivateKeyLabel, b), nil
	default:
		return "", ecc.NewError(ecc.ErrInvalidEncoding, fmt.Sprintf("encoding: unknown format %s", f))
	}
}

// Signature renders (r, s). The numeric formats print both components
// separated by a colon; DER and PEM carry the ASN.1 sequence.
func (f Format) Signature(sig *ecc.Signature, byteLen int) (string, error) {
	if sig == nil || sig.R == nil || sig.S == nil {
		return "", ecc.NewError(ecc.ErrInvalidSignature, "encoding: incomplete signature")
	}

	switch f {
	case FormatHex, FormatOctal, FormatDecimal:
		r, _ := f.Scalar(sig.R, byteLen)
		s, _ := f.Scalar(sig.S, byteLen)
		return r + ":" + s, nil
	case FormatDER:
		return DERBase64(sig.R, sig.S)
	case FormatPEM:
		der, err := Signature(sig)
		if err != nil {
			return "", err
		}
		return PEM("SIGNATURE", der), nil
	}

	r, err := Scalar(sig.R, byteLen)
	if err != nil {
		return "", err
	}
	s, err := Scalar(sig.S, byteLen)
	if err != nil {
		return "", err
	}
	compact := append(r, s...)

	if f == FormatBase58 {
		return Base58(compact), nil
	}
	if f == FormatBase64 {
		return Base64(compact), nil
	}
	return "", ecc.NewError(ecc.ErrInvalidEncoding, fmt.Sprintf("encoding: unknown format %s", f))
}
