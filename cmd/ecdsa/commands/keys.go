package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/smallyu/go-ecdsa/internal/encoding"
	"github.com/smallyu/go-ecdsa/pkg/ecc"
	"github.com/smallyu/go-ecdsa/pkg/ecdsa"
)

func (c *cli) newKeygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate a private key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scheme, err := c.scheme()
			if err != nil {
				return err
			}
			f, err := c.format()
			if err != nil {
				return err
			}

			priv, err := scheme.GeneratePrivateKey()
			if err != nil {
				return err
			}
			text, err := f.Scalar(priv.D, scheme.ByteLen())
			if err != nil {
				return err
			}

			fmt.Fprintln(out(cmd), text)
			return nil
		},
	}
}

func (c *cli) newPubkeyCmd() *cobra.Command {
	var privHex string

	cmd := &cobra.Command{
		Use:   "pubkey",
		Short: "Derive the public key of a private key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scheme, err := c.scheme()
			if err != nil {
				return err
			}
			priv, err := parsePrivateKey(scheme, privHex)
			if err != nil {
				return err
			}
			pub, err := scheme.PublicKey(priv)
			if err != nil {
				return err
			}
			return printPublicKey(out(cmd), scheme, pub)
		},
	}

	cmd.Flags().StringVar(&privHex, "private", "", "Private key in hexadecimal")
	cmd.MarkFlagRequired("private")
	return cmd
}

func parsePrivateKey(scheme *ecdsa.Scheme, s string) (*ecc.PrivateKey, error) {
	d, err := encoding.ParseHex(s)
	if err != nil {
		return nil, err
	}
	return &ecc.PrivateKey{Curve: scheme.Curve(), D: d}, nil
}

func printPublicKey(w io.Writer, scheme *ecdsa.Scheme, pub *ecc.PublicKey) error {
	compressed, err := scheme.MarshalPublicKey(pub, true)
	if err != nil {
		return err
	}
	uncompressed, err := scheme.MarshalPublicKey(pub, false)
	if err != nil {
		return err
	}
	forms := &encoding.PublicKeyForms{X: pub.X, Y: pub.Y, Compressed: compressed, Uncompressed: uncompressed}

	der, err := forms.DER()
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Public Key:")
	fmt.Fprintf(w, "%-17s%s\n", "Hexadecimal:", forms.Hex())
	fmt.Fprintf(w, "%-17s%s\n", "Compressed:", forms.CompressedHex())
	fmt.Fprintf(w, "%-17s%s\n", "Uncompressed:", forms.UncompressedHex())
	fmt.Fprintf(w, "%-17s%s\n", "Decimal:", forms.Decimal())
	fmt.Fprintf(w, "%-17s%s\n", "Octal:", forms.Octal())
	fmt.Fprintf(w, "%-17s%s\n", "Base64:", forms.Base64())
	fmt.Fprintf(w, "%-17s%s\n", "Base58:", forms.Base58())
	fmt.Fprintf(w, "%-17s%s\n", "DER:", der)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Public Point:")
	fmt.Fprintln(w, "{")
	fmt.Fprintf(w, "    %-13s%s\n", "X:", encoding.Hex(pub.X))
	fmt.Fprintf(w, "    %-13s%s\n", "Y:", encoding.Hex(pub.Y))
	fmt.Fprintln(w, "}")
	fmt.Fprintln(w)
	fmt.Fprint(w, "PEM:\n"+forms.PEM())
	return nil
}
