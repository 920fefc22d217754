package commands

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/smallyu/go-ecdsa/internal/encoding"
	"github.com/smallyu/go-ecdsa/pkg/ecc"
)

func (c *cli) newSignCmd() *cobra.Command {
	var privHex string

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a message",
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
			priv, err := parsePrivateKey(scheme, privHex)
			if err != nil {
				return err
			}

			sig, err := scheme.Sign(priv, []byte(c.config.Message))
			if err != nil {
				return err
			}

			text, err := f.Signature(sig, scheme.ByteLen())
			if err != nil {
				return err
			}
			w := out(cmd)
			fmt.Fprintf(w, "%-17s%s\n", "Message to Sign:", c.config.Message)
			fmt.Fprintln(w, "Signature:")
			fmt.Fprintln(w, "{")
			fmt.Fprintf(w, "    %-13s%s\n", "R:", encoding.Hex(sig.R))
			fmt.Fprintf(w, "    %-13s%s\n", "s:", encoding.Hex(sig.S))
			fmt.Fprintln(w, "}")
			fmt.Fprintf(w, "%-17s%s\n", f.String()+":", text)
			return nil
		},
	}

	cmd.Flags().StringVar(&privHex, "private", "", "Private key in hexadecimal")
	cmd.Flags().String("message", c.config.Message, "Message to sign")
	cmd.MarkFlagRequired("private")
	return cmd
}

func (c *cli) newVerifyCmd() *cobra.Command {
	var x, y, r, s string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify the signature of a message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scheme, err := c.scheme()
			if err != nil {
				return err
			}

			values := make([]*big.Int, 0, 4)
			for _, in := range []string{x, y, r, s} {
				v, err := encoding.ParseHex(in)
				if err != nil {
					return err
				}
				values = append(values, v)
			}

			pub := &ecc.PublicKey{Curve: scheme.Curve(), X: values[0], Y: values[1]}
			sig := &ecc.Signature{R: values[2], S: values[3]}

			ok, err := scheme.Verify(pub, sig, []byte(c.config.Message))
			if err != nil {
				return err
			}
			fmt.Fprintf(out(cmd), "Signature validation: %t\n", ok)
			return nil
		},
	}

	cmd.Flags().StringVar(&x, "x", "", "Public key X in hexadecimal")
	cmd.Flags().StringVar(&y, "y", "", "Public key Y in hexadecimal")
	cmd.Flags().StringVar(&r, "r", "", "Signature R in hexadecimal")
	cmd.Flags().StringVar(&s, "s", "", "Signature s in hexadecimal")
	cmd.Flags().String("message", c.config.Message, "Signed message")
	for _, name := range []string{"x", "y", "r", "s"} {
		cmd.MarkFlagRequired(name)
	}
	return cmd
}
