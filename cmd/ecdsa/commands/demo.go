package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smallyu/go-ecdsa/internal/encoding"
)

// newDemoCmd runs the full flow: generate a private key, derive its public
// key, sign the message and verify the signature.
func (c *cli) newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Generate a key, sign a message and verify the signature",
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
			w := out(cmd)

			priv, err := scheme.GeneratePrivateKey()
			if err != nil {
				return err
			}
			privText, err := f.Scalar(priv.D, scheme.ByteLen())
			if err != nil {
				return err
			}
			fmt.Fprintln(w, "Private Key:")
			fmt.Fprintf(w, "%-17s%s\n", f.String()+":", privText)
			fmt.Fprintln(w)

			pub, err := scheme.PublicKey(priv)
			if err != nil {
				return err
			}
			if err := printPublicKey(w, scheme, pub); err != nil {
				return err
			}
			fmt.Fprintln(w)

			message := []byte(c.config.Message)
			sig, err := scheme.Sign(priv, message)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%-17s%s\n", "Message to Sign:", c.config.Message)
			fmt.Fprintln(w, "Signature:")
			fmt.Fprintln(w, "{")
			fmt.Fprintf(w, "    %-13s%s\n", "R:", encoding.Hex(sig.R))
			fmt.Fprintf(w, "    %-13s%s\n", "s:", encoding.Hex(sig.S))
			fmt.Fprintln(w, "}")

			ok, err := scheme.Verify(pub, sig, message)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "Signature validation: %t\n", ok)
			return nil
		},
	}

	cmd.Flags().String("message", c.config.Message, "Message to sign")
	return cmd
}
