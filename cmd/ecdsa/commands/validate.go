package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *cli) newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the parameters of the curve",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scheme, err := c.scheme()
			if err != nil {
				return err
			}
			if err := scheme.ValidateCurve(); err != nil {
				fmt.Fprintf(out(cmd), "Curve %s is invalid: %v\n", scheme.Curve(), err)
				return err
			}
			fmt.Fprintf(out(cmd), "Curve %s is valid\n", scheme.Curve())
			return nil
		},
	}
}
