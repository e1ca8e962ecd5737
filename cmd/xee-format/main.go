// Command xee-format renders a decimal integer according to a picture
// string and prints the result.
package main

import (
	"fmt"
	"math/big"
	"os"

	"github.com/spf13/cobra"

	format "github.com/Paligo/xee-format"
)

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "xee-format PICTURE INTEGER",
		Short: "Format an integer according to a picture string",
		Long: `Format an integer according to a picture string.

The picture string controls digit grouping, zero padding, and the digit
script of the output: '#' marks an optional digit, a decimal digit marks a
mandatory digit, and any character that is neither a letter nor a number
separates groups.`,
		Example: `  xee-format 0,000 1234567
  xee-format 00000 -42
  xee-format ١ 15`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			z, ok := new(big.Int).SetString(args[1], 10)
			if !ok {
				return fmt.Errorf("not a decimal integer: %q", args[1])
			}
			s, err := format.FormatInt(z, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
}
