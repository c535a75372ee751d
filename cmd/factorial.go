package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// factorialCmd represents the factorial command
var factorialCmd = &cobra.Command{
	Use:   "factorial N",
	Short: "Print factorial(N)",
	Long: `Computes N! for an unsigned 32-bit N as an unsigned 64-bit value.
Results are exact up to N=20 and wrap modulo 2^64 beyond that.`,
	Args: cobra.ExactArgs(1),
	RunE: runFactorial,
}

func runFactorial(cmd *cobra.Command, args []string) error {
	n, err := parseUint32("N", args[0])
	if err != nil {
		return err
	}

	name, err := cmd.Flags().GetString("impl")
	if err != nil {
		return fmt.Errorf("failed to get impl: %w", err)
	}
	im, err := lookupImpl(name)
	if err != nil {
		return err
	}

	if n > 20 {
		logger.Debug("factorial result wraps modulo 2^64", zap.Uint32("n", n))
	}
	fmt.Fprintln(cmd.OutOrStdout(), im.factorial(n))
	return nil
}

func init() {
	rootCmd.AddCommand(factorialCmd)
	factorialCmd.Flags().StringP("impl", "i", "go", "Implementation to call: go or cgo")
}
