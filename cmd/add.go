package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add A B",
	Short: "Print add_numbers(A, B)",
	Long: `Adds two signed 32-bit integers. Overflow wraps around, so
"arith add 2147483647 1" prints -2147483648.

Negative operands look like flags; put -- before them.`,
	Example: `  arith add 2 3
  arith add --impl cgo -- -1 1`,
	Args: cobra.ExactArgs(2),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	a, err := parseInt32("A", args[0])
	if err != nil {
		return err
	}
	b, err := parseInt32("B", args[1])
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

	sum := im.add(a, b)
	logger.Debug("add_numbers", zap.Int32("a", a), zap.Int32("b", b), zap.Int32("sum", sum), zap.String("impl", name))
	fmt.Fprintln(cmd.OutOrStdout(), sum)
	return nil
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringP("impl", "i", "go", "Implementation to call: go or cgo")
}
