package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"fun-numbers/internal/calculator"
)

func newCalcCmd() *cobra.Command {
	var (
		ops      []string
		operand1 float64
		operand2 float64
	)

	cmd := &cobra.Command{
		Use:   "calc <phrase>",
		Short: "Evaluate a phrase the way the webhook does",
		Example: `  fun-numbers calc what is 3 plus 4 times 2
  fun-numbers calc --op square-root --a 81 "square root of 81"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			phrase := strings.Join(args, " ")
			result := calculator.Calculate(calculator.Request{
				Phrase:     phrase,
				Operations: calculator.ParseOperations(ops),
				Operand1:   operand1,
				Operand2:   operand2,
			})

			fmt.Fprintln(cmd.OutOrStdout(), result.Text(phrase))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&ops, "op", nil, "recognised operation entities; exactly one selects the single-operation path")
	cmd.Flags().Float64Var(&operand1, "a", 0, "first operand")
	cmd.Flags().Float64Var(&operand2, "b", 0, "second operand")

	return cmd
}
