package main

import (
	"fmt"
	"strconv"

	textutils "github.com/baditaflorin/go_text_utils"
	"github.com/spf13/cobra"
)

func newFibCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fib <n>",
		Short: "Compute the nth Fibonacci number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseN(args[0])
			if err != nil {
				return err
			}
			result, err := textutils.Fibonacci(n)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}
}

func newFactCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fact <n>",
		Short: "Compute n factorial",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseN(args[0])
			if err != nil {
				return err
			}
			result, err := textutils.Factorial(n)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}
}

func newPrimeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "prime <n>",
		Short: "Check whether n is prime",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseN(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), textutils.IsPrime(n))
			return nil
		},
	}
}

func newSeqCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seq <n>",
		Short: "Print a table of Fibonacci, factorial and primality for 0..n",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseN(args[0])
			if err != nil {
				return err
			}
			if n < 0 {
				return fmt.Errorf("n must be non-negative, got %d", n)
			}

			rows := make([][]string, 0, n+1)
			for i := 0; i <= n; i++ {
				fib, err := textutils.Fibonacci(i)
				if err != nil {
					return err
				}
				fact, err := textutils.Factorial(i)
				if err != nil {
					return err
				}
				rows = append(rows, []string{
					strconv.Itoa(i),
					strconv.Itoa(fib),
					strconv.Itoa(fact),
					strconv.FormatBool(textutils.IsPrime(i)),
				})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"n", "fibonacci", "factorial", "prime"},
				rows,
				[]columnAlignment{alignRight, alignRight, alignRight, alignLeft},
			))
			return nil
		},
	}
}

func parseN(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q", arg)
	}
	return n, nil
}
