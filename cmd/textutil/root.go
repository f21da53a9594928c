package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "textutil",
		Short:         "Text normalization and elementary math utilities",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newSnakeCommand(),
		newCamelCommand(),
		newUnpunctCommand(),
		newPalindromeCommand(),
		newFibCommand(),
		newFactCommand(),
		newPrimeCommand(),
		newSeqCommand(),
	)

	return root
}
