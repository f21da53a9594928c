package main

import (
	"fmt"
	"os"

	textutils "github.com/baditaflorin/go_text_utils"
	"github.com/baditaflorin/go_text_utils/pkg/palindrome"
	"github.com/baditaflorin/l"
	"github.com/spf13/cobra"
)

func newSnakeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "snake <text>",
		Short: "Convert text to snake_case",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), textutils.ToSnakeCase(args[0]))
			return nil
		},
	}
}

func newCamelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "camel <text>",
		Short: "Convert text to camelCase",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), textutils.ToCamelCase(args[0]))
			return nil
		},
	}
}

func newUnpunctCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unpunct <text>",
		Short: "Remove ASCII punctuation from text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), textutils.RemovePunctuation(args[0]))
			return nil
		},
	}
}

func newPalindromeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "palindrome <text>",
		Short: "Check whether text is a palindrome (use \"-\" to read stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] != "-" {
				fmt.Fprintln(cmd.OutOrStdout(), textutils.IsPalindrome(args[0]))
				return nil
			}

			logger, err := newStderrLogger()
			if err != nil {
				return err
			}
			defer logger.Close()

			checker, err := palindrome.New(palindrome.WithLogger(logger))
			if err != nil {
				return err
			}

			result, err := checker.CheckReader(cmd.Context(), cmd.InOrStdin())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Match)
			return nil
		},
	}
}

// newStderrLogger builds a synchronous logger writing to stderr so command
// output on stdout stays clean.
func newStderrLogger() (l.Logger, error) {
	return l.NewStandardFactory().CreateLogger(l.Config{
		Output:     os.Stderr,
		JsonFormat: false,
		AsyncWrite: false,
	})
}
