package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"hangman/internal/core/wordbank"
)

func extractCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "extract [text...]",
		Short: "Print the words extracted from text",
		Long:  `Prints one word per line in first-occurrence order. --json prints the full analysis.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := input(cmd, args)
			if err != nil {
				return err
			}
			a := wordbank.Analyze(raw)
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(a)
			}
			for _, w := range a.Words {
				fmt.Fprintln(out, w)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print shape, tokens, rejected tokens and words as JSON")
	return cmd
}

func classifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify [text...]",
		Short: "Print the input shape",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := input(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), wordbank.Classify(raw))
			return nil
		},
	}
}

func validateCmd() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "validate --name NAME [text...]",
		Short: "Check a bank name and text the way saving a bank does",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := input(cmd, args)
			if err != nil {
				return err
			}
			words := wordbank.Extract(raw)
			if err := wordbank.ValidateContainer(name, words); err != nil {
				var ve *wordbank.ValidationError
				if errors.As(err, &ve) {
					return fmt.Errorf("invalid %s: %w", ve.Field(), err)
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %q with %d words\n", wordbank.TrimName(name), words.Len())
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "word bank name")
	return cmd
}
