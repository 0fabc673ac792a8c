package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"hangman/internal/core/catalog"
)

func defaultsCmd() *cobra.Command {
	var difficulty, category string
	cmd := &cobra.Command{
		Use:   "defaults",
		Short: "List the built-in categories",
		Long:  `Lists every built-in category, with --difficulty only the words that difficulty would pick.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := catalog.Default()
			if err != nil {
				return err
			}
			cats := c.Categories()
			if category != "" {
				cat, ok := c.Category(category)
				if !ok {
					return fmt.Errorf("unknown category %q", category)
				}
				cats = []catalog.Category{cat}
			}

			var d catalog.Difficulty
			if difficulty != "" {
				if d, err = catalog.ParseDifficulty(difficulty); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			for _, cat := range cats {
				words := cat.Words
				if d != "" {
					words = c.Pick(words, d)
				}
				fmt.Fprintf(out, "%s (%s): %s\n", cat.Key, cat.Name, strings.Join(words, ", "))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "easy, medium or hard")
	cmd.Flags().StringVar(&category, "category", "", "only this category")
	return cmd
}
