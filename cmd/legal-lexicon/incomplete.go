// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/legal-lexicon/internal/incomplete"
)

var incompleteCmd = &cobra.Command{
	Use:   "incomplete",
	Short: "Manage incomplete sentence translations (list, apply, analyze)",
	Long: `Incomplete drives the manual translation workflow for sentence pairs
flagged as incomplete, and analyzes paragraph-level books for truncated
translations.`,
}

var incompleteListCmd = &cobra.Command{
	Use:   "list",
	Short: "Write the incomplete sentences to INCOMPLETE-TRANSLATIONS.json",
	Long: `List selects every incomplete sentence pair and writes it with an empty
en-translated field for a translator to fill in.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := incomplete.New(layout().Incomplete(), logger).List(cmd.OutOrStdout())
		return err
	},
}

var incompleteApplyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply manual translations back to the sentences file",
	Long: `Apply backs up the sentences file, then copies every non-blank
en-translated value from INCOMPLETE-TRANSLATIONS.json onto the matching
sentence and marks it complete.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := incomplete.New(layout().Incomplete(), logger).Apply(cmd.OutOrStdout())
		return err
	},
}

var incompleteAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Report truncated paragraph translations in the civil procedure books",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := incomplete.New(layout().Incomplete(), logger).Analyze(cmd.OutOrStdout())
		return err
	},
}

func init() {
	incompleteCmd.AddCommand(incompleteListCmd)
	incompleteCmd.AddCommand(incompleteApplyCmd)
	incompleteCmd.AddCommand(incompleteAnalyzeCmd)

	rootCmd.AddCommand(incompleteCmd)
}
