// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/legal-lexicon/internal/sentences"
)

var sentencesCmd = &cobra.Command{
	Use:   "sentences",
	Short: "Split civil procedure paragraphs into sentence pairs",
	Long: `Sentences reads the paragraph-level civil procedure books, splits each
paragraph into Dutch and English sentences, pairs them by position, flags
incomplete translations and writes NL-EN-civil-procedure-sentences-all.json
with a completion report.`,
	RunE: runSentences,
}

func runSentences(cmd *cobra.Command, args []string) error {
	cfg := layout().Sentences()
	cfg.OutputPath = stringFlag(cmd, "output", cfg.OutputPath)

	_, err := sentences.NewExtractor(cfg, logger).Run(cmd.OutOrStdout())
	return err
}

func init() {
	sentencesCmd.Flags().String("output", "", "output path (default: sentences-all file in the civil procedure directory)")

	rootCmd.AddCommand(sentencesCmd)
}
