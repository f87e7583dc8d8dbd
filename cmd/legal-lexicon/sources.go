// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/facebookgo/clock"
	"github.com/spf13/cobra"

	"github.com/pdiddy/legal-lexicon/internal/sources"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Convert the open legal sources research document to JSON metadata",
	Long: `Sources parses the numbered source sections of the research document
and writes one metadata record per source, classified by jurisdiction,
license and source type. Every source is marked for expert review.`,
	RunE: runSources,
}

func runSources(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	output, _ := cmd.Flags().GetString("output")

	_, err := sources.NewIngester(clock.New(), logger).Run(input, output, cmd.OutOrStdout())
	return err
}

func init() {
	sourcesCmd.Flags().String("input", sources.DefaultInput, "research document to parse")
	sourcesCmd.Flags().String("output", sources.DefaultOutput, "source metadata output path")

	rootCmd.AddCommand(sourcesCmd)
}
