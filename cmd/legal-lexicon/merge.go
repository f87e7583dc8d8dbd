// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/legal-lexicon/internal/merge"
)

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge glossaries, dictionaries and examples into the unified dictionary",
	Long: `Merge reads the civil procedure glossary, the legal dictionary, the legal
glossary and the example sentence collection from the data directory,
aggregates them into unique terms, removes duplicate translations, attaches
examples and writes unified-dictionary.json. Missing sources are skipped
with a warning; malformed sources abort the run without writing output.`,
	RunE: runMerge,
}

func runMerge(cmd *cobra.Command, args []string) error {
	cfg := layout().Merge()
	cfg.OutputPath = stringFlag(cmd, "output", cfg.OutputPath)

	_, err := merge.NewPipeline(cfg, logger).Run(cmd.OutOrStdout())
	return err
}

var dedupeCmd = &cobra.Command{
	Use:   "dedupe",
	Short: "Remove duplicate translations from an existing unified dictionary",
	Long: `Dedupe re-applies translation deduplication to the unified dictionary
in place and reports every term whose translation count changed.`,
	RunE: runDedupe,
}

func runDedupe(cmd *cobra.Command, args []string) error {
	path := stringFlag(cmd, "file", layout().UnifiedDictionaryPath())
	_, err := merge.DedupeFile(path, cmd.OutOrStdout())
	return err
}

var importFrCmd = &cobra.Command{
	Use:   "import-fr",
	Short: "Add FR-FR dictionary entries to the unified dictionary",
	Long: `Import-fr reads FR-FR-dictionary.json and adds each entry as a fr-fr
translation of the matching term, creating new terms for unknown keys.
The updated dictionary is sorted and written back in place.`,
	RunE: runImportFr,
}

func runImportFr(cmd *cobra.Command, args []string) error {
	l := layout()
	dictPath := stringFlag(cmd, "file", l.UnifiedDictionaryPath())
	frenchPath := stringFlag(cmd, "french", l.FrenchDictionaryPath())

	_, err := merge.ImportFrench(dictPath, frenchPath, cmd.OutOrStdout())
	return err
}

func init() {
	mergeCmd.Flags().String("output", "", "output path (default: <data-dir>/unified-dictionary.json)")
	dedupeCmd.Flags().String("file", "", "unified dictionary to rewrite (default: <data-dir>/unified-dictionary.json)")
	importFrCmd.Flags().String("file", "", "unified dictionary to update (default: <data-dir>/unified-dictionary.json)")
	importFrCmd.Flags().String("french", "", "FR-FR dictionary (default: <data-dir>/dictionaries/FR-FR-dictionary.json)")

	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(dedupeCmd)
	rootCmd.AddCommand(importFrCmd)
}
