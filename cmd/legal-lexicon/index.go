// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/legal-lexicon/internal/index"
	"github.com/pdiddy/legal-lexicon/internal/merge"
	"github.com/pdiddy/legal-lexicon/pkg/types"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Manage the SQLite term index (build, lookup, status, export)",
	Long: `Index keeps a queryable SQLite copy of the unified dictionary. Build
replaces the index contents from the dictionary file; lookup and export
read from it.`,
}

// --- build subcommand ---

var indexBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Rebuild the term index from the unified dictionary",
	RunE:  runIndexBuild,
}

func runIndexBuild(cmd *cobra.Command, args []string) error {
	path := stringFlag(cmd, "file", layout().UnifiedDictionaryPath())

	terms, err := merge.LoadDictionary(path)
	if err != nil {
		return err
	}

	store, err := index.NewStore(indexConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	run, err := store.Build(context.Background(), terms, path, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	logger.Infow("index built", "run", run.ID, "terms", run.Terms)
	return nil
}

// --- lookup subcommand ---

var indexLookupCmd = &cobra.Command{
	Use:   "lookup [query]",
	Short: "Find terms by key or translation text",
	Long: `Lookup matches the query against normalized term keys and translation
text. Use --exact to match the term key only, and --lang or --source-type
to keep only matching translations.`,
	RunE: runIndexLookup,
}

func runIndexLookup(cmd *cobra.Command, args []string) error {
	store, err := index.NewStore(indexConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	results, err := store.Lookup(context.Background(), lookupOptsFromFlags(cmd, args))
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatLookupOutput(cmd.OutOrStdout(), results, jsonOutput)
}

func formatLookupOutput(w io.Writer, results []types.TermRecord, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Fprintln(w, "No results found.")
		return nil
	}

	fmt.Fprintf(w, "%-10s  %-30s  %-8s  %s\n", "ID", "Term", "Examples", "Translations")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for _, r := range results {
		parts := make([]string, len(r.Translations))
		for i, tr := range r.Translations {
			parts[i] = tr.Lang + ":" + tr.Translation
		}
		fmt.Fprintf(w, "%-10s  %-30s  %-8d  %s\n",
			r.ID, truncate(r.Term, 30), len(r.Examples), truncate(strings.Join(parts, "; "), 60))
	}

	fmt.Fprintf(w, "\n%d results\n", len(results))
	return nil
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// --- status subcommand ---

var indexStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the most recent index build",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := index.NewStore(indexConfig(cmd))
		if err != nil {
			return err
		}
		defer store.Close()

		run, err := store.LastRun(context.Background())
		if errors.Is(err, sql.ErrNoRows) {
			fmt.Fprintln(cmd.OutOrStdout(), "Index has not been built.")
			return nil
		}
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "run:          %s\n", run.ID)
		fmt.Fprintf(w, "built:        %s\n", run.BuiltAt.Local().Format(time.DateTime))
		fmt.Fprintf(w, "source:       %s\n", run.SourcePath)
		fmt.Fprintf(w, "terms:        %d\n", run.Terms)
		fmt.Fprintf(w, "translations: %d\n", run.Translations)
		fmt.Fprintf(w, "examples:     %d\n", run.Examples)
		return nil
	},
}

// --- export subcommand ---

var indexExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the indexed dictionary to YAML or JSON",
	Long: `Export writes the indexed terms (or a filtered subset) to export.yaml or
export.json in the index directory. Supports the same filter flags as
lookup for partial exports.`,
	RunE: runIndexExport,
}

func runIndexExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	store, err := index.NewStore(indexConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	opts := lookupOptsFromFlags(cmd, args)

	var path string
	switch format {
	case "yaml", "":
		path, err = store.ExportYAML(context.Background(), opts)
	case "json":
		path, err = store.ExportJSON(context.Background(), opts)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
	return nil
}

// --- shared helpers ---

func indexConfig(cmd *cobra.Command) types.IndexConfig {
	cfg := layout().Index()
	cfg.IndexDir = stringFlag(cmd, "index-dir", cfg.IndexDir)
	if n, _ := cmd.Flags().GetInt("max-results"); n > 0 {
		cfg.MaxResults = n
	}
	return cfg
}

func lookupOptsFromFlags(cmd *cobra.Command, args []string) index.LookupOptions {
	queryText, _ := cmd.Flags().GetString("query")
	if queryText == "" && len(args) > 0 {
		queryText = strings.Join(args, " ")
	}

	exact, _ := cmd.Flags().GetBool("exact")
	lang, _ := cmd.Flags().GetString("lang")
	sourceType, _ := cmd.Flags().GetString("source-type")
	limit, _ := cmd.Flags().GetInt("limit")

	return index.LookupOptions{
		Query:      queryText,
		Exact:      exact,
		Lang:       lang,
		SourceType: sourceType,
		MaxResults: limit,
	}
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	indexCmd.PersistentFlags().String("index-dir", "", "index directory (default: <data-dir>/index)")
	indexCmd.PersistentFlags().Int("max-results", 20, "maximum number of lookup results")

	indexBuildCmd.Flags().String("file", "", "unified dictionary to index (default: <data-dir>/unified-dictionary.json)")

	for _, c := range []*cobra.Command{indexLookupCmd, indexExportCmd} {
		c.Flags().String("query", "", "term key or translation text to match")
		c.Flags().Bool("exact", false, "match the normalized term key only")
		c.Flags().String("lang", "", "keep only translations in this language (e.g. en-gb, fr-fr)")
		c.Flags().String("source-type", "", "keep only translations from this source type")
	}
	indexLookupCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	indexLookupCmd.Flags().Bool("json", false, "output results as JSON")

	indexExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	// Wire subcommands.
	indexCmd.AddCommand(indexBuildCmd)
	indexCmd.AddCommand(indexLookupCmd)
	indexCmd.AddCommand(indexStatusCmd)
	indexCmd.AddCommand(indexExportCmd)

	rootCmd.AddCommand(indexCmd)
}
