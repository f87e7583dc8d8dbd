// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/pdiddy/legal-lexicon/internal/paths"
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Rewrite data file references after a directory reorganization",
	Long: `Paths rewrites quoted data file paths inside project scripts and pages
using a named rule preset. Files are written only when their content
changes; --dry-run reports what would change without writing.

Presets: ` + strings.Join(paths.Names(), ", "),
	RunE: runPaths,
}

func runPaths(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("preset")
	root, _ := cmd.Flags().GetString("root")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	if name == "" {
		return fmt.Errorf("--preset required: one of %s", strings.Join(paths.Names(), ", "))
	}
	preset, err := paths.Lookup(name)
	if err != nil {
		return err
	}

	_, err = paths.NewRewriter(afero.NewOsFs(), root, dryRun, logger).Run(preset, cmd.OutOrStdout())
	return err
}

func init() {
	pathsCmd.Flags().String("preset", "", "rule preset: "+strings.Join(paths.Names(), " or "))
	pathsCmd.Flags().String("root", ".", "project root the file patterns are relative to")
	pathsCmd.Flags().Bool("dry-run", false, "report changes without writing files")

	rootCmd.AddCommand(pathsCmd)
}
