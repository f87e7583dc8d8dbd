// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package paths

import (
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"sort"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Summary counts the files a rewrite touched.
type Summary struct {
	Checked int
	Updated []string
}

// Unchanged returns the number of files left as they were.
func (s Summary) Unchanged() int { return s.Checked - len(s.Updated) }

// Rewriter applies presets to the files under a project root.
type Rewriter struct {
	fs     afero.Fs
	root   string
	dryRun bool
	log    *zap.SugaredLogger
}

// NewRewriter returns a Rewriter over root on fs. With dryRun set, changed
// files are reported but not written.
func NewRewriter(fs afero.Fs, root string, dryRun bool, log *zap.SugaredLogger) *Rewriter {
	return &Rewriter{fs: fs, root: root, dryRun: dryRun, log: log}
}

// Files returns the files a preset applies to, sorted, without
// duplicates or excluded names.
func (rw *Rewriter) Files(p Preset) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	for _, pattern := range p.Patterns {
		matches, err := afero.Glob(rw.fs, filepath.Join(rw.root, pattern))
		if err != nil {
			return nil, fmt.Errorf("matching %s: %w", pattern, err)
		}
		for _, m := range matches {
			if seen[m] || slices.Contains(p.Exclude, filepath.Base(m)) {
				continue
			}
			if info, err := rw.fs.Stat(m); err != nil || info.IsDir() {
				continue
			}
			seen[m] = true
			files = append(files, m)
		}
	}
	sort.Strings(files)
	return files, nil
}

// RewriteFile applies p to one file and writes it back when the content
// changed. It reports whether the file changed.
func (rw *Rewriter) RewriteFile(p Preset, path string) (bool, error) {
	data, err := afero.ReadFile(rw.fs, path)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}
	updated := p.Rewrite(string(data))
	if updated == string(data) {
		return false, nil
	}
	if rw.dryRun {
		return true, nil
	}

	info, err := rw.fs.Stat(path)
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	if err := afero.WriteFile(rw.fs, path, []byte(updated), info.Mode().Perm()); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	return true, nil
}

// Run rewrites every file selected by p.
func (rw *Rewriter) Run(p Preset, w io.Writer) (Summary, error) {
	files, err := rw.Files(p)
	if err != nil {
		return Summary{}, err
	}

	var summary Summary
	for _, path := range files {
		changed, err := rw.RewriteFile(p, path)
		if err != nil {
			return summary, err
		}
		summary.Checked++
		rel, relErr := filepath.Rel(rw.root, path)
		if relErr != nil {
			rel = path
		}
		if changed {
			summary.Updated = append(summary.Updated, rel)
			fmt.Fprintf(w, "updated   %s\n", rel)
		} else {
			fmt.Fprintf(w, "unchanged %s\n", rel)
		}
	}
	rw.log.Debugw("path rewrite finished", "preset", p.Name, "checked", summary.Checked, "dry_run", rw.dryRun)

	fmt.Fprintf(w, "\nchecked: %d, updated: %d, unchanged: %d\n", summary.Checked, len(summary.Updated), summary.Unchanged())
	if rw.dryRun && len(summary.Updated) > 0 {
		fmt.Fprintf(w, "dry run: no files written\n")
	}
	return summary, nil
}
