// Package check compares a rendered document with the file already on disk,
// so builds can fail when a committed R2 class has gone stale.
package check

import (
	"bytes"
	"os"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/afero"
	"github.com/teranos/r2gen/emit"
	"github.com/teranos/r2gen/errors"
)

// Result holds the outcome of comparing one document.
type Result struct {
	Path     string `json:"path" yaml:"path"`
	UpToDate bool   `json:"up_to_date" yaml:"up_to_date"`
	Missing  bool   `json:"missing,omitempty" yaml:"missing,omitempty"`
	Diff     string `json:"diff,omitempty" yaml:"diff,omitempty"`
}

// Compare renders the difference between doc and the file it would be
// written to below dir. A missing file is reported, not returned as an error.
func Compare(fs afero.Fs, doc *emit.Document, dir string) (*Result, error) {
	path := doc.Path(dir)

	info, err := fs.Stat(path)
	if os.IsNotExist(err) {
		return &Result{Path: path, Missing: true, Diff: unifiedDiff(nil, doc.Content, path)}, nil
	}
	if err == nil && info.IsDir() {
		err = errors.Newf("%s is a directory", path)
	}
	if err != nil {
		return nil, errors.Wrapf(errors.Mark(err, errors.ErrOutputPath), "failed to stat %s", path)
	}

	existing, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrapf(errors.Mark(err, errors.ErrOutputPath), "failed to read %s", path)
	}

	if bytes.Equal(existing, doc.Content) {
		return &Result{Path: path, UpToDate: true}, nil
	}

	return &Result{Path: path, Diff: unifiedDiff(existing, doc.Content, path)}, nil
}

// unifiedDiff shows how the file on disk must change to match the freshly
// generated content.
func unifiedDiff(existing, generated []byte, path string) string {
	diff := difflib.UnifiedDiff{
		A:        splitLines(existing),
		B:        splitLines(generated),
		FromFile: path,
		ToFile:   path + " (generated)",
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return ""
	}
	return text
}

// splitLines keeps line endings, which difflib expects. difflib.SplitLines
// always appends a newline to the last element, so a trailing newline leaves
// an empty extra line to drop and a missing one gets the usual marker.
func splitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	lines := difflib.SplitLines(string(content))
	last := len(lines) - 1
	if bytes.HasSuffix(content, []byte("\n")) {
		return lines[:last]
	}
	lines[last] += "\\ No newline at end of file\n"
	return lines
}
