// Package emit renders a grouped shadow class into source code.
//
// Each target syntax (Java, Kotlin) implements Emitter. Grouping, ordering
// and annotation selection live here and in package shadow, so the
// bindings differ only in surface syntax.
package emit

import (
	"path/filepath"
	"strings"

	"github.com/teranos/r2gen/errors"
	"github.com/teranos/r2gen/shadow"
)

// Header is the first line of every generated file.
const Header = "Generated code from r2gen. Do not modify!"

// Syntax selects the target source language.
type Syntax string

const (
	Java   Syntax = "java"
	Kotlin Syntax = "kotlin"
)

// Syntaxes lists the supported selectors.
var Syntaxes = []Syntax{Java, Kotlin}

// ParseSyntax resolves a user-supplied selector. It never falls back to a
// default: anything unknown is an error.
func ParseSyntax(s string) (Syntax, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "java":
		return Java, nil
	case "kotlin", "kt", "kts":
		return Kotlin, nil
	default:
		return "", errors.WithHint(
			errors.Wrapf(errors.ErrUnknownSyntax, "%q", s),
			"supported syntaxes: java, kotlin")
	}
}

// Options carries the caller-chosen names of one generated artifact.
type Options struct {
	PackageName       string
	ClassName         string
	LegacyAnnotations bool // use android.support.annotation instead of androidx.annotation
}

// Emitter renders groups into a complete source document.
type Emitter interface {
	// Syntax returns the selector this emitter implements
	Syntax() Syntax

	// FileExtension returns the canonical extension without the dot (e.g. "java", "kt")
	FileExtension() string

	// Emit renders groups, already in Registry order, into a document.
	// Identical inputs always produce byte-identical content.
	Emit(groups []shadow.Group, opts Options) *Document
}

// Document is a fully rendered artifact held in memory until written.
type Document struct {
	Syntax      Syntax
	PackageName string
	ClassName   string
	Extension   string
	Content     []byte
}

// FileName is "<ClassName>.<Extension>".
func (d *Document) FileName() string {
	return d.ClassName + "." + d.Extension
}

// RelPath is the document's path below an output directory.
func (d *Document) RelPath() string {
	return filepath.Join(PackageDir(d.PackageName), d.FileName())
}

// Path is the document's full path below dir.
func (d *Document) Path(dir string) string {
	return filepath.Join(dir, d.RelPath())
}

// PackageDir turns a dotted package name into a relative directory.
func PackageDir(packageName string) string {
	return filepath.FromSlash(strings.ReplaceAll(packageName, ".", "/"))
}
