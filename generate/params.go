package generate

import (
	"strings"
	"unicode"

	"github.com/teranos/r2gen/emit"
	"github.com/teranos/r2gen/emit/java"
	"github.com/teranos/r2gen/errors"
	"github.com/teranos/r2gen/restype"
)

// Params are the inputs of one generation.
type Params struct {
	// Name labels the generation in logs and batch errors (e.g. a build variant)
	Name string

	SymbolTable       string     // path to R.txt; must exist and be readable
	OutputDir         string     // created if absent
	PackageName       string     // dotted identifier, e.g. "com.example.app"
	ClassName         string     // simple identifier, e.g. "R2"
	Syntax            emit.Syntax
	LegacyAnnotations bool
}

// Options returns the emitter options carried by p.
func (p Params) Options() emit.Options {
	return emit.Options{
		PackageName:       p.PackageName,
		ClassName:         p.ClassName,
		LegacyAnnotations: p.LegacyAnnotations,
	}
}

// label is how p is named in messages.
func (p Params) label() string {
	if p.Name != "" {
		return p.Name
	}
	return p.SymbolTable
}

// Validate checks p before any file is touched.
func (p Params) Validate() error {
	if strings.TrimSpace(p.SymbolTable) == "" {
		return invalid("symbol table path is required")
	}
	if strings.TrimSpace(p.OutputDir) == "" {
		return invalid("output directory is required")
	}

	switch p.Syntax {
	case emit.Java, emit.Kotlin:
	default:
		return errors.WithHint(
			errors.Wrapf(errors.ErrUnknownSyntax, "%q", p.Syntax),
			"supported syntaxes: java, kotlin")
	}

	if p.PackageName == "" {
		return invalid("package name is required")
	}
	for _, segment := range strings.Split(p.PackageName, ".") {
		if !isIdentifier(segment) {
			return invalid("package name %q: segment %q is not an identifier", p.PackageName, segment)
		}
		if p.Syntax == emit.Java && java.IsReserved(segment) {
			return invalid("package name %q: %q is a reserved word in Java", p.PackageName, segment)
		}
	}

	if !isIdentifier(p.ClassName) {
		return invalid("class name %q is not an identifier", p.ClassName)
	}
	if p.Syntax == emit.Java && java.IsReserved(p.ClassName) {
		return invalid("class name %q is a reserved word in Java", p.ClassName)
	}
	if _, clash := restype.Lookup(p.ClassName); clash {
		return errors.WithHint(
			invalid("class name %q clashes with the nested %s holder", p.ClassName, p.ClassName),
			"pick a class name that is not a resource type, e.g. R2")
	}

	return nil
}

func invalid(format string, args ...interface{}) error {
	return errors.Wrapf(errors.ErrInvalidParams, format, args...)
}

// isIdentifier accepts Java/Kotlin identifier syntax: a letter, '_' or '$'
// followed by letters, digits, '_' or '$'.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '$' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}
