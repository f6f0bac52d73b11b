package emit

import (
	"sort"

	"github.com/teranos/r2gen/restype"
	"github.com/teranos/r2gen/shadow"
)

// AnnotationRef is how a constant of type t names its annotation in source:
// the simple name, or the fully-qualified one when the simple name would
// resolve to the generated class itself.
func AnnotationRef(t restype.Type, opts Options) string {
	if qualifyAnnotation(t, opts) {
		return t.Annotation(opts.LegacyAnnotations)
	}
	return t.AnnotationName()
}

// Imports returns the sorted, distinct annotation imports the groups need.
func Imports(groups []shadow.Group, opts Options) []string {
	seen := make(map[string]bool, len(groups))
	var imports []string
	for _, g := range groups {
		if qualifyAnnotation(g.Type, opts) {
			continue
		}
		fqn := g.Type.Annotation(opts.LegacyAnnotations)
		if !seen[fqn] {
			seen[fqn] = true
			imports = append(imports, fqn)
		}
	}
	sort.Strings(imports)
	return imports
}

func qualifyAnnotation(t restype.Type, opts Options) bool {
	return t.AnnotationName() == opts.ClassName
}
