// Package restype is the closed set of Android resource types that r2gen
// re-exposes, in the order their groups are rendered.
//
// The set mirrors the resource compiler's symbol table format and is not
// extensible at runtime: a type name outside it is simply unsupported.
package restype

import "strings"

// Type is one supported resource type.
type Type int

// Registry order. Groups in generated files follow this order, not input order.
const (
	Anim Type = iota
	Array
	Attr
	Bool
	Color
	Dimen
	Drawable
	ID
	Integer
	Layout
	Menu
	Plurals
	String
	Style
	Styleable

	// Count is the number of supported types.
	Count int = iota
)

// Annotation packages. The legacy one predates AndroidX.
const (
	AnnotationPackage       = "androidx.annotation"
	LegacyAnnotationPackage = "android.support.annotation"
)

// renders holds the name each type carries in R.txt and in generated group names.
var renders = [Count]string{
	Anim:      "anim",
	Array:     "array",
	Attr:      "attr",
	Bool:      "bool",
	Color:     "color",
	Dimen:     "dimen",
	Drawable:  "drawable",
	ID:        "id",
	Integer:   "integer",
	Layout:    "layout",
	Menu:      "menu",
	Plurals:   "plurals",
	String:    "string",
	Style:     "style",
	Styleable: "styleable",
}

// annotations are derived once: Capitalize(render) + "Res".
var annotations = func() (names [Count]string) {
	for i, r := range renders {
		names[i] = strings.ToUpper(r[:1]) + r[1:] + annotationSuffix
	}
	return names
}()

var byName = func() map[string]Type {
	m := make(map[string]Type, Count)
	for i, r := range renders {
		m[r] = Type(i)
	}
	return m
}()

const annotationSuffix = "Res"

// Lookup resolves a symbol table type name. Matching is exact and case-sensitive.
func Lookup(name string) (Type, bool) {
	t, ok := byName[name]
	return t, ok
}

// All returns every supported type in Registry order.
func All() []Type {
	all := make([]Type, Count)
	for i := range all {
		all[i] = Type(i)
	}
	return all
}

// Valid reports whether t is inside the Registry.
func (t Type) Valid() bool {
	return t >= 0 && int(t) < Count
}

// String returns the render name ("color", "layout", ...).
func (t Type) String() string {
	if !t.Valid() {
		return "unknown"
	}
	return renders[t]
}

// AnnotationName returns the simple annotation name, e.g. "ColorRes".
func (t Type) AnnotationName() string {
	if !t.Valid() {
		return ""
	}
	return annotations[t]
}

// AnnotationPackageFor returns the annotation namespace to use.
func AnnotationPackageFor(legacy bool) string {
	if legacy {
		return LegacyAnnotationPackage
	}
	return AnnotationPackage
}

// Annotation returns the fully-qualified annotation name for t.
func (t Type) Annotation(legacy bool) string {
	return AnnotationPackageFor(legacy) + "." + t.AnnotationName()
}

// MarshalText renders t by name so it reads naturally in JSON, YAML and TOML dumps.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
