package kotlin

import "strings"

// hardKeywords cannot be used as Kotlin identifiers without backticks.
// Android resource names only have to be valid Java identifiers, so names
// like "in", "is" or "object" do reach us.
var hardKeywords = map[string]bool{
	"as": true, "break": true, "class": true, "continue": true, "do": true,
	"else": true, "false": true, "for": true, "fun": true, "if": true,
	"in": true, "interface": true, "is": true, "null": true, "object": true,
	"package": true, "return": true, "super": true, "this": true, "throw": true,
	"true": true, "try": true, "typealias": true, "typeof": true, "val": true,
	"var": true, "when": true, "while": true,
}

// Ident escapes name with backticks when it is a Kotlin hard keyword.
func Ident(name string) string {
	if hardKeywords[name] {
		return "`" + name + "`"
	}
	return name
}

func escapePackage(pkg string) string {
	parts := strings.Split(pkg, ".")
	for i, p := range parts {
		parts[i] = Ident(p)
	}
	return strings.Join(parts, ".")
}
