package kotlin

import (
	"fmt"
	"strings"

	"github.com/teranos/r2gen/emit"
	"github.com/teranos/r2gen/shadow"
)

const indent = "  "

// Generator implements emit.Emitter for Kotlin
type Generator struct{}

// NewGenerator creates a new Kotlin generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Syntax returns emit.Kotlin
func (g *Generator) Syntax() emit.Syntax {
	return emit.Kotlin
}

// FileExtension returns "kt"
func (g *Generator) FileExtension() string {
	return "kt"
}

// Emit renders a public object holding one nested object per group, each
// property a `const val` of type Int carrying its *Res annotation.
//
//	public object R2 {
//	  public object color {
//	    @ColorRes
//	    public const val primary: Int = 0x7f030000
//	    ...
func (g *Generator) Emit(groups []shadow.Group, opts emit.Options) *emit.Document {
	var sb strings.Builder

	sb.WriteString("// " + emit.Header + "\n")
	sb.WriteString(fmt.Sprintf("package %s\n\n", escapePackage(opts.PackageName)))

	if imports := emit.Imports(groups, opts); len(imports) > 0 {
		for _, imp := range imports {
			sb.WriteString(fmt.Sprintf("import %s\n", imp))
		}
		sb.WriteString("\n")
	}

	className := Ident(opts.ClassName)
	if len(groups) == 0 {
		sb.WriteString(fmt.Sprintf("public object %s\n", className))
	} else {
		sb.WriteString(fmt.Sprintf("public object %s {\n", className))
		for i, group := range groups {
			if i > 0 {
				sb.WriteString("\n")
			}
			writeGroup(&sb, group, opts)
		}
		sb.WriteString("}\n")
	}

	return &emit.Document{
		Syntax:      emit.Kotlin,
		PackageName: opts.PackageName,
		ClassName:   opts.ClassName,
		Extension:   g.FileExtension(),
		Content:     []byte(sb.String()),
	}
}

func writeGroup(sb *strings.Builder, group shadow.Group, opts emit.Options) {
	annotation := emit.AnnotationRef(group.Type, opts)
	pad := strings.Repeat(indent, 2)

	sb.WriteString(fmt.Sprintf("%spublic object %s {\n", indent, Ident(group.Type.String())))
	for i, sym := range group.Symbols {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("%s@%s\n", pad, annotation))
		sb.WriteString(fmt.Sprintf("%spublic const val %s: Int = %s\n", pad, Ident(sym.Name), sym.Value))
	}
	sb.WriteString(indent + "}\n")
}
