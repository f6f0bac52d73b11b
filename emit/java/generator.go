package java

import (
	"fmt"
	"strings"

	"github.com/teranos/r2gen/emit"
	"github.com/teranos/r2gen/shadow"
)

const indent = "  "

// Generator implements emit.Emitter for Java
type Generator struct{}

// NewGenerator creates a new Java generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Syntax returns emit.Java
func (g *Generator) Syntax() emit.Syntax {
	return emit.Java
}

// FileExtension returns "java"
func (g *Generator) FileExtension() string {
	return "java"
}

// Emit renders a public final class holding one public static final nested
// class per group. Each holder has a private constructor; each field is a
// public static final int carrying its *Res annotation.
//
//	public final class R2 {
//	  public static final class color {
//	    @ColorRes
//	    public static final int primary = 0x7f030000;
//	    ...
func (g *Generator) Emit(groups []shadow.Group, opts emit.Options) *emit.Document {
	var sb strings.Builder

	sb.WriteString("// " + emit.Header + "\n")
	sb.WriteString(fmt.Sprintf("package %s;\n\n", opts.PackageName))

	if imports := emit.Imports(groups, opts); len(imports) > 0 {
		for _, imp := range imports {
			sb.WriteString(fmt.Sprintf("import %s;\n", imp))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("public final class %s {\n", opts.ClassName))
	writeConstructor(&sb, opts.ClassName, 1)

	for _, group := range groups {
		sb.WriteString("\n")
		writeGroup(&sb, group, opts)
	}

	sb.WriteString("}\n")

	return &emit.Document{
		Syntax:      emit.Java,
		PackageName: opts.PackageName,
		ClassName:   opts.ClassName,
		Extension:   g.FileExtension(),
		Content:     []byte(sb.String()),
	}
}

func writeGroup(sb *strings.Builder, group shadow.Group, opts emit.Options) {
	name := group.Type.String()
	annotation := emit.AnnotationRef(group.Type, opts)
	pad := strings.Repeat(indent, 2)

	sb.WriteString(fmt.Sprintf("%spublic static final class %s {\n", indent, name))
	for i, sym := range group.Symbols {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("%s@%s\n", pad, annotation))
		sb.WriteString(fmt.Sprintf("%spublic static final int %s = %s;\n", pad, sym.Name, sym.Value))
	}
	sb.WriteString("\n")
	writeConstructor(sb, name, 2)
	sb.WriteString(indent + "}\n")
}

// writeConstructor makes the enclosing class non-instantiable.
func writeConstructor(sb *strings.Builder, name string, depth int) {
	pad := strings.Repeat(indent, depth)
	sb.WriteString(fmt.Sprintf("%sprivate %s() {\n", pad, name))
	sb.WriteString(pad + "}\n")
}
