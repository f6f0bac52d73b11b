// Package generate is the entry point of r2gen: it reads a symbol table,
// groups its symbols and writes the R2 source file in the requested syntax.
package generate

import (
	"time"

	"github.com/spf13/afero"
	"github.com/teranos/r2gen/emit"
	"github.com/teranos/r2gen/emit/java"
	"github.com/teranos/r2gen/emit/kotlin"
	"github.com/teranos/r2gen/errors"
	"github.com/teranos/r2gen/logger"
	"github.com/teranos/r2gen/shadow"
	"github.com/teranos/r2gen/symtab"
	"go.uber.org/zap"
)

// Summary describes what one generation read and rendered.
type Summary struct {
	Symbols int          `json:"symbols" yaml:"symbols"`
	Groups  int          `json:"groups" yaml:"groups"`
	Stats   symtab.Stats `json:"stats" yaml:"stats"`
}

// Result is a completed generation.
type Result struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	Path string `json:"path" yaml:"path"`
	Summary
}

// Generator runs generations against one filesystem. It keeps no state
// between calls, so independent generations may run concurrently.
type Generator struct {
	fs         afero.Fs
	writer     *emit.Writer
	traceSkips bool
}

// New creates a Generator over fs. A nil fs means the OS filesystem.
func New(fs afero.Fs) *Generator {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Generator{
		fs:     fs,
		writer: emit.NewWriter(fs),
	}
}

// log resolves the component logger on each use, so a Generator created
// before logger.Initialize still logs once logging is set up.
func (g *Generator) log() *zap.SugaredLogger {
	return logger.ComponentLogger("generate")
}

// TraceSkips makes the generator log every symbol table line it skips.
func (g *Generator) TraceSkips(on bool) {
	g.traceSkips = on
}

// EmitterFor selects the emitter for a syntax.
func EmitterFor(syntax emit.Syntax) (emit.Emitter, error) {
	switch syntax {
	case emit.Java:
		return java.NewGenerator(), nil
	case emit.Kotlin:
		return kotlin.NewGenerator(), nil
	default:
		return nil, errors.WithHint(
			errors.Wrapf(errors.ErrUnknownSyntax, "%q", syntax),
			"supported syntaxes: java, kotlin")
	}
}

// Load reads the symbol table at path into a fresh shadow class.
// Any read failure aborts the load; nothing partial is returned.
func (g *Generator) Load(path string) (*shadow.Class, symtab.Stats, error) {
	reader := symtab.NewReader(g.fs)
	if g.traceSkips {
		reader.OnSkip(func(line int, text string, reason symtab.SkipReason) {
			g.log().Debugw("Skipped symbol table line",
				logger.FieldSymbolTable, path,
				logger.FieldLine, line,
				logger.FieldReason, reason.String(),
				"text", text)
		})
	}

	class := shadow.New()
	for sym, err := range reader.ReadFile(path) {
		if err != nil {
			return nil, symtab.Stats{}, err
		}
		class.Add(sym)
	}
	return class, reader.Stats(), nil
}

// Render produces the document for p without writing anything.
func (g *Generator) Render(p Params) (*emit.Document, *Summary, error) {
	if err := p.Validate(); err != nil {
		return nil, nil, err
	}
	emitter, err := EmitterFor(p.Syntax)
	if err != nil {
		return nil, nil, err
	}

	class, stats, err := g.Load(p.SymbolTable)
	if err != nil {
		return nil, nil, err
	}

	groups := class.Groups()
	doc := emitter.Emit(groups, p.Options())

	g.log().Debugw("Rendered shadow class",
		logger.FieldSymbolTable, p.SymbolTable,
		logger.FieldSyntax, string(p.Syntax),
		logger.FieldSymbols, class.Len(),
		logger.FieldGroups, len(groups),
		logger.FieldSkipped, stats.Skipped())

	return doc, &Summary{Symbols: class.Len(), Groups: len(groups), Stats: stats}, nil
}

// Generate renders p and writes the result below p.OutputDir. The output
// file is replaced atomically; on any error no file is written.
func (g *Generator) Generate(p Params) (*Result, error) {
	start := time.Now()

	doc, summary, err := g.Render(p)
	if err != nil {
		return nil, err
	}

	path, err := g.writer.Write(doc, p.OutputDir)
	if err != nil {
		return nil, err
	}

	g.log().Infow("Generated",
		logger.FieldTarget, p.Name,
		logger.FieldFile, path,
		logger.FieldPackage, p.PackageName,
		logger.FieldClass, p.ClassName,
		logger.FieldSymbols, summary.Symbols,
		logger.FieldGroups, summary.Groups,
		logger.FieldBytes, len(doc.Content),
		logger.FieldDurationMS, time.Since(start).Milliseconds())

	return &Result{Name: p.Name, Path: path, Summary: *summary}, nil
}
