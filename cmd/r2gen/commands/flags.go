package commands

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/teranos/r2gen/am"
	"github.com/teranos/r2gen/emit"
	"github.com/teranos/r2gen/generate"
	"github.com/teranos/r2gen/logger"
)

// generationFlags are shared by generate, check and inspect.
type generationFlags struct {
	outputDir   string
	packageName string
	className   string
	syntax      string
	legacy      bool
}

func (f *generationFlags) register(cmd *cobra.Command, needsOutput bool) {
	cmd.Flags().StringVarP(&f.packageName, "package", "p", "", "Package of the generated class (e.g. com.example.app)")
	cmd.Flags().StringVarP(&f.className, "class", "c", am.DefaultClassName, "Name of the generated class")
	cmd.Flags().StringVarP(&f.syntax, "lang", "l", am.DefaultSyntax, "Output syntax: java or kotlin")
	cmd.Flags().BoolVar(&f.legacy, "legacy", false, "Use android.support.annotation instead of androidx.annotation")
	if needsOutput {
		cmd.Flags().StringVarP(&f.outputDir, "output", "o", "", "Output source root; the package path is created below it")
		cmd.MarkFlagRequired("output")
	}
	cmd.MarkFlagRequired("package")
}

// params resolves flags against the [generate] config section. Flags the user
// did not set fall back to the config. Without any config file the built-in
// defaults apply; a config file that exists but is broken is an error.
func (f *generationFlags) params(cmd *cobra.Command, symbolTable string) (generate.Params, error) {
	cfg, err := LoadConfig(cmd)
	if err != nil {
		return generate.Params{}, err
	}

	className, syntaxName, legacy := f.className, f.syntax, f.legacy
	if !cmd.Flags().Changed("class") {
		className = cfg.Generate.ClassName
	}
	if !cmd.Flags().Changed("lang") {
		syntaxName = cfg.Generate.Syntax
	}
	if !cmd.Flags().Changed("legacy") {
		legacy = cfg.Generate.LegacyAnnotations
	}

	syntax, err := emit.ParseSyntax(syntaxName)
	if err != nil {
		return generate.Params{}, err
	}

	p := generate.Params{
		SymbolTable:       symbolTable,
		OutputDir:         f.outputDir,
		PackageName:       f.packageName,
		ClassName:         className,
		Syntax:            syntax,
		LegacyAnnotations: legacy,
	}
	logger.Debugw("Resolved generation parameters",
		logger.FieldSymbolTable, p.SymbolTable,
		logger.FieldOutputDir, p.OutputDir,
		logger.FieldPackage, p.PackageName,
		logger.FieldClass, p.ClassName,
		logger.FieldSyntax, string(p.Syntax))
	return p, nil
}

// newGenerator returns a generator over the OS filesystem, tracing skipped
// lines at -vvv.
func newGenerator() *generate.Generator {
	g := generate.New(afero.NewOsFs())
	g.TraceSkips(logger.ShouldLogTrace(verbosity))
	return g
}
