package commands

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/teranos/r2gen/logger"
)

var (
	generateFlags  generationFlags
	generateStdout bool
)

// GenerateCmd represents the generate command
var GenerateCmd = &cobra.Command{
	Use:   "generate <R.txt>",
	Short: "Generate the R2 class for one symbol table",
	Long: `Generate an R2 class from an Android symbol table (R.txt).

The class is written to <output>/<package as path>/<class>.java (or .kt) and
replaced atomically, so a failed run never leaves a truncated file behind.

Flags not given on the command line fall back to the [generate] section of
r2gen.toml, then to the built-in defaults (java, R2, androidx annotations).

Examples:
  r2gen generate app/build/R.txt -o app/build/generated/r2 -p com.example.app
  r2gen generate R.txt -o out -p com.example -c Res -l kotlin
  r2gen generate R.txt -p com.example --stdout`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateFlags.register(GenerateCmd, false)
	GenerateCmd.Flags().StringVarP(&generateFlags.outputDir, "output", "o", "", "Output source root; the package path is created below it")
	GenerateCmd.Flags().BoolVar(&generateStdout, "stdout", false, "Print the generated source instead of writing it")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	p, err := generateFlags.params(cmd, args[0])
	if err != nil {
		return err
	}

	g := newGenerator()

	if generateStdout {
		if p.OutputDir == "" {
			// Render validates the output dir even though nothing is written.
			p.OutputDir = "."
		}
		doc, _, err := g.Render(p)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(doc.Content)
		return err
	}

	if p.OutputDir == "" {
		return usageError("required flag \"output\" not set", "pass -o <dir>, or --stdout to print the class")
	}

	res, err := g.Generate(p)
	if err != nil {
		return err
	}

	if !logger.JSONOutput {
		pterm.Success.Printf("Generated %s (%d symbols in %d groups)\n", res.Path, res.Symbols, res.Groups)
		if skipped := res.Stats.Skipped(); skipped > 0 && verbosity > 0 {
			pterm.Info.Printf("Skipped %d of %d lines\n", skipped, res.Stats.Lines)
		}
	}
	return nil
}
