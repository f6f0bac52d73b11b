package commands

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/teranos/r2gen/check"
	"github.com/teranos/r2gen/generate"
)

var checkFlags generationFlags

// CheckCmd represents the check command
var CheckCmd = &cobra.Command{
	Use:   "check <R.txt>",
	Short: "Fail when a generated R2 class is out of date",
	Long: `Render the R2 class in memory and compare it with the file on disk.

Nothing is written. When the file is missing or differs, a unified diff is
printed and the command exits with status 1, which makes it suitable for CI
when generated sources are committed.

Examples:
  r2gen check app/build/R.txt -o src/main/java -p com.example.app`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkFlags.register(CheckCmd, true)
}

func runCheck(cmd *cobra.Command, args []string) error {
	p, err := checkFlags.params(cmd, args[0])
	if err != nil {
		return err
	}

	res, err := checkTarget(newGenerator(), p)
	if err != nil {
		return err
	}
	return reportCheck(res)
}

// checkTarget renders p and compares it with the file on disk.
func checkTarget(g *generate.Generator, p generate.Params) (*check.Result, error) {
	doc, _, err := g.Render(p)
	if err != nil {
		return nil, err
	}
	return check.Compare(afero.NewOsFs(), doc, p.OutputDir)
}

func reportCheck(res *check.Result) error {
	switch {
	case res.UpToDate:
		pterm.Success.Printf("%s is up to date\n", res.Path)
		return nil
	case res.Missing:
		pterm.Warning.Printf("%s does not exist\n", res.Path)
	default:
		pterm.Warning.Printf("%s is out of date\n", res.Path)
	}
	fmt.Print(colorizeDiff(res.Diff))
	return ErrStale
}

// colorizeDiff colors added and removed lines of a unified diff.
func colorizeDiff(diff string) string {
	lines := strings.SplitAfter(diff, "\n")
	var b strings.Builder
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			b.WriteString(pterm.Bold.Sprint(line))
		case strings.HasPrefix(line, "+"):
			b.WriteString(pterm.FgGreen.Sprint(line))
		case strings.HasPrefix(line, "-"):
			b.WriteString(pterm.FgRed.Sprint(line))
		case strings.HasPrefix(line, "@@"):
			b.WriteString(pterm.FgCyan.Sprint(line))
		default:
			b.WriteString(line)
		}
	}
	return b.String()
}
