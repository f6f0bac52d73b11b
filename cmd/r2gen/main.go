package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/teranos/r2gen/cmd/r2gen/commands"
	"github.com/teranos/r2gen/errors"
	"github.com/teranos/r2gen/logger"
)

var rootCmd = &cobra.Command{
	Use:   "r2gen",
	Short: "r2gen - R2 constant classes from Android symbol tables",
	Long: `r2gen - R2 constant classes from Android symbol tables.

r2gen reads the R.txt symbol table written by the Android resource compiler
and generates a class of compile-time constants grouped by resource type
(R2.anim, R2.id, R2.string, ...), each annotated with its @XRes annotation.
Library modules can use these constants where annotation arguments require
constant expressions.

Available commands:
  generate - Generate the R2 class for one symbol table
  check    - Fail when a generated R2 class is out of date
  batch    - Generate every target listed in r2gen.toml
  inspect  - Dump the grouped symbols as JSON, YAML or TOML
  types    - List the supported resource types
  config   - Show, validate or create r2gen configuration
  version  - Show build information

Examples:
  r2gen generate app/build/R.txt -o app/build/generated/r2 -p com.example.app
  r2gen generate R.txt -o out -p com.example.lib -l kotlin --legacy
  r2gen check R.txt -o src/main/java -p com.example.app
  r2gen batch -vv`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return commands.InitLogging(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Cleanup()
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	rootCmd.PersistentFlags().Bool("json-log", false, "Write logs as JSON lines to stderr")
	rootCmd.PersistentFlags().String("config", "", "Config file (default: r2gen.toml searched upward from the working directory)")

	rootCmd.AddCommand(commands.GenerateCmd)
	rootCmd.AddCommand(commands.CheckCmd)
	rootCmd.AddCommand(commands.BatchCmd)
	rootCmd.AddCommand(commands.InspectCmd)
	rootCmd.AddCommand(commands.TypesCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		if !errors.Is(err, commands.ErrStale) {
			pterm.Error.Println(err.Error())
			for _, hint := range errors.GetAllHints(err) {
				fmt.Fprintf(os.Stderr, "  hint: %s\n", hint)
			}
		}
		os.Exit(commands.ExitCode(err))
	}
}
