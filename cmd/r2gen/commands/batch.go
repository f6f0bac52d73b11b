package commands

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/teranos/r2gen/errors"
	"github.com/teranos/r2gen/generate"
	"github.com/teranos/r2gen/logger"
)

var (
	batchWorkers int
	batchCheck   bool
)

// BatchCmd represents the batch command
var BatchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Generate every target listed in r2gen.toml",
	Long: `Generate every [[targets]] entry of the configuration, concurrently.

All targets are validated before any symbol table is read, and two targets
that would write the same file are rejected. Targets inherit class_name,
syntax and legacy_annotations from the [generate] section.

Example r2gen.toml:

  [generate]
  syntax = "kotlin"

  [[targets]]
  name = "debug"
  symbol_table = "app/build/intermediates/runtime_symbol_list/debug/R.txt"
  output_dir = "app/build/generated/source/r2/debug"
  package = "com.example.app"

Examples:
  r2gen batch               # Generate all targets
  r2gen batch --workers 1   # One target at a time
  r2gen batch --check       # Fail if any committed target is stale`,
	Args: cobra.NoArgs,
	RunE: runBatch,
}

func init() {
	BatchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "Concurrent generations (default: batch.workers from config)")
	BatchCmd.Flags().BoolVar(&batchCheck, "check", false, "Compare every target with the file on disk instead of writing")
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig(cmd)
	if err != nil {
		return err
	}
	if len(cfg.Targets) == 0 {
		return usageError("no targets configured", "add [[targets]] entries to r2gen.toml (see `r2gen config init`)")
	}
	if err := cfg.Validate(); err != nil {
		return errors.Mark(errors.Wrap(err, "invalid configuration"), errors.ErrInvalidParams)
	}

	params, err := cfg.BatchParams()
	if err != nil {
		return err
	}

	workers := cfg.Batch.Workers
	if cmd.Flags().Changed("workers") {
		workers = batchWorkers
	}

	g := newGenerator()

	if batchCheck {
		return checkAll(g, params)
	}

	start := time.Now()
	results, err := g.GenerateAll(cmd.Context(), params, workers)
	if err != nil {
		return err
	}

	if !logger.JSONOutput {
		data := pterm.TableData{{"Target", "File", "Symbols", "Groups"}}
		for _, res := range results {
			data = append(data, []string{res.Name, res.Path, fmt.Sprint(res.Symbols), fmt.Sprint(res.Groups)})
		}
		if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
			return err
		}
		pterm.Success.Printf("Generated %d targets in %s\n", len(results), time.Since(start).Round(time.Millisecond))
	}
	return nil
}

// checkAll reports every stale target before failing.
func checkAll(g *generate.Generator, params []generate.Params) error {
	stale := 0
	for _, p := range params {
		res, err := checkTarget(g, p)
		if err != nil {
			return errors.Wrapf(err, "target %s", p.Name)
		}
		if reportCheck(res) != nil {
			stale++
		}
	}
	if stale > 0 {
		return errors.Wrapf(ErrStale, "%d of %d targets", stale, len(params))
	}
	return nil
}
