package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/teranos/r2gen/am"
	"github.com/teranos/r2gen/errors"
)

// ConfigCmd represents the config command
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show, validate or create r2gen configuration",
	Long: `Display and manage r2gen configuration.

Configuration sources (later overrides earlier):
1. Default values
2. System config (/etc/r2gen/config.toml)
3. User config (~/.r2gen/config.toml)
4. Project config (r2gen.toml, searched upward from the working directory)
5. Environment variables (R2GEN_* prefix, e.g. R2GEN_GENERATE_SYNTAX=kotlin)
6. Command line flags

--config replaces steps 2 to 4 with a single file.

Examples:
  r2gen config show                 # Show effective configuration
  r2gen config show --sources       # Show where each value came from
  r2gen config validate             # Check values and unknown keys
  r2gen config init                 # Write a starter r2gen.toml`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration",
	Long: `Validate the effective configuration, including every target, and report
keys in the config files that r2gen does not know (usually typos).`,
	Args: cobra.NoArgs,
	RunE: runConfigValidate,
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a starter r2gen.toml",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigInit,
}

var (
	configFormat  string
	configSources bool
	configForce   bool
)

func init() {
	configShowCmd.Flags().StringVarP(&configFormat, "format", "f", "toml", "Output format: toml, json, yaml")
	configShowCmd.Flags().BoolVar(&configSources, "sources", false, "List every setting with its source")
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing file (a .back1 backup is kept)")

	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configValidateCmd)
	ConfigCmd.AddCommand(configInitCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig(cmd)
	if err != nil {
		return err
	}

	if configSources {
		settings, err := activeViperSettings(cmd)
		if err != nil {
			return errors.Mark(err, errors.ErrInvalidParams)
		}
		data := pterm.TableData{{"Key", "Value", "Source", "From"}}
		for _, s := range am.Introspect(settings) {
			data = append(data, []string{s.Key, fmt.Sprint(s.Value), string(s.Source), s.SourcePath})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	}

	var data []byte
	if configFormat == "toml" {
		data, err = am.Marshal(cfg)
	} else {
		data, err = marshalFormat(cfg, configFormat)
	}
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

// activeViperSettings returns the merged settings behind the loaded config.
func activeViperSettings(cmd *cobra.Command) (map[string]interface{}, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		cfg, err := am.LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		return settingsOf(cfg), nil
	}
	v, err := am.GetViper()
	if err != nil {
		return nil, err
	}
	return v.AllSettings(), nil
}

// settingsOf flattens a loaded config back into viper's nested map form.
func settingsOf(cfg *am.Config) map[string]interface{} {
	return map[string]interface{}{
		"generate": map[string]interface{}{
			"syntax":             cfg.Generate.Syntax,
			"class_name":         cfg.Generate.ClassName,
			"legacy_annotations": cfg.Generate.LegacyAnnotations,
		},
		"log": map[string]interface{}{
			"json":      cfg.Log.JSON,
			"verbosity": cfg.Log.Verbosity,
		},
		"batch": map[string]interface{}{
			"workers": cfg.Batch.Workers,
		},
	}
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig(cmd)
	if err != nil {
		return err
	}

	for _, path := range configFilesInUse(cmd) {
		unknown, err := am.UnknownKeys(path)
		if err != nil {
			return errors.Mark(err, errors.ErrInvalidParams)
		}
		for _, key := range unknown {
			pterm.Warning.Printf("%s: unknown key %q is ignored\n", path, key)
		}
	}

	if err := cfg.Validate(); err != nil {
		return errors.Mark(errors.Wrap(err, "configuration validation failed"), errors.ErrInvalidParams)
	}

	pterm.Success.Printf("Configuration is valid (%d targets)\n", len(cfg.Targets))
	return nil
}

// configFilesInUse lists the files that contributed to the configuration.
func configFilesInUse(cmd *cobra.Command) []string {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return []string{path}
	}

	var files []string
	seen := make(map[string]bool)
	for _, info := range am.ConfigSources {
		if info.Path != "" && !seen[info.Path] {
			seen[info.Path] = true
			files = append(files, info.Path)
		}
	}
	sort.Strings(files)
	return files
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := am.ProjectConfigName
	if len(args) == 1 {
		path = args[0]
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			path = filepath.Join(path, am.ProjectConfigName)
		}
	}

	if err := am.WriteSample(path, configForce); err != nil {
		return errors.Mark(err, errors.ErrOutputPath)
	}
	pterm.Success.Printf("Wrote %s\n", path)
	return nil
}
