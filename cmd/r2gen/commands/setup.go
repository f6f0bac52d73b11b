// Package commands holds the r2gen CLI subcommands.
package commands

import (
	"github.com/spf13/cobra"
	"github.com/teranos/r2gen/am"
	"github.com/teranos/r2gen/errors"
	"github.com/teranos/r2gen/logger"
)

// ErrStale is returned by check when generated output is missing or out of date.
var ErrStale = errors.New("generated output is out of date")

// Exit codes
const (
	ExitOK     = 0
	ExitFailed = 1 // general failure or stale output
	ExitUsage  = 2 // bad flags, parameters or configuration
	ExitInput  = 3 // symbol table missing or unreadable
	ExitOutput = 4 // output could not be written
)

// verbosity is the effective -v count after config is merged in.
var verbosity int

// ExitCode maps an error returned by a command to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrStale):
		return ExitFailed
	case errors.IsUsageError(err):
		return ExitUsage
	case errors.IsInputError(err):
		return ExitInput
	case errors.IsOutputError(err):
		return ExitOutput
	default:
		return ExitFailed
	}
}

// LoadConfig loads the file named by --config, or the usual config cascade.
func LoadConfig(cmd *cobra.Command) (*am.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		cfg, err := am.LoadFromFile(path)
		if err != nil {
			return nil, errors.Mark(err, errors.ErrInvalidParams)
		}
		return cfg, nil
	}

	cfg, err := am.Load()
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "failed to load config"), errors.ErrInvalidParams)
	}
	return cfg, nil
}

// InitLogging sets up the global logger from flags, falling back to the
// [log] section of the configuration. A broken config does not stop logging;
// commands that need the config report the failure themselves.
func InitLogging(cmd *cobra.Command) error {
	jsonLog, _ := cmd.Flags().GetBool("json-log")
	verbosity, _ = cmd.Flags().GetCount("verbose")

	cfg, cfgErr := LoadConfig(cmd)
	if cfgErr == nil {
		jsonLog = jsonLog || cfg.Log.JSON
		verbosity = max(verbosity, cfg.Log.Verbosity)
	}

	if err := logger.Initialize(jsonLog); err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}
	logger.SetVerbosity(verbosity)

	if cfgErr != nil {
		logger.Debugw("Configuration not loaded", logger.FieldError, cfgErr.Error())
	}
	logger.Debugw("Logging initialized", "verbosity", logger.LevelName(verbosity), "json", jsonLog)
	return nil
}

func usageError(msg, hint string) error {
	return errors.WithHint(errors.Wrap(errors.ErrInvalidParams, msg), hint)
}
