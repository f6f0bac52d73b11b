package am

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/teranos/r2gen/errors"
	"github.com/teranos/r2gen/internal/util"
	"github.com/teranos/r2gen/logger"
)

// SampleConfig is the starter configuration written by `r2gen config init`.
func SampleConfig() *Config {
	return &Config{
		Generate: GenerateConfig{
			Syntax:    DefaultSyntax,
			ClassName: DefaultClassName,
		},
		Batch: BatchConfig{Workers: DefaultWorkers},
		Targets: []Target{
			{
				Name:        "debug",
				SymbolTable: "app/build/intermediates/runtime_symbol_list/debug/R.txt",
				OutputDir:   "app/build/generated/source/r2/debug",
				Package:     "com.example.app",
			},
			{
				Name:        "release",
				SymbolTable: "app/build/intermediates/runtime_symbol_list/release/R.txt",
				OutputDir:   "app/build/generated/source/r2/release",
				Package:     "com.example.app",

				// per-target override of [generate]
				LegacyAnnotations: util.Ptr(false),
			},
		},
	}
}

// Marshal renders c as TOML.
func Marshal(c *Config) ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal config")
	}
	return data, nil
}

// WriteSample writes SampleConfig to path. An existing file is kept unless
// force is set, in which case it is rotated into .back1 first.
func WriteSample(path string, force bool) error {
	if _, err := os.Stat(path); err == nil {
		if !force {
			return errors.WithHint(
				errors.Newf("%s already exists", path),
				"use --force to overwrite (the old file is kept as .back1)")
		}
		if err := createBackup(path); err != nil {
			return errors.Wrap(err, "failed to create backup")
		}
	}

	data, err := Marshal(SampleConfig())
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), DefaultDirPermissions); err != nil {
		return errors.Wrapf(err, "failed to create directory for %s", path)
	}
	if err := os.WriteFile(path, data, DefaultFilePermissions); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}

// createBackup creates rotating backups (.back1, .back2, .back3) before overwriting
func createBackup(configPath string) error {
	back3 := configPath + ".back3"
	back2 := configPath + ".back2"
	back1 := configPath + ".back1"

	// Delete oldest backup if exists
	if err := os.Remove(back3); err != nil && !os.IsNotExist(err) {
		logger.Logger.Warnw("Failed to delete old backup", logger.FieldFile, back3, logger.FieldError, err)
	}

	if _, err := os.Stat(back2); err == nil {
		if err := os.Rename(back2, back3); err != nil {
			return errors.Wrap(err, "failed to rotate .back2 to .back3")
		}
	}

	if _, err := os.Stat(back1); err == nil {
		if err := os.Rename(back1, back2); err != nil {
			return errors.Wrap(err, "failed to rotate .back1 to .back2")
		}
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		return errors.Wrap(err, "failed to read config for backup")
	}

	if err := os.WriteFile(back1, content, DefaultFilePermissions); err != nil {
		return errors.Wrap(err, "failed to create .back1")
	}

	return nil
}
