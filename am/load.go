package am

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
	"github.com/teranos/r2gen/errors"
)

var (
	mu            sync.Mutex
	globalConfig  *Config
	viperInstance *viper.Viper
)

// Load reads the r2gen configuration using Viper.
// Precedence (lowest to highest): defaults < system < user < project < env vars.
func Load() (*Config, error) {
	mu.Lock()
	defer mu.Unlock()

	if globalConfig != nil {
		return globalConfig, nil
	}

	v, err := initViper()
	if err != nil {
		return nil, err
	}

	config, err := LoadWithViper(v)
	if err != nil {
		return nil, err
	}

	globalConfig = config
	return globalConfig, nil
}

// GetViper returns the Viper instance for advanced configuration access
func GetViper() (*viper.Viper, error) {
	mu.Lock()
	defer mu.Unlock()
	return initViper()
}

// LoadWithViper loads configuration using a provided Viper instance
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &config, nil
}

// LoadFromFile loads configuration from a specific file path.
// Environment variables still override values from the file.
func LoadFromFile(configPath string) (*Config, error) {
	v := newViper()
	if err := mergeConfigFile(v, SourceInfo{Source: SourceFile, Path: configPath}); err != nil {
		return nil, err
	}

	config, err := LoadWithViper(v)
	if err != nil {
		return nil, errors.Wrapf(err, "config file %s", configPath)
	}
	return config, nil
}

// Reset clears the cached configuration (useful for testing)
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	globalConfig = nil
	viperInstance = nil
	ConfigSources = make(map[string]SourceInfo)
}

// newViper returns a Viper with defaults and environment binding but no files.
func newViper() *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)
	return v
}

// initViper initializes Viper with configuration sources and defaults.
// A config file that exists but cannot be read or parsed is an error; the
// instance is not cached so the next call retries.
func initViper() (*viper.Viper, error) {
	if viperInstance != nil {
		return viperInstance, nil
	}

	v := newViper()
	if err := mergeConfigFiles(v); err != nil {
		ConfigSources = make(map[string]SourceInfo)
		return nil, err
	}

	viperInstance = v
	return v, nil
}

// FindProjectConfig searches for r2gen.toml from dir up to the filesystem root.
// Returns the path to the first file found, or empty string if none found.
func FindProjectConfig(dir string) string {
	for {
		path := filepath.Join(dir, ProjectConfigName)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// configPaths lists candidate config files in precedence order, lowest first.
func configPaths() []SourceInfo {
	paths := []SourceInfo{{Source: SourceSystem, Path: SystemConfigPath}}

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, SourceInfo{Source: SourceUser, Path: filepath.Join(home, UserConfigDir, UserConfigName)})
	}

	if wd, err := os.Getwd(); err == nil {
		if project := FindProjectConfig(wd); project != "" {
			paths = append(paths, SourceInfo{Source: SourceProject, Path: project})
		}
	}
	return paths
}

// mergeConfigFiles merges existing configuration files into v in precedence order.
// Only files that do not exist are skipped.
func mergeConfigFiles(v *viper.Viper) error {
	for _, candidate := range configPaths() {
		if _, err := os.Stat(candidate.Path); os.IsNotExist(err) {
			continue
		}
		if err := mergeConfigFile(v, candidate); err != nil {
			return errors.WithHint(errors.Wrapf(err, "%s config", candidate.Source),
				"fix the file or remove it to use the built-in defaults")
		}
	}
	return nil
}

// mergeConfigFile reads one TOML file and merges it into v, recording which
// keys it set.
func mergeConfigFile(v *viper.Viper, file SourceInfo) error {
	fileViper := viper.New()
	fileViper.SetConfigFile(file.Path)
	fileViper.SetConfigType("toml")
	if err := fileViper.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "failed to read config file %s", file.Path)
	}

	settings := fileViper.AllSettings()
	if err := v.MergeConfigMap(settings); err != nil {
		return errors.Wrapf(err, "failed to merge config file %s", file.Path)
	}
	recordFileSources(settings, "", file)
	return nil
}
