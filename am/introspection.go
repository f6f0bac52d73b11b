package am

import (
	"os"
	"sort"
	"strings"
)

// ConfigSource represents where a configuration value came from
type ConfigSource string

const (
	SourceDefault     ConfigSource = "default"
	SourceSystem      ConfigSource = "system"      // /etc/r2gen/config.toml
	SourceUser        ConfigSource = "user"        // ~/.r2gen/config.toml
	SourceProject     ConfigSource = "project"     // r2gen.toml found from the working directory
	SourceFile        ConfigSource = "file"        // --config
	SourceEnvironment ConfigSource = "environment" // R2GEN_* env vars
)

// SourceInfo tracks where a configuration value originated
type SourceInfo struct {
	Source ConfigSource `json:"source" yaml:"source"`
	Path   string       `json:"path,omitempty" yaml:"path,omitempty"` // File path or environment variable name
}

// SettingInfo contains metadata about a configuration setting
type SettingInfo struct {
	Key        string       `json:"key" yaml:"key"`
	Value      interface{}  `json:"value" yaml:"value"`
	Source     ConfigSource `json:"source" yaml:"source"`
	SourcePath string       `json:"source_path,omitempty" yaml:"source_path,omitempty"`
}

// ConfigSources maps flattened keys to the file that last set them.
// Populated while configuration files are merged.
var ConfigSources = make(map[string]SourceInfo)

func recordFileSources(settings map[string]interface{}, prefix string, info SourceInfo) {
	for key, value := range settings {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}
		if nested, ok := value.(map[string]interface{}); ok {
			recordFileSources(nested, fullKey, info)
			continue
		}
		ConfigSources[fullKey] = info
	}
}

// Introspect flattens settings into sorted keys annotated with their source.
// Environment variables win over files, files over defaults.
func Introspect(settings map[string]interface{}) []SettingInfo {
	var out []SettingInfo
	flattenSettingsWithSources(settings, "", &out)
	return out
}

func flattenSettingsWithSources(settings map[string]interface{}, prefix string, out *[]SettingInfo) {
	// Sort keys for deterministic iteration
	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := settings[key]
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		if nested, ok := value.(map[string]interface{}); ok {
			flattenSettingsWithSources(nested, fullKey, out)
			continue
		}

		info := SourceInfo{Source: SourceDefault, Path: "built-in default"}
		if si, ok := ConfigSources[fullKey]; ok {
			info = si
		}

		envKey := EnvKey(fullKey)
		if _, set := os.LookupEnv(envKey); set {
			info = SourceInfo{Source: SourceEnvironment, Path: envKey}
		}

		*out = append(*out, SettingInfo{
			Key:        fullKey,
			Value:      value,
			Source:     info.Source,
			SourcePath: info.Path,
		})
	}
}

// EnvKey is the environment variable that overrides key.
func EnvKey(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}
