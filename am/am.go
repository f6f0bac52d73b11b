// Package am holds r2gen's configuration: generation defaults, logging,
// batch settings and the targets a batch run generates.
package am

// Config represents the r2gen configuration
type Config struct {
	Generate GenerateConfig `mapstructure:"generate" toml:"generate" json:"generate" yaml:"generate"`
	Log      LogConfig      `mapstructure:"log" toml:"log" json:"log" yaml:"log"`
	Batch    BatchConfig    `mapstructure:"batch" toml:"batch" json:"batch" yaml:"batch"`
	Targets  []Target       `mapstructure:"targets" toml:"targets" json:"targets" yaml:"targets"`
}

// GenerateConfig holds defaults applied to every generation
type GenerateConfig struct {
	Syntax            string `mapstructure:"syntax" toml:"syntax" json:"syntax" yaml:"syntax" comment:"java or kotlin"`
	ClassName         string `mapstructure:"class_name" toml:"class_name" json:"class_name" yaml:"class_name"`
	LegacyAnnotations bool   `mapstructure:"legacy_annotations" toml:"legacy_annotations" json:"legacy_annotations" yaml:"legacy_annotations" comment:"android.support.annotation instead of androidx.annotation"`
}

// LogConfig configures logging
type LogConfig struct {
	JSON      bool `mapstructure:"json" toml:"json" json:"json" yaml:"json"`                     // JSON lines on stderr instead of console output
	Verbosity int  `mapstructure:"verbosity" toml:"verbosity" json:"verbosity" yaml:"verbosity"` // 0-3, same as -v count
}

// BatchConfig configures batch generation
type BatchConfig struct {
	Workers int `mapstructure:"workers" toml:"workers" json:"workers" yaml:"workers" comment:"concurrent generations (0 = one per CPU)"`
}

// Target is one generation run by `r2gen batch`, typically one build variant.
// Empty fields fall back to [generate].
type Target struct {
	Name              string `mapstructure:"name" toml:"name" json:"name" yaml:"name"`
	SymbolTable       string `mapstructure:"symbol_table" toml:"symbol_table" json:"symbol_table" yaml:"symbol_table"`
	OutputDir         string `mapstructure:"output_dir" toml:"output_dir" json:"output_dir" yaml:"output_dir"`
	Package           string `mapstructure:"package" toml:"package" json:"package" yaml:"package"`
	ClassName         string `mapstructure:"class_name" toml:"class_name,omitempty" json:"class_name,omitempty" yaml:"class_name,omitempty"`
	Syntax            string `mapstructure:"syntax" toml:"syntax,omitempty" json:"syntax,omitempty" yaml:"syntax,omitempty"`
	LegacyAnnotations *bool  `mapstructure:"legacy_annotations" toml:"legacy_annotations,omitempty" json:"legacy_annotations,omitempty" yaml:"legacy_annotations,omitempty"`
}

// Config file names
const (
	ProjectConfigName = "r2gen.toml"             // searched from the working directory upward
	UserConfigDir     = ".r2gen"                 // below the home directory
	UserConfigName    = "config.toml"            // inside UserConfigDir
	SystemConfigPath  = "/etc/r2gen/config.toml" // lowest file precedence
	EnvPrefix         = "R2GEN"                  // R2GEN_GENERATE_SYNTAX etc.
)

// File system constants
const (
	DefaultDirPermissions  = 0755 // Standard directory permissions (rwxr-xr-x)
	DefaultFilePermissions = 0644 // Standard file permissions (rw-r--r--)
)
