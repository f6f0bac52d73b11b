package am

import (
	"github.com/spf13/viper"
)

// Default values
const (
	DefaultSyntax    = "java"
	DefaultClassName = "R2"
	DefaultWorkers   = 4
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Generation defaults
	v.SetDefault("generate.syntax", DefaultSyntax)
	v.SetDefault("generate.class_name", DefaultClassName)
	v.SetDefault("generate.legacy_annotations", false)

	// Logging defaults
	v.SetDefault("log.json", false)
	v.SetDefault("log.verbosity", 0)

	// Batch defaults
	v.SetDefault("batch.workers", DefaultWorkers)
}
