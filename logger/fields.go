package logger

import "go.uber.org/zap"

// Standard field names for consistent structured logging across r2gen.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Inputs
	FieldSymbolTable = "symbol_table"
	FieldPackage     = "package"
	FieldClass       = "class"
	FieldSyntax      = "syntax"
	FieldTarget      = "target"

	// Outputs
	FieldOutputDir = "output_dir"
	FieldFile      = "file"
	FieldLine      = "line"
	FieldBytes     = "bytes"

	// Counts
	FieldSymbols = "symbols"
	FieldGroups  = "groups"
	FieldSkipped = "skipped"
	FieldCount   = "count"

	// Timing
	FieldDurationMS = "duration_ms"

	// Errors
	FieldError  = "error"
	FieldReason = "reason"

	// Components
	FieldComponent = "component"
)

// ComponentLogger returns a named logger for a specific component.
// Long-lived values should call it when they log rather than keep the
// result, since Initialize replaces the global Logger.
//
// Example:
//
//	func (g *Generator) log() *zap.SugaredLogger {
//	    return logger.ComponentLogger("generate")
//	}
func ComponentLogger(component string) *zap.SugaredLogger {
	return Logger.Named(component)
}
