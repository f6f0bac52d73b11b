// Package errors provides error handling for r2gen.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Hints and details for users
//   - Marking errors with sentinels without changing their message
//
// Usage:
//
//	// Wrap with context
//	if err := writeFile(); err != nil {
//	    return errors.Wrap(err, "failed to write R2.java")
//	}
//
//	// Classify an underlying failure
//	return errors.Mark(err, errors.ErrOutputPath)
//
//	// Check errors
//	if errors.Is(err, errors.ErrSymbolTableAccess) {
//	    // input could not be read
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
	Mark         = crdb.Mark
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Assertions
var (
	AssertionFailedf    = crdb.AssertionFailedf
	HasAssertionFailure = crdb.HasAssertionFailure
)

// Sentinel errors for the failure classes of one generation.
// Use these with errors.Is(); attach them with errors.Mark() or errors.Wrap().
var (
	// ErrSymbolTableAccess indicates the symbol table is missing or unreadable
	ErrSymbolTableAccess = New("symbol table not readable")

	// ErrOutputPath indicates the output directory or file could not be written
	ErrOutputPath = New("output path not writable")

	// ErrUnknownSyntax indicates an output syntax selector outside the supported set
	ErrUnknownSyntax = New("unknown output syntax")

	// ErrInvalidParams indicates a missing or malformed generation parameter
	ErrInvalidParams = New("invalid generation parameters")

	// ErrOutputCollision indicates two generations would write the same file
	ErrOutputCollision = New("output path collision")
)

// IsInputError reports whether err was caused by the symbol table input.
func IsInputError(err error) bool {
	return err != nil && Is(err, ErrSymbolTableAccess)
}

// IsOutputError reports whether err was caused by writing generated output.
func IsOutputError(err error) bool {
	return err != nil && IsAny(err, ErrOutputPath, ErrOutputCollision)
}

// IsUsageError reports whether err stems from caller-supplied parameters.
func IsUsageError(err error) bool {
	return err != nil && IsAny(err, ErrInvalidParams, ErrUnknownSyntax)
}
