// Package errors provides error handling for pipeforge.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Hints surfaced to users at higher verbosity
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrNoDefinitions) {
//	    // handle empty catalog
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
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
	GetAllHints = crdb.GetAllHints
)

// Error inspection
var (
	Is     = crdb.Is
	IsAny  = crdb.IsAny
	As     = crdb.As
	Unwrap = crdb.Unwrap
)

// Common sentinel errors for use across pipeforge.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrNoDefinitions indicates discovery found nothing to publish. An
	// empty catalog almost always means the wrong artifact was loaded,
	// so the run treats it as fatal misconfiguration.
	ErrNoDefinitions = New("no pipeline definitions discovered")

	// ErrNotDefinition indicates a registered value does not expose the
	// definition capability surface (name, target path, validate, publish).
	ErrNotDefinition = New("registered value is not a pipeline definition")

	// ErrLoaderSealed indicates a second Load attempt in the same process.
	// Artifact loading installs process-wide state and is one-shot.
	ErrLoaderSealed = New("artifact loader already ran in this process")
)
