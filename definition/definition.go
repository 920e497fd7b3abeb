// Package definition provides the pipeline-definition contract and the
// catalog that compiled artifacts register their definitions into.
//
// A definition is one pipeline's desired configuration: it knows where its
// rendered file lives, how to validate itself, and how to publish (render
// and write) itself. The publish pipeline only ever talks to definitions
// through this three-operation surface; the shape of the pipeline data
// behind it is the pipeline package's business.
//
// Artifacts register constructors from their init functions:
//
//	func init() {
//	    definition.MustRegister(definition.Registration{
//	        Name:        "ci",
//	        Version:     "1.4.0",
//	        CoreVersion: ">= 0.0.0-0",
//	        New:         func() any { return newCIPipeline() },
//	    })
//	}
package definition

// Definition is the capability surface every discovered pipeline definition
// must expose. Discovery is "find all registered values implementing this
// interface", with a structural fallback for values compiled against a
// different copy of this package (see AsDefinition).
type Definition interface {
	// Name identifies the definition in logs and summaries.
	Name() string

	// TargetPath returns the file this definition publishes to, absolute
	// or relative to the working directory. An empty result is a
	// per-definition error, not a crash.
	TargetPath() string

	// Validate checks the in-memory configuration. A validation failure
	// skips publishing for this definition only.
	Validate() error

	// Publish renders the current in-memory state to TargetPath,
	// overwriting the file. No atomicity is guaranteed: a crash mid-write
	// can leave a partial file.
	Publish() error
}

// Registration describes one definition constructor in the catalog.
type Registration struct {
	// Name is the catalog key. Must be unique within a process.
	Name string

	// Version is the definition library's own version (informational).
	Version string

	// CoreVersion is an optional semver constraint on the pipeforge
	// version this definition was built against. Empty means no
	// constraint.
	CoreVersion string

	// New constructs a fresh definition value. It takes no arguments; a
	// definition that cannot be built without arguments is malformed.
	New func() any
}
