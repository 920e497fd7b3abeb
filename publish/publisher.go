// Package publish drives the validate → publish → classify cycle over a
// definition catalog and detects drift in the published files.
package publish

import (
	"context"

	"github.com/google/uuid"
	"github.com/pipeforge/pipeforge/definition"
	"github.com/pipeforge/pipeforge/errors"
	"github.com/pipeforge/pipeforge/logger"
	"go.uber.org/zap"
)

// Options configures a Publisher.
type Options struct {
	// FailIfChanged turns any Created/Changed classification into an
	// overall run failure. The write still happens; only the verdict
	// changes.
	FailIfChanged bool

	// Logger defaults to the global logger.
	Logger *zap.SugaredLogger
}

// Publisher runs the publish cycle. Definitions are processed one at a
// time in discovery order; publish and fingerprint steps never interleave
// across definitions, so two definitions sharing a target path resolve
// deterministically (last write wins).
type Publisher struct {
	opts Options
	log  *zap.SugaredLogger
}

// New creates a Publisher.
func New(opts Options) *Publisher {
	log := opts.Logger
	if log == nil {
		log = logger.Named("publish")
	}
	return &Publisher{opts: opts, log: log}
}

// Run discovers every definition in the catalog and, for each one in
// order: resolves its target path, validates it, publishes it, and
// classifies the write by comparing before/after content fingerprints.
//
// Per-definition failures are recorded and logged, and the loop continues:
// one bad definition never blocks publishing the others. Discovery
// failures and an empty catalog are fatal and return an error with no
// RunResult.
func (p *Publisher) Run(ctx context.Context, catalog *definition.Catalog) (*RunResult, error) {
	discovered, err := definition.Discover(catalog)
	if err != nil {
		return nil, err
	}
	if len(discovered) == 0 {
		return nil, errors.WithHint(
			errors.WithStack(errors.ErrNoDefinitions),
			"check that the artifact registers its definitions in an init function")
	}

	result := &RunResult{
		RunID:         uuid.NewString(),
		FailIfChanged: p.opts.FailIfChanged,
	}
	log := p.log.With("run_id", result.RunID)
	log.Infof("Discovered %d pipeline definition(s)", len(discovered))

	for _, d := range discovered {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "run interrupted")
		}
		result.Reports = append(result.Reports, p.publishOne(log, d))
	}
	return result, nil
}

// publishOne runs the full cycle for a single definition and returns its
// terminal report. Definitions come from loaded artifacts, so every call
// into one is guarded against panics; a panicking definition fails alone.
func (p *Publisher) publishOne(log *zap.SugaredLogger, d definition.Discovered) Report {
	name := d.Name
	log.Infof("%s:", name)

	path, err := guardString(d.Definition.TargetPath)
	if err == nil && path == "" {
		err = errors.Newf("definition %q returned an empty target path", name)
	}
	if err != nil {
		log.Errorw("Failed to resolve target path", "definition", name, "error", err)
		return Report{Definition: name, Outcome: OutcomePublishError, Err: err}
	}

	log.Infof("    Validating pipeline...")
	if err := guard(d.Definition.Validate); err != nil {
		log.Errorw("Pipeline validation failed", "definition", name, "error", err)
		return Report{Definition: name, Path: path, Outcome: OutcomeValidationFailed, Err: err}
	}

	pre := Snapshot(path)
	if !pre.Present() {
		log.Infof("    This pipeline hasn't been published yet!")
	}

	if err := guard(d.Definition.Publish); err != nil {
		log.Errorw("Failed to publish pipeline", "definition", name, "error", err)
		return Report{Definition: name, Path: path, Outcome: OutcomePublishError, Err: err}
	}

	post := Snapshot(path)
	log.Debugw("Fingerprints", "definition", name, "before", pre, "after", post)

	outcome := classify(pre, post)
	switch outcome {
	case OutcomeCreated:
		log.Infof("    Created at %s", path)
	case OutcomeUnchanged:
		log.Infof("    No new changes to publish")
	case OutcomeChanged:
		log.Infof("    Published new changes to %s", path)
	}
	return Report{Definition: name, Path: path, Outcome: outcome}
}

// classify compares before/after fingerprints of one publish call.
func classify(pre, post Fingerprint) Outcome {
	switch {
	case !pre.Present():
		return OutcomeCreated
	case pre.Equal(post):
		return OutcomeUnchanged
	default:
		return OutcomeChanged
	}
}

// guard invokes fn, converting a panic into an error.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf("panic: %v", r)
		}
	}()
	return fn()
}

// guardString invokes fn, converting a panic into an error.
func guardString(fn func() string) (s string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf("panic: %v", r)
		}
	}()
	return fn(), nil
}
