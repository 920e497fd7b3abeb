package publish

// Outcome classifies what happened to one definition during a run.
type Outcome string

const (
	// OutcomeValidationFailed means Validate rejected the definition;
	// nothing was written.
	OutcomeValidationFailed Outcome = "validation-failed"

	// OutcomePublishError means target-path resolution or the publish
	// call itself failed for this definition.
	OutcomePublishError Outcome = "publish-error"

	// OutcomeCreated means the target file did not exist before the run.
	OutcomeCreated Outcome = "created"

	// OutcomeUnchanged means the published bytes matched the existing file.
	OutcomeUnchanged Outcome = "unchanged"

	// OutcomeChanged means the published bytes differ from what was on
	// disk before the run.
	OutcomeChanged Outcome = "changed"
)

// Drifted reports whether the outcome counts as drift under the
// fail-if-changed strictness flag.
func (o Outcome) Drifted() bool {
	return o == OutcomeCreated || o == OutcomeChanged
}

// Report is the terminal per-definition result of one run. Reports are
// never mutated after assignment and are discarded at process end; there
// is no persisted history.
type Report struct {
	Definition string
	Path       string
	Outcome    Outcome
	Err        error
}

// RunResult aggregates all per-definition reports for one invocation.
type RunResult struct {
	// RunID tags the run's log lines.
	RunID string

	// FailIfChanged is the strictness flag the run was invoked with.
	FailIfChanged bool

	// Reports holds one report per discovered definition, in discovery
	// order.
	Reports []Report
}

// Success returns the run's overall verdict: failure only when
// FailIfChanged is set and at least one definition drifted. Per-definition
// validation and publish errors are localized failures, logged against
// their definition without failing the run. A failed verdict does not undo
// any write: the files are published even when the run is reported as
// failed.
func (r *RunResult) Success() bool {
	if !r.FailIfChanged {
		return true
	}
	for _, rep := range r.Reports {
		if rep.Outcome.Drifted() {
			return false
		}
	}
	return true
}

// Count returns how many reports carry the given outcome.
func (r *RunResult) Count(o Outcome) int {
	n := 0
	for _, rep := range r.Reports {
		if rep.Outcome == o {
			n++
		}
	}
	return n
}

// Drifted returns the reports classified as created or changed.
func (r *RunResult) Drifted() []Report {
	var out []Report
	for _, rep := range r.Reports {
		if rep.Outcome.Drifted() {
			out = append(out, rep)
		}
	}
	return out
}
