package pipeline

import (
	"github.com/pipeforge/pipeforge/errors"
)

// Validate checks the pipeline's structural rules: at least one stage,
// stages have unique names and at least one job, jobs have unique names
// within their stage and at least one step, and stage dependencies
// reference stages that exist.
func (p *Pipeline) Validate() error {
	if len(p.Stages) == 0 {
		return errors.New("pipeline has no stages")
	}

	stageNames := make(map[string]bool, len(p.Stages))
	for _, s := range p.Stages {
		if s.Stage == "" {
			return errors.New("stage has no name")
		}
		if stageNames[s.Stage] {
			return errors.Newf("duplicate stage name %q", s.Stage)
		}
		stageNames[s.Stage] = true

		if err := s.validate(); err != nil {
			return errors.Wrapf(err, "stage %q", s.Stage)
		}
	}

	// Dependencies are checked after all stage names are known so forward
	// references validate.
	for _, s := range p.Stages {
		for _, dep := range s.DependsOn {
			if !stageNames[dep] {
				return errors.Newf("stage %q depends on unknown stage %q", s.Stage, dep)
			}
			if dep == s.Stage {
				return errors.Newf("stage %q depends on itself", s.Stage)
			}
		}
	}
	return nil
}

func (s *Stage) validate() error {
	if len(s.Jobs) == 0 {
		return errors.New("stage has no jobs")
	}

	jobNames := make(map[string]bool, len(s.Jobs))
	for _, j := range s.Jobs {
		if j.Job == "" {
			return errors.New("job has no name")
		}
		if jobNames[j.Job] {
			return errors.Newf("duplicate job name %q", j.Job)
		}
		jobNames[j.Job] = true

		if len(j.Steps) == 0 {
			return errors.Newf("job %q has no steps", j.Job)
		}
		for i, step := range j.Steps {
			if step == nil {
				return errors.Newf("job %q has a nil step at index %d", j.Job, i)
			}
			if sc, ok := step.(Script); ok && sc.Script == "" {
				return errors.Newf("job %q has an empty script step at index %d", j.Job, i)
			}
		}
	}
	return nil
}
