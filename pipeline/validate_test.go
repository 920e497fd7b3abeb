package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPipeline() *Pipeline {
	return &Pipeline{
		Name:    "ci",
		Trigger: []string{"main"},
		Stages: []Stage{
			{
				Stage: "build",
				Jobs: []Job{
					{Job: "compile", Steps: []Step{Bash("Build", "make build")}},
				},
			},
			{
				Stage:     "test",
				DependsOn: []string{"build"},
				Jobs: []Job{
					{Job: "unit", Steps: []Step{Bash("Unit tests", "make test")}},
				},
			},
		},
	}
}

func TestValidateAcceptsWellFormedPipeline(t *testing.T) {
	require.NoError(t, validPipeline().Validate())
}

func TestValidateRules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Pipeline)
		wantErr string
	}{
		{
			name:    "no stages",
			mutate:  func(p *Pipeline) { p.Stages = nil },
			wantErr: "no stages",
		},
		{
			name:    "unnamed stage",
			mutate:  func(p *Pipeline) { p.Stages[0].Stage = "" },
			wantErr: "stage has no name",
		},
		{
			name:    "duplicate stage",
			mutate:  func(p *Pipeline) { p.Stages[1].Stage = "build" },
			wantErr: "duplicate stage",
		},
		{
			name:    "stage without jobs",
			mutate:  func(p *Pipeline) { p.Stages[0].Jobs = nil },
			wantErr: "no jobs",
		},
		{
			name:    "unnamed job",
			mutate:  func(p *Pipeline) { p.Stages[0].Jobs[0].Job = "" },
			wantErr: "job has no name",
		},
		{
			name: "duplicate job",
			mutate: func(p *Pipeline) {
				p.Stages[0].Jobs = append(p.Stages[0].Jobs, Job{Job: "compile", Steps: []Step{Bash("x", "y")}})
			},
			wantErr: "duplicate job",
		},
		{
			name:    "job without steps",
			mutate:  func(p *Pipeline) { p.Stages[0].Jobs[0].Steps = nil },
			wantErr: "no steps",
		},
		{
			name:    "empty script",
			mutate:  func(p *Pipeline) { p.Stages[0].Jobs[0].Steps = []Step{Script{}} },
			wantErr: "empty script",
		},
		{
			name:    "unknown dependency",
			mutate:  func(p *Pipeline) { p.Stages[1].DependsOn = []string{"deploy"} },
			wantErr: "unknown stage",
		},
		{
			name:    "self dependency",
			mutate:  func(p *Pipeline) { p.Stages[1].DependsOn = []string{"test"} },
			wantErr: "depends on itself",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPipeline()
			tt.mutate(p)
			err := p.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateForwardDependency(t *testing.T) {
	p := validPipeline()
	// A dependency on a later stage is legal; ordering is the CI
	// vendor's concern, existence is ours.
	p.Stages[0].DependsOn = []string{"test"}
	require.NoError(t, p.Validate())
}
