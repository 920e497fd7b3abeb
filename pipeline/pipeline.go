// Package pipeline is the declarative pipeline data model: typed records
// for stages, jobs, and steps, their validation rules, and deterministic
// YAML rendering. The publish pipeline treats all of this as data behind
// the definition contract.
package pipeline

// Pipeline is one CI/CD pipeline's desired configuration.
type Pipeline struct {
	Name      string            `yaml:"name,omitempty"`
	Trigger   []string          `yaml:"trigger,omitempty"`
	Variables map[string]string `yaml:"variables,omitempty"`
	Stages    []Stage           `yaml:"stages"`
}

// Stage is an ordered group of jobs. DependsOn names other stages that must
// complete first.
type Stage struct {
	Stage       string   `yaml:"stage"`
	DisplayName string   `yaml:"displayName,omitempty"`
	DependsOn   []string `yaml:"dependsOn,omitempty"`
	Jobs        []Job    `yaml:"jobs"`
}

// Job is a sequence of steps executed on one agent.
type Job struct {
	Job         string `yaml:"job"`
	DisplayName string `yaml:"displayName,omitempty"`
	Steps       []Step `yaml:"steps"`
}

// Step is one unit of work inside a job. Concrete step types (Script,
// Checkout, Template) implement it; the marker method keeps arbitrary
// values out of step lists while YAML rendering still sees the concrete
// struct.
type Step interface {
	isStep()
}
