package pipeline

// Script runs a shell script. The Script field may be multi-line; it
// renders as a YAML block scalar.
type Script struct {
	Script           string            `yaml:"script"`
	DisplayName      string            `yaml:"displayName,omitempty"`
	WorkingDirectory string            `yaml:"workingDirectory,omitempty"`
	Env              map[string]string `yaml:"env,omitempty"`
	ContinueOnError  bool              `yaml:"continueOnError,omitempty"`
}

func (Script) isStep() {}

// Bash is a convenience constructor for a display-named script step.
func Bash(displayName, script string) Script {
	return Script{Script: script, DisplayName: displayName}
}

// Checkout checks out a repository. "self" refers to the pipeline's own
// repository.
type Checkout struct {
	Checkout   string `yaml:"checkout"`
	Clean      bool   `yaml:"clean,omitempty"`
	FetchDepth int    `yaml:"fetchDepth,omitempty"`
}

func (Checkout) isStep() {}

// CheckoutSelf returns a checkout step for the pipeline's own repository.
func CheckoutSelf() Checkout {
	return Checkout{Checkout: "self"}
}

// Template references a step template file with optional parameters.
type Template struct {
	Template   string         `yaml:"template"`
	Parameters map[string]any `yaml:"parameters,omitempty"`
}

func (Template) isStep() {}
