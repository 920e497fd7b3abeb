package pipeline

import (
	"os"
	"path/filepath"

	"github.com/pipeforge/pipeforge/errors"
)

// Base binds a pipeline value to the file it publishes to. It satisfies
// the definition contract, so most definitions are just a Base (or a type
// embedding one) returned from a registered constructor.
type Base struct {
	// DefinitionName identifies the definition in logs. Defaults to the
	// pipeline's own name when empty.
	DefinitionName string

	// Path is the target file, absolute or relative to the working
	// directory.
	Path string

	// Spec is the pipeline to render.
	Spec *Pipeline
}

// Name returns the definition's display name.
func (b *Base) Name() string {
	if b.DefinitionName != "" {
		return b.DefinitionName
	}
	if b.Spec != nil {
		return b.Spec.Name
	}
	return ""
}

// TargetPath returns the file this definition publishes to.
func (b *Base) TargetPath() string {
	return b.Path
}

// Validate checks the bound pipeline.
func (b *Base) Validate() error {
	if b.Spec == nil {
		return errors.New("definition has no pipeline")
	}
	return b.Spec.Validate()
}

// Publish renders the pipeline and overwrites the target file, creating
// parent directories as needed. The write is not atomic: a crash mid-write
// can leave a partial file, which the next run classifies as changed.
func (b *Base) Publish() error {
	data, err := Render(b.Spec)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(b.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "failed to create output directory %s", dir)
		}
	}
	if err := os.WriteFile(b.Path, data, 0644); err != nil {
		return errors.Wrapf(err, "failed to write %s", b.Path)
	}
	return nil
}
