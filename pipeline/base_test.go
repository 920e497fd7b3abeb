package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pipeforge/pipeforge/definition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseSatisfiesDefinitionContract(t *testing.T) {
	var _ definition.Definition = (*Base)(nil)
}

func TestBaseNameFallsBackToPipelineName(t *testing.T) {
	b := &Base{Spec: validPipeline()}
	assert.Equal(t, "ci", b.Name())

	b.DefinitionName = "ci-pipeline"
	assert.Equal(t, "ci-pipeline", b.Name())
}

func TestBaseValidate(t *testing.T) {
	b := &Base{Path: "out.yml"}
	require.ErrorContains(t, b.Validate(), "no pipeline")

	b.Spec = validPipeline()
	require.NoError(t, b.Validate())

	b.Spec.Stages = nil
	require.Error(t, b.Validate())
}

func TestBasePublishWritesRenderedPipeline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pipelines", "ci.yml")
	b := &Base{Path: path, Spec: validPipeline()}

	require.NoError(t, b.Publish())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	rendered, err := Render(b.Spec)
	require.NoError(t, err)
	assert.Equal(t, rendered, data, "published bytes must be exactly the rendered form")
}

// nightlyDefinition gets the whole contract through the embedded Base,
// the common shape for real definitions.
type nightlyDefinition struct {
	Base
}

func TestEmbeddedBaseIsDiscovered(t *testing.T) {
	c := definition.NewCatalog("1.0.0")
	require.NoError(t, c.Register(definition.Registration{
		Name: "nightly",
		New: func() any {
			return &nightlyDefinition{Base{
				DefinitionName: "nightly",
				Path:           "nightly.yml",
				Spec:           validPipeline(),
			}}
		},
	}))

	discovered, err := definition.Discover(c)
	require.NoError(t, err)
	require.Len(t, discovered, 1)
	assert.Equal(t, "nightly", discovered[0].Definition.Name())
	assert.Equal(t, "nightly.yml", discovered[0].Definition.TargetPath())
	assert.NoError(t, discovered[0].Definition.Validate())
}

func TestBasePublishOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ci.yml")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0644))

	b := &Base{Path: path, Spec: validPipeline()}
	require.NoError(t, b.Publish())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale")
}
