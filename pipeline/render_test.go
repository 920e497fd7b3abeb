package pipeline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderIsDeterministic(t *testing.T) {
	p := validPipeline()
	p.Variables = map[string]string{"GOFLAGS": "-mod=vendor", "CI": "true"}

	first, err := Render(p)
	require.NoError(t, err)
	second, err := Render(p)
	require.NoError(t, err)

	// Byte-identical output is what makes fingerprint-based drift
	// detection usable at all.
	assert.Equal(t, first, second)
}

func TestRenderStartsWithHeader(t *testing.T) {
	out, err := Render(validPipeline())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), Header))
}

func TestRenderFieldShapes(t *testing.T) {
	out, err := Render(validPipeline())
	require.NoError(t, err)
	text := string(out)

	assert.Contains(t, text, "name: ci")
	assert.Contains(t, text, "trigger:\n")
	assert.Contains(t, text, "- stage: build")
	assert.Contains(t, text, "job: compile")
	assert.Contains(t, text, "script: make build")
	assert.Contains(t, text, "displayName: Build")
	// omitempty keeps unset fields out of the output entirely.
	assert.NotContains(t, text, "variables")
	assert.NotContains(t, text, "continueOnError")
}

func TestRenderStepVariants(t *testing.T) {
	p := &Pipeline{
		Stages: []Stage{{
			Stage: "build",
			Jobs: []Job{{
				Job: "all",
				Steps: []Step{
					CheckoutSelf(),
					Script{Script: "echo one\necho two", DisplayName: "Multi-line"},
					Template{Template: "steps/lint.yml", Parameters: map[string]any{"strict": true}},
				},
			}},
		}},
	}

	out, err := Render(p)
	require.NoError(t, err)
	text := string(out)

	assert.Contains(t, text, "checkout: self")
	// Multi-line scripts render as a block scalar.
	assert.Contains(t, text, "script: |-")
	assert.Contains(t, text, "template: steps/lint.yml")
	assert.Contains(t, text, "strict: true")
}

func TestRenderNilPipeline(t *testing.T) {
	_, err := Render(nil)
	require.Error(t, err)
}
