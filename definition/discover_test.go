package definition

import (
	"testing"

	"github.com/pipeforge/pipeforge/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverReturnsInstancesInOrder(t *testing.T) {
	c := NewCatalog("1.2.3")
	for _, name := range []string{"release", "ci", "nightly"} {
		require.NoError(t, c.Register(testRegistration(name)))
	}

	discovered, err := Discover(c)
	require.NoError(t, err)
	require.Len(t, discovered, 3)

	assert.Equal(t, "release", discovered[0].Name)
	assert.Equal(t, "ci", discovered[1].Name)
	assert.Equal(t, "nightly", discovered[2].Name)
	for _, d := range discovered {
		assert.Equal(t, d.Name, d.Definition.Name())
	}
}

func TestDiscoverEmptyCatalog(t *testing.T) {
	discovered, err := Discover(NewCatalog("1.2.3"))
	require.NoError(t, err)
	assert.Empty(t, discovered)
}

func TestDiscoverConstructorPanicIsFatal(t *testing.T) {
	c := NewCatalog("1.2.3")
	require.NoError(t, c.Register(testRegistration("good")))
	require.NoError(t, c.Register(Registration{
		Name: "broken",
		New:  func() any { panic("no default state") },
	}))

	_, err := Discover(c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `constructor for "broken" panicked`)
}

func TestDiscoverNilInstanceIsFatal(t *testing.T) {
	c := NewCatalog("1.2.3")
	require.NoError(t, c.Register(Registration{
		Name: "empty",
		New:  func() any { return nil },
	}))

	_, err := Discover(c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "returned nil")
}

func TestDiscoverNonDefinitionIsFatal(t *testing.T) {
	c := NewCatalog("1.2.3")
	require.NoError(t, c.Register(Registration{
		Name: "not-a-definition",
		New:  func() any { return 42 },
	}))

	_, err := Discover(c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotDefinition))
}
