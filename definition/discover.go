package definition

import (
	"github.com/pipeforge/pipeforge/errors"
)

// Discovered pairs a catalog registration with the definition instance
// built from its constructor. The instance is owned by the caller for one
// publish cycle and is never shared across runs.
type Discovered struct {
	Registration
	Definition Definition
}

// Discover instantiates every registration in the catalog, in registration
// order, and returns the resulting definition instances.
//
// Any instantiation failure is fatal for the whole run: a constructor that
// panics, returns nil, or returns a value without the definition capability
// surface signals a malformed artifact, and the caller cannot safely
// continue publishing from it.
func Discover(catalog *Catalog) ([]Discovered, error) {
	regs := catalog.Registrations()
	out := make([]Discovered, 0, len(regs))

	for _, reg := range regs {
		v, err := construct(reg)
		if err != nil {
			return nil, err
		}
		def, ok := AsDefinition(v)
		if !ok {
			return nil, errors.Wrapf(errors.ErrNotDefinition, "registration %q (%T)", reg.Name, v)
		}
		out = append(out, Discovered{Registration: reg, Definition: def})
	}
	return out, nil
}

// construct runs a registration's constructor, converting a panic into an
// instantiation error.
func construct(reg Registration) (v any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf("constructor for %q panicked: %v", reg.Name, r)
		}
	}()

	v = reg.New()
	if v == nil {
		return nil, errors.Newf("constructor for %q returned nil", reg.Name)
	}
	return v, nil
}
