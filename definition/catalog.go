package definition

import (
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/pipeforge/pipeforge/errors"
)

// Catalog holds definition registrations in registration order. The order
// is the discovery order: no sorting is imposed on top of it.
type Catalog struct {
	mu      sync.RWMutex
	order   []string
	regs    map[string]Registration
	version string // pipeforge version for CoreVersion constraint checks
}

// NewCatalog creates an empty catalog. coreVersion is the running pipeforge
// version that registration CoreVersion constraints are checked against.
func NewCatalog(coreVersion string) *Catalog {
	return &Catalog{
		regs:    make(map[string]Registration),
		version: coreVersion,
	}
}

// Register adds a definition registration to the catalog.
// Returns an error on a name conflict, a nil constructor, or an
// incompatible CoreVersion constraint.
func (c *Catalog) Register(reg Registration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if reg.Name == "" {
		return errors.New("registration has no name")
	}
	if reg.New == nil {
		return errors.Newf("registration %q has no constructor", reg.Name)
	}
	if _, exists := c.regs[reg.Name]; exists {
		return errors.Newf("definition already registered: %s", reg.Name)
	}
	if err := c.validateVersion(reg); err != nil {
		return errors.Wrapf(err, "version incompatible for %s", reg.Name)
	}

	c.regs[reg.Name] = reg
	c.order = append(c.order, reg.Name)
	return nil
}

// Registrations returns all registrations in registration order.
func (c *Catalog) Registrations() []Registration {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Registration, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.regs[name])
	}
	return out
}

// Len returns the number of registrations.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}

// validateVersion checks a registration's CoreVersion constraint against
// the running pipeforge version.
func (c *Catalog) validateVersion(reg Registration) error {
	if reg.CoreVersion == "" {
		// No constraint specified
		return nil
	}

	coreVer, err := semver.NewVersion(c.version)
	if err != nil {
		return errors.Wrapf(err, "invalid pipeforge version %s", c.version)
	}

	constraint, err := semver.NewConstraint(reg.CoreVersion)
	if err != nil {
		return errors.Wrapf(err, "invalid version constraint %s", reg.CoreVersion)
	}

	if !constraint.Check(coreVer) {
		return errors.Newf("definition requires pipeforge %s, but running %s", reg.CoreVersion, c.version)
	}
	return nil
}

// The default catalog is the process-wide registration point that artifact
// init functions write into. It is installed exactly once per run, before
// the artifact is opened, and never torn down: the process exits after one
// run.
var (
	defaultCatalog *Catalog
	defaultMu      sync.RWMutex
)

// Install sets the process-wide default catalog. Calling it twice is a
// programming error and panics.
func Install(c *Catalog) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultCatalog != nil {
		panic("default catalog already installed - call Install only once")
	}
	defaultCatalog = c
}

// Default returns the process-wide default catalog, or nil if none is
// installed.
func Default() *Catalog {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultCatalog
}

// ResetDefault clears the process-wide default catalog (useful for testing).
func ResetDefault() {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultCatalog = nil
}

// Register registers a definition with the default catalog.
func Register(reg Registration) error {
	defaultMu.RLock()
	defer defaultMu.RUnlock()

	if defaultCatalog == nil {
		return errors.New("default catalog not installed")
	}
	return defaultCatalog.Register(reg)
}

// MustRegister registers a definition with the default catalog and panics
// on failure. Intended for artifact init functions, where a registration
// failure means the artifact itself is malformed; the panic surfaces as a
// load error.
func MustRegister(reg Registration) {
	if err := Register(reg); err != nil {
		panic(err)
	}
}
