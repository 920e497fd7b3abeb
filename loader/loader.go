// Package loader opens a compiled definition artifact and produces the
// catalog of definitions it registers.
//
// Artifacts are Go plugins. Opening one runs its init functions, which
// register definition constructors into the process-wide default catalog.
// Required sibling artifacts (shared definition or serialization libraries
// split into their own plugins) are opened first, from the same directory
// as the primary, so anything they register is in place before the primary
// loads.
//
// Loading is one-shot: the default catalog it installs is process-wide
// state, registered exactly once per run and never torn down. The process
// exits after one run.
package loader

import (
	"os"
	"path/filepath"
	"plugin"

	"github.com/pipeforge/pipeforge/definition"
	"github.com/pipeforge/pipeforge/errors"
	"github.com/pipeforge/pipeforge/logger"
	"github.com/pipeforge/pipeforge/version"
	"go.uber.org/zap"
)

// Options configures a Loader.
type Options struct {
	// Required lists sibling artifact file names that must be loadable
	// from the primary artifact's directory. A missing or corrupt
	// required artifact aborts the run.
	Required []string

	// Logger defaults to the global logger.
	Logger *zap.SugaredLogger
}

// Loader opens compiled definition artifacts.
type Loader struct {
	required []string
	log      *zap.SugaredLogger

	// open is swappable for tests; production loaders open real Go
	// plugins.
	open func(path string) error
}

// New creates a Loader.
func New(opts Options) *Loader {
	log := opts.Logger
	if log == nil {
		log = logger.Named("loader")
	}
	return &Loader{
		required: opts.Required,
		log:      log,
		open:     openPlugin,
	}
}

// Load opens the artifact at path and returns the catalog of definitions
// it registered. It installs the default catalog first, so artifact init
// functions have somewhere to register into.
//
// Load is non-reentrant: a second call in the same process fails with
// ErrLoaderSealed, because plugin state and the default catalog cannot be
// unloaded.
func (l *Loader) Load(path string) (*definition.Catalog, error) {
	if path == "" {
		return nil, errors.New("no artifact path given")
	}
	if definition.Default() != nil {
		return nil, errors.WithStack(errors.ErrLoaderSealed)
	}
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, "artifact %s is not readable", path)
	}

	catalog := definition.NewCatalog(version.Version)
	definition.Install(catalog)

	dir := filepath.Dir(path)
	for _, name := range l.required {
		dep := filepath.Join(dir, name)
		l.log.Debugw("Loading required artifact", "path", dep)
		if err := l.open(dep); err != nil {
			return nil, errors.Wrapf(err, "required artifact %s could not be loaded", name)
		}
	}

	l.log.Debugw("Loading artifact", "path", path)
	if err := l.open(path); err != nil {
		return nil, errors.Wrapf(err, "failed to load artifact %s", path)
	}

	l.log.Infow("Artifact loaded", "path", path, "definitions", catalog.Len())
	return catalog, nil
}

// openPlugin opens a Go plugin, converting an init-time panic (for
// example from MustRegister on a duplicate name) into an error.
func openPlugin(path string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf("artifact initialization panicked: %v", r)
		}
	}()

	_, err = plugin.Open(path)
	return err
}
