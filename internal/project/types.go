// Package project carries the resolved project handle handed to consumers:
// a normalized project path plus lazily-computed, memoized build
// configurations and schemes.
package project

import (
	"log/slog"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/savbell/xcproj/internal/pbxproj"
	"github.com/savbell/xcproj/internal/xcscheme"
)

// Scheme is a discovered preset bound to its owning project. Path is empty
// for the synthesized default.
type Scheme struct {
	Name    string
	Path    string
	Project *Project
}

// Project identifies one buildable unit by its normalized root path.
// Identity is the path; a collector's output never contains two Projects
// with equal paths. Immutable after construction except for the memoized
// lazy fields.
type Project struct {
	Path string

	log *slog.Logger

	// Lazy fields publish through atomics instead of locking: the underlying
	// computations are pure functions of on-disk state, so a first-access
	// race recomputes and discards rather than coordinating.
	configs atomic.Pointer[configResult]
	schemes atomic.Pointer[[]Scheme]

	discoverer xcscheme.Discoverer
}

type configResult struct {
	names []string
	err   error
}

// New creates a handle for the project rooted at path.
func New(path string, logger *slog.Logger) *Project {
	if logger == nil {
		logger = slog.Default()
	}
	return &Project{
		Path:       path,
		log:        logger,
		discoverer: xcscheme.Discoverer{Logger: logger},
	}
}

// Name returns the project directory's stem.
func (p *Project) Name() string {
	return strings.TrimSuffix(filepath.Base(p.Path), ".xcodeproj")
}

// Configurations returns the project's build configuration names,
// ordered-unique, parsing project.pbxproj on first use. A parse failure is
// fatal to this project only and is memoized like a success.
func (p *Project) Configurations() ([]string, error) {
	if cached := p.configs.Load(); cached != nil {
		return cached.names, cached.err
	}

	result := &configResult{}
	reader, err := pbxproj.Parse(p.Path, p.log)
	if err != nil {
		result.err = err
	} else {
		result.names = reader.Configurations()
	}

	p.configs.Store(result)
	return result.names, result.err
}

// Schemes discovers the project's schemes on first use. Never empty: a
// project without scheme files yields one synthesized default.
func (p *Project) Schemes() []Scheme {
	if cached := p.schemes.Load(); cached != nil {
		return *cached
	}

	discovered := p.discoverer.Discover(p.Path)
	schemes := make([]Scheme, len(discovered))
	for i, s := range discovered {
		schemes[i] = Scheme{Name: s.Name, Path: s.Path, Project: p}
	}

	p.schemes.Store(&schemes)
	return schemes
}

// Scheme returns the first scheme with the given name; shared schemes win
// over per-user ones by discovery order.
func (p *Project) Scheme(name string) (Scheme, bool) {
	for _, s := range p.Schemes() {
		if s.Name == name {
			return s, true
		}
	}
	return Scheme{}, false
}
