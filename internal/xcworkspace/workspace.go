// Package xcworkspace resolves an Xcode workspace's on-disk tree of group
// and file-reference nodes into a flat, deduplicated list of projects.
package xcworkspace

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/savbell/xcproj/internal/project"
)

// ContentsFileName is the XML document inside every .xcworkspace bundle.
const ContentsFileName = "contents.xcworkspacedata"

// Workspace is the resolver entry point. The project list is parsed once
// per workspace and memoized for the lifetime of the handle; Invalidate
// resets the cache for external callers reacting to on-disk changes.
type Workspace struct {
	root string
	log  *slog.Logger

	projects atomic.Pointer[[]*project.Project]
}

// Open creates a handle for the workspace bundle at root. A bare .xcodeproj
// path is also accepted and treated as a degenerate single-project
// workspace. No I/O happens until Projects is called.
func Open(root string, logger *slog.Logger) *Workspace {
	if logger == nil {
		logger = slog.Default()
	}
	return &Workspace{root: root, log: logger}
}

// Root returns the path the workspace was opened with.
func (w *Workspace) Root() string {
	return w.root
}

// Name returns the workspace bundle's stem.
func (w *Workspace) Name() string {
	base := filepath.Base(w.root)
	base = strings.TrimSuffix(base, ".xcworkspace")
	return strings.TrimSuffix(base, ProjectSuffix)
}

// Projects resolves the workspace into its ordered-unique project list.
// A missing or unparseable workspace document fails the whole resolution;
// everything node- or project-local is skipped or deferred instead.
func (w *Workspace) Projects() ([]*project.Project, error) {
	if cached := w.projects.Load(); cached != nil {
		return *cached, nil
	}

	paths, err := w.collect()
	if err != nil {
		return nil, err
	}

	projects := make([]*project.Project, len(paths))
	for i, p := range paths {
		projects[i] = project.New(p, w.log)
	}

	w.projects.Store(&projects)
	return projects, nil
}

// Invalidate drops the memoized project list so the next Projects call
// re-reads the workspace from disk.
func (w *Workspace) Invalidate() {
	w.projects.Store(nil)
}

func (w *Workspace) collect() ([]string, error) {
	if strings.HasSuffix(w.root, ProjectSuffix) {
		return []string{filepath.Clean(w.root)}, nil
	}

	data, err := os.ReadFile(filepath.Join(w.root, ContentsFileName))
	if err != nil {
		return nil, fmt.Errorf("reading workspace %s: %w", w.root, err)
	}

	tree, err := ParseTree(data)
	if err != nil {
		return nil, fmt.Errorf("parsing workspace %s: %w", w.root, err)
	}

	return CollectProjects(tree, w.root, w.log), nil
}

// Find locates a workspace in dir, preferring an .xcworkspace bundle over a
// bare .xcodeproj, mirroring how xcodebuild itself picks a container.
func Find(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for _, pattern := range []string{"*.xcworkspace", "*" + ProjectSuffix} {
		matches, err := filepath.Glob(filepath.Join(absDir, pattern))
		if err == nil && len(matches) > 0 {
			return matches[0], nil
		}
	}

	return "", fmt.Errorf("no workspace or project found in %s", dir)
}
