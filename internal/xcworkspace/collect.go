package xcworkspace

import (
	"log/slog"
	"path/filepath"
	"strings"
)

// ProjectSuffix is the reserved extension marking a project root directory.
const ProjectSuffix = ".xcodeproj"

// CollectProjects walks the tree depth-first in document order and resolves
// every FileRef to a candidate project path. Non-project references are
// filtered by suffix, duplicates are dropped, and unresolvable nodes are
// skipped without aborting the traversal. The returned paths are normalized
// and absolute-or-workspace-relative-joined, in first-seen order.
func CollectProjects(nodes []Node, workspaceDir string, logger *slog.Logger) []string {
	if logger == nil {
		logger = slog.Default()
	}
	c := &collector{
		workspaceDir: workspaceDir,
		parentDir:    filepath.Dir(workspaceDir),
		seen:         make(map[string]bool),
		log:          logger,
	}
	c.visit(nodes, nil)
	return c.paths
}

type collector struct {
	workspaceDir string
	parentDir    string
	seen         map[string]bool
	paths        []string
	log          *slog.Logger
}

func (c *collector) visit(nodes []Node, ancestors []*Group) {
	for _, node := range nodes {
		switch n := node.(type) {
		case *FileRef:
			c.addCandidate(n.Location, ancestors)
		case *Group:
			// A group without a location still contributes its children;
			// they resolve against the remaining chain.
			c.visit(n.Children, append(ancestors, n))
		}
	}
}

func (c *collector) addCandidate(loc Location, ancestors []*Group) {
	// The common case: the workspace lives inside a project. Every reference
	// then points at the enclosing project regardless of its declared anchor.
	if strings.HasSuffix(c.parentDir, ProjectSuffix) {
		c.add(c.parentDir)
		return
	}

	path, err := ResolvePath(loc, ancestors, c.workspaceDir)
	if err != nil {
		c.log.Debug("skipping workspace node", "location", loc.String(), "reason", err)
		return
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(c.parentDir, path)
	}
	c.add(filepath.Clean(path))
}

func (c *collector) add(path string) {
	if !strings.HasSuffix(path, ProjectSuffix) {
		return
	}
	if c.seen[path] {
		return
	}
	c.seen[path] = true
	c.paths = append(c.paths, path)
}
