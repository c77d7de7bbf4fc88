// Package xcscheme discovers a project's build/run/test presets by scanning
// its shared and per-user scheme directories. Discovery never fails and
// never returns an empty result: a project without scheme files gets a
// synthesized default named after the project itself.
package xcscheme

import (
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/sync/errgroup"
)

const (
	// Suffix marks an individual scheme file.
	Suffix = ".xcscheme"
	// userDataSuffix marks one per-user directory under xcuserdata.
	userDataSuffix = ".xcuserdatad"
	// projectSuffix is stripped when naming the synthesized default.
	projectSuffix = ".xcodeproj"

	// maxDepth bounds the recursive scan below each root. Deep enough for
	// every layout Xcode produces, shallow enough that a pathological tree
	// cannot run away.
	maxDepth = 4
)

// Scheme is one discovered preset. Path is empty for the synthesized
// default.
type Scheme struct {
	Name string
	Path string
}

var schemeNamePattern = regexp.MustCompile(`xcschemes/(.+)\.xcscheme$`)

// name derives the scheme name from the file path, preferring the portion
// after the xcschemes directory and falling back to the plain basename when
// the path shape is unexpected.
func name(path string) string {
	if m := schemeNamePattern.FindStringSubmatch(filepath.ToSlash(path)); m != nil {
		return m[1]
	}
	return strings.TrimSuffix(filepath.Base(path), Suffix)
}

// Discoverer scans one project for schemes. The zero value is ready to use.
type Discoverer struct {
	// Limit caps the number of returned schemes when positive. In-flight
	// subdirectory scans still complete; the merged result is truncated so
	// the same tree always yields the same prefix.
	Limit  int
	Logger *slog.Logger
}

// Discover returns the project's schemes: shared schemes first, then
// per-user schemes, each group in directory-listing order. Missing
// directories and permission errors count as empty subtrees.
func (d *Discoverer) Discover(projectPath string) []Scheme {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}

	schemes := scanTree(filepath.Join(projectPath, "xcshareddata", "xcschemes"), 0)

	userRoot := filepath.Join(projectPath, "xcuserdata")
	if entries, err := os.ReadDir(userRoot); err == nil {
		for _, entry := range entries {
			if !entry.IsDir() || !strings.HasSuffix(entry.Name(), userDataSuffix) {
				continue
			}
			schemes = append(schemes, scanTree(filepath.Join(userRoot, entry.Name()), 0)...)
		}
	}

	if d.Limit > 0 && len(schemes) > d.Limit {
		schemes = schemes[:d.Limit]
	}

	if len(schemes) == 0 {
		logger.Debug("no scheme files found, synthesizing default", "project", projectPath)
		schemes = []Scheme{{
			Name: strings.TrimSuffix(filepath.Base(projectPath), projectSuffix),
		}}
	}
	return schemes
}

// Discover runs a zero-value Discoverer over the project.
func Discover(projectPath string) []Scheme {
	d := Discoverer{}
	return d.Discover(projectPath)
}

// scanTree lists one directory and fans out one goroutine per subdirectory,
// overlapping I/O latency. Results are merged back in listing order so
// concurrency never reorders observable output.
func scanTree(root string, depth int) []Scheme {
	entries, err := os.ReadDir(root)
	if err != nil {
		// Missing or unreadable subtree: zero matches, not an error.
		return nil
	}

	results := make([][]Scheme, len(entries))
	var g errgroup.Group

	for i, entry := range entries {
		path := filepath.Join(root, entry.Name())
		switch {
		case entry.IsDir():
			if depth+1 > maxDepth {
				continue
			}
			i := i
			g.Go(func() error {
				results[i] = scanTree(path, depth+1)
				return nil
			})
		case strings.HasSuffix(entry.Name(), Suffix):
			results[i] = []Scheme{{Name: name(path), Path: path}}
		}
	}
	g.Wait()

	var out []Scheme
	for _, r := range results {
		out = append(out, r...)
	}
	return out
}
