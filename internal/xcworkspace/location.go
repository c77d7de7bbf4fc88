package xcworkspace

import (
	"errors"
	"fmt"
	"path/filepath"
)

// ErrUnresolvable marks a location that cannot be turned into a path on this
// machine. Callers skip the node rather than failing the traversal.
var ErrUnresolvable = errors.New("location is not resolvable")

// ResolvePath turns a node's declared location into a filesystem path.
// Ancestors is the chain of enclosing groups, outermost first. The result may
// still be relative (group chains with no anchored root); the caller is
// responsible for joining it against the workspace's parent directory.
//
// Absolute paths short-circuit all anchor semantics and are returned
// unchanged.
func ResolvePath(loc Location, ancestors []*Group, workspaceDir string) (string, error) {
	if filepath.IsAbs(loc.Path) {
		return loc.Path, nil
	}

	switch loc.Kind {
	case AnchorSelf:
		// Workspaces nested at <name>.xcodeproj/project.xcworkspace resolve
		// "self:" against the .xcodeproj's parent, hence two levels up.
		return filepath.Join(workspaceDir, "..", "..", loc.Path), nil

	case AnchorContainer:
		return filepath.Join(filepath.Dir(workspaceDir), loc.Path), nil

	case AnchorGroup:
		if len(ancestors) == 0 {
			return loc.Path, nil
		}
		parent := ancestors[len(ancestors)-1]
		if parent.Location == nil {
			// Organizational group with no location of its own: the child's
			// literal path is final.
			return loc.Path, nil
		}
		base, err := ResolvePath(*parent.Location, ancestors[:len(ancestors)-1], workspaceDir)
		if err != nil {
			return "", err
		}
		return filepath.Join(base, loc.Path), nil

	case AnchorAbsolute:
		return loc.Path, nil

	case AnchorDeveloper:
		// The "developer directory" has no stable cross-machine meaning.
		return "", fmt.Errorf("%w: developer anchor %q", ErrUnresolvable, loc.Path)

	default:
		return "", fmt.Errorf("unknown anchor kind %q", loc.Kind)
	}
}
