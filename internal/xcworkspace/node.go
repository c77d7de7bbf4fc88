package xcworkspace

import (
	"fmt"
	"strings"
)

// AnchorKind is the addressing mode of a workspace location. It determines
// which base directory a relative path is resolved against.
type AnchorKind string

const (
	AnchorSelf      AnchorKind = "self"
	AnchorContainer AnchorKind = "container"
	AnchorGroup     AnchorKind = "group"
	AnchorDeveloper AnchorKind = "developer"
	AnchorAbsolute  AnchorKind = "absolute"
)

// Location is a parsed "kind:path" workspace location attribute. Path may be
// empty ("container:" means the container itself).
type Location struct {
	Kind AnchorKind
	Path string
}

func (l Location) String() string {
	return string(l.Kind) + ":" + l.Path
}

// ParseLocation splits a location attribute into its anchor kind and path.
// An unrecognized anchor kind is a hard error: a workspace declaring one is
// malformed, not merely unresolvable.
func ParseLocation(s string) (Location, error) {
	kind, path, ok := strings.Cut(s, ":")
	if !ok {
		return Location{}, fmt.Errorf("location %q: missing anchor kind", s)
	}

	switch AnchorKind(kind) {
	case AnchorSelf, AnchorContainer, AnchorGroup, AnchorDeveloper, AnchorAbsolute:
		return Location{Kind: AnchorKind(kind), Path: path}, nil
	default:
		return Location{}, fmt.Errorf("location %q: unknown anchor kind %q", s, kind)
	}
}

// Node is a node of the workspace tree: either a *FileRef or a *Group.
// The marker method seals the set so traversal sites can type-switch over
// exactly two cases.
type Node interface {
	workspaceNode()
}

// FileRef is a leaf referencing a single filesystem entity.
type FileRef struct {
	Location Location
}

// Group is a composite node. Location is nil for purely organizational
// groups. Children preserve document order.
type Group struct {
	Name     string
	Location *Location
	Children []Node
}

func (*FileRef) workspaceNode() {}
func (*Group) workspaceNode()   {}
