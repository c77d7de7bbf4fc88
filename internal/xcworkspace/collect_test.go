package xcworkspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loc(kind AnchorKind, path string) Location {
	return Location{Kind: kind, Path: path}
}

func TestCollectProjects_documentOrder(t *testing.T) {
	tree := []Node{
		&Group{
			Name:     "Projects",
			Location: &Location{Kind: AnchorGroup, Path: "Projects"},
			Children: []Node{
				&FileRef{Location: loc(AnchorGroup, "Test1/test1.xcodeproj")},
			},
		},
		&FileRef{Location: loc(AnchorContainer, "Pods/Pods.xcodeproj")},
	}

	got := CollectProjects(tree, "/App/sweetpad-test.xcworkspace", nil)
	assert.Equal(t, []string{
		"/App/Projects/Test1/test1.xcodeproj",
		"/App/Pods/Pods.xcodeproj",
	}, got)
}

func TestCollectProjects_dedup(t *testing.T) {
	tree := []Node{
		&FileRef{Location: loc(AnchorContainer, "Pods/Pods.xcodeproj")},
		&FileRef{Location: loc(AnchorAbsolute, "/App/Pods/Pods.xcodeproj")},
		&Group{
			Location: &Location{Kind: AnchorContainer, Path: "Pods"},
			Children: []Node{
				&FileRef{Location: loc(AnchorGroup, "Pods.xcodeproj")},
			},
		},
	}

	got := CollectProjects(tree, "/App/ws.xcworkspace", nil)
	assert.Equal(t, []string{"/App/Pods/Pods.xcodeproj"}, got)
}

func TestCollectProjects_filtersNonProjects(t *testing.T) {
	tree := []Node{
		&FileRef{Location: loc(AnchorContainer, "README.md")},
		&FileRef{Location: loc(AnchorContainer, "Configs/base.xcconfig")},
		&FileRef{Location: loc(AnchorContainer, "App.xcodeproj")},
	}

	got := CollectProjects(tree, "/App/ws.xcworkspace", nil)
	assert.Equal(t, []string{"/App/App.xcodeproj"}, got)
}

func TestCollectProjects_unresolvableSkipped(t *testing.T) {
	tree := []Node{
		&FileRef{Location: loc(AnchorDeveloper, "Tools/tool.xcodeproj")},
		&FileRef{Location: loc(AnchorContainer, "App.xcodeproj")},
	}

	got := CollectProjects(tree, "/App/ws.xcworkspace", nil)
	assert.Equal(t, []string{"/App/App.xcodeproj"}, got)
}

func TestCollectProjects_enclosingProjectShortCircuit(t *testing.T) {
	// Workspace nested inside a project: every reference collapses to the
	// enclosing project regardless of anchor.
	tree := []Node{
		&FileRef{Location: loc(AnchorSelf, "")},
		&FileRef{Location: loc(AnchorContainer, "Other/other.xcodeproj")},
	}

	got := CollectProjects(tree, "/App/MyApp.xcodeproj/project.xcworkspace", nil)
	assert.Equal(t, []string{"/App/MyApp.xcodeproj"}, got)
}

// Pins the group-anchor fallback base: a top-level group reference with no
// enclosing group resolves to its literal path, which is then joined against
// the workspace parent exactly once.
func TestCollect_topLevelGroupRelative(t *testing.T) {
	tree := []Node{
		&FileRef{Location: loc(AnchorGroup, "Demo/demo.xcodeproj")},
	}

	got := CollectProjects(tree, "/App/ws.xcworkspace", nil)
	require.Len(t, got, 1)
	assert.Equal(t, "/App/Demo/demo.xcodeproj", got[0])
}

func TestCollectProjects_groupWithoutLocationDescends(t *testing.T) {
	tree := []Node{
		&Group{
			Name: "Organizational",
			Children: []Node{
				&FileRef{Location: loc(AnchorGroup, "Inner/inner.xcodeproj")},
			},
		},
	}

	got := CollectProjects(tree, "/App/ws.xcworkspace", nil)
	assert.Equal(t, []string{"/App/Inner/inner.xcodeproj"}, got)
}
