package xcworkspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocation(t *testing.T) {
	loc, err := ParseLocation("group:Test1/test1.xcodeproj")
	require.NoError(t, err)
	assert.Equal(t, AnchorGroup, loc.Kind)
	assert.Equal(t, "Test1/test1.xcodeproj", loc.Path)

	loc, err = ParseLocation("container:")
	require.NoError(t, err)
	assert.Equal(t, AnchorContainer, loc.Kind)
	assert.Empty(t, loc.Path)

	_, err = ParseLocation("Sources/main.swift")
	require.Error(t, err)

	_, err = ParseLocation("teleport:somewhere")
	require.Error(t, err)
}

func TestResolvePath_absoluteShortCircuits(t *testing.T) {
	ancestors := []*Group{{Location: &Location{Kind: AnchorGroup, Path: "Nested"}}}

	for _, kind := range []AnchorKind{AnchorSelf, AnchorContainer, AnchorGroup, AnchorDeveloper, AnchorAbsolute} {
		loc := Location{Kind: kind, Path: "/Absolute/Path/x.xcodeproj"}
		got, err := ResolvePath(loc, ancestors, "/App/ws.xcworkspace")
		require.NoError(t, err, "kind %s", kind)
		assert.Equal(t, "/Absolute/Path/x.xcodeproj", got, "kind %s", kind)
	}
}

func TestResolvePath_self(t *testing.T) {
	loc := Location{Kind: AnchorSelf, Path: ""}
	got, err := ResolvePath(loc, nil, "/App/MyApp.xcodeproj/project.xcworkspace")
	require.NoError(t, err)
	assert.Equal(t, "/App/MyApp.xcodeproj", got)
}

func TestResolvePath_container(t *testing.T) {
	loc := Location{Kind: AnchorContainer, Path: "Pods/Pods.xcodeproj"}
	got, err := ResolvePath(loc, nil, "/App/test1.xcworkspace")
	require.NoError(t, err)
	assert.Equal(t, "/App/Pods/Pods.xcodeproj", got)
}

func TestResolvePath_groupNested(t *testing.T) {
	outer := &Group{Location: &Location{Kind: AnchorGroup, Path: "Projects"}}

	loc := Location{Kind: AnchorGroup, Path: "Test1/test1.xcodeproj"}
	got, err := ResolvePath(loc, []*Group{outer}, "/App/sweetpad-test.xcworkspace")
	require.NoError(t, err)
	// The outer group resolves to a relative "Projects"; joining against the
	// workspace parent is the collector's job.
	assert.Equal(t, "Projects/Test1/test1.xcodeproj", got)
}

func TestResolvePath_groupMultiLevel(t *testing.T) {
	root := &Group{Location: &Location{Kind: AnchorContainer, Path: "Vendor"}}
	mid := &Group{Location: &Location{Kind: AnchorGroup, Path: "Libs"}}

	loc := Location{Kind: AnchorGroup, Path: "lib.xcodeproj"}
	got, err := ResolvePath(loc, []*Group{root, mid}, "/App/ws.xcworkspace")
	require.NoError(t, err)
	assert.Equal(t, "/App/Vendor/Libs/lib.xcodeproj", got)
}

func TestResolvePath_groupNoAncestors(t *testing.T) {
	loc := Location{Kind: AnchorGroup, Path: "Local/thing.xcodeproj"}
	got, err := ResolvePath(loc, nil, "/App/ws.xcworkspace")
	require.NoError(t, err)
	assert.Equal(t, "Local/thing.xcodeproj", got)
}

func TestResolvePath_groupParentWithoutLocation(t *testing.T) {
	organizational := &Group{Name: "Shared"}

	loc := Location{Kind: AnchorGroup, Path: "thing.xcodeproj"}
	got, err := ResolvePath(loc, []*Group{organizational}, "/App/ws.xcworkspace")
	require.NoError(t, err)
	assert.Equal(t, "thing.xcodeproj", got)
}

func TestResolvePath_developerUnresolvable(t *testing.T) {
	loc := Location{Kind: AnchorDeveloper, Path: "Tools/thing.xcodeproj"}
	_, err := ResolvePath(loc, nil, "/App/ws.xcworkspace")
	require.ErrorIs(t, err, ErrUnresolvable)
}
