package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const demoGraph = `{
	archiveVersion = 1;
	objects = {
		CFG0D1 = {
			isa = XCBuildConfiguration;
			name = Debug;
		};
		CFG0R1 = {
			isa = XCBuildConfiguration;
			name = Release;
		};
		LIST01 = {
			isa = XCConfigurationList;
			buildConfigurations = (
				CFG0D1,
				CFG0R1,
			);
		};
		PROJ01 = {
			isa = PBXProject;
			buildConfigurationList = LIST01;
		};
	};
	rootObject = PROJ01;
}
`

func newDemoProject(t *testing.T) *Project {
	t.Helper()
	projectPath := filepath.Join(t.TempDir(), "Demo.xcodeproj")
	require.NoError(t, os.MkdirAll(projectPath, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(projectPath, "project.pbxproj"), []byte(demoGraph), 0o644))

	schemePath := filepath.Join(projectPath, "xcshareddata", "xcschemes", "Demo.xcscheme")
	require.NoError(t, os.MkdirAll(filepath.Dir(schemePath), 0o755))
	require.NoError(t, os.WriteFile(schemePath, []byte("<Scheme/>\n"), 0o644))

	return New(projectPath, nil)
}

func TestProject_Name(t *testing.T) {
	p := New("/App/Demo.xcodeproj", nil)
	assert.Equal(t, "Demo", p.Name())
}

func TestProject_Configurations(t *testing.T) {
	p := newDemoProject(t)

	configs, err := p.Configurations()
	require.NoError(t, err)
	assert.Equal(t, []string{"Debug", "Release"}, configs)
}

func TestProject_ConfigurationsMemoized(t *testing.T) {
	p := newDemoProject(t)

	first, err := p.Configurations()
	require.NoError(t, err)

	// Delete the backing file: the memoized result must survive.
	require.NoError(t, os.Remove(filepath.Join(p.Path, "project.pbxproj")))

	second, err := p.Configurations()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestProject_ConfigurationsErrorIsPerProject(t *testing.T) {
	projectPath := filepath.Join(t.TempDir(), "Broken.xcodeproj")
	require.NoError(t, os.MkdirAll(projectPath, 0o755))

	p := New(projectPath, nil)
	_, err := p.Configurations()
	require.Error(t, err)

	// The failure is memoized like a success.
	_, again := p.Configurations()
	require.Error(t, again)
}

func TestProject_Schemes(t *testing.T) {
	p := newDemoProject(t)

	schemes := p.Schemes()
	require.Len(t, schemes, 1)
	assert.Equal(t, "Demo", schemes[0].Name)
	assert.Same(t, p, schemes[0].Project)
}

func TestProject_SchemesMemoized(t *testing.T) {
	p := newDemoProject(t)

	first := p.Schemes()
	require.NoError(t, os.RemoveAll(filepath.Join(p.Path, "xcshareddata")))
	second := p.Schemes()
	assert.Equal(t, first, second)
}

func TestProject_SchemeLookup(t *testing.T) {
	p := newDemoProject(t)

	s, ok := p.Scheme("Demo")
	require.True(t, ok)
	assert.Equal(t, "Demo", s.Name)

	_, ok = p.Scheme("Nope")
	assert.False(t, ok)
}

func TestProject_DefaultSchemeWhenNoneOnDisk(t *testing.T) {
	projectPath := filepath.Join(t.TempDir(), "Bare.xcodeproj")
	require.NoError(t, os.MkdirAll(projectPath, 0o755))

	p := New(projectPath, nil)
	schemes := p.Schemes()
	require.Len(t, schemes, 1)
	assert.Equal(t, "Bare", schemes[0].Name)
	assert.Empty(t, schemes[0].Path)
	assert.Same(t, p, schemes[0].Project)
}
