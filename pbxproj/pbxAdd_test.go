package pbxproj

import (
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readTestdata(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile("testdata/" + name)
	require.NoError(t, err)
	return string(data)
}

func minimalAdd() AddSpec {
	return AddSpec{
		RootGroup:    RecordRef{ID: "AA0000000000000000000001", Name: "App"},
		SourcesPhase: RecordRef{ID: "AA0000000000000000000002", Name: "Sources"},
		Groups: []GroupSpec{
			{Name: "Core", Path: "Core"},
			{Name: "Views", Path: "Views"},
		},
		Files: []SourceFile{
			{Path: "App/AppMain.swift", Name: "AppMain.swift"},
			{Path: "App/Core/Store.swift", Name: "Store.swift", Group: "Core"},
			{Path: "App/Views/Home View.swift", Name: "Home View.swift", Group: "Views"},
		},
	}
}

// eightFileAdd mirrors the default grouping: root, Core x2, Theme, Views x4.
func eightFileAdd() AddSpec {
	return AddSpec{
		RootGroup:    RecordRef{ID: "AA0000000000000000000001", Name: "App"},
		SourcesPhase: RecordRef{ID: "AA0000000000000000000002", Name: "Sources"},
		Groups: []GroupSpec{
			{Name: "Core", Path: "Core"},
			{Name: "Theme", Path: "Theme"},
			{Name: "Views", Path: "Views"},
		},
		Files: []SourceFile{
			{Path: "App/VonageVoiceApp.swift", Name: "VonageVoiceApp.swift"},
			{Path: "App/Core/CoreContext.swift", Name: "CoreContext.swift", Group: "Core"},
			{Path: "App/Core/VoiceClientManager.swift", Name: "VoiceClientManager.swift", Group: "Core"},
			{Path: "App/Theme/AppTheme.swift", Name: "AppTheme.swift", Group: "Theme"},
			{Path: "App/Views/LoginView.swift", Name: "LoginView.swift", Group: "Views"},
			{Path: "App/Views/MainView.swift", Name: "MainView.swift", Group: "Views"},
			{Path: "App/Views/CallView.swift", Name: "CallView.swift", Group: "Views"},
			{Path: "App/Views/DialerView.swift", Name: "DialerView.swift", Group: "Views"},
		},
	}
}

func TestAddFilesMatchesGolden(t *testing.T) {
	p := NewPbxProjectFromString("project.pbxproj", readTestdata(t, "minimal.pbxproj"),
		WithIDSource(SequentialIDSource(0x100)))

	result, err := p.AddFiles(minimalAdd())
	require.NoError(t, err)
	assert.Empty(t, result.Diagnostics)

	assert.Equal(t, readTestdata(t, "minimal.golden.pbxproj"), p.Contents())

	require.Len(t, result.Files, 3)
	assert.Equal(t, AddedFile{
		Path:      "App/Core/Store.swift",
		Name:      "Store.swift",
		Group:     "Core",
		FileRef:   "000000000000000000000102",
		BuildFile: "000000000000000000000103",
	}, result.Files[1])
	assert.Equal(t, []AddedGroup{
		{Name: "Core", ID: "000000000000000000000106"},
		{Name: "Views", ID: "000000000000000000000107"},
	}, result.Groups)
}

func TestAddFilesCounts(t *testing.T) {
	original := readTestdata(t, "minimal.pbxproj")
	p := NewPbxProjectFromString("project.pbxproj", original)

	result, err := p.AddFiles(eightFileAdd())
	require.NoError(t, err)
	require.Empty(t, result.Diagnostics)

	contents := p.Contents()
	assert.Equal(t, 8+1, strings.Count(contents, "isa = PBXBuildFile;"))
	assert.Equal(t, 8+1, strings.Count(contents, "isa = PBXFileReference;"))
	assert.Equal(t, 3+1, strings.Count(contents, "isa = PBXGroup;"))

	phase := regexp.MustCompile(`(?s)/\* Sources \*/ = \{.*?files = \((.*?)\);`).FindStringSubmatch(contents)
	require.NotNil(t, phase)
	assert.Equal(t, 8+1, strings.Count(phase[1], " in Sources */,\n"))

	ids := map[string]bool{}
	for _, f := range result.Files {
		ids[f.FileRef] = true
		ids[f.BuildFile] = true
		assert.True(t, IsIdentifier(f.FileRef))
		assert.True(t, IsIdentifier(f.BuildFile))
		assert.False(t, strings.Contains(original, f.FileRef))
	}
	for _, g := range result.Groups {
		ids[g.ID] = true
	}
	assert.Len(t, ids, 8*2+3)
}

func TestAddFilesGroupPolicy(t *testing.T) {
	p := NewPbxProjectFromString("project.pbxproj", readTestdata(t, "minimal.pbxproj"),
		WithIDSource(SequentialIDSource(0x200)))

	result, err := p.AddFiles(eightFileAdd())
	require.NoError(t, err)

	groupOf := map[string]string{}
	for _, f := range result.Files {
		groupOf[f.Name] = f.Group
	}
	assert.Equal(t, "", groupOf["VonageVoiceApp.swift"])
	assert.Equal(t, "Core", groupOf["CoreContext.swift"])
	assert.Equal(t, "Core", groupOf["VoiceClientManager.swift"])
	assert.Equal(t, "Theme", groupOf["AppTheme.swift"])
	assert.Equal(t, "Views", groupOf["DialerView.swift"])

	theme := regexp.MustCompile(`(?s)` + result.Groups[1].ID + ` /\* Theme \*/ = \{.*?\n\t\t\};\n`).FindString(p.Contents())
	require.NotEmpty(t, theme)
	assert.Contains(t, theme, result.Files[3].FileRef+" /* AppTheme.swift */,")
	assert.Contains(t, theme, "path = Theme;")
	// header plus the single child
	assert.Equal(t, 2, strings.Count(theme, " /* "))
}

func TestAddFilesMissingMarkersAreSkipped(t *testing.T) {
	doc := strings.Replace(readTestdata(t, "minimal.pbxproj"), "/* Begin PBXFileReference section */\n", "", 1)
	doc = strings.Replace(doc, "/* Sources */", "/* Compile */", 1)
	p := NewPbxProjectFromString("project.pbxproj", doc)

	result, err := p.AddFiles(minimalAdd())
	require.NoError(t, err)

	require.Len(t, result.Diagnostics, 2)
	assert.Equal(t, StepFileReferences, result.Diagnostics[0].Step)
	assert.Equal(t, StepSourcesPhase, result.Diagnostics[1].Step)
	assert.Contains(t, result.Diagnostics[1].String(), "files list of AA0000000000000000000002 /* Sources */")

	// The remaining steps still ran.
	assert.Equal(t, 3+1, strings.Count(p.Contents(), "isa = PBXBuildFile;"))
	assert.Equal(t, 1, strings.Count(p.Contents(), "isa = PBXFileReference;"))
	assert.Equal(t, 2+1, strings.Count(p.Contents(), "isa = PBXGroup;"))
}

func TestAddFilesLocatesRecordsByComment(t *testing.T) {
	add := minimalAdd()
	add.RootGroup.ID = ""
	add.SourcesPhase = RecordRef{}
	p := NewPbxProjectFromString("project.pbxproj", readTestdata(t, "minimal.pbxproj"),
		WithIDSource(SequentialIDSource(0x100)))

	result, err := p.AddFiles(add)
	require.NoError(t, err)
	assert.Empty(t, result.Diagnostics)
	assert.Equal(t, readTestdata(t, "minimal.golden.pbxproj"), p.Contents())
}

func TestAddFilesUnknownGroup(t *testing.T) {
	original := readTestdata(t, "minimal.pbxproj")
	add := minimalAdd()
	add.Files[1].Group = "Models"
	p := NewPbxProjectFromString("project.pbxproj", original)

	_, err := p.AddFiles(add)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown group "Models"`)
	assert.Equal(t, original, p.Contents())
}
