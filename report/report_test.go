package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/soapywu/pbxpatch/pbxproj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const document = "\t\tAA0000000000000000000001 /* Debug */ = {\n" +
	"\t\t\tisa = XCBuildConfiguration;\n" +
	"\t\t\tbuildSettings = {\n" +
	"\t\t\t\tIPHONEOS_DEPLOYMENT_TARGET = 14.0;\n" +
	"\t\t\t\tSWIFT_VERSION = 5.0;\n" +
	"\t\t\t};\n" +
	"\t\t\tname = Debug;\n" +
	"\t\t};\n"

func editedProject(t *testing.T) (*pbxproj.Project, pbxproj.Result) {
	t.Helper()
	project := pbxproj.NewPbxProjectFromString("App.xcodeproj/project.pbxproj", document)
	result, err := project.Apply(pbxproj.Edit{
		Remove:   []string{"0123456789ABCDEF01234567"},
		Settings: []pbxproj.BuildSetting{{Key: "IPHONEOS_DEPLOYMENT_TARGET", Value: "16.0"}},
	}, pbxproj.ApplyOptions{})
	require.NoError(t, err)
	return project, result
}

func TestNewDigest(t *testing.T) {
	d := NewDigest("")
	assert.Equal(t, 0, d.Size)
	// BLAKE3 of the empty input
	assert.Equal(t, "af1349b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262", d.BLAKE3)
	assert.Equal(t, "0 B af1349b9f5f9", d.Short())

	assert.NotEqual(t, d.BLAKE3, NewDigest(document).BLAKE3)
	assert.Equal(t, len(document), NewDigest(document).Size)
}

func TestNewSummary(t *testing.T) {
	project, result := editedProject(t)

	s := NewSummary(project, result, false, "")
	assert.True(t, s.Written)
	assert.True(t, s.Changed())
	assert.Equal(t, "App.xcodeproj/project.pbxproj", s.Project)

	s = NewSummary(project, result, true, "")
	assert.False(t, s.Written)
	assert.True(t, s.DryRun)
}

func TestDiff(t *testing.T) {
	project, _ := editedProject(t)

	diff, err := Diff("project.pbxproj", project.Original(), project.Contents())
	require.NoError(t, err)
	assert.Contains(t, diff, "--- a/project.pbxproj\n+++ b/project.pbxproj\n")
	assert.Contains(t, diff, "-\t\t\t\tIPHONEOS_DEPLOYMENT_TARGET = 14.0;\n")
	assert.Contains(t, diff, "+\t\t\t\tIPHONEOS_DEPLOYMENT_TARGET = 16.0;\n")

	diff, err = Diff("project.pbxproj", document, document)
	require.NoError(t, err)
	assert.Empty(t, diff)
}

func TestPrintSummary(t *testing.T) {
	project, result := editedProject(t)
	result.Added.Diagnostics = []pbxproj.Diagnostic{{Step: pbxproj.StepGroups, Marker: "/* End PBXGroup section */"}}
	s := NewSummary(project, result, false, "xcodebuild -workspace App.xcworkspace -scheme App -configuration Debug build")

	var buf bytes.Buffer
	NewPrinter(&buf, false).PrintSummary(s)
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "Project update complete: App.xcodeproj/project.pbxproj\n\nSummary:\n"))
	assert.Contains(t, out, "  • Removed 0 records and 0 list references\n")
	assert.Contains(t, out, "  • Set IPHONEOS_DEPLOYMENT_TARGET = 16.0 (1 occurrence)\n")
	assert.Contains(t, out, "  • Added 0 files in 0 groups\n")
	assert.Contains(t, out, "Warnings:\n")
	assert.Contains(t, out, "  ! identifiers not found: 0123456789ABCDEF01234567\n")
	assert.Contains(t, out, "  ! group records skipped: could not find /* End PBXGroup section */\n")
	assert.True(t, strings.HasSuffix(out, "Next: Build the project\n  xcodebuild -workspace App.xcworkspace -scheme App -configuration Debug build\n"))
}

func TestPrintSummaryDryRunWithoutNextStep(t *testing.T) {
	project, result := editedProject(t)
	result.Removed.Unmatched = nil

	var buf bytes.Buffer
	NewPrinter(&buf, false).PrintSummary(NewSummary(project, result, true, ""))

	assert.True(t, strings.HasPrefix(buf.String(), "Dry run, nothing written: "))
	assert.NotContains(t, buf.String(), "Warnings:")
	assert.NotContains(t, buf.String(), "Next:")
}

func TestPrintDiffPlainIsVerbatim(t *testing.T) {
	project, _ := editedProject(t)
	diff, err := Diff("project.pbxproj", project.Original(), project.Contents())
	require.NoError(t, err)

	var buf bytes.Buffer
	NewPrinter(&buf, false).PrintDiff(diff)
	assert.Equal(t, diff, buf.String())
}

func TestPrintJSON(t *testing.T) {
	project, result := editedProject(t)

	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, false).PrintJSON(NewSummary(project, result, false, "")))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "App.xcodeproj/project.pbxproj", decoded["project"])
	assert.Equal(t, true, decoded["written"])
	assert.NotContains(t, decoded, "build_command")

	removed := decoded["result"].(map[string]interface{})["removed"].(map[string]interface{})
	assert.Equal(t, []interface{}{"0123456789ABCDEF01234567"}, removed["unmatched"])
}
