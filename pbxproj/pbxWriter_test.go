package pbxproj

import (
	"testing"

	"github.com/soapywu/pbxpatch/plist"
	"github.com/stretchr/testify/assert"
)

func TestWriteEntryInline(t *testing.T) {
	pbxfile := newPbxFile("App/Views/Home View.swift", "", "Views", "")
	pbxfile.FileRef = "000000000000000000000001"
	pbxfile.Uuid = "000000000000000000000002"

	assert.Equal(t,
		"\t\t000000000000000000000002 /* Home View.swift in Sources */ = {isa = PBXBuildFile; fileRef = 000000000000000000000001 /* Home View.swift */; };\n",
		renderEntry(pbxfile.Uuid, longComment(pbxfile), pbxBuildFileObj(pbxfile)))
	assert.Equal(t,
		"\t\t000000000000000000000001 /* Home View.swift */ = {isa = PBXFileReference; lastKnownFileType = sourcecode.swift; path = \"Home View.swift\"; sourceTree = \"<group>\"; };\n",
		renderEntry(pbxfile.FileRef, pbxfile.Basename, pbxFileReferenceObj(pbxfile)))
}

func TestWriteEntryBlock(t *testing.T) {
	obj := pbxGroupObj("Core", "", []plist.CommentValue{
		{Value: "000000000000000000000001", Comment: "Store.swift"},
		{Value: "000000000000000000000003"},
	})

	assert.Equal(t,
		"\t\t000000000000000000000009 /* Core */ = {\n"+
			"\t\t\tisa = PBXGroup;\n"+
			"\t\t\tchildren = (\n"+
			"\t\t\t\t000000000000000000000001 /* Store.swift */,\n"+
			"\t\t\t\t000000000000000000000003,\n"+
			"\t\t\t);\n"+
			"\t\t\tname = Core;\n"+
			"\t\t\tsourceTree = \"<group>\";\n"+
			"\t\t};\n",
		renderEntry("000000000000000000000009", "Core", obj))
}

func TestWriterOmitEmpty(t *testing.T) {
	obj := plist.NewObject()
	obj.Set("isa", "PBXGroup")
	obj.Set("name", "")
	obj.Set("sourceTree", DEFAULT_SOURCETREE)

	w := NewPbxWriter(WithIndentLevel(0))
	w.WriteEntry("X", "", obj)
	assert.Equal(t, "X = {\n\tisa = PBXGroup;\n\tname = ;\n\tsourceTree = \"<group>\";\n};\n", w.String())

	w = NewPbxWriter(WithIndentLevel(0), WithOmitEmpty())
	w.WriteEntry("X", "", obj)
	assert.Equal(t, "X = {\n\tisa = PBXGroup;\n\tsourceTree = \"<group>\";\n};\n", w.String())
}

func TestDetectType(t *testing.T) {
	assert.Equal(t, "sourcecode.swift", detectType("Store.swift"))
	assert.Equal(t, "sourcecode.swift", detectType(`"Home View.SWIFT"`))
	assert.Equal(t, "file.storyboard", detectType("LaunchScreen.storyboard"))
	assert.Equal(t, DEFAULT_FILETYPE, detectType("README"))
}

func TestQuoted(t *testing.T) {
	assert.Equal(t, "Store.swift", quoted("Store.swift"))
	assert.Equal(t, `"Home View.swift"`, quoted("Home View.swift"))
	assert.Equal(t, `"a\"b"`, quoted(`a"b`))
	assert.Equal(t, "Home View.swift", unquoted(`"Home View.swift"`))
}
