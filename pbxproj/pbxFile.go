/**
Licensed to the Apache Software Foundation (ASF) under one
or more contributor license agreements.  See the NOTICE file
distributed with this work for additional information
regarding copyright ownership.  The ASF licenses this file
to you under the Apache License, Version 2.0 (the
'License'); you may not use this file except in compliance
with the License.  You may obtain a copy of the License at
http://www.apache.org/licenses/LICENSE-2.0
Unless required by applicable law or agreed to in writing,
software distributed under the License is distributed on an
'AS IS' BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
KIND, either express or implied.  See the License for the
specific language governing permissions and limitations
under the License.
*/

package pbxproj

import (
	"fmt"
	"path"
	"strings"

	"github.com/soapywu/pbxpatch/plist"
)

const (
	DEFAULT_SOURCETREE = `"<group>"`
	DEFAULT_FILETYPE   = "unknown"
	DEFAULT_PHASE      = "Sources"
)

var FILETYPE_BY_EXTENSION = map[string]string{
	"a":           "archive.ar",
	"c":           "sourcecode.c.c",
	"cpp":         "sourcecode.cpp.cpp",
	"h":           "sourcecode.c.h",
	"m":           "sourcecode.c.objc",
	"mm":          "sourcecode.cpp.objcpp",
	"markdown":    "text",
	"metal":       "sourcecode.metal",
	"pch":         "sourcecode.c.h",
	"plist":       "text.plist.xml",
	"sh":          "text.script.sh",
	"storyboard":  "file.storyboard",
	"strings":     "text.plist.strings",
	"swift":       "sourcecode.swift",
	"xcassets":    "folder.assetcatalog",
	"xcconfig":    "text.xcconfig",
	"xcdatamodel": "wrapper.xcdatamodel",
	"xib":         "file.xib",
}

// PbxFile describes one source file being added: the file reference record,
// its build file record and the group that lists it.
type PbxFile struct {
	Basename          string
	Path              string
	LastKnownFileType string
	SourceTree        string
	// Parent is the name of the logical group, "" for the root group.
	Parent string
	// Phase is the build phase the file is compiled in.
	Phase   string
	FileRef string
	Uuid    string
}

func newPbxFile(filePath, name, parent, phase string) *PbxFile {
	pbxfile := PbxFile{
		Path:       filePath,
		Basename:   name,
		Parent:     parent,
		Phase:      phase,
		SourceTree: DEFAULT_SOURCETREE,
	}
	if pbxfile.Basename == "" {
		pbxfile.Basename = path.Base(filePath)
	}
	if pbxfile.Phase == "" {
		pbxfile.Phase = DEFAULT_PHASE
	}
	pbxfile.LastKnownFileType = detectType(pbxfile.Basename)
	return &pbxfile
}

func detectType(name string) string {
	ext := strings.TrimPrefix(path.Ext(unquoted(name)), ".")
	filetype, found := FILETYPE_BY_EXTENSION[strings.ToLower(ext)]
	if !found {
		return DEFAULT_FILETYPE
	}
	return filetype
}

func longComment(pbxfile *PbxFile) string {
	return fmt.Sprintf("%s in %s", pbxfile.Basename, pbxfile.Phase)
}

func pbxBuildFileObj(pbxfile *PbxFile) plist.Object {
	obj := plist.NewObject()
	obj.Set("isa", "PBXBuildFile")
	obj.SetWithComment("fileRef", pbxfile.FileRef, pbxfile.Basename)
	return obj
}

// The record keeps the display name as path, relative to its group.
func pbxFileReferenceObj(pbxfile *PbxFile) plist.Object {
	return plist.NewObjectWithData([]plist.Item{
		plist.NewItem("isa", "PBXFileReference"),
		plist.NewItem("lastKnownFileType", pbxfile.LastKnownFileType),
		plist.NewItem("path", quoted(pbxfile.Basename)),
		plist.NewItem("sourceTree", pbxfile.SourceTree),
	})
}

func pbxGroupObj(name, groupPath string, children []plist.CommentValue) plist.Object {
	obj := plist.NewObjectWithData([]plist.Item{
		plist.NewItem("isa", "PBXGroup"),
		plist.NewItem("children", []interface{}{}),
	})
	for _, child := range children {
		obj.Append("children", child)
	}
	if groupPath != "" {
		obj.Set("path", quoted(groupPath))
	} else {
		obj.Set("name", quoted(name))
	}
	obj.Set("sourceTree", DEFAULT_SOURCETREE)
	return obj
}

func pbxGroupChild(pbxfile *PbxFile) plist.CommentValue {
	return plist.CommentValue{
		Value:   pbxfile.FileRef,
		Comment: pbxfile.Basename,
	}
}

func pbxBuildPhaseChild(pbxfile *PbxFile) plist.CommentValue {
	return plist.CommentValue{
		Value:   pbxfile.Uuid,
		Comment: longComment(pbxfile),
	}
}
