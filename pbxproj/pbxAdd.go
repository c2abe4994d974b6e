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
	"strings"

	"github.com/soapywu/pbxpatch/plist"
)

// RecordRef locates an existing record by identifier and comment. An empty
// ID matches any identifier carrying that comment.
type RecordRef struct {
	ID   string
	Name string
}

type GroupSpec struct {
	Name string
	Path string
}

type SourceFile struct {
	Path string
	Name string
	// Group is the name of one of AddSpec.Groups, "" for the root group.
	Group string
}

type AddSpec struct {
	RootGroup    RecordRef
	SourcesPhase RecordRef
	Groups       []GroupSpec
	Files        []SourceFile
}

type AddedFile struct {
	Path      string `json:"path"`
	Name      string `json:"name"`
	Group     string `json:"group,omitempty"`
	FileRef   string `json:"file_ref"`
	BuildFile string `json:"build_file"`
}

type AddedGroup struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

type AddResult struct {
	Files       []AddedFile  `json:"files"`
	Groups      []AddedGroup `json:"groups"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// Diagnostic records an insertion step skipped because its marker was not
// found in the document.
type Diagnostic struct {
	Step   string `json:"step"`
	Marker string `json:"marker"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s skipped: could not find %s", d.Step, d.Marker)
}

const (
	StepBuildFiles     = "build file records"
	StepFileReferences = "file reference records"
	StepRootGroup      = "root group children"
	StepGroups         = "group records"
	StepSourcesPhase   = "sources phase files"
)

// AddFiles splices add.Files into the build file, file reference, group
// and sources phase sections. A step whose marker is missing is skipped and
// reported. The other steps still run. Nothing checks whether the files are
// already present, so a second call adds them again.
func (p *Project) AddFiles(add AddSpec) (AddResult, error) {
	var result AddResult

	groupIndex := make(map[string]int, len(add.Groups))
	for i, group := range add.Groups {
		groupIndex[group.Name] = i
	}
	for _, file := range add.Files {
		if _, found := groupIndex[file.Group]; file.Group != "" && !found {
			return result, fmt.Errorf("add %s: unknown group %q", file.Path, file.Group)
		}
	}

	phaseName := add.SourcesPhase.Name
	if phaseName == "" {
		phaseName = DEFAULT_PHASE
	}

	pbxfiles := make([]*PbxFile, 0, len(add.Files))
	for _, file := range add.Files {
		pbxfile := newPbxFile(file.Path, file.Name, file.Group, phaseName)
		var err error
		if pbxfile.FileRef, err = p.generateUuid(); err != nil {
			return result, err
		}
		if pbxfile.Uuid, err = p.generateUuid(); err != nil {
			return result, err
		}
		p.logger.Debug("generated ids", "file", pbxfile.Basename, "file_ref", pbxfile.FileRef, "build_file", pbxfile.Uuid)
		pbxfiles = append(pbxfiles, pbxfile)
		result.Files = append(result.Files, AddedFile{
			Path:      pbxfile.Path,
			Name:      pbxfile.Basename,
			Group:     pbxfile.Parent,
			FileRef:   pbxfile.FileRef,
			BuildFile: pbxfile.Uuid,
		})
	}

	groupIds := make([]string, len(add.Groups))
	for i, group := range add.Groups {
		id, err := p.generateUuid()
		if err != nil {
			return result, err
		}
		groupIds[i] = id
		result.Groups = append(result.Groups, AddedGroup{Name: group.Name, ID: id})
	}

	if len(pbxfiles) > 0 {
		var buildFiles, fileRefs strings.Builder
		for _, pbxfile := range pbxfiles {
			buildFiles.WriteString(renderEntry(pbxfile.Uuid, longComment(pbxfile), pbxBuildFileObj(pbxfile)))
			fileRefs.WriteString(renderEntry(pbxfile.FileRef, pbxfile.Basename, pbxFileReferenceObj(pbxfile)))
		}
		p.insertAfterMarker(&result, StepBuildFiles, BUILD_FILE_SECTION_BEGIN, buildFiles.String())
		p.insertAfterMarker(&result, StepFileReferences, FILE_REFERENCE_SECTION_BEGIN, fileRefs.String())
	}

	rootChildren := make([]plist.CommentValue, 0, len(add.Groups)+len(pbxfiles))
	for i, group := range add.Groups {
		rootChildren = append(rootChildren, plist.CommentValue{Value: groupIds[i], Comment: group.Name})
	}
	for _, pbxfile := range pbxfiles {
		if pbxfile.Parent == "" {
			rootChildren = append(rootChildren, pbxGroupChild(pbxfile))
		}
	}
	if len(rootChildren) > 0 {
		root := add.RootGroup
		p.insertIntoList(&result, StepRootGroup, root.ID, root.Name, "children", renderListItems(rootChildren))
	}

	if len(add.Groups) > 0 {
		var groups strings.Builder
		for i, group := range add.Groups {
			children := []plist.CommentValue{}
			for _, pbxfile := range pbxfiles {
				if pbxfile.Parent == group.Name {
					children = append(children, pbxGroupChild(pbxfile))
				}
			}
			groups.WriteString(renderEntry(groupIds[i], group.Name, pbxGroupObj(group.Name, group.Path, children)))
		}
		p.insertBeforeMarker(&result, StepGroups, GROUP_SECTION_END, groups.String())
	}

	if len(pbxfiles) > 0 {
		phaseChildren := make([]plist.CommentValue, 0, len(pbxfiles))
		for _, pbxfile := range pbxfiles {
			phaseChildren = append(phaseChildren, pbxBuildPhaseChild(pbxfile))
		}
		p.insertIntoList(&result, StepSourcesPhase, add.SourcesPhase.ID, phaseName, "files", renderListItems(phaseChildren))
	}

	p.logger.Info("added files", "files", len(result.Files), "groups", len(result.Groups), "skipped_steps", len(result.Diagnostics))
	return result, nil
}

func (p *Project) insertAfterMarker(result *AddResult, step, marker, text string) {
	pos := strings.Index(p.contents, marker)
	if pos < 0 {
		p.skip(result, step, strings.TrimSpace(marker))
		return
	}
	p.contents = insertAt(p.contents, pos+len(marker), text)
}

func (p *Project) insertBeforeMarker(result *AddResult, step, marker, text string) {
	pos := strings.Index(p.contents, marker)
	if pos < 0 {
		p.skip(result, step, marker)
		return
	}
	p.contents = insertAt(p.contents, pos, text)
}

// insertIntoList puts text at the head of the `key = (` list of the record
// identified by id and comment.
func (p *Project) insertIntoList(result *AddResult, step, id, comment, key, text string) {
	loc := listOpenRegex(id, comment, key).FindStringIndex(p.contents)
	if loc == nil {
		label := comment
		if id != "" {
			label = id + " /* " + comment + " */"
		}
		p.skip(result, step, fmt.Sprintf("%s list of %s", key, label))
		return
	}
	p.contents = insertAt(p.contents, loc[1], text)
}

func (p *Project) skip(result *AddResult, step, marker string) {
	d := Diagnostic{Step: step, Marker: marker}
	p.logger.Warn("section marker not found", "step", step, "marker", marker)
	result.Diagnostics = append(result.Diagnostics, d)
}
