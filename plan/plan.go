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

// Package plan describes one project update run: which identifiers to
// remove, which build settings to rewrite and which files to add. A plan is
// either the built-in default or a YAML file.
package plan

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/soapywu/pbxpatch/pbxproj"
	"gopkg.in/yaml.v3"
)

const DefaultProject = "VonageSDKClientVOIPExample.xcodeproj/project.pbxproj"

type Plan struct {
	Project       string    `yaml:"project"`
	Remove        []string  `yaml:"remove,omitempty"`
	BuildSettings []Setting `yaml:"build_settings,omitempty"`
	Add           AddPlan   `yaml:"add"`
	NextStep      NextStep  `yaml:"next_step,omitempty"`
}

type Setting struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

type Record struct {
	ID   string `yaml:"id,omitempty"`
	Name string `yaml:"name"`
}

type Group struct {
	Name string `yaml:"name"`
	Path string `yaml:"path,omitempty"`
}

type File struct {
	Path  string `yaml:"path"`
	Name  string `yaml:"name,omitempty"`
	Group string `yaml:"group,omitempty"`
}

type AddPlan struct {
	RootGroup    Record  `yaml:"root_group"`
	SourcesPhase Record  `yaml:"sources_phase"`
	Groups       []Group `yaml:"groups,omitempty"`
	Files        []File  `yaml:"files,omitempty"`
}

// NextStep names the workspace and scheme to build once the project is
// updated. Both are optional.
type NextStep struct {
	Workspace string `yaml:"workspace,omitempty"`
	Scheme    string `yaml:"scheme,omitempty"`
}

// Load reads and validates a YAML plan. Unknown fields are an error.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load plan: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Plan, error) {
	var p Plan
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ValidationError{Message: "empty document"}
		}
		return nil, &ValidationError{Message: err.Error(), Err: err}
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Plan) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Validate checks identifiers, names and group membership.
func (p *Plan) Validate() error {
	if p.Project == "" {
		return &ValidationError{Field: "project", Message: "must not be empty"}
	}
	for i, id := range p.Remove {
		if !pbxproj.IsIdentifier(id) {
			return &ValidationError{Field: fmt.Sprintf("remove[%d]", i), Value: id, Message: "not a 24 digit upper-case hex identifier"}
		}
	}
	for i, s := range p.BuildSettings {
		if s.Key == "" {
			return &ValidationError{Field: fmt.Sprintf("build_settings[%d].key", i), Message: "must not be empty"}
		}
	}

	add := p.Add
	if r := add.RootGroup; r.ID != "" && !pbxproj.IsIdentifier(r.ID) {
		return &ValidationError{Field: "add.root_group.id", Value: r.ID, Message: "not a 24 digit upper-case hex identifier"}
	}
	if r := add.SourcesPhase; r.ID != "" && !pbxproj.IsIdentifier(r.ID) {
		return &ValidationError{Field: "add.sources_phase.id", Value: r.ID, Message: "not a 24 digit upper-case hex identifier"}
	}
	if len(add.Files) > 0 && add.RootGroup.Name == "" {
		return &ValidationError{Field: "add.root_group.name", Message: "must not be empty"}
	}

	groups := make(map[string]bool, len(add.Groups))
	for i, g := range add.Groups {
		if g.Name == "" {
			return &ValidationError{Field: fmt.Sprintf("add.groups[%d].name", i), Message: "must not be empty"}
		}
		if groups[g.Name] {
			return &ValidationError{Field: fmt.Sprintf("add.groups[%d].name", i), Value: g.Name, Message: "duplicate group"}
		}
		groups[g.Name] = true
	}
	for i, f := range add.Files {
		if f.Path == "" {
			return &ValidationError{Field: fmt.Sprintf("add.files[%d].path", i), Message: "must not be empty"}
		}
		if f.Group != "" && !groups[f.Group] {
			return &ValidationError{Field: fmt.Sprintf("add.files[%d].group", i), Value: f.Group, Message: "no such group"}
		}
	}
	return nil
}

// Edit converts the plan into the edit the project applies.
func (p *Plan) Edit() pbxproj.Edit {
	edit := pbxproj.Edit{
		Remove: append([]string(nil), p.Remove...),
		Add: pbxproj.AddSpec{
			RootGroup:    pbxproj.RecordRef{ID: p.Add.RootGroup.ID, Name: p.Add.RootGroup.Name},
			SourcesPhase: pbxproj.RecordRef{ID: p.Add.SourcesPhase.ID, Name: p.Add.SourcesPhase.Name},
		},
	}
	for _, s := range p.BuildSettings {
		edit.Settings = append(edit.Settings, pbxproj.BuildSetting{Key: s.Key, Value: s.Value})
	}
	for _, g := range p.Add.Groups {
		edit.Add.Groups = append(edit.Add.Groups, pbxproj.GroupSpec{Name: g.Name, Path: g.Path})
	}
	for _, f := range p.Add.Files {
		edit.Add.Files = append(edit.Add.Files, pbxproj.SourceFile{Path: f.Path, Name: f.Name, Group: f.Group})
	}
	return edit
}

// BuildCommand is the xcodebuild invocation for NextStep, "" when the
// workspace or scheme is unset.
func (p *Plan) BuildCommand() string {
	if p.NextStep.Workspace == "" || p.NextStep.Scheme == "" {
		return ""
	}
	return fmt.Sprintf("xcodebuild -workspace %s -scheme %s -configuration Debug build", p.NextStep.Workspace, p.NextStep.Scheme)
}

var ErrInvalidPlan = errors.New("invalid plan")

type ValidationError struct {
	Field   string
	Value   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid plan: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid plan: %s", e.Message)
}

func (e *ValidationError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvalidPlan, e.Err}
	}
	return []error{ErrInvalidPlan}
}
