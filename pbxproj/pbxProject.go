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

// Package pbxproj edits an Xcode project.pbxproj in place by pattern-based
// text surgery: removing records, rewriting build settings and splicing in
// new source files. Text the edits do not touch is preserved byte for byte.
package pbxproj

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
)

const defaultFileMode fs.FileMode = 0644

type ProjectOption func(p *Project)

func WithLogger(logger *slog.Logger) ProjectOption {
	return func(p *Project) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithIDSource replaces the random identifier source.
func WithIDSource(source IDSource) ProjectOption {
	return func(p *Project) {
		p.idSource = source
	}
}

type Project struct {
	filePath string
	contents string
	original string
	mode     fs.FileMode
	idSource IDSource
	uuids    *UUIDGenerator
	logger   *slog.Logger
}

func NewPbxProject(filePath string, options ...ProjectOption) *Project {
	p := &Project{
		filePath: filePath,
		mode:     defaultFileMode,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(p)
	}
	p.uuids = NewUUIDGenerator(p.idSource)
	return p
}

// NewPbxProjectFromString wraps contents already in memory. Save still
// writes to filePath.
func NewPbxProjectFromString(filePath, contents string, options ...ProjectOption) *Project {
	p := NewPbxProject(filePath, options...)
	p.setContents(contents)
	return p
}

func (p *Project) FilePath() string {
	return p.filePath
}

// Load reads the whole file into memory. A missing file is returned as an
// error wrapping fs.ErrNotExist.
func (p *Project) Load() error {
	info, err := os.Stat(p.filePath)
	if err != nil {
		return fmt.Errorf("load project: %w", err)
	}
	data, err := os.ReadFile(p.filePath)
	if err != nil {
		return fmt.Errorf("load project: %w", err)
	}
	p.mode = info.Mode().Perm()
	p.setContents(string(data))
	p.logger.Debug("loaded project", "path", p.filePath, "bytes", len(data), "identifiers", len(p.uuids.uuids))
	return nil
}

func (p *Project) setContents(contents string) {
	p.contents = contents
	p.original = contents
	p.uuids.reserveFrom(contents)
}

// Contents is the current, possibly edited, buffer.
func (p *Project) Contents() string {
	return p.contents
}

// Original is the buffer as it was loaded.
func (p *Project) Original() string {
	return p.original
}

func (p *Project) Changed() bool {
	return p.contents != p.original
}

// Save overwrites the file with the current buffer, keeping its permission
// bits. The write is not atomic.
func (p *Project) Save() error {
	if err := os.WriteFile(p.filePath, []byte(p.contents), p.mode); err != nil {
		return fmt.Errorf("save project: %w", err)
	}
	p.logger.Debug("saved project", "path", p.filePath, "bytes", len(p.contents))
	return nil
}

func (p *Project) generateUuid() (string, error) {
	return p.uuids.Generate()
}
