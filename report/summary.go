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

// Package report renders the outcome of a project update: the closing
// summary, the dry-run diff and their JSON form.
package report

import (
	"encoding/hex"

	"github.com/dustin/go-humanize"
	"github.com/soapywu/pbxpatch/pbxproj"
	"github.com/zeebo/blake3"
)

// Digest identifies one version of the project file.
type Digest struct {
	Size   int    `json:"size"`
	BLAKE3 string `json:"blake3"`
}

func NewDigest(contents string) Digest {
	sum := blake3.Sum256([]byte(contents))
	return Digest{
		Size:   len(contents),
		BLAKE3: hex.EncodeToString(sum[:]),
	}
}

// Short is the human size plus the first 12 digest digits.
func (d Digest) Short() string {
	return humanize.Bytes(uint64(d.Size)) + " " + d.BLAKE3[:12]
}

type Summary struct {
	Project      string         `json:"project"`
	DryRun       bool           `json:"dry_run"`
	Written      bool           `json:"written"`
	Before       Digest         `json:"before"`
	After        Digest         `json:"after"`
	Result       pbxproj.Result `json:"result"`
	BuildCommand string         `json:"build_command,omitempty"`
}

func NewSummary(project *pbxproj.Project, result pbxproj.Result, dryRun bool, buildCommand string) Summary {
	return Summary{
		Project:      project.FilePath(),
		DryRun:       dryRun,
		Written:      !dryRun && project.Changed(),
		Before:       NewDigest(project.Original()),
		After:        NewDigest(project.Contents()),
		Result:       result,
		BuildCommand: buildCommand,
	}
}

func (s Summary) Changed() bool {
	return s.Before.BLAKE3 != s.After.BLAKE3
}
