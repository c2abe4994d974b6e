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
	"errors"
	"fmt"
	"strings"
)

// ErrStrict is returned by Apply in strict mode when an identifier matched
// nothing or an insertion step was skipped.
var ErrStrict = errors.New("strict mode")

// Edit is one full run: removals, then setting updates, then additions.
type Edit struct {
	Remove   []string
	Settings []BuildSetting
	Add      AddSpec
}

type ApplyOptions struct {
	Strict bool
}

type Result struct {
	Removed  RemoveResult    `json:"removed"`
	Settings []SettingResult `json:"settings"`
	Added    AddResult       `json:"added"`
}

func (r Result) Diagnostics() []Diagnostic {
	return r.Added.Diagnostics
}

// Apply runs the edit against the in-memory buffer. It never writes; call
// Save afterwards. In strict mode a no-op removal or a skipped insertion
// fails the run, and the caller should not save.
func (p *Project) Apply(edit Edit, opts ApplyOptions) (Result, error) {
	var result Result

	result.Removed = p.RemoveReferences(edit.Remove)

	for _, setting := range edit.Settings {
		n := p.UpdateBuildSetting(setting.Key, setting.Value)
		result.Settings = append(result.Settings, SettingResult{Key: setting.Key, Value: setting.Value, Count: n})
	}

	added, err := p.AddFiles(edit.Add)
	result.Added = added
	if err != nil {
		return result, err
	}

	if opts.Strict {
		if err := strictCheck(result); err != nil {
			return result, err
		}
	}
	return result, nil
}

func strictCheck(result Result) error {
	problems := []string{}
	if len(result.Removed.Unmatched) > 0 {
		problems = append(problems, fmt.Sprintf("identifiers not found: %s", strings.Join(result.Removed.Unmatched, ", ")))
	}
	for _, setting := range result.Settings {
		if setting.Count == 0 {
			problems = append(problems, fmt.Sprintf("build setting %s not found", setting.Key))
		}
	}
	for _, d := range result.Diagnostics() {
		problems = append(problems, d.String())
	}
	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrStrict, strings.Join(problems, "; "))
}
