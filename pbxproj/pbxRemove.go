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

type RemoveResult struct {
	Entries        int      `json:"entries"`
	ListReferences int      `json:"list_references"`
	Unmatched      []string `json:"unmatched,omitempty"`
}

// RemoveReferences deletes every record defined under one of ids, then every
// child-list line referencing one of them. Identifiers that match nothing
// are reported in Unmatched and otherwise ignored, as are strings that are
// not identifiers at all.
func (p *Project) RemoveReferences(ids []string) RemoveResult {
	var result RemoveResult
	matched := make(map[string]bool, len(ids))

	for _, id := range ids {
		if !IsIdentifier(id) {
			continue
		}
		re := entryRegex(id)
		n := len(re.FindAllStringIndex(p.contents, -1))
		if n == 0 {
			continue
		}
		p.contents = re.ReplaceAllLiteralString(p.contents, "")
		for i := 0; i < n; i++ {
			p.logger.Info("removed entry", "id", id)
		}
		result.Entries += n
		matched[id] = true
	}

	for _, id := range ids {
		if !IsIdentifier(id) {
			continue
		}
		re := listReferenceRegex(id)
		n := len(re.FindAllStringIndex(p.contents, -1))
		if n == 0 {
			continue
		}
		p.contents = re.ReplaceAllLiteralString(p.contents, "")
		p.logger.Debug("removed list references", "id", id, "count", n)
		result.ListReferences += n
		matched[id] = true
	}

	for _, id := range ids {
		if !matched[id] {
			p.logger.Debug("identifier not found", "id", id)
			result.Unmatched = append(result.Unmatched, id)
		}
	}
	return result
}
