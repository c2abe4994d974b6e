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
	"regexp"
	"strings"
)

const (
	BUILD_FILE_SECTION_BEGIN     = "/* Begin PBXBuildFile section */\n"
	FILE_REFERENCE_SECTION_BEGIN = "/* Begin PBXFileReference section */\n"
	GROUP_SECTION_END            = "/* End PBXGroup section */"
)

// anyIDPattern matches a record identifier when no literal one is given.
const anyIDPattern = `[0-9A-F]{24}`

var (
	uuidRegex      = regexp.MustCompile(`\b[0-9A-F]{24}\b`)
	unquotedRegex  = regexp.MustCompile(`(^")|("$)`)
	bareValueRegex = regexp.MustCompile(`^[A-Za-z0-9_$+/:.\-]+$`)
)

func unquoted(text string) string {
	if text == "" {
		return text
	}
	return unquotedRegex.ReplaceAllString(text, "")
}

// quoted wraps text in double quotes unless it is a bare word the format
// accepts as is.
func quoted(text string) string {
	if bareValueRegex.MatchString(text) {
		return text
	}
	escaped := strings.ReplaceAll(text, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `"`, `\"`)
	return `"` + escaped + `"`
}

// IsIdentifier reports whether id has the 24 upper-case hex digit form.
func IsIdentifier(id string) bool {
	return len(id) == 24 && uuidRegex.MatchString(id)
}

// idPattern is the literal id, or any identifier when id is empty.
func idPattern(id string) string {
	if id == "" {
		return anyIDPattern
	}
	return regexp.QuoteMeta(id)
}

// entryRegex matches a full `ID /* … */ = { … };` record at object indent.
// A body holding any brace, such as a nested dictionary, is not matched.
func entryRegex(id string) *regexp.Regexp {
	return regexp.MustCompile(`\t\t` + regexp.QuoteMeta(id) + ` /\*[^*]*\*/ = \{[^{}]*\};\n`)
}

// listReferenceRegex matches an `ID /* … */,` line of a child list.
func listReferenceRegex(id string) *regexp.Regexp {
	return regexp.MustCompile(`\t\t\t\t` + regexp.QuoteMeta(id) + ` /\*[^*]*\*/,\n`)
}

// listOpenRegex matches record ID /* comment */ up to the opening of its
// `key = (` list.
func listOpenRegex(id, comment, key string) *regexp.Regexp {
	return regexp.MustCompile(idPattern(id) + ` /\* ` + regexp.QuoteMeta(comment) +
		` \*/ = \{[^}]*` + regexp.QuoteMeta(key) + ` = \(\n`)
}

func buildSettingRegex(key string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(key) + ` = [^;\n]*;`)
}

func insertAt(content string, pos int, text string) string {
	return content[:pos] + text + content[pos:]
}
