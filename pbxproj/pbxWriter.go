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

const (
	INDENT = "\t"
	// OBJECT_INDENT is the nesting of records inside `objects = { … }`.
	OBJECT_INDENT = 2
	// LIST_INDENT is the nesting of items in a record's child list.
	LIST_INDENT = 4
)

type PbxWriterOption func(w *PbxWriter)

func WithOmitEmpty() PbxWriterOption {
	return func(w *PbxWriter) {
		w.omitEmptyValues = true
	}
}

func WithIndentLevel(level int) PbxWriterOption {
	return func(w *PbxWriter) {
		w.indentLevel = level
	}
}

// PbxWriter renders records in the layout Xcode itself writes, so inserted
// text is indistinguishable from the surrounding document.
type PbxWriter struct {
	sb              strings.Builder
	omitEmptyValues bool
	indentLevel     int
}

func NewPbxWriter(options ...PbxWriterOption) *PbxWriter {
	w := &PbxWriter{indentLevel: OBJECT_INDENT}
	for _, option := range options {
		option(w)
	}
	return w
}

func (w *PbxWriter) String() string {
	return w.sb.String()
}

func indent(x int) string {
	if x <= 0 {
		return ""
	}
	return strings.Repeat(INDENT, x)
}

func (w *PbxWriter) write(format string, args ...interface{}) {
	w.sb.WriteString(indent(w.indentLevel))
	fmt.Fprintf(&w.sb, format, args...)
}

// WriteEntry renders one `key /* comment */ = { … };` record. Build files and
// file references go on a single line, everything else as a block.
func (w *PbxWriter) WriteEntry(key, comment string, obj plist.Object) {
	isa := obj.GetString("isa")
	if isa == "PBXBuildFile" || isa == "PBXFileReference" {
		w.writeInlineObject(key, comment, obj)
		return
	}
	if comment != "" {
		w.write("%s /* %s */ = {\n", key, comment)
	} else {
		w.write("%s = {\n", key)
	}
	w.indentLevel++
	w.writeObject(obj)
	w.indentLevel--
	w.write("};\n")
}

// WriteListItem renders one `value /* comment */,` line of a child list.
func (w *PbxWriter) WriteListItem(child plist.CommentValue) {
	if child.Comment != "" {
		w.write("%s /* %s */,\n", child.Value, child.Comment)
	} else {
		w.write("%s,\n", child.Value)
	}
}

func (w *PbxWriter) writeObject(obj plist.Object) {
	obj.Foreach(func(key string, val interface{}) plist.IterateAction {
		cmt := obj.Comment(key)
		switch v := val.(type) {
		case []interface{}:
			w.writeArray(v, key)
		case string:
			if w.omitEmptyValues && v == "" {
				return plist.IterateContinue
			}
			if cmt != "" {
				w.write("%s = %s /* %s */;\n", key, v, cmt)
			} else {
				w.write("%s = %s;\n", key, v)
			}
		}
		return plist.IterateContinue
	})
}

func (w *PbxWriter) writeArray(arr []interface{}, name string) {
	w.write("%s = (\n", name)
	w.indentLevel++
	for _, item := range arr {
		if child, ok := item.(plist.CommentValue); ok {
			w.WriteListItem(child)
		}
	}
	w.indentLevel--
	w.write(");\n")
}

func (w *PbxWriter) writeInlineObjectHelp(output *[]string, name, desc string, ref plist.Object) {
	if desc != "" {
		*output = append(*output, fmt.Sprintf("%s /* %s */ = {", name, desc))
	} else {
		*output = append(*output, fmt.Sprintf("%s = {", name))
	}

	ref.Foreach(func(key string, val interface{}) plist.IterateAction {
		v, ok := val.(string)
		if !ok || (v == "" && w.omitEmptyValues) {
			return plist.IterateContinue
		}
		if cmt := ref.Comment(key); cmt != "" {
			*output = append(*output, fmt.Sprintf("%s = %s /* %s */; ", key, v, cmt))
		} else {
			*output = append(*output, fmt.Sprintf("%s = %s; ", key, v))
		}
		return plist.IterateContinue
	})

	*output = append(*output, "};")
}

func (w *PbxWriter) writeInlineObject(name, desc string, ref plist.Object) {
	output := []string{}
	w.writeInlineObjectHelp(&output, name, desc, ref)
	w.write("%s\n", strings.TrimSpace(strings.Join(output, "")))
}

func renderEntry(key, comment string, obj plist.Object) string {
	w := NewPbxWriter(WithOmitEmpty())
	w.WriteEntry(key, comment, obj)
	return w.String()
}

func renderListItems(children []plist.CommentValue) string {
	w := NewPbxWriter(WithIndentLevel(LIST_INDENT))
	for _, child := range children {
		w.WriteListItem(child)
	}
	return w.String()
}
