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

// Package plist holds the ordered record model used to build new entries
// for a project file before they are rendered to text.
package plist

import "strings"

// CommentSuffix marks the companion key carrying the /* comment */ of a value.
const CommentSuffix = "_comment"

type IterateAction int8

const (
	IterateContinue IterateAction = iota
	IterateBreak
)

// Object is an insertion-ordered record. Values are strings, or lists of
// CommentValue references.
type Object struct {
	*SliceMap
}

type Item = SliceItem

func NewItem(key string, value interface{}) Item {
	return SliceItem{Key: key, Value: value}
}

func NewObject() Object {
	return Object{SliceMap: NewSliceMap()}
}

func NewObjectWithData(items []Item) Object {
	o := NewObject()
	for _, item := range items {
		o.Set(item.Key, item.Value)
	}
	return o
}

// CommentValue is a reference written as `value /* comment */`.
type CommentValue struct {
	Value   string
	Comment string
}

func (o Object) IsEmpty() bool {
	return o.SliceMap == nil || o.Size() == 0
}

func (o Object) GetString(key string) string {
	if o.SliceMap == nil {
		return ""
	}
	if value, ok := o.Get(key); ok {
		if s, ok := value.(string); ok {
			return s
		}
	}
	return ""
}

// SetWithComment sets key and its companion comment key.
func (o Object) SetWithComment(key string, value interface{}, comment string) {
	o.Set(key, value)
	if comment != "" {
		o.Set(CommentKey(key), comment)
	}
}

// Comment returns the comment attached to key, if any.
func (o Object) Comment(key string) string {
	return o.GetString(CommentKey(key))
}

// Append adds val to the list stored under key, creating the list if needed.
func (o Object) Append(key string, val interface{}) {
	var list []interface{}
	if v, ok := o.Get(key); ok {
		list, _ = v.([]interface{})
	}
	o.Set(key, append(list, val))
}

// Foreach walks value keys in order, skipping comment companions.
func (o Object) Foreach(apply func(key string, val interface{}) IterateAction) {
	if o.IsEmpty() {
		return
	}
	for _, item := range o.Items() {
		if item.Value == nil || IsCommentKey(item.Key) {
			continue
		}
		if apply(item.Key, item.Value) == IterateBreak {
			break
		}
	}
}

func CommentKey(key string) string {
	return key + CommentSuffix
}

func IsCommentKey(key string) bool {
	return strings.HasSuffix(key, CommentSuffix)
}
