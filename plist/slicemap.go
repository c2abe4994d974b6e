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

package plist

// SliceItem is one key/value pair of a SliceMap, in insertion order.
type SliceItem struct {
	Key   string
	Value interface{}
}

// SliceMap is a map that remembers the order keys were first set in.
// Records in a project file are order sensitive, a plain map is not enough.
type SliceMap struct {
	idx map[string]int
	sl  []SliceItem
}

func NewSliceMap() *SliceMap {
	return &SliceMap{
		idx: make(map[string]int),
		sl:  make([]SliceItem, 0),
	}
}

func (m *SliceMap) Get(key string) (interface{}, bool) {
	i, found := m.idx[key]
	if !found {
		return nil, false
	}
	return m.sl[i].Value, true
}

// Set overwrites in place when the key exists, otherwise appends.
func (m *SliceMap) Set(key string, v interface{}) {
	if i, found := m.idx[key]; found {
		m.sl[i].Value = v
		return
	}
	m.sl = append(m.sl, SliceItem{Key: key, Value: v})
	m.idx[key] = len(m.sl) - 1
}

func (m *SliceMap) Size() int {
	return len(m.sl)
}

func (m *SliceMap) Items() []SliceItem {
	return m.sl
}
