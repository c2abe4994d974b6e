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

	"github.com/gofrs/uuid"
)

const maxGenerateAttempts = 64

var ErrIdentifierExhausted = errors.New("could not generate a fresh identifier")

// IDSource yields candidate identifiers. UUIDGenerator rejects candidates
// that are already in use.
type IDSource func() (string, error)

// RandomID returns the first 24 hex digits of a v4 UUID, upper case.
func RandomID() (string, error) {
	u, err := uuid.NewV4()
	if err != nil {
		return "", err
	}
	return strings.ToUpper(strings.ReplaceAll(u.String(), "-", "")[0:24]), nil
}

// SequentialIDSource counts up from start. Output is reproducible, so it
// suits fixtures and golden files.
func SequentialIDSource(start uint64) IDSource {
	next := start
	return func() (string, error) {
		id := fmt.Sprintf("%024X", next)
		next++
		return id, nil
	}
}

type UUIDGenerator struct {
	source IDSource
	uuids  map[string]struct{}
}

func NewUUIDGenerator(source IDSource) *UUIDGenerator {
	if source == nil {
		source = RandomID
	}
	return &UUIDGenerator{
		source: source,
		uuids:  make(map[string]struct{}),
	}
}

// Reserve marks identifiers as taken.
func (g *UUIDGenerator) Reserve(ids ...string) {
	for _, id := range ids {
		g.uuids[id] = struct{}{}
	}
}

func (g *UUIDGenerator) Known(id string) bool {
	_, found := g.uuids[id]
	return found
}

// Generate returns an identifier not present in the document and not handed
// out before.
func (g *UUIDGenerator) Generate() (string, error) {
	for i := 0; i < maxGenerateAttempts; i++ {
		id, err := g.source()
		if err != nil {
			return "", fmt.Errorf("generate identifier: %w", err)
		}
		if !IsIdentifier(id) {
			return "", fmt.Errorf("generate identifier: malformed candidate %q", id)
		}
		if g.Known(id) {
			continue
		}
		g.uuids[id] = struct{}{}
		return id, nil
	}
	return "", ErrIdentifierExhausted
}

func (g *UUIDGenerator) reserveFrom(contents string) {
	g.Reserve(uuidRegex.FindAllString(contents, -1)...)
}
