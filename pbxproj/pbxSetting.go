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

type BuildSetting struct {
	Key   string
	Value string
}

type SettingResult struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Count int    `json:"count"`
}

// UpdateBuildSetting sets key to value in every build configuration that
// declares it and returns how many declarations were rewritten. Value is
// written verbatim, quote it beforehand if the format needs it.
func (p *Project) UpdateBuildSetting(key, value string) int {
	re := buildSettingRegex(key)
	n := len(re.FindAllStringIndex(p.contents, -1))
	if n > 0 {
		p.contents = re.ReplaceAllLiteralString(p.contents, key+" = "+value+";")
	}
	p.logger.Info("updated build setting", "key", key, "value", value, "count", n)
	return n
}
