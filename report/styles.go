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

package report

import "github.com/charmbracelet/lipgloss"

var (
	successColor = lipgloss.Color("#04B575")
	errorColor   = lipgloss.Color("#FF4B4B")
	warningColor = lipgloss.Color("#FFA500")
	mutedColor   = lipgloss.Color("#7D7D7D")
)

type styles struct {
	title   lipgloss.Style
	bullet  lipgloss.Style
	warning lipgloss.Style
	muted   lipgloss.Style
	command lipgloss.Style
	added   lipgloss.Style
	removed lipgloss.Style
	hunk    lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		bullet:  lipgloss.NewStyle().Foreground(successColor),
		warning: lipgloss.NewStyle().Foreground(warningColor),
		muted:   lipgloss.NewStyle().Foreground(mutedColor),
		command: lipgloss.NewStyle().Bold(true),
		added:   lipgloss.NewStyle().Foreground(successColor).TabWidth(lipgloss.NoTabConversion),
		removed: lipgloss.NewStyle().Foreground(errorColor).TabWidth(lipgloss.NoTabConversion),
		hunk:    lipgloss.NewStyle().Foreground(mutedColor),
	}
}
