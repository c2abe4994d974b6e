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

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Printer struct {
	w      io.Writer
	color  bool
	styles styles
}

// NewPrinter writes to w. Without color every line is written verbatim.
func NewPrinter(w io.Writer, color bool) *Printer {
	return &Printer{w: w, color: color, styles: newStyles()}
}

func (p *Printer) render(style lipgloss.Style, s string) string {
	if !p.color {
		return s
	}
	return style.Render(s)
}

func (p *Printer) line(s string) {
	fmt.Fprintln(p.w, s)
}

// PrintSummary writes the closing summary.
func (p *Printer) PrintSummary(s Summary) {
	st := p.styles
	r := s.Result

	switch {
	case s.DryRun:
		p.line(p.render(st.title, "Dry run, nothing written: "+s.Project))
	case s.Written:
		p.line(p.render(st.title, "Project update complete: "+s.Project))
	default:
		p.line(p.render(st.title, "Project unchanged: "+s.Project))
	}
	p.line("")
	p.line("Summary:")

	bullet := p.render(st.bullet, "  •")
	p.line(fmt.Sprintf("%s Removed %d records and %d list references", bullet, r.Removed.Entries, r.Removed.ListReferences))
	for _, setting := range r.Settings {
		p.line(fmt.Sprintf("%s Set %s = %s (%s)", bullet, setting.Key, setting.Value, plural(setting.Count, "occurrence")))
	}
	p.line(fmt.Sprintf("%s Added %s in %s", bullet, plural(len(r.Added.Files), "file"), plural(len(r.Added.Groups), "group")))
	p.line(p.render(st.muted, fmt.Sprintf("    %s -> %s", s.Before.Short(), s.After.Short())))

	warnings := []string{}
	if len(r.Removed.Unmatched) > 0 {
		warnings = append(warnings, "identifiers not found: "+strings.Join(r.Removed.Unmatched, ", "))
	}
	for _, d := range r.Diagnostics() {
		warnings = append(warnings, d.String())
	}
	if len(warnings) > 0 {
		p.line("")
		p.line("Warnings:")
		for _, w := range warnings {
			p.line(p.render(st.warning, "  ! "+w))
		}
	}

	if s.BuildCommand != "" {
		p.line("")
		p.line("Next: Build the project")
		p.line("  " + p.render(st.command, s.BuildCommand))
	}
}

// PrintDiff writes a unified diff, colouring added and removed lines.
func (p *Printer) PrintDiff(diff string) {
	if diff == "" {
		return
	}
	st := p.styles
	for _, l := range strings.SplitAfter(diff, "\n") {
		if l == "" {
			continue
		}
		text := strings.TrimSuffix(l, "\n")
		switch {
		case strings.HasPrefix(text, "+++"), strings.HasPrefix(text, "---"):
			text = p.render(st.title, text)
		case strings.HasPrefix(text, "@@"):
			text = p.render(st.hunk, text)
		case strings.HasPrefix(text, "+"):
			text = p.render(st.added, text)
		case strings.HasPrefix(text, "-"):
			text = p.render(st.removed, text)
		}
		p.line(text)
	}
}

// PrintJSON writes v as indented JSON.
func (p *Printer) PrintJSON(v interface{}) error {
	encoder := json.NewEncoder(p.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
