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

package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/soapywu/pbxpatch/logger"
	"github.com/soapywu/pbxpatch/pbxproj"
	"github.com/soapywu/pbxpatch/plan"
	"github.com/soapywu/pbxpatch/report"
)

var (
	projectPath string
	planFile    string
	dryRun      bool
	strict      bool
)

func init() {
	rootCmd.Flags().StringVarP(&projectPath, "project", "p", "", "Path to project.pbxproj (overrides the plan)")
	rootCmd.Flags().StringVarP(&planFile, "plan", "f", "", "YAML plan file (default: built-in plan)")
	rootCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Print a unified diff instead of writing")
	rootCmd.Flags().BoolVar(&strict, "strict", false, "Fail before writing if any step was a no-op")
}

func loadPlan() (*plan.Plan, error) {
	if planFile == "" {
		return plan.Default(), nil
	}
	return plan.Load(planFile)
}

func runApply(out io.Writer) error {
	p, err := loadPlan()
	if err != nil {
		return err
	}
	if projectPath != "" {
		p.Project = projectPath
	}

	logger.Debug("opening project", "path", p.Project, "plan", planFile)
	project := pbxproj.NewPbxProject(p.Project, pbxproj.WithLogger(logger.L))
	if err := project.Load(); err != nil {
		return err
	}

	result, err := project.Apply(p.Edit(), pbxproj.ApplyOptions{Strict: strict})
	if err != nil {
		return fmt.Errorf("%s: %w", p.Project, err)
	}

	printer := report.NewPrinter(out, !noColor)
	if dryRun {
		diff, err := report.Diff(p.Project, project.Original(), project.Contents())
		if err != nil {
			return fmt.Errorf("diff: %w", err)
		}
		if !jsonOut && !quiet {
			printer.PrintDiff(diff)
		}
	} else if project.Changed() {
		if err := project.Save(); err != nil {
			return err
		}
		logger.Info("wrote project", "path", p.Project, "size", humanize.Bytes(uint64(len(project.Contents()))))
	} else {
		logger.Warn("plan changed nothing, project left as is", "path", p.Project)
	}

	summary := report.NewSummary(project, result, dryRun, p.BuildCommand())
	if jsonOut {
		return printer.PrintJSON(summary)
	}
	if !quiet {
		if dryRun {
			fmt.Fprintln(out)
		}
		printer.PrintSummary(summary)
	}
	return nil
}
