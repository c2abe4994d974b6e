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
	"log/slog"
	"os"

	"github.com/soapywu/pbxpatch/logger"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose   bool
	quiet     bool
	jsonOut   bool
	noColor   bool
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "pbxpatch",
	Short: "Update an Xcode project.pbxproj in place",
	Long: `pbxpatch removes stale file records from an Xcode project, rewrites
build settings and adds new source files with their groups and Sources
build phase entries. Without flags it applies the built-in plan to
VonageSDKClientVOIPExample.xcodeproj/project.pbxproj in the current directory.

Example:
  pbxpatch
  pbxpatch --dry-run
  pbxpatch plan > plan.yaml && pbxpatch --plan plan.yaml --strict`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging(cmd.ErrOrStderr())
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApply(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output the summary in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func initLogging(w io.Writer) error {
	format, ok := logger.ParseFormat(logFormat)
	if !ok {
		return fmt.Errorf("unknown log format %q", logFormat)
	}
	level := slog.LevelInfo
	switch {
	case verbose:
		level = slog.LevelDebug
	case quiet:
		level = slog.LevelError
	}
	logger.Init(logger.Options{Level: level, Format: format, Writer: w})
	return nil
}
