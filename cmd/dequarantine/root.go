// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/walteh/dequarantine/cmd/dequarantine/commands"
	"github.com/walteh/dequarantine/cmd/dequarantine/opts"
	"github.com/walteh/dequarantine/pkg/config"
	"github.com/walteh/dequarantine/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// rootFlags are bound to persistent flags; zero values mean "not given"
type rootFlags struct {
	configFile string
	debug      bool
	format     string
	workers    int
	noColor    bool
}

// newRootCmd wires the subcommands around o
func newRootCmd(o *opts.RootOpts) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "dequarantine",
		Short: "Remove the quarantine attribute from downloaded files",
		Long: `dequarantine removes the com.apple.quarantine extended attribute that the
operating system attaches to files from untrusted sources.

Files are selected on the command line (clean) or dropped as a stream of
paths and file:// URLs on stdin (drop). Only that one attribute is ever
touched, directories are not recursed into.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd, o, flags)
		},
	}

	addRootFlags(cmd, flags)

	cmd.AddCommand(
		commands.NewCleanCmd(o),
		commands.NewDropCmd(o),
		commands.NewInspectCmd(o),
		newVersionCmd(o),
	)

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, flags *rootFlags) {
	cmd.PersistentFlags().StringVarP(&flags.configFile, "config", "c", config.DefaultFile, "config file path")
	cmd.PersistentFlags().BoolVarP(&flags.debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().StringVarP(&flags.format, "format", "f", "", "output format (text or json)")
	cmd.PersistentFlags().IntVarP(&flags.workers, "workers", "w", 0, "concurrent drop resolutions (default: number of CPUs)")
	cmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "disable colored output")
}

// setup loads config, applies flag overrides and configures logging
func setup(cmd *cobra.Command, o *opts.RootOpts, flags *rootFlags) error {
	ctx := cmd.Context()

	// the default file is optional, an explicit one is not
	optional := !cmd.Flags().Changed("config")
	cfg, err := config.Load(ctx, flags.configFile, optional)
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}

	if cmd.Flags().Changed("debug") {
		cfg.Debug = flags.debug
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = flags.format
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = flags.workers
	}
	if flags.noColor {
		off := false
		cfg.Color = &off
	}
	if err := cfg.Validate(); err != nil {
		return errors.Errorf("validating flags: %w", err)
	}
	o.Config = cfg

	if !cfg.UseColor() {
		color.NoColor = true
		pterm.DisableStyling()
	}

	ctx = log.Setup(ctx, o.Stderr, log.Options{Debug: cfg.Debug, Color: cfg.UseColor()})
	cmd.SetContext(ctx)

	return nil
}
