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

package commands

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/walteh/dequarantine/cmd/dequarantine/opts"
	"github.com/walteh/dequarantine/pkg/ingest"
	"gitlab.com/tozd/go/errors"
)

// 🧹 NewCleanCmd removes the attribute from files named on the command line
func NewCleanCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean [file or glob]...",
		Short: "Dequarantine the selected files",
		Long: `Clean removes the quarantine attribute from every selected file.
It will:
1. Resolve each argument, expanding ** glob patterns
2. Fail the whole selection if any argument cannot be resolved
3. Process the files in order, continuing past individual failures
4. Report every file once the batch is done, then the totals`,
		Example: `  dequarantine clean ~/Downloads/tool.dmg
  dequarantine clean '~/Downloads/**/*.app'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := o.NewPresenter()
			summary, err := runSession(cmd.Context(), o, p, func(ctx context.Context, s *ingest.Session) error {
				return s.Import(ctx, ingest.ArgsPicker{Args: args})
			})
			if err != nil {
				return errors.Errorf("cleaning files: %w", err)
			}

			p.Summary(summary)
			return incomplete(summary)
		},
	}

	return cmd
}
