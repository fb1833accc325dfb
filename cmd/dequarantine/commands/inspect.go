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
	"encoding/json"

	"github.com/spf13/cobra"
	"github.com/walteh/dequarantine/cmd/dequarantine/opts"
	"github.com/walteh/dequarantine/pkg/config"
	"github.com/walteh/dequarantine/pkg/ingest"
	"github.com/walteh/dequarantine/pkg/status"
	"gitlab.com/tozd/go/errors"
)

type inspectRecord struct {
	Path        string `json:"path"`
	Quarantined bool   `json:"quarantined"`
	Error       string `json:"error,omitempty"`
}

// 🔍 NewInspectCmd reports which files carry the attribute without changing them
func NewInspectCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [file or glob]...",
		Short: "Show whether files are quarantined",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			paths, err := ingest.ArgsPicker{Args: args}.Pick(ctx)
			if err != nil {
				return errors.Errorf("selecting files: %w", err)
			}

			svc := o.Service()
			rows := make([]status.InspectRow, 0, len(paths))
			for _, p := range paths {
				marked, err := svc.Marked(ctx, p)
				rows = append(rows, status.InspectRow{Path: p.String(), Marked: marked, Err: err})
			}

			if o.Config.Format == config.FormatJSON {
				enc := json.NewEncoder(o.Stdout)
				for _, r := range rows {
					rec := inspectRecord{Path: r.Path, Quarantined: r.Marked}
					if r.Err != nil {
						rec.Error = r.Err.Error()
					}
					if err := enc.Encode(rec); err != nil {
						return errors.Errorf("writing json: %w", err)
					}
				}
				return nil
			}

			status.RenderTable(o.Stdout, rows)
			return nil
		},
	}

	return cmd
}
