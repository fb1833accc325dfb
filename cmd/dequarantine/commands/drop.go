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
	"bufio"
	"bytes"
	"context"
	"io"

	"github.com/spf13/cobra"
	"github.com/walteh/dequarantine/cmd/dequarantine/opts"
	"github.com/walteh/dequarantine/pkg/ingest"
	"gitlab.com/tozd/go/errors"
)

// 🫳 NewDropCmd treats stdin as one drop gesture
func NewDropCmd(o *opts.RootOpts) *cobra.Command {
	var null bool

	cmd := &cobra.Command{
		Use:   "drop",
		Short: "Dequarantine paths and file URLs read from stdin",
		Long: `Drop reads one item per line (or per NUL with --null) and handles them
like files dropped on a window: file:// URLs and paths are resolved
concurrently and dequarantined as they arrive, anything else is reported
as unidentifiable without stopping the rest.`,
		Example: `  find ~/Downloads -name '*.dmg' -print0 | dequarantine drop --null
  pbpaste | dequarantine drop`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := readItems(o.Stdin, null)
			if err != nil {
				return errors.Errorf("reading dropped items: %w", err)
			}

			p := o.NewPresenter()
			summary, err := runSession(cmd.Context(), o, p, func(ctx context.Context, s *ingest.Session) error {
				return s.Drop(ctx, items)
			})
			if err != nil {
				return errors.Errorf("dropping items: %w", err)
			}

			p.Summary(summary)
			return incomplete(summary)
		},
	}

	cmd.Flags().BoolVarP(&null, "null", "0", false, "items are separated by NUL instead of newline")

	return cmd
}

// readItems splits r into drop items, skipping empty lines
func readItems(r io.Reader, null bool) ([]ingest.Item, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	if null {
		scanner.Split(scanNull)
	}

	var items []ingest.Item
	for scanner.Scan() {
		line := scanner.Text()
		if len(bytes.TrimSpace([]byte(line))) == 0 {
			continue
		}
		items = append(items, ingest.ParseItem(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// scanNull is a bufio.SplitFunc for NUL separated input
func scanNull(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, 0); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
