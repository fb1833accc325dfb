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

	"github.com/walteh/dequarantine/cmd/dequarantine/opts"
	"github.com/walteh/dequarantine/pkg/ingest"
	"gitlab.com/tozd/go/errors"
)

// ErrIncomplete is returned when any file, item or selection failed.
var ErrIncomplete = errors.Base("not every file could be dequarantined")

// runSession serves a fresh session around fn and returns its tally
func runSession(ctx context.Context, o *opts.RootOpts, p opts.Presenter, fn func(ctx context.Context, s *ingest.Session) error) (ingest.Summary, error) {
	s := ingest.NewSession(o.Service(), p, o.Config.Workers)
	err := s.Serve(ctx, func(ctx context.Context) error {
		return fn(ctx, s)
	})
	return s.Summary(), err
}

// incomplete converts a failed tally into the command error
func incomplete(summary ingest.Summary) error {
	if summary.OK() {
		return nil
	}
	return errors.WithDetails(ErrIncomplete,
		"failed", summary.Failed,
		"unidentifiable", summary.Unidentifiable,
		"selection_failures", summary.SelectionFailures,
	)
}
