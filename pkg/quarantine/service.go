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

/*
Package quarantine removes the quarantine marker from files.

	+-----------+      +-----------+      +-----------+
	|  ingest   | ---> | Service   | ---> |  xattr    |
	| (paths)   |      | (Process) |      |  (Store)  |
	+-----------+      +-----------+      +-----------+

🔄 Flow per file:
 1. List the extended attribute names
 2. Return NotMarked when the marker is absent
 3. Remove the marker and return Cleaned

Every failure is converted into a Failed outcome at the single-file scope,
so a batch always runs to the end. The service keeps no state between
calls and may be used from several goroutines at once.
*/
package quarantine

import (
	"context"
	"slices"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/walteh/dequarantine/pkg/xattr"
)

// Attribute is the extended attribute the OS attaches to untrusted files.
const Attribute = "com.apple.quarantine"

// FilePath is an absolute path produced by the ingestion boundary.
type FilePath string

func (p FilePath) String() string { return string(p) }

// 🧹 Service dequarantines files through an xattr.Store
type Service struct {
	store     xattr.Store
	attribute string
}

// 🏭 New creates a service that removes Attribute using store
func New(store xattr.Store) *Service {
	return &Service{
		store:     store,
		attribute: Attribute,
	}
}

// 🏃 Process removes the marker from path if present
func (s *Service) Process(ctx context.Context, path FilePath) Outcome {
	logger := zerolog.Ctx(ctx).With().Str("path", path.String()).Logger()

	names, err := s.store.List(path.String())
	if err != nil {
		logger.Warn().Err(err).Msg("listing extended attributes")
		return NewFailed(err.Error())
	}

	if !slices.Contains(names, s.attribute) {
		logger.Debug().Msg("file is not quarantined")
		return NewNotMarked()
	}

	if err := s.store.Remove(path.String(), s.attribute); err != nil {
		logger.Warn().Err(err).Msg("removing quarantine attribute")
		return NewFailed(err.Error())
	}

	logger.Debug().Msg("quarantine attribute removed")
	return NewCleaned()
}

// 📋 ProcessBatch runs Process over paths in order and never stops early
func (s *Service) ProcessBatch(ctx context.Context, paths []FilePath) Report {
	report := Report{
		ID:      uuid.NewString(),
		Entries: make([]Entry, 0, len(paths)),
	}

	ctx = zerolog.Ctx(ctx).With().Str("batch_id", report.ID).Logger().WithContext(ctx)
	for _, path := range paths {
		report.Entries = append(report.Entries, Entry{
			Path:    path,
			Outcome: s.Process(ctx, path),
		})
	}

	counts := report.Counts()
	zerolog.Ctx(ctx).Debug().
		Int("cleaned", counts.Cleaned).
		Int("not_marked", counts.NotMarked).
		Int("failed", counts.Failed).
		Msg("batch processed")

	return report
}

// 🔍 Marked reports whether path carries the marker without touching it
func (s *Service) Marked(ctx context.Context, path FilePath) (bool, error) {
	names, err := s.store.List(path.String())
	if err != nil {
		return false, err
	}
	return slices.Contains(names, s.attribute), nil
}
