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

package ingest

import (
	"context"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/dequarantine/pkg/quarantine"
	"gitlab.com/tozd/go/errors"
)

// 🗂️ Picker produces one confirmed selection of files
type Picker interface {
	Pick(ctx context.Context) ([]quarantine.FilePath, error)
}

// PickerFunc adapts a function to Picker.
type PickerFunc func(ctx context.Context) ([]quarantine.FilePath, error)

func (f PickerFunc) Pick(ctx context.Context) ([]quarantine.FilePath, error) { return f(ctx) }

// 📝 ArgsPicker selects files named on the command line. An argument that
// does not exist as a literal path but contains glob syntax is expanded
// with doublestar. A single bad argument fails the whole selection.
type ArgsPicker struct {
	Args []string
}

func (p ArgsPicker) Pick(ctx context.Context) ([]quarantine.FilePath, error) {
	logger := zerolog.Ctx(ctx)

	seen := make(map[quarantine.FilePath]bool, len(p.Args))
	paths := make([]quarantine.FilePath, 0, len(p.Args))
	add := func(path quarantine.FilePath) {
		if seen[path] {
			return
		}
		seen[path] = true
		paths = append(paths, path)
	}

	for _, arg := range p.Args {
		path, err := ResolvePath(arg)
		if err == nil {
			add(path)
			continue
		}
		if !hasGlobMeta(arg) {
			return nil, errors.Errorf("selecting %q: %w", arg, err)
		}

		pattern, err := expandHome(arg)
		if err != nil {
			return nil, err
		}
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, errors.Errorf("expanding pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, errors.Errorf("pattern %q matched no files", arg)
		}
		logger.Debug().Str("pattern", arg).Int("matches", len(matches)).Msg("expanded selection pattern")

		for _, m := range matches {
			path, err := ResolvePath(m)
			if err != nil {
				return nil, errors.Errorf("selecting %q: %w", m, err)
			}
			add(path)
		}
	}

	return paths, nil
}

func hasGlobMeta(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}
