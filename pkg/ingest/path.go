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
	"os"
	"path/filepath"
	"strings"

	"github.com/walteh/dequarantine/pkg/quarantine"
	"gitlab.com/tozd/go/errors"
)

// ErrEmptyPath is returned for blank input.
var ErrEmptyPath = errors.Base("empty path")

// 🔍 ResolvePath turns user input into an absolute path to an existing entry.
// Symlinks are not followed; the link itself must exist.
func ResolvePath(raw string) (quarantine.FilePath, error) {
	if strings.TrimSpace(raw) == "" {
		return "", errors.WithStack(ErrEmptyPath)
	}

	raw, err := expandHome(raw)
	if err != nil {
		return "", err
	}

	abs, err := filepath.Abs(raw)
	if err != nil {
		return "", errors.Errorf("making %q absolute: %w", raw, err)
	}

	if _, err := os.Lstat(abs); err != nil {
		return "", errors.Errorf("resolving path: %w", err)
	}

	return quarantine.FilePath(abs), nil
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(raw string) (string, error) {
	if raw != "~" && !strings.HasPrefix(raw, "~/") {
		return raw, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Errorf("expanding home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(raw, "~")), nil
}
