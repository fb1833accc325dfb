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

package ingest_test

import (
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/dequarantine/pkg/ingest"
	"github.com/walteh/dequarantine/pkg/quarantine"
)

func TestParseItem(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantType string
	}{
		{name: "file_url", line: "file:///Users/me/Downloads/app.zip", wantType: ingest.TypeFileURL},
		{name: "file_url_upper", line: "FILE:///tmp/a", wantType: ingest.TypeFileURL},
		{name: "bare_absolute", line: "/tmp/a b.txt", wantType: ingest.TypeFileURL},
		{name: "bare_relative", line: "Downloads/a.txt", wantType: ingest.TypeFileURL},
		{name: "crlf", line: "/tmp/a\r", wantType: ingest.TypeFileURL},
		{name: "relative_with_colon", line: "notes:v2.txt", wantType: ingest.TypeFileURL},
		{name: "absolute_with_colon", line: "/tmp/notes:v2.txt", wantType: ingest.TypeFileURL},
		{name: "web_url", line: "https://example.com/a.zip", wantType: ingest.TypeURL},
		{name: "ftp_url", line: "ftp://example.com/a.zip", wantType: ingest.TypeURL},
		{name: "blank", line: "   ", wantType: ingest.TypeText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := ingest.ParseItem(tt.line)
			assert.Equal(t, tt.wantType, item.Type)
			assert.Equal(t, tt.wantType == ingest.TypeFileURL, item.Conforms())
		})
	}
}

func TestItemResolve(t *testing.T) {
	dir := t.TempDir()
	file := touch(t, filepath.Join(dir, "my app.zip"))

	t.Run("file_url", func(t *testing.T) {
		u := url.URL{Scheme: "file", Path: file}
		got, err := ingest.ParseItem(u.String()).Resolve()
		require.NoError(t, err)
		assert.Equal(t, quarantine.FilePath(file), got)
	})

	t.Run("localhost_url", func(t *testing.T) {
		u := url.URL{Scheme: "file", Host: "localhost", Path: file}
		got, err := ingest.ParseItem(u.String()).Resolve()
		require.NoError(t, err)
		assert.Equal(t, quarantine.FilePath(file), got)
	})

	t.Run("bare_path", func(t *testing.T) {
		got, err := ingest.ParseItem(file).Resolve()
		require.NoError(t, err)
		assert.Equal(t, quarantine.FilePath(file), got)
	})

	t.Run("relative_path_with_colon", func(t *testing.T) {
		resolved, err := filepath.EvalSymlinks(dir)
		require.NoError(t, err)
		file := touch(t, filepath.Join(resolved, "notes:v2.txt"))
		chdir(t, resolved)

		item := ingest.ParseItem("notes:v2.txt")
		assert.True(t, item.Conforms())
		got, err := item.Resolve()
		require.NoError(t, err)
		assert.Equal(t, quarantine.FilePath(file), got)
	})

	t.Run("remote_host", func(t *testing.T) {
		_, err := ingest.ParseItem("file://fileserver/share/a.zip").Resolve()
		assert.ErrorContains(t, err, "remote host")
	})

	t.Run("wrong_type", func(t *testing.T) {
		_, err := ingest.ParseItem("https://example.com").Resolve()
		assert.ErrorIs(t, err, ingest.ErrNotFileURL)
	})

	t.Run("missing_file", func(t *testing.T) {
		_, err := ingest.ParseItem(filepath.Join(dir, "gone")).Resolve()
		assert.Error(t, err)
	})
}

// chdir switches the working directory for the rest of the test
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
