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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/dequarantine/pkg/ingest"
)

func TestReadItems(t *testing.T) {
	tests := []struct {
		name  string
		input string
		null  bool
		want  []ingest.Item
	}{
		{
			name:  "lines",
			input: "/tmp/a\n\n  \nhttps://x\r\n",
			want: []ingest.Item{
				{Type: ingest.TypeFileURL, Data: "/tmp/a"},
				{Type: ingest.TypeURL, Data: "https://x"},
			},
		},
		{
			name:  "null_keeps_newlines_in_names",
			input: "/tmp/odd\nname\x00file:///tmp/b\x00",
			null:  true,
			want: []ingest.Item{
				{Type: ingest.TypeFileURL, Data: "/tmp/odd\nname"},
				{Type: ingest.TypeFileURL, Data: "file:///tmp/b"},
			},
		},
		{
			name:  "null_without_trailing_separator",
			input: "/tmp/a",
			null:  true,
			want:  []ingest.Item{{Type: ingest.TypeFileURL, Data: "/tmp/a"}},
		},
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readItems(strings.NewReader(tt.input), tt.null)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
