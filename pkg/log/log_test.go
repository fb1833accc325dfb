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

package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, Level(true))
	assert.Equal(t, zerolog.WarnLevel, Level(false))
}

func TestSetup(t *testing.T) {
	prev := zerolog.DefaultContextLogger
	defer func() { zerolog.DefaultContextLogger = prev }()

	tests := []struct {
		name     string
		opts     Options
		wantLogs []string
		dropLogs []string
	}{
		{
			name:     "debug",
			opts:     Options{Debug: true},
			wantLogs: []string{"quarantine attribute removed", "path=/tmp/a.zip", "removing quarantine attribute"},
		},
		{
			name:     "default_hides_debug",
			opts:     Options{},
			wantLogs: []string{"removing quarantine attribute"},
			dropLogs: []string{"quarantine attribute removed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			ctx := Setup(context.Background(), &buf, tt.opts)

			logger := zerolog.Ctx(ctx)
			logger.Debug().Str("path", "/tmp/a.zip").Msg("quarantine attribute removed")
			logger.Warn().Str("path", "/tmp/b.zip").Msg("removing quarantine attribute")

			out := buf.String()
			for _, want := range tt.wantLogs {
				assert.Contains(t, out, want)
			}
			for _, drop := range tt.dropLogs {
				assert.NotContains(t, out, drop)
			}
			assert.Same(t, zerolog.DefaultContextLogger, zerolog.Ctx(context.Background()), "default logger should be installed")
		})
	}
}
