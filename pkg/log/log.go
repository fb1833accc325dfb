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

// Package log sets up the zerolog logger carried through context.
package log

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Options controls the process logger.
type Options struct {
	Debug bool
	Color bool
}

// 🎚️ Level maps the debug flag to a zerolog level
func Level(debug bool) zerolog.Level {
	if debug {
		return zerolog.DebugLevel
	}
	return zerolog.WarnLevel
}

// 🏭 New creates a console logger writing to w
func New(w io.Writer, opts Options) zerolog.Logger {
	console := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    !opts.Color,
		TimeFormat: time.Kitchen,
	}
	return zerolog.New(console).Level(Level(opts.Debug)).With().Timestamp().Logger()
}

// 🎯 Setup creates the logger, installs it as the context default and
// returns a context carrying it
func Setup(ctx context.Context, w io.Writer, opts Options) context.Context {
	logger := New(w, opts)
	zerolog.DefaultContextLogger = &logger
	return logger.WithContext(ctx)
}
