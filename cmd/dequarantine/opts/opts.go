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

// Package opts holds the dependencies shared by every subcommand.
package opts

import (
	"io"

	"github.com/walteh/dequarantine/pkg/config"
	"github.com/walteh/dequarantine/pkg/ingest"
	"github.com/walteh/dequarantine/pkg/quarantine"
	"github.com/walteh/dequarantine/pkg/status"
	"github.com/walteh/dequarantine/pkg/xattr"
)

// Presenter is an ingest.Presenter that can also print a closing tally.
type Presenter interface {
	ingest.Presenter
	Summary(s ingest.Summary)
}

var (
	_ Presenter = (*status.Console)(nil)
	_ Presenter = (*status.JSON)(nil)
)

// 🔧 RootOpts is filled in by the root command before a subcommand runs
type RootOpts struct {
	Config *config.Config
	Store  xattr.Store
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// 🏭 New creates options backed by the host filesystem
func New(stdin io.Reader, stdout, stderr io.Writer) *RootOpts {
	return &RootOpts{
		Config: config.Default(),
		Store:  xattr.NewOS(),
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}
}

// Service builds the attribute service over the configured store.
func (o *RootOpts) Service() *quarantine.Service {
	return quarantine.New(o.Store)
}

// NewPresenter picks the presenter for the configured output format.
func (o *RootOpts) NewPresenter() Presenter {
	if o.Config.Format == config.FormatJSON {
		return status.NewJSON(o.Stdout)
	}
	return status.NewConsole(o.Stdout)
}
