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

package status

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/walteh/dequarantine/pkg/ingest"
	"github.com/walteh/dequarantine/pkg/quarantine"
)

// 🖥️ Console presents results as human-readable terminal output
type Console struct {
	out       io.Writer
	formatter FileFormatter
	mu        sync.Mutex
}

var _ ingest.Presenter = (*Console)(nil)

// 🏭 NewConsole creates a console presenter writing to out
func NewConsole(out io.Writer) *Console {
	return &Console{
		out:       out,
		formatter: NewDefaultFileFormatter(),
	}
}

// alertPrinter picks the pterm printer for a notification class
func (c *Console) alertPrinter(kind ingest.NotificationKind) *pterm.PrefixPrinter {
	switch kind {
	case ingest.Unidentifiable:
		return pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️", Style: pterm.Warning.Prefix.Style}).WithWriter(c.out)
	case ingest.SelectionFailed:
		return pterm.Error.WithPrefix(pterm.Prefix{Text: "📂", Style: pterm.Error.Prefix.Style}).WithWriter(c.out)
	default:
		return pterm.Error.WithPrefix(pterm.Prefix{Text: "❌", Style: pterm.Error.Prefix.Style}).WithWriter(c.out)
	}
}

// 🔔 Notify prints one alert: title, static message and diagnostic
func (c *Console) Notify(ctx context.Context, n ingest.Notification) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.alertPrinter(n.Kind).Println(n.Title())
	fmt.Fprintf(c.out, "  %s\n", n.Message())
	if n.Path != "" {
		fmt.Fprintf(c.out, "  File: %s\n", n.Path)
	}
	if d := n.Detail(); d != "" {
		fmt.Fprintf(c.out, "  %s\n", d)
	}

	zerolog.Ctx(ctx).Debug().Str("kind", n.Kind.String()).Str("path", n.Path).Msg("notification shown")
}

// 📝 Outcome prints the line for one dropped file
func (c *Console) Outcome(ctx context.Context, e quarantine.Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.out, c.formatter.FormatEntry(e))
}

// 📋 Report prints a whole batch in submission order
func (c *Console) Report(ctx context.Context, r quarantine.Report) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, e := range r.Entries {
		fmt.Fprintln(c.out, c.formatter.FormatEntry(e))
	}
}

// Summary prints the closing tally of a session.
func (c *Console) Summary(s ingest.Summary) {
	c.mu.Lock()
	defer c.mu.Unlock()

	msg := c.formatter.FormatSummary(s)
	if s.OK() {
		pterm.Success.WithWriter(c.out).Println(msg)
		return
	}
	pterm.Warning.WithWriter(c.out).Println(msg)
}
