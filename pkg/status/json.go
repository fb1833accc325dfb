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
	"encoding/json"
	"io"
	"sync"

	"github.com/rs/zerolog"
	"github.com/walteh/dequarantine/pkg/ingest"
	"github.com/walteh/dequarantine/pkg/quarantine"
)

// 📦 record is one line of JSON output
type record struct {
	Type         string               `json:"type"`
	Path         string               `json:"path,omitempty"` // outcome records only
	Outcome      *quarantine.Outcome  `json:"outcome,omitempty"`
	Notification *ingest.Notification `json:"notification,omitempty"`
	Title        string               `json:"title,omitempty"`
	Report       *quarantine.Report   `json:"report,omitempty"`
	Summary      *ingest.Summary      `json:"summary,omitempty"`
}

// JSON presents results as newline-delimited JSON for scripts.
type JSON struct {
	enc *json.Encoder
	mu  sync.Mutex
}

var _ ingest.Presenter = (*JSON)(nil)

// NewJSON creates a JSON presenter writing to out.
func NewJSON(out io.Writer) *JSON {
	return &JSON{enc: json.NewEncoder(out)}
}

func (j *JSON) write(ctx context.Context, r record) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if err := j.enc.Encode(r); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("type", r.Type).Msg("writing json record")
	}
}

func (j *JSON) Notify(ctx context.Context, n ingest.Notification) {
	j.write(ctx, record{Type: "notification", Notification: &n, Title: n.Title()})
}

func (j *JSON) Outcome(ctx context.Context, e quarantine.Entry) {
	j.write(ctx, record{Type: "outcome", Path: e.Path.String(), Outcome: &e.Outcome})
}

func (j *JSON) Report(ctx context.Context, r quarantine.Report) {
	j.write(ctx, record{Type: "report", Report: &r})
}

// Summary writes the closing tally.
func (j *JSON) Summary(s ingest.Summary) {
	j.write(context.Background(), record{Type: "summary", Summary: &s})
}
