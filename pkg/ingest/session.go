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
Package ingest feeds file paths from a picker or a drop gesture into the
attribute service and hands every result to a presenter.

	drop items ──resolve (errgroup)──┐
	                                 ├──> Session.Run goroutine ──> Processor ──> Presenter
	picker ──────Pick (sync batch)───┘

The Session goroutine plays the role of the UI thread: every call into the
Processor and the Presenter happens there, one task at a time. Drop items
are resolved concurrently and in no particular order; picker selections are
processed as one batch and reported in submission order.
*/
package ingest

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/walteh/dequarantine/pkg/quarantine"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// ErrClosed is returned when posting to a closed session.
var ErrClosed = errors.Base("session closed")

// 🧹 Processor is the attribute service as seen by the ingestion surface
type Processor interface {
	Process(ctx context.Context, path quarantine.FilePath) quarantine.Outcome
	ProcessBatch(ctx context.Context, paths []quarantine.FilePath) quarantine.Report
}

// 🖥️ Presenter renders results. It is only called from the session goroutine.
type Presenter interface {
	// Notify shows one alert
	Notify(ctx context.Context, n Notification)
	// Outcome shows the result of a single dropped file
	Outcome(ctx context.Context, e quarantine.Entry)
	// Report shows a whole picker batch at once
	Report(ctx context.Context, r quarantine.Report)
}

// 📊 Summary tallies everything a session has presented
type Summary struct {
	quarantine.Counts
	Unidentifiable    int `json:"unidentifiable"`
	SelectionFailures int `json:"selection_failures"`
}

// OK is true when nothing went wrong.
func (s Summary) OK() bool {
	return s.Failed == 0 && s.Unidentifiable == 0 && s.SelectionFailures == 0
}

// 🎮 Session owns the execution context that talks to the presenter
type Session struct {
	processor Processor
	presenter Presenter
	workers   int

	mu     sync.Mutex
	closed bool
	tasks  chan func(context.Context)

	statsMu sync.Mutex
	summary Summary
}

// 🏭 NewSession creates a session; workers bounds concurrent drop resolution
func NewSession(processor Processor, presenter Presenter, workers int) *Session {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Session{
		processor: processor,
		presenter: presenter,
		workers:   workers,
		tasks:     make(chan func(context.Context), workers),
	}
}

// 🏃 Run executes posted tasks until Close is called and the queue is drained
func (s *Session) Run(ctx context.Context) {
	for task := range s.tasks {
		task(ctx)
	}
}

// Post schedules fn on the session goroutine.
func (s *Session) Post(fn func(ctx context.Context)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return errors.WithStack(ErrClosed)
	}
	s.tasks <- fn
	return nil
}

// Close stops accepting tasks. Run returns after the queue drains.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.tasks)
}

// Serve runs the session around fn and returns once all posted work is done.
func (s *Session) Serve(ctx context.Context, fn func(ctx context.Context) error) error {
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.Run(ctx)
	}()

	err := fn(ctx)
	s.Close()
	<-done
	return err
}

// Summary returns the tally of presented results.
func (s *Session) Summary() Summary {
	s.statsMu.Lock()
	defer s.statsMu.Unlock()
	return s.summary
}

// 🗂️ Import runs the picker path: one selection, one batch, one report
func (s *Session) Import(ctx context.Context, picker Picker) error {
	logger := zerolog.Ctx(ctx)

	paths, err := picker.Pick(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("file selection failed")
		return s.Post(func(ctx context.Context) {
			s.record(func(sum *Summary) { sum.SelectionFailures++ })
			s.presenter.Notify(ctx, Notification{Kind: SelectionFailed, Diagnostic: err.Error()})
		})
	}

	logger.Debug().Int("files", len(paths)).Msg("files selected")
	return s.Post(func(ctx context.Context) {
		report := s.processor.ProcessBatch(ctx, paths)
		for _, e := range report.Entries {
			s.record(func(sum *Summary) { sum.Add(e.Outcome) })
		}
		for _, e := range report.Failed() {
			s.presenter.Notify(ctx, failureNotification(e))
		}
		s.presenter.Report(ctx, report)
	})
}

// 🫳 Drop runs the drop path for one gesture. Non-conforming items produce a
// single Unidentifiable notification; every resolved item gets exactly one
// Process call on the session goroutine. Drop returns once every item has
// been resolved and posted.
func (s *Session) Drop(ctx context.Context, items []Item) error {
	gestureID := uuid.NewString()
	logger := zerolog.Ctx(ctx).With().Str("gesture_id", gestureID).Logger()

	var rejected atomic.Int64
	var g errgroup.Group
	g.SetLimit(s.workers)

	for _, item := range items {
		if !item.Conforms() {
			logger.Debug().Str("type", item.Type).Msg("dropped item is not a file reference")
			rejected.Add(1)
			continue
		}

		g.Go(func() error {
			path, err := item.Resolve()
			if err != nil {
				logger.Debug().Err(err).Str("item", item.Data).Msg("loading dropped item")
				rejected.Add(1)
				return nil
			}
			return s.Post(func(ctx context.Context) {
				s.apply(ctx, quarantine.Entry{Path: path, Outcome: s.processor.Process(ctx, path)})
			})
		})
	}

	err := g.Wait()

	if n := rejected.Load(); n > 0 {
		logger.Warn().Int64("items", n).Msg("unidentifiable items in drop")
		if perr := s.Post(func(ctx context.Context) {
			s.record(func(sum *Summary) { sum.Unidentifiable += int(n) })
			s.presenter.Notify(ctx, Notification{Kind: Unidentifiable})
		}); perr != nil && err == nil {
			err = perr
		}
	}

	if err != nil {
		return errors.Errorf("dropping items: %w", err)
	}
	return nil
}

// apply presents one drop result; it runs on the session goroutine.
func (s *Session) apply(ctx context.Context, e quarantine.Entry) {
	s.record(func(sum *Summary) { sum.Add(e.Outcome) })
	s.presenter.Outcome(ctx, e)
	if e.Outcome.Kind == quarantine.Failed {
		s.presenter.Notify(ctx, failureNotification(e))
	}
}

func (s *Session) record(fn func(sum *Summary)) {
	s.statsMu.Lock()
	defer s.statsMu.Unlock()
	fn(&s.summary)
}

func failureNotification(e quarantine.Entry) Notification {
	return Notification{
		Kind:       DequarantineFailed,
		Path:       e.Path.String(),
		Diagnostic: e.Outcome.Reason,
	}
}
