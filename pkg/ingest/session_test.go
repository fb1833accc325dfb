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
	"context"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/walteh/dequarantine/gen/mockery"
	"github.com/walteh/dequarantine/pkg/ingest"
	"github.com/walteh/dequarantine/pkg/quarantine"
	"github.com/walteh/dequarantine/pkg/testutils"
	"gitlab.com/tozd/go/errors"
)

// 📼 recorder keeps everything the session presented
type recorder struct {
	mu            sync.Mutex
	notifications []ingest.Notification
	outcomes      []quarantine.Entry
	reports       []quarantine.Report
}

func (r *recorder) Notify(_ context.Context, n ingest.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, n)
}

func (r *recorder) Outcome(_ context.Context, e quarantine.Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, e)
}

func (r *recorder) Report(_ context.Context, rep quarantine.Report) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = append(r.reports, rep)
}

func (r *recorder) kinds() []ingest.NotificationKind {
	kinds := make([]ingest.NotificationKind, len(r.notifications))
	for i, n := range r.notifications {
		kinds[i] = n.Kind
	}
	return kinds
}

// countingProcessor counts Process calls and flags calls that overlap.
type countingProcessor struct {
	*quarantine.Service
	calls    atomic.Int64
	inFlight atomic.Int64
	overlap  atomic.Bool
}

func (c *countingProcessor) Process(ctx context.Context, path quarantine.FilePath) quarantine.Outcome {
	if c.inFlight.Add(1) > 1 {
		c.overlap.Store(true)
	}
	defer c.inFlight.Add(-1)
	c.calls.Add(1)
	return c.Service.Process(ctx, path)
}

type fixture struct {
	dir       string
	store     *testutils.MemoryStore
	processor *countingProcessor
	presenter *recorder
	session   *ingest.Session
}

func newFixture(t *testing.T) *fixture {
	store := testutils.NewMemoryStore()
	processor := &countingProcessor{Service: quarantine.New(store)}
	presenter := &recorder{}
	return &fixture{
		dir:       t.TempDir(),
		store:     store,
		processor: processor,
		presenter: presenter,
		session:   ingest.NewSession(processor, presenter, 4),
	}
}

// file creates a real file so the ingestion boundary can resolve it and
// registers it in the memory store with attrs.
func (f *fixture) file(t *testing.T, name string, readOnly bool, attrs ...string) string {
	path := touch(t, filepath.Join(f.dir, name))
	if readOnly {
		f.store.AddReadOnlyFile(path, attrs...)
	} else {
		f.store.AddFile(path, attrs...)
	}
	return path
}

func testContext(t *testing.T) context.Context {
	return zerolog.New(zerolog.TestWriter{T: t}).Level(zerolog.DebugLevel).WithContext(context.Background())
}

func TestDropMixedGesture(t *testing.T) {
	f := newFixture(t)
	app := f.file(t, "quarantined.app", false, quarantine.Attribute)

	items := []ingest.Item{
		ingest.ParseItem(app),
		ingest.ParseItem("https://example.com/not-a-file"),
	}

	err := f.session.Serve(testContext(t), func(ctx context.Context) error {
		return f.session.Drop(ctx, items)
	})
	require.NoError(t, err)

	assert.Equal(t, []ingest.NotificationKind{ingest.Unidentifiable}, f.presenter.kinds(), "exactly one unidentifiable alert")
	assert.EqualValues(t, 1, f.processor.calls.Load(), "exactly one process call")
	require.Len(t, f.presenter.outcomes, 1)
	assert.Equal(t, quarantine.Cleaned, f.presenter.outcomes[0].Outcome.Kind)
	assert.False(t, f.store.Has(app, quarantine.Attribute))

	summary := f.session.Summary()
	assert.Equal(t, 1, summary.Cleaned)
	assert.Equal(t, 1, summary.Unidentifiable)
	assert.False(t, summary.OK())
}

func TestDropManyItems(t *testing.T) {
	f := newFixture(t)

	var items []ingest.Item
	var paths []string
	for _, name := range []string{"a.zip", "b.zip", "c.zip", "d.zip", "e.zip", "f.zip", "g.zip", "h.zip"} {
		p := f.file(t, name, false, quarantine.Attribute)
		paths = append(paths, p)
		items = append(items, ingest.ParseItem("file://"+p))
	}
	// several non-conforming items in one gesture still raise one alert
	items = append(items, ingest.ParseItem("https://a"), ingest.ParseItem("ftp://b"), ingest.ParseItem(filepath.Join(f.dir, "vanished.zip")))

	err := f.session.Serve(testContext(t), func(ctx context.Context) error {
		return f.session.Drop(ctx, items)
	})
	require.NoError(t, err)

	assert.EqualValues(t, len(paths), f.processor.calls.Load())
	assert.False(t, f.processor.overlap.Load(), "process calls must run one at a time on the session goroutine")
	assert.Equal(t, []ingest.NotificationKind{ingest.Unidentifiable}, f.presenter.kinds())

	got := make([]string, 0, len(f.presenter.outcomes))
	for _, e := range f.presenter.outcomes {
		got = append(got, e.Path.String())
		assert.Equal(t, quarantine.Cleaned, e.Outcome.Kind)
	}
	assert.ElementsMatch(t, paths, got)
	assert.Equal(t, 3, f.session.Summary().Unidentifiable)
}

func TestDropFailureRaisesDequarantineAlert(t *testing.T) {
	f := newFixture(t)
	locked := f.file(t, "locked.pkg", true, quarantine.Attribute)
	clean := f.file(t, "clean.txt", false)

	err := f.session.Serve(testContext(t), func(ctx context.Context) error {
		return f.session.Drop(ctx, []ingest.Item{ingest.ParseItem(locked), ingest.ParseItem(clean)})
	})
	require.NoError(t, err)

	require.Len(t, f.presenter.notifications, 1)
	n := f.presenter.notifications[0]
	assert.Equal(t, ingest.DequarantineFailed, n.Kind)
	assert.Equal(t, locked, n.Path)
	assert.Contains(t, n.Diagnostic, "permission denied")
	assert.Len(t, f.presenter.outcomes, 2, "the failure must not stop the other item")
}

func TestImport(t *testing.T) {
	t.Run("scenario_in_submission_order", func(t *testing.T) {
		f := newFixture(t)
		clean := f.file(t, "clean.txt", false)
		app := f.file(t, "quarantined.app", false, quarantine.Attribute)
		locked := f.file(t, "locked.pkg", true, quarantine.Attribute)

		err := f.session.Serve(testContext(t), func(ctx context.Context) error {
			return f.session.Import(ctx, ingest.ArgsPicker{Args: []string{clean, app, locked}})
		})
		require.NoError(t, err)

		require.Len(t, f.presenter.reports, 1, "a batch is presented once")
		report := f.presenter.reports[0]
		require.Len(t, report.Entries, 3)
		assert.Equal(t, []quarantine.FilePath{quarantine.FilePath(clean), quarantine.FilePath(app), quarantine.FilePath(locked)}, report.Paths())
		assert.Equal(t, quarantine.NotMarked, report.Entries[0].Outcome.Kind)
		assert.Equal(t, quarantine.Cleaned, report.Entries[1].Outcome.Kind)
		assert.Equal(t, quarantine.Failed, report.Entries[2].Outcome.Kind)
		assert.Contains(t, report.Entries[2].Outcome.Reason, "permission denied")

		assert.Equal(t, []ingest.NotificationKind{ingest.DequarantineFailed}, f.presenter.kinds())
		assert.Empty(t, f.presenter.outcomes, "batch results are not streamed individually")

		summary := f.session.Summary()
		assert.Equal(t, quarantine.Counts{Cleaned: 1, NotMarked: 1, Failed: 1}, summary.Counts)
	})

	t.Run("selection_failure", func(t *testing.T) {
		f := newFixture(t)
		picker := mockery.NewMockPicker_ingest(t)
		picker.EXPECT().Pick(mock.Anything).Return(nil, errors.New("the user cancelled")).Once()

		err := f.session.Serve(testContext(t), func(ctx context.Context) error {
			return f.session.Import(ctx, picker)
		})
		require.NoError(t, err)

		require.Len(t, f.presenter.notifications, 1)
		assert.Equal(t, ingest.SelectionFailed, f.presenter.notifications[0].Kind)
		assert.Equal(t, "the user cancelled", f.presenter.notifications[0].Diagnostic)
		assert.Empty(t, f.presenter.reports, "no files are processed for a failed selection")
		assert.Zero(t, f.store.RemoveCalls())
		assert.Equal(t, 1, f.session.Summary().SelectionFailures)
	})

	t.Run("picker_func", func(t *testing.T) {
		f := newFixture(t)
		app := f.file(t, "quarantined.app", false, quarantine.Attribute)
		picked := []quarantine.FilePath{quarantine.FilePath(app), "/nowhere/gone.pkg"}

		err := f.session.Serve(testContext(t), func(ctx context.Context) error {
			return f.session.Import(ctx, ingest.PickerFunc(func(context.Context) ([]quarantine.FilePath, error) {
				return picked, nil
			}))
		})
		require.NoError(t, err)

		require.Len(t, f.presenter.reports, 1)
		assert.Equal(t, picked, f.presenter.reports[0].Paths())
		assert.Equal(t, quarantine.Cleaned, f.presenter.reports[0].Entries[0].Outcome.Kind)
		assert.Equal(t, quarantine.Failed, f.presenter.reports[0].Entries[1].Outcome.Kind)
		require.Len(t, f.presenter.notifications, 1)
		assert.Equal(t, "/nowhere/gone.pkg", f.presenter.notifications[0].Path)
	})
}

func TestServeDrainsPostedWork(t *testing.T) {
	f := newFixture(t)

	var ran []int
	err := f.session.Serve(testContext(t), func(ctx context.Context) error {
		for i := range 20 {
			require.NoError(t, f.session.Post(func(context.Context) {
				ran = append(ran, i)
			}))
		}
		return nil
	})
	require.NoError(t, err)

	want := make([]int, 20)
	for i := range want {
		want[i] = i
	}
	assert.Equal(t, want, ran, "every posted task runs, in posting order, before Serve returns")
}

func TestServeReturnsCallbackError(t *testing.T) {
	f := newFixture(t)
	boom := errors.New("boom")

	err := f.session.Serve(testContext(t), func(context.Context) error { return boom })
	assert.ErrorIs(t, err, boom)

	assert.ErrorIs(t, f.session.Post(func(context.Context) {}), ingest.ErrClosed)
}

func TestPostAfterClose(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.session.Serve(context.Background(), func(context.Context) error { return nil }))

	err := f.session.Post(func(context.Context) {})
	assert.ErrorIs(t, err, ingest.ErrClosed)
}

func TestNotificationText(t *testing.T) {
	n := ingest.Notification{Kind: ingest.DequarantineFailed, Path: "/a", Diagnostic: "permission denied"}
	assert.Equal(t, "Error: Could not dequarantine file", n.Title())
	assert.NotEmpty(t, n.Message())
	assert.Equal(t, "The following error text was generated: permission denied", n.Detail())

	assert.Empty(t, ingest.Notification{Kind: ingest.Unidentifiable}.Detail())
	assert.NotEqual(t,
		ingest.Notification{Kind: ingest.SelectionFailed}.Title(),
		ingest.Notification{Kind: ingest.Unidentifiable}.Title(),
		"each class has its own wording")
}
