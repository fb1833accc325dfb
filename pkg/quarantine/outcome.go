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

package quarantine

import (
	"gitlab.com/tozd/go/errors"
)

// 📊 Kind tags which variant an Outcome holds
type Kind int

const (
	KindUnknown Kind = iota
	Cleaned          // attribute was present and removed
	NotMarked        // attribute was absent, nothing to do
	Failed           // listing or removal failed
)

// String returns a string representation of Kind
func (k Kind) String() string {
	switch k {
	case Cleaned:
		return "cleaned"
	case NotMarked:
		return "not_marked"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// 🎯 Outcome is the result of processing one file. Reason is only set for Failed.
type Outcome struct {
	Kind   Kind   `json:"kind"`
	Reason string `json:"reason,omitempty"`
}

// NewCleaned reports a removed attribute.
func NewCleaned() Outcome { return Outcome{Kind: Cleaned} }

// NewNotMarked reports a file that carried no attribute.
func NewNotMarked() Outcome { return Outcome{Kind: NotMarked} }

// NewFailed reports a failure with the diagnostic shown to the user.
func NewFailed(reason string) Outcome { return Outcome{Kind: Failed, Reason: reason} }

// OK is true for every outcome except Failed.
func (o Outcome) OK() bool {
	return o.Kind == Cleaned || o.Kind == NotMarked
}

// Err returns the failure as an error, or nil.
func (o Outcome) Err() error {
	if o.Kind != Failed {
		return nil
	}
	return errors.New(o.Reason)
}

func (o Outcome) String() string {
	if o.Kind == Failed {
		return o.Kind.String() + ": " + o.Reason
	}
	return o.Kind.String()
}

// 📄 Entry pairs a path with the outcome of processing it
type Entry struct {
	Path    FilePath `json:"path"`
	Outcome Outcome  `json:"outcome"`
}

// 📋 Report holds the outcomes of a batch in submission order
type Report struct {
	ID      string  `json:"id"`
	Entries []Entry `json:"entries"`
}

// Counts tallies outcomes by kind.
type Counts struct {
	Cleaned   int `json:"cleaned"`
	NotMarked int `json:"not_marked"`
	Failed    int `json:"failed"`
}

// Total is the number of processed files.
func (c Counts) Total() int {
	return c.Cleaned + c.NotMarked + c.Failed
}

// Add folds one outcome into the tally.
func (c *Counts) Add(o Outcome) {
	switch o.Kind {
	case Cleaned:
		c.Cleaned++
	case NotMarked:
		c.NotMarked++
	case Failed:
		c.Failed++
	}
}

// Counts tallies the report.
func (r Report) Counts() Counts {
	var c Counts
	for _, e := range r.Entries {
		c.Add(e.Outcome)
	}
	return c
}

// Failed returns the failed entries, keeping their order.
func (r Report) Failed() []Entry {
	var failed []Entry
	for _, e := range r.Entries {
		if e.Outcome.Kind == Failed {
			failed = append(failed, e)
		}
	}
	return failed
}

// Paths returns the processed paths in submission order.
func (r Report) Paths() []FilePath {
	paths := make([]FilePath, len(r.Entries))
	for i, e := range r.Entries {
		paths[i] = e.Path
	}
	return paths
}
