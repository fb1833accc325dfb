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
	"fmt"

	"github.com/walteh/dequarantine/pkg/ingest"
	"github.com/walteh/dequarantine/pkg/quarantine"
)

// 🎨 FileFormatter builds the plain-text pieces of console output
type FileFormatter interface {
	// FormatEntry formats the result of one file
	FormatEntry(e quarantine.Entry) string
	// FormatSummary formats the closing tally
	FormatSummary(s ingest.Summary) string
	// FormatError formats an error message
	FormatError(err error) string
}

// DefaultFileFormatter provides a default implementation of FileFormatter
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatEntry formats a file result with a colored marker
func (f *DefaultFileFormatter) FormatEntry(e quarantine.Entry) string {
	switch e.Outcome.Kind {
	case quarantine.Cleaned:
		return FormatFileLine(e.Path.String(), "cleaned", StyleCleaned)
	case quarantine.NotMarked:
		return FormatFileLine(e.Path.String(), "not quarantined", StyleUnchanged)
	case quarantine.Failed:
		return FormatFileLine(e.Path.String(), "failed", StyleFailed)
	default:
		return FormatFileLine(e.Path.String(), "unknown", StyleUnchanged)
	}
}

// FormatSummary formats the totals of a run
func (f *DefaultFileFormatter) FormatSummary(s ingest.Summary) string {
	msg := fmt.Sprintf("%d cleaned, %d not quarantined, %d failed", s.Cleaned, s.NotMarked, s.Failed)
	if s.Unidentifiable > 0 {
		msg += fmt.Sprintf(", %d unidentifiable", s.Unidentifiable)
	}
	if s.SelectionFailures > 0 {
		msg += fmt.Sprintf(", %d failed selection(s)", s.SelectionFailures)
	}
	return msg
}

// FormatError formats an error message with emoji
func (f *DefaultFileFormatter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("❌ Error: %v", err)
}
