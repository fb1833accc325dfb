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

package ingest

// 🔔 NotificationKind separates the three user-visible error classes
type NotificationKind int

const (
	Unidentifiable     NotificationKind = iota + 1 // dropped item is not a file reference
	SelectionFailed                                // the picker could not produce a selection
	DequarantineFailed                             // listing or removing the attribute failed
)

func (k NotificationKind) String() string {
	switch k {
	case Unidentifiable:
		return "unidentifiable"
	case SelectionFailed:
		return "selection_failed"
	case DequarantineFailed:
		return "dequarantine_failed"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name.
func (k NotificationKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// 📣 Notification is one alert for the presentation layer
type Notification struct {
	Kind NotificationKind `json:"kind"`
	// Path is set for DequarantineFailed.
	Path string `json:"path,omitempty"`
	// Diagnostic is the verbatim text of the underlying error, if any.
	Diagnostic string `json:"diagnostic,omitempty"`
}

// Title is the alert headline.
func (n Notification) Title() string {
	switch n.Kind {
	case Unidentifiable:
		return "Error: File(s) not identifiable"
	case SelectionFailed:
		return "Error: Could not select file(s)"
	case DequarantineFailed:
		return "Error: Could not dequarantine file"
	default:
		return "Error"
	}
}

// Message is the static explanation shown under the title.
func (n Notification) Message() string {
	switch n.Kind {
	case Unidentifiable:
		return "One or more of the files you provided are unidentifiable and cannot have their paths parsed. Please try again with different files."
	case SelectionFailed:
		return "One or more of the files you selected could not be imported. Please try again with different files."
	case DequarantineFailed:
		return "The dequarantine operation could not be performed. Please try again with a different file."
	default:
		return ""
	}
}

// Detail renders the diagnostic line, empty when there is none.
func (n Notification) Detail() string {
	if n.Diagnostic == "" {
		return ""
	}
	return "The following error text was generated: " + n.Diagnostic
}
