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

import (
	"net/url"
	"strings"

	"github.com/walteh/dequarantine/pkg/quarantine"
	"gitlab.com/tozd/go/errors"
)

// Type identifiers a dropped item can be offered as.
const (
	TypeFileURL = "public.file-url"
	TypeURL     = "public.url"
	TypeText    = "public.utf8-plain-text"
)

// ErrNotFileURL is returned when resolving an item of another type.
var ErrNotFileURL = errors.Base("item is not a file URL")

// 📦 Item is one dropped object, offered under a type identifier
type Item struct {
	Type string
	Data string
}

// ParseItem classifies one line of drop input. file:// URLs and bare paths
// are file references; any other hierarchical URL or blank input is not.
// A name like "notes:v2.txt" parses as an opaque URL and stays a path.
func ParseItem(line string) Item {
	line = strings.TrimRight(line, "\r\n")
	if strings.TrimSpace(line) == "" {
		return Item{Type: TypeText, Data: line}
	}

	if u, err := url.Parse(line); err == nil && u.Scheme != "" {
		if strings.EqualFold(u.Scheme, "file") {
			return Item{Type: TypeFileURL, Data: line}
		}
		if u.Opaque == "" {
			return Item{Type: TypeURL, Data: line}
		}
	}

	return Item{Type: TypeFileURL, Data: line}
}

// Conforms reports whether the item can be loaded as a file reference.
func (i Item) Conforms() bool {
	return i.Type == TypeFileURL
}

// 🔄 Resolve loads the file reference behind the item
func (i Item) Resolve() (quarantine.FilePath, error) {
	if !i.Conforms() {
		return "", errors.WithDetails(ErrNotFileURL, "type", i.Type)
	}

	raw := i.Data
	if len(raw) >= 5 && strings.EqualFold(raw[:5], "file:") {
		u, err := url.Parse(raw)
		if err != nil {
			return "", errors.Errorf("parsing file URL: %w", err)
		}
		if u.Host != "" && u.Host != "localhost" {
			return "", errors.Errorf("file URL %q points at remote host %q", raw, u.Host)
		}
		raw = u.Path
	}

	return ResolvePath(raw)
}
