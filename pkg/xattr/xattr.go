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

// Package xattr lists and removes extended attributes on filesystem entries.
package xattr

import (
	"fmt"
	"io/fs"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// ErrUnsupported is returned by the system store on platforms without
// extended attribute support.
var ErrUnsupported = errors.Base("extended attributes are not supported on this platform")

// 🔌 Store is the minimal attribute surface needed to dequarantine a file
type Store interface {
	// List returns the names of every extended attribute on path
	List(path string) ([]string, error)
	// Remove deletes a single named attribute from path
	Remove(path, name string) error
}

// 🚨 Error records a failed attribute call together with the path and attribute involved
type Error struct {
	Op   string
	Path string
	Name string
	Err  error
}

func (e *Error) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s %s %s: %v", e.Op, e.Path, e.Name, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// IsNotExist reports whether err means the path itself is missing.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// IsNoAttr reports whether err means the attribute was not present.
func IsNoAttr(err error) bool {
	return isNoAttr(err)
}

// splitNames parses the NUL-terminated name list produced by listxattr(2).
func splitNames(buf []byte) []string {
	if len(buf) == 0 {
		return nil
	}
	parts := strings.Split(string(buf), "\x00")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		names = append(names, p)
	}
	return names
}
