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

// Package testutils holds fakes shared by the package tests.
package testutils

import (
	"slices"
	"sync"
	"syscall"

	"github.com/walteh/dequarantine/pkg/xattr"
)

// 🧪 MemoryStore is an in-memory xattr.Store with per-file permissions
type MemoryStore struct {
	mu      sync.Mutex
	files   map[string]*memFile
	removes int
}

type memFile struct {
	attrs    []string
	readOnly bool
}

var _ xattr.Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{files: make(map[string]*memFile)}
}

// AddFile registers path with the given attribute names.
func (m *MemoryStore) AddFile(path string, attrs ...string) *MemoryStore {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = &memFile{attrs: slices.Clone(attrs)}
	return m
}

// AddReadOnlyFile registers a file whose attributes cannot be removed.
func (m *MemoryStore) AddReadOnlyFile(path string, attrs ...string) *MemoryStore {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = &memFile{attrs: slices.Clone(attrs), readOnly: true}
	return m
}

// Has reports whether path currently carries name.
func (m *MemoryStore) Has(path, name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	f, ok := m.files[path]
	return ok && slices.Contains(f.attrs, name)
}

// Attrs returns a copy of the attributes on path.
func (m *MemoryStore) Attrs(path string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if f, ok := m.files[path]; ok {
		return slices.Clone(f.attrs)
	}
	return nil
}

// RemoveCalls counts Remove invocations, successful or not.
func (m *MemoryStore) RemoveCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.removes
}

func (m *MemoryStore) List(path string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f, ok := m.files[path]
	if !ok {
		return nil, &xattr.Error{Op: "listxattr", Path: path, Err: syscall.ENOENT}
	}
	return slices.Clone(f.attrs), nil
}

func (m *MemoryStore) Remove(path, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removes++

	f, ok := m.files[path]
	if !ok {
		return &xattr.Error{Op: "removexattr", Path: path, Name: name, Err: syscall.ENOENT}
	}
	if f.readOnly {
		return &xattr.Error{Op: "removexattr", Path: path, Name: name, Err: syscall.EACCES}
	}
	i := slices.Index(f.attrs, name)
	if i < 0 {
		return &xattr.Error{Op: "removexattr", Path: path, Name: name, Err: syscall.ENODATA}
	}
	f.attrs = slices.Delete(f.attrs, i, i+1)
	return nil
}
