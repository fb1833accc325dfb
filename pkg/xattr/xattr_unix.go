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

//go:build linux || darwin

package xattr

import (
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sys/unix"
)

// 💾 osStore talks to the kernel through listxattr(2) and removexattr(2)
type osStore struct{}

// 🏭 NewOS returns the store backed by the host filesystem
func NewOS() Store {
	return osStore{}
}

func (osStore) List(path string) ([]string, error) {
	for {
		// probe for the buffer size first
		size, err := unix.Listxattr(path, nil)
		if err != nil {
			return nil, &Error{Op: "listxattr", Path: path, Err: err}
		}
		if size == 0 {
			return nil, nil
		}

		buf := make([]byte, size)
		n, err := unix.Listxattr(path, buf)
		if errors.Is(err, unix.ERANGE) {
			// attributes were added between the two calls
			continue
		}
		if err != nil {
			return nil, &Error{Op: "listxattr", Path: path, Err: err}
		}
		return splitNames(buf[:n]), nil
	}
}

func (osStore) Remove(path, name string) error {
	if err := unix.Removexattr(path, name); err != nil {
		return &Error{Op: "removexattr", Path: path, Name: name, Err: err}
	}
	return nil
}

func isNoAttr(err error) bool {
	return errors.Is(err, errNoAttr)
}
