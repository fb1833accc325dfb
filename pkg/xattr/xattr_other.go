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

//go:build !linux && !darwin

package xattr

type unsupportedStore struct{}

// NewOS returns a store that rejects every call on this platform.
func NewOS() Store {
	return unsupportedStore{}
}

func (unsupportedStore) List(path string) ([]string, error) {
	return nil, &Error{Op: "listxattr", Path: path, Err: ErrUnsupported}
}

func (unsupportedStore) Remove(path, name string) error {
	return &Error{Op: "removexattr", Path: path, Name: name, Err: ErrUnsupported}
}

func isNoAttr(error) bool { return false }
