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

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/walteh/dequarantine/cmd/dequarantine/opts"
	"github.com/walteh/dequarantine/pkg/status"
)

func main() {
	o := opts.New(os.Stdin, os.Stdout, os.Stderr)

	if err := newRootCmd(o).ExecuteContext(context.Background()); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// printError writes the command error once, after any output of the run
func printError(w io.Writer, err error) {
	fmt.Fprintln(w, color.RedString(status.NewDefaultFileFormatter().FormatError(err)))
}
