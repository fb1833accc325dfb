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
	"strings"

	"github.com/fatih/color"
)

// 🎨 Display configuration
const (
	fileIndent  = 4  // spaces to indent file entries
	nameWidth   = 50 // Base width for filename
	statusWidth = 16 // Width for status text
)

// LineStyle picks the marker for a file line.
type LineStyle int

const (
	StyleUnchanged LineStyle = iota
	StyleCleaned
	StyleFailed
)

// 🎯 FormatFileLine formats one file result for display
func FormatFileLine(path, status string, style LineStyle) string {
	var prefix string
	switch style {
	case StyleCleaned:
		prefix = color.GreenString("✓")
	case StyleFailed:
		prefix = color.RedString("✗")
	default:
		prefix = color.HiBlackString("-")
	}

	statusPart := fmt.Sprintf("%-*s", statusWidth, status)
	switch style {
	case StyleCleaned:
		statusPart = color.GreenString(statusPart)
	case StyleFailed:
		statusPart = color.RedString(statusPart)
	}

	return strings.TrimRight(fmt.Sprintf("%s%s %-*s %s",
		strings.Repeat(" ", fileIndent),
		prefix,
		nameWidth, path,
		statusPart,
	), " ")
}
