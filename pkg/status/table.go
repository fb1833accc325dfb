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
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/rodaine/table"
)

var headerStyle = lipgloss.NewStyle().Bold(true)

// InspectRow is one line of the inspect table.
type InspectRow struct {
	Path   string
	Marked bool
	Err    error
}

// 📊 RenderTable prints inspection results as an aligned table
func RenderTable(w io.Writer, rows []InspectRow) {
	tbl := table.New("PATH", "QUARANTINED", "DETAIL").
		WithWriter(w).
		WithPadding(2).
		WithWidthFunc(lipgloss.Width).
		WithHeaderFormatter(func(format string, vals ...interface{}) string {
			return headerStyle.Render(fmt.Sprintf(format, vals...))
		})

	for _, r := range rows {
		switch {
		case r.Err != nil:
			tbl.AddRow(r.Path, color.RedString("?"), r.Err.Error())
		case r.Marked:
			tbl.AddRow(r.Path, color.YellowString("yes"), "")
		default:
			tbl.AddRow(r.Path, color.GreenString("no"), "")
		}
	}

	tbl.Print()
}
