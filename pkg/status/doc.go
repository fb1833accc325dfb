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

/*
Package status renders dequarantine results for a terminal.

	+-------------+      +-------------+
	|   ingest    | ---> |   status    |
	|  (Session)  |      | (Presenter) |
	+-------------+      +------+------+
	                            |
	              +-------------+-------------+
	              |             |             |
	          Console          JSON        Table
	        (pterm/color)   (scripts)    (inspect)

🎯 Purpose:
- Shows the three alert classes with their own wording
- Prints one line per processed file
- Summarizes a batch

Console and JSON implement ingest.Presenter. They are only called from the
session goroutine but lock anyway so inspect output can share a writer.
*/
package status
