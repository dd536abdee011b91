/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Taxinomia Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package views

import "github.com/google/safehtml"

// Rendering modes of a grid page
const (
	ModePlain   = "plain"
	ModeVirtual = "virtual"
	ModeText    = "text"
)

// PageViewModel wraps a grid with the surrounding page
type PageViewModel struct {
	Title     string
	TableName string
	Mode      string
	Instance  string // Mounted grid instance id, echoed in every link
	Modes     []ModeLink
	Selected  string // Description of the selected row, empty when none
	Table     *TableViewModel
	Window    *WindowViewModel

	// Timing information
	RenderTimeMs    string
	TimingBreakdown []TimingEntry
}

// ModeLink switches the page to another rendering mode
type ModeLink struct {
	Label  string
	URL    safehtml.URL
	Active bool
}

// TimingEntry represents a single timing measurement
type TimingEntry struct {
	Operation  string
	DurationMs string
}

// LandingViewModel lists the grids served by the server
type LandingViewModel struct {
	Title    string
	Subtitle string
	Tables   []TableInfo
}

// TableInfo describes one grid on the landing page
type TableInfo struct {
	Name        string
	Description string
	URL         safehtml.URL
	RecordCount int
	ColumnCount int
	Features    string
}
