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

package rendering

import (
	"embed"
	"fmt"
	"io"

	"github.com/google/gridview/core/views"
	"github.com/google/safehtml/template"
	"github.com/olekukonko/tablewriter"
)

//go:embed templates/*
var templateFS embed.FS

// TableRenderer handles rendering of grid view models to HTML
type TableRenderer struct {
	pageTemplate    *template.Template
	landingTemplate *template.Template
}

// NewTableRenderer creates a new table renderer
func NewTableRenderer() (*TableRenderer, error) {
	trustedFS := template.TrustedFSFromEmbed(templateFS)

	// The page template pulls the plain and windowed grid blocks from grid.html
	pageTemplate, err := template.New("page.html").ParseFS(trustedFS, "templates/page.html", "templates/grid.html")
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}

	landingTemplate, err := template.New("landing.html").ParseFS(trustedFS, "templates/landing.html")
	if err != nil {
		return nil, fmt.Errorf("parsing landing template: %w", err)
	}

	return &TableRenderer{
		pageTemplate:    pageTemplate,
		landingTemplate: landingTemplate,
	}, nil
}

// Render renders a PageViewModel to the provided writer
func (r *TableRenderer) Render(w io.Writer, vm views.PageViewModel) error {
	return r.pageTemplate.Execute(w, vm)
}

// RenderLanding renders a LandingViewModel to the provided writer
func (r *TableRenderer) RenderLanding(w io.Writer, vm views.LandingViewModel) error {
	return r.landingTemplate.Execute(w, vm)
}

// RenderText writes a plain table as an ASCII grid. Only field columns are
// written; the icon and actions columns carry markup, not data.
func RenderText(w io.Writer, vm views.TableViewModel) error {
	var keep []int
	var header []string
	for i, h := range vm.Headers {
		if h.Key == "" {
			continue
		}
		keep = append(keep, i)
		header = append(header, h.Title)
	}

	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader(header)
	alignment := make([]int, len(header))
	for i := range alignment {
		alignment[i] = tablewriter.ALIGN_LEFT
	}
	table.SetColumnAlignment(alignment)

	for _, row := range vm.Rows {
		if len(row.Cells) != len(vm.Headers) {
			return fmt.Errorf("row %d has %d cells, want %d", row.Index, len(row.Cells), len(vm.Headers))
		}
		line := make([]string, len(keep))
		for j, i := range keep {
			line[j] = row.Cells[i].Text
		}
		table.Append(line)
	}
	table.Render()
	return nil
}
