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

package window

// Range is the set of rows to materialize for one scroll position.
// [Start, Stop) are the rows intersecting the viewport and
// [OverscanStart, OverscanStop) extends it by the overscan count on both
// sides, clamped to the table.
type Range struct {
	Start         int
	Stop          int
	OverscanStart int
	OverscanStop  int
}

// Len returns the number of rows to materialize.
func (r Range) Len() int {
	return r.OverscanStop - r.OverscanStart
}

// Compute returns the row range visible in a body of bodyHeight pixels
// scrolled by scrollTop pixels. scrollTop is clamped so that the last page
// stays full.
func Compute(rowCount, rowHeight, bodyHeight, scrollTop, overscan int) Range {
	if rowCount <= 0 || bodyHeight <= 0 {
		return Range{}
	}
	if rowHeight <= 0 {
		rowHeight = DefaultRowHeight
	}
	if overscan < 0 {
		overscan = 0
	}

	maxScroll := rowCount*rowHeight - bodyHeight
	if scrollTop > maxScroll {
		scrollTop = maxScroll
	}
	if scrollTop < 0 {
		scrollTop = 0
	}

	visible := (bodyHeight + rowHeight - 1) / rowHeight
	start := scrollTop / rowHeight
	// A partially scrolled first row exposes one more row at the bottom.
	if scrollTop%rowHeight != 0 {
		visible++
	}
	stop := min(start+visible, rowCount)

	return Range{
		Start:         start,
		Stop:          stop,
		OverscanStart: max(start-overscan, 0),
		OverscanStop:  min(stop+overscan, rowCount),
	}
}
