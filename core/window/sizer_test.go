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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeasure(t *testing.T) {
	assert.Equal(t, 700, Measure(Viewport{DocumentHeight: 900, InnerHeight: 800}, 200))
	assert.Equal(t, 600, Measure(Viewport{DocumentHeight: 300, InnerHeight: 800}, 200))
	assert.Equal(t, 0, Measure(Viewport{DocumentHeight: 100, InnerHeight: 50}, 200))
}

func TestSizer_Lifecycle(t *testing.T) {
	s := NewSizer(DefaultFixedChrome)
	assert.Equal(t, InitialHeight, s.Height())
	assert.False(t, s.Attached())

	// Resizes before attach are ignored
	assert.Equal(t, InitialHeight, s.Resize(Viewport{InnerHeight: 1000}))

	assert.Equal(t, 800, s.Attach(Viewport{DocumentHeight: 1000, InnerHeight: 900}))
	assert.True(t, s.Attached())

	assert.Equal(t, 400, s.Resize(Viewport{DocumentHeight: 600, InnerHeight: 500}))
	assert.Equal(t, 400, s.Height())

	s.Detach()
	assert.Equal(t, 400, s.Resize(Viewport{DocumentHeight: 2000}))
	assert.Equal(t, 400, s.Height())
}
