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

package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type audit struct {
	CreatedBy string
}

type order struct {
	ID       int     `json:"order_id"`
	Status   string  `grid:"state" json:"status"`
	Amount   float64 `json:"amount,omitempty"`
	Internal string  `json:"-"`
	hidden   string
	audit
}

func TestReflect_Struct(t *testing.T) {
	o := order{ID: 7, Status: "shipped", Amount: 12.5, Internal: "x", hidden: "h", audit: audit{CreatedBy: "ann"}}

	tests := []struct {
		key  string
		want any
	}{
		{"order_id", 7},
		{"ID", 7},
		{"id", 7},
		{"state", "shipped"},
		{"status", "shipped"},
		{"amount", 12.5},
		{"internal", "x"},
		{"createdby", "ann"},
		{"hidden", nil},
		{"missing", nil},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, Reflect(o, tt.key))
		})
	}
}

func TestReflect_Pointer(t *testing.T) {
	o := &order{ID: 3}
	assert.Equal(t, 3, Reflect(o, "id"))

	var nilOrder *order
	assert.Nil(t, Reflect(nilOrder, "id"))
}

func TestReflect_Map(t *testing.T) {
	row := map[string]any{"name": "Ann", "age": 30}
	assert.Equal(t, "Ann", Reflect(row, "name"))
	assert.Equal(t, 30, Reflect(row, "age"))
	assert.Nil(t, Reflect(row, "missing"))

	type key string
	typed := map[key]int{"a": 1}
	assert.Equal(t, 1, Reflect(typed, "a"))

	assert.Nil(t, Reflect(map[int]string{1: "x"}, "1"))
}

func TestReflect_Scalar(t *testing.T) {
	assert.Nil(t, Reflect(42, "anything"))
}
