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

import (
	"fmt"

	"github.com/google/safehtml"
)

// Display converts a raw field value into cell content. safehtml.HTML is
// trusted and passed through, nil renders as an empty cell and every other
// value is printed with fmt and escaped.
func Display(v any) safehtml.HTML {
	switch val := v.(type) {
	case nil:
		return safehtml.HTML{}
	case safehtml.HTML:
		return val
	case string:
		return safehtml.HTMLEscaped(val)
	default:
		return safehtml.HTMLEscaped(fmt.Sprint(val))
	}
}

// Text converts a raw field value into plain text for non-HTML outputs.
func Text(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case safehtml.HTML:
		return val.String()
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}
