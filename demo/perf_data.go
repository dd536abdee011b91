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

package demo

import (
	"fmt"

	"github.com/google/gridview/core/grid"
	"github.com/google/gridview/core/server"
	"github.com/google/gridview/core/views"
	"github.com/google/safehtml"
)

// PerfNumTransactions is the size of the demo transactions table
const PerfNumTransactions = 100_000

// Transaction is a row of the transactions table
type Transaction struct {
	ID         uint32 `grid:"txn_id"`
	UserID     uint32 `json:"user_id"`
	ProductID  uint32 `json:"product_id"`
	CategoryID uint32 `json:"category_id"`
	Amount     uint32
	Status     string
}

// CreateTransactions creates a large generated table rendered through the
// virtualized path by default
func CreateTransactions(n int) *server.Dataset[Transaction] {
	const (
		numUsers      = 80_000
		numProducts   = 5_000
		numCategories = 200
	)
	statuses := []string{"pending", "completed", "cancelled", "processing"}

	rows := make([]Transaction, n)
	for i := range rows {
		u := uint32(i)
		// Category 0 is over-represented
		category := u % numCategories
		if u%7 == 0 {
			category = 0
		}
		rows[i] = Transaction{
			ID:         u,
			UserID:     u % numUsers,
			ProductID:  u % numProducts,
			CategoryID: category,
			Amount:     10 + u%1000,
			Status:     statuses[i%len(statuses)],
		}
	}

	cols := grid.Columns(
		grid.Col("txn_id", "Transaction ID"),
		grid.Col("user_id", "User ID"),
		grid.Col("product_id", "Product ID"),
		grid.Col("category_id", "Category ID"),
		grid.Col("amount", "Amount"),
		grid.Col("status", "Status"),
	)
	renderers := grid.Renderers[Transaction]{
		"amount": func(v any, _ Transaction, _ string) safehtml.HTML {
			return safehtml.HTMLEscaped(fmt.Sprintf("$%d.00", v))
		},
	}
	// Open selects the transaction without leaving the window
	actions := func(open func(int) safehtml.URL) []grid.Action[Transaction] {
		return []grid.Action[Transaction]{
			grid.Direct(func(t Transaction) safehtml.HTML {
				return execute(actionLink, link{URL: open(int(t.ID)), Label: "Open"})
			}),
		}
	}

	return &server.Dataset[Transaction]{
		Name:        "transactions",
		Description: fmt.Sprintf("%d generated transactions. Only the rows in view are rendered.", n),
		Features:    "Virtualized rendering, column widths, overscan",
		DefaultMode: views.ModeVirtual,
		Rows:        rows,
		Table: grid.Options[Transaction]{
			Columns:   cols,
			Renderers: renderers,
		},
		Virtual: grid.VirtualOptions[Transaction]{
			Columns:      cols,
			Renderers:    renderers,
			ColumnWidths: map[string]int{"txn_id": 120, "amount": 100, "status": 110},
		},
		RowActions: actions,
		Label: func(t Transaction, _ int) string {
			return fmt.Sprintf("transaction %d", t.ID)
		},
	}
}
