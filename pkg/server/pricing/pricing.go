/*
Copyright 2025-2026 the Aimall Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package pricing computes order totals. All arithmetic is done in decimals
// and rounded to 2 places half-up at the end, never per item.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/aimall-cloud/commerce/pkg/server/store"
)

// Discount is a coupon reduction, either a percentage of the subtotal or a
// flat amount.
type Discount struct {
	PercentOff *decimal.Decimal
	AmountOff  *decimal.Decimal
}

// Subtotal sums unit price times quantity over all items.
func Subtotal(items []store.OrderItem) decimal.Decimal {
	subtotal := decimal.Zero

	for _, item := range items {
		subtotal = subtotal.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return subtotal
}

// Price computes subtotal, discount and total for the given items. The
// discount never exceeds the subtotal, so totals cannot go negative.
func Price(items []store.OrderItem, discount *Discount) (decimal.Decimal, decimal.Decimal, decimal.Decimal) {
	subtotal := Subtotal(items)

	reduction := decimal.Zero

	if discount != nil {
		switch {
		case discount.PercentOff != nil:
			reduction = subtotal.Mul(*discount.PercentOff).Div(decimal.NewFromInt(100))
		case discount.AmountOff != nil:
			reduction = *discount.AmountOff
		}

		if reduction.GreaterThan(subtotal) {
			reduction = subtotal
		}
	}

	subtotal = subtotal.Round(2)
	reduction = reduction.Round(2)
	total := subtotal.Sub(reduction)

	return subtotal, reduction, total
}
