package cart

import "github.com/shopspring/decimal"

// Billing constants: 5% tax on the subtotal plus a flat platform fee.
var (
	taxRate    = decimal.NewFromFloat(0.05)
	serviceFee = decimal.NewFromInt(5)
)

// Bill is the payable breakdown for a set of line items. It is computed at
// read time and never stored.
type Bill struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Fee      decimal.Decimal
	Total    decimal.Decimal
}

// ComputeBill prices the given line items. Same items in, same bill out.
// Nothing is rounded here; callers round only when formatting for display.
func ComputeBill(items []LineItem) Bill {
	subtotal := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.UnitPrice).
			Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(line)
	}

	tax := subtotal.Mul(taxRate)

	return Bill{
		Subtotal: subtotal,
		Tax:      tax,
		Fee:      serviceFee,
		Total:    subtotal.Add(tax).Add(serviceFee),
	}
}
