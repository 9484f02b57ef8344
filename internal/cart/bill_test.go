package cart

import "testing"

func TestBillMatchesObservedRates(t *testing.T) {
	items := []LineItem{
		{ID: 1, Name: "Biryani", UnitPrice: 100, Quantity: 2},
		{ID: 2, Name: "Lassi", UnitPrice: 50, Quantity: 1},
	}

	bill := ComputeBill(items)

	if got := bill.Subtotal.StringFixed(2); got != "250.00" {
		t.Errorf("subtotal = %s, want 250.00", got)
	}
	if got := bill.Tax.StringFixed(2); got != "12.50" {
		t.Errorf("tax = %s, want 12.50", got)
	}
	if got := bill.Fee.StringFixed(2); got != "5.00" {
		t.Errorf("fee = %s, want 5.00", got)
	}
	if got := bill.Total.StringFixed(2); got != "267.50" {
		t.Errorf("total = %s, want 267.50", got)
	}
}

func TestBillIsIdempotent(t *testing.T) {
	items := []LineItem{
		{ID: 1, UnitPrice: 99.99, Quantity: 3},
	}

	first := ComputeBill(items)
	second := ComputeBill(items)

	if !first.Total.Equal(second.Total) || !first.Tax.Equal(second.Tax) {
		t.Errorf("two computations differ: %+v vs %+v", first, second)
	}
}

func TestBillOnEmptyCart(t *testing.T) {
	bill := ComputeBill(nil)

	if !bill.Subtotal.IsZero() {
		t.Errorf("subtotal on empty cart = %s, want 0", bill.Subtotal)
	}
	// The flat fee applies regardless; an empty cart is never checked out
	// anyway, checkout rejects it first.
	if got := bill.Total.StringFixed(2); got != "5.00" {
		t.Errorf("total on empty cart = %s, want 5.00", got)
	}
}
