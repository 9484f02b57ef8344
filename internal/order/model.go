package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is the order lifecycle: Ordered → Preparing → Served → Paid,
// with Cancelled as the off-ramp.
type Status string

const (
	StatusOrdered   Status = "Ordered"
	StatusPreparing Status = "Preparing"
	StatusServed    Status = "Served"
	StatusPaid      Status = "Paid"
	StatusCancelled Status = "Cancelled"
)

// Active reports whether the order still belongs in the tracking view.
// Served stays active: the diner may want the live bill while eating.
func (s Status) Active() bool {
	switch s {
	case StatusOrdered, StatusPreparing, StatusServed:
		return true
	}
	return false
}

// ItemDetail is one flat entry of the serializer's items_details. The
// upstream order model has no per-item quantity; a quantity of n arrives
// as n copies of the same id.
type ItemDetail struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	CurrencySymbol string  `json:"currency_symbol"`
}

// Order is one dining order as served by the backend. TotalAmount decodes
// from either a JSON number or the serializer's quoted decimal string.
type Order struct {
	ID                 int64           `json:"id"`
	Restaurant         int64           `json:"restaurant"`
	RestaurantName     string          `json:"restaurant_name"`
	RestaurantLocation string          `json:"restaurant_location"`
	Status             Status          `json:"status"`
	TotalAmount        decimal.Decimal `json:"total_amount"`
	CreatedAt          time.Time       `json:"created_at"`
	ItemsDetails       []ItemDetail    `json:"items_details"`
}

// GroupedItem is a display row: one distinct dish with its repeat count.
type GroupedItem struct {
	ItemDetail
	Count int `json:"count"`
}

// GroupItems collapses repeated ids into one row each, preserving
// first-seen order.
func GroupItems(details []ItemDetail) []GroupedItem {
	index := make(map[int64]int)
	var grouped []GroupedItem

	for _, d := range details {
		if i, ok := index[d.ID]; ok {
			grouped[i].Count++
			continue
		}
		index[d.ID] = len(grouped)
		grouped = append(grouped, GroupedItem{ItemDetail: d, Count: 1})
	}
	return grouped
}

// Split partitions orders into the tracking view and the history view.
func Split(orders []Order) (active, history []Order) {
	for _, o := range orders {
		if o.Status.Active() {
			active = append(active, o)
		} else {
			history = append(history, o)
		}
	}
	return active, history
}

// HistoryStats summarizes past spending for the history header.
type HistoryStats struct {
	TotalOrders int
	TotalSpent  decimal.Decimal
}

func StatsFor(history []Order) HistoryStats {
	stats := HistoryStats{TotalOrders: len(history), TotalSpent: decimal.Zero}
	for _, o := range history {
		stats.TotalSpent = stats.TotalSpent.Add(o.TotalAmount)
	}
	return stats
}
