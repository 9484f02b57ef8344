package order

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"deliciae/internal/logging"
)

// The backend has no push channel, so tracking is a poll. 15s matches the
// refresh the web client used.
const DefaultPollInterval = 15 * time.Second

// Tracker polls the order list and fans the latest state out to
// subscribers whenever an order appears, disappears, or changes status.
type Tracker struct {
	client   *Client
	interval time.Duration
	log      *slog.Logger

	mu   sync.Mutex
	last []Order
	subs map[chan []Order]struct{}
}

func NewTracker(client *Client, interval time.Duration) *Tracker {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Tracker{
		client:   client,
		interval: interval,
		log:      logging.New("order-tracker"),
		subs:     make(map[chan []Order]struct{}),
	}
}

// Run polls until ctx is done. A failed fetch is logged and retried on the
// next tick; subscribers keep the last good list meanwhile.
func (t *Tracker) Run(ctx context.Context) {
	t.poll(ctx)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.poll(ctx)
		}
	}
}

// Current returns the most recent successfully fetched list.
func (t *Tracker) Current() []Order {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Order, len(t.last))
	copy(out, t.last)
	return out
}

// Subscribe delivers the full order list after every detected change,
// until ctx is done. A slow subscriber misses intermediate updates, never
// the mechanism: it can always catch up via Current.
func (t *Tracker) Subscribe(ctx context.Context) <-chan []Order {
	ch := make(chan []Order, 1)

	t.mu.Lock()
	t.subs[ch] = struct{}{}
	t.mu.Unlock()

	go func() {
		<-ctx.Done()
		t.mu.Lock()
		delete(t.subs, ch)
		close(ch)
		t.mu.Unlock()
	}()

	return ch
}

func (t *Tracker) poll(ctx context.Context) {
	orders, err := t.client.List(ctx)
	if err != nil {
		t.log.Error("order poll failed", "error", err)
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if sameOrders(t.last, orders) {
		return
	}
	t.last = orders

	for ch := range t.subs {
		// Replace a pending update rather than queueing behind it.
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- orders:
		default:
		}
	}
}

func sameOrders(a, b []Order) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID || a[i].Status != b[i].Status {
			return false
		}
	}
	return true
}
