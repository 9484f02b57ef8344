package order

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"deliciae/internal/rest"
)

func waitForOrders(t *testing.T, ch <-chan []Order) []Order {
	t.Helper()
	select {
	case orders := <-ch:
		return orders
	case <-time.After(2 * time.Second):
		t.Fatal("no tracker update in time")
		return nil
	}
}

func TestTrackerNotifiesOnStatusChange(t *testing.T) {
	var mu sync.Mutex
	status := StatusOrdered

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `[{"id": 1, "status": %q, "total_amount": "100.00"}]`, status)
	}))
	defer srv.Close()

	client := NewClient(rest.NewClient(srv.URL, ""))
	tracker := NewTracker(client, 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub := tracker.Subscribe(ctx)
	go tracker.Run(ctx)

	first := waitForOrders(t, sub)
	if len(first) != 1 || first[0].Status != StatusOrdered {
		t.Fatalf("first update = %+v", first)
	}

	mu.Lock()
	status = StatusPreparing
	mu.Unlock()

	second := waitForOrders(t, sub)
	if second[0].Status != StatusPreparing {
		t.Fatalf("second update = %+v, want Preparing", second)
	}

	if current := tracker.Current(); current[0].Status != StatusPreparing {
		t.Errorf("Current() = %+v, want Preparing", current)
	}
}

func TestTrackerKeepsLastGoodListOnFailure(t *testing.T) {
	var mu sync.Mutex
	failing := false

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		if failing {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id": 1, "status": "Ordered", "total_amount": "100.00"}]`))
	}))
	defer srv.Close()

	client := NewClient(rest.NewClient(srv.URL, ""))
	tracker := NewTracker(client, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub := tracker.Subscribe(ctx)
	go tracker.Run(ctx)

	waitForOrders(t, sub)

	mu.Lock()
	failing = true
	mu.Unlock()

	// Give it a few failing polls; the last good list must survive.
	time.Sleep(50 * time.Millisecond)

	current := tracker.Current()
	if len(current) != 1 || current[0].ID != 1 {
		t.Errorf("last good list lost: %+v", current)
	}
}
