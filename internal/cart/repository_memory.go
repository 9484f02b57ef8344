package cart

import (
	"context"
	"sync"
)

// InMemoryRepository keeps the cart in process memory. It is the test
// double and the zero-infrastructure backend for local runs.
type InMemoryRepository struct {
	mu    sync.Mutex
	items []LineItem
	subs  map[chan struct{}]struct{}
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		subs: make(map[chan struct{}]struct{}),
	}
}

func (r *InMemoryRepository) Load(ctx context.Context) ([]LineItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]LineItem, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *InMemoryRepository) Save(ctx context.Context, items []LineItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = make([]LineItem, len(items))
	copy(r.items, items)

	for ch := range r.subs {
		select {
		case ch <- struct{}{}:
		default:
			// Watcher already has a pending signal; it will re-read anyway.
		}
	}
	return nil
}

func (r *InMemoryRepository) Watch(ctx context.Context) (<-chan struct{}, error) {
	ch := make(chan struct{}, 1)

	r.mu.Lock()
	r.subs[ch] = struct{}{}
	r.mu.Unlock()

	go func() {
		<-ctx.Done()
		r.mu.Lock()
		delete(r.subs, ch)
		close(ch)
		r.mu.Unlock()
	}()

	return ch, nil
}
