package cart

import "context"

// ConfirmFunc asks the user to approve removing a line item whose quantity
// is about to drop to zero. Returning false leaves the cart untouched.
type ConfirmFunc func(item LineItem) bool

// QuantityResult reports what ChangeQuantity did.
type QuantityResult int

const (
	// QuantityUpdated: the entry's quantity changed.
	QuantityUpdated QuantityResult = iota

	// QuantityRemoved: the entry was deleted after confirmation.
	QuantityRemoved

	// QuantityDeclined: removal was needed but not confirmed; nothing changed.
	QuantityDeclined

	// QuantityNotFound: no entry had the given id; nothing changed.
	QuantityNotFound
)

// Store owns the cart. It keeps no authoritative state of its own: every
// operation re-reads the persisted value, applies the change, and writes
// the full value back. Concurrent writers therefore see last-write-wins,
// exactly like the browser storage the state migrated from.
type Store struct {
	repo Repository
}

func NewStore(repo Repository) *Store {
	return &Store{repo: repo}
}

// --------------------------------------------------
// Mutations
// --------------------------------------------------

// AddItem puts ref in the cart. An existing entry with the same id has its
// quantity incremented; otherwise a new line is appended with the display
// fields captured from ref right now. Deltas below 1 count as 1, keeping
// the operation total.
func (s *Store) AddItem(ctx context.Context, ref ItemRef, delta int) error {
	if delta < 1 {
		delta = 1
	}

	items, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}

	found := false
	for i := range items {
		if items[i].ID == ref.ID {
			items[i].Quantity += delta
			found = true
			break
		}
	}

	if !found {
		image := ref.ImageRef
		if image == "" {
			image = DefaultImageRef
		}
		source := ref.SourceLabel
		if source == "" {
			source = DefaultSourceLabel
		}
		items = append(items, LineItem{
			ID:          ref.ID,
			Name:        ref.Name,
			UnitPrice:   ref.UnitPrice,
			Quantity:    delta,
			ImageRef:    image,
			SourceLabel: source,
		})
	}

	return s.repo.Save(ctx, items)
}

// ChangeQuantity adds delta to the entry with the given id. Unknown ids
// are tolerated silently: the renderer only issues them from a view it
// just displayed, and another writer may have removed the entry meanwhile.
// A change that would leave the quantity at zero or below deletes the
// entry, but only once confirm agrees; a zero-quantity line is never
// stored. The state is re-read inside the call, so the decision is always
// made against the latest persisted value. On error the cart is unchanged.
func (s *Store) ChangeQuantity(ctx context.Context, id int64, delta int, confirm ConfirmFunc) (QuantityResult, error) {
	items, err := s.repo.Load(ctx)
	if err != nil {
		return QuantityNotFound, err
	}

	idx := -1
	for i := range items {
		if items[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return QuantityNotFound, nil
	}

	if items[idx].Quantity+delta <= 0 {
		if confirm == nil || !confirm(items[idx]) {
			return QuantityDeclined, nil
		}
		items = append(items[:idx], items[idx+1:]...)
		if err := s.repo.Save(ctx, items); err != nil {
			return QuantityRemoved, err
		}
		return QuantityRemoved, nil
	}

	items[idx].Quantity += delta
	if err := s.repo.Save(ctx, items); err != nil {
		return QuantityUpdated, err
	}
	return QuantityUpdated, nil
}

// Clear removes every entry unconditionally. Called after a successful
// order placement.
func (s *Store) Clear(ctx context.Context) error {
	return s.repo.Save(ctx, nil)
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

// Snapshot returns the current line items and their computed bill. It
// reads the persisted state fresh and never mutates it.
func (s *Store) Snapshot(ctx context.Context) (Snapshot, error) {
	items, err := s.repo.Load(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	if items == nil {
		items = []LineItem{}
	}
	return Snapshot{Items: items, Bill: ComputeBill(items)}, nil
}

// ItemCount is the badge number: the sum of all quantities.
func (s *Store) ItemCount(ctx context.Context) (int, error) {
	items, err := s.repo.Load(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count, nil
}

// Subscribe delivers a signal after every persisted change, whether made
// by this process or any other sharing the backend. Receivers re-read via
// Snapshot; the signal carries no payload.
func (s *Store) Subscribe(ctx context.Context) (<-chan struct{}, error) {
	return s.repo.Watch(ctx)
}
