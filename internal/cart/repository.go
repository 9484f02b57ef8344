package cart

import "context"

// changeChannel is the notification channel written to on every save.
// Postgres uses it as the LISTEN/NOTIFY channel, redis as the pub/sub
// channel name.
const changeChannel = "deliciae_cart_changed"

// Repository persists the full cart state under StorageKey. There is no
// per-item update: Save replaces the whole value in one write, so a failed
// write never leaves a partial state behind.
type Repository interface {

	// Load returns the persisted line items in order. A missing key is an
	// empty cart, not an error.
	Load(ctx context.Context) ([]LineItem, error)

	// Save durably replaces the persisted state and signals watchers,
	// including watchers in other processes sharing the same backend.
	Save(ctx context.Context, items []LineItem) error

	// Watch streams a signal after every successful Save until ctx is
	// done. The signal carries no payload; receivers re-read via Load.
	// The channel is closed when the watch ends.
	Watch(ctx context.Context) (<-chan struct{}, error)
}
