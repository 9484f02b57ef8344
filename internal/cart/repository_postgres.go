package cart

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository stores the whole cart as one JSONB row keyed by
// StorageKey. LISTEN/NOTIFY carries the change signal between processes,
// playing the role the browser storage event played between tabs.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Load(ctx context.Context) ([]LineItem, error) {
	var raw []byte
	err := r.db.QueryRow(ctx,
		`SELECT value FROM cart_state WHERE key = $1`,
		StorageKey,
	).Scan(&raw)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var items []LineItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) Save(ctx context.Context, items []LineItem) error {
	if items == nil {
		items = []LineItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	upsertSQL := `
		INSERT INTO cart_state (key, value, updated_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = CURRENT_TIMESTAMP
	`
	if _, err := tx.Exec(ctx, upsertSQL, StorageKey, raw); err != nil {
		return err
	}

	// Delivered with the commit, so watchers never see a notification
	// for a write that rolled back.
	if _, err := tx.Exec(ctx, `SELECT pg_notify($1, $2)`, changeChannel, StorageKey); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PostgresRepository) Watch(ctx context.Context) (<-chan struct{}, error) {
	conn, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec(ctx, `LISTEN `+changeChannel); err != nil {
		conn.Release()
		return nil, err
	}

	ch := make(chan struct{}, 1)
	go func() {
		defer close(ch)
		defer conn.Release()

		for {
			n, err := conn.Conn().WaitForNotification(ctx)
			if err != nil {
				// ctx cancelled or connection lost; the watch ends.
				return
			}
			if n.Payload != StorageKey {
				continue
			}
			select {
			case ch <- struct{}{}:
			default:
			}
		}
	}()

	return ch, nil
}
