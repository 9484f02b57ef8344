package cart

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisRepository stores the cart JSON under StorageKey and publishes on
// every write; watchers subscribe to the same channel.
type RedisRepository struct {
	rdb *redis.Client
}

func NewRedisRepository(rdb *redis.Client) *RedisRepository {
	return &RedisRepository{rdb: rdb}
}

func (r *RedisRepository) Load(ctx context.Context) ([]LineItem, error) {
	raw, err := r.rdb.Get(ctx, StorageKey).Bytes()
	if errors.Is(err, redis.Nil) {
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

func (r *RedisRepository) Save(ctx context.Context, items []LineItem) error {
	if items == nil {
		items = []LineItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}

	pipe := r.rdb.TxPipeline()
	pipe.Set(ctx, StorageKey, raw, 0)
	pipe.Publish(ctx, changeChannel, StorageKey)
	_, err = pipe.Exec(ctx)
	return err
}

func (r *RedisRepository) Watch(ctx context.Context) (<-chan struct{}, error) {
	sub := r.rdb.Subscribe(ctx, changeChannel)

	// Confirm the subscription before reporting the watch as live.
	if _, err := sub.Receive(ctx); err != nil {
		sub.Close()
		return nil, err
	}

	ch := make(chan struct{}, 1)
	go func() {
		defer close(ch)
		defer sub.Close()

		msgs := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case m, ok := <-msgs:
				if !ok {
					return
				}
				if m.Payload != StorageKey {
					continue
				}
				select {
				case ch <- struct{}{}:
				default:
				}
			}
		}
	}()

	return ch, nil
}
