package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyCart = "cart:%s"

// RedisPersister keeps each session's cart under cart:<session> as a
// JSON payload with a sliding TTL.
type RedisPersister struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisPersister(client *redis.Client, ttl time.Duration) *RedisPersister {
	return &RedisPersister{client: client, ttl: ttl}
}

func (p *RedisPersister) Load(c context.Context, session string) ([]Item, error) {
	payload, err := p.client.Get(c, fmt.Sprintf(keyCart, session)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed loading cart with error=%w", err)
	}

	items := []Item{}
	err = json.Unmarshal(payload, &items)
	if err != nil {
		return nil, fmt.Errorf("failed unmarshaling cart with error=%w", err)
	}
	return items, nil
}

func (p *RedisPersister) Save(c context.Context, session string, items []Item) error {
	if items == nil {
		items = []Item{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed marshaling cart with error=%w", err)
	}

	err = p.client.Set(c, fmt.Sprintf(keyCart, session), payload, p.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed saving cart with error=%w", err)
	}
	return nil
}

func (p *RedisPersister) Delete(c context.Context, session string) error {
	err := p.client.Del(c, fmt.Sprintf(keyCart, session)).Err()
	if err != nil {
		return fmt.Errorf("failed deleting cart with error=%w", err)
	}
	return nil
}
