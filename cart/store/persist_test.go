package store

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	testRedis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func setupRedis(t *testing.T, c context.Context) (*redis.Client, func()) {
	t.Helper()

	redisContainer, err := testRedis.Run(c, "redis:7.4.2-alpine3.21")
	if err != nil {
		t.Fatalf("failed running redis container with error: %s", err)
	}

	redisConnStr, err := redisContainer.ConnectionString(c)
	if err != nil {
		t.Fatalf("failed getting redis connection string with error: %s", err)
	}

	redisOpt, err := redis.ParseURL(redisConnStr)
	if err != nil {
		t.Fatalf("failed parsing redis connection string with error: %s", err)
	}

	client := redis.NewClient(redisOpt)
	if err = client.Ping(c).Err(); err != nil {
		t.Fatalf("failed ping redis client with error: %s", err)
	}

	teardown := func() {
		client.Close()
		if err := testcontainers.TerminateContainer(redisContainer); err != nil {
			t.Fatalf("failed to terminate container: %s", err)
		}
	}
	return client, teardown
}

func TestRedisPersister(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	c := context.Background()
	client, teardown := setupRedis(t, c)
	defer teardown()

	persister := NewRedisPersister(client, time.Hour)

	loaded, err := persister.Load(c, "session-1")
	require.NoError(t, err, "missing session should not be an error")
	assert.Nil(t, loaded)

	items := []Item{
		{
			ID:       "20000000-0000-0000-0000-000000000006",
			Name:     "Whole Milk",
			Price:    decimal.RequireFromString("2.50"),
			Quantity: 2,
		},
		{
			ID:       "20000000-0000-0000-0000-000000000011",
			Name:     "Sourdough Bread",
			Price:    decimal.RequireFromString("4.25"),
			Quantity: 1,
		},
	}
	require.NoError(t, persister.Save(c, "session-1", items))

	loaded, err = persister.Load(c, "session-1")
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, items[0].ID, loaded[0].ID)
	assert.True(t, items[0].Price.Equal(loaded[0].Price))
	assert.EqualValues(t, 2, loaded[0].Quantity)

	ttl, err := client.TTL(c, "cart:session-1").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0), "persisted carts should expire")

	loaded, err = persister.Load(c, "session-2")
	require.NoError(t, err, "sessions should be isolated")
	assert.Nil(t, loaded)

	require.NoError(t, persister.Delete(c, "session-1"))
	loaded, err = persister.Load(c, "session-1")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}
