package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshcart/freshcart/internal/repository"
	"github.com/freshcart/freshcart/product/seed"
)

type fakeSeedStore struct {
	count              int64
	countErr           error
	failUpsertCategory error
	countCalls         int
	upsertedCategories int
	upsertedProducts   int
}

func (f *fakeSeedStore) CountProducts(c context.Context) (int64, error) {
	f.countCalls++
	return f.count, f.countErr
}

func (f *fakeSeedStore) UpsertCategory(
	c context.Context,
	arg repository.UpsertCategoryParams,
) error {
	if f.failUpsertCategory != nil {
		return f.failUpsertCategory
	}
	f.upsertedCategories++
	return nil
}

func (f *fakeSeedStore) UpsertProduct(c context.Context, arg repository.UpsertProductParams) error {
	f.upsertedProducts++
	return nil
}

func newTestSeedService(store *fakeSeedStore) (*SeedService, *time.Time) {
	svc := NewSeedService(store, 5*time.Minute)
	now := time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	return svc, &now
}

func TestEnsureSeededSeedsEmptyDatabase(t *testing.T) {
	c := context.Background()
	store := &fakeSeedStore{count: 0}
	svc, _ := newTestSeedService(store)

	require.NoError(t, svc.EnsureSeeded(c))

	assert.Equal(t, len(seed.Categories), store.upsertedCategories)
	assert.Equal(t, len(seed.Products), store.upsertedProducts)
	assert.True(t, svc.Status().Initialized)
}

func TestEnsureSeededSkipsPopulatedDatabase(t *testing.T) {
	c := context.Background()
	store := &fakeSeedStore{count: int64(len(seed.Products))}
	svc, _ := newTestSeedService(store)

	require.NoError(t, svc.EnsureSeeded(c))

	assert.Equal(t, 1, store.countCalls)
	assert.Zero(t, store.upsertedCategories)
	assert.Zero(t, store.upsertedProducts)
	assert.True(t, svc.Status().Initialized)
}

func TestEnsureSeededCachesPositiveCheck(t *testing.T) {
	c := context.Background()
	store := &fakeSeedStore{count: int64(len(seed.Products))}
	svc, now := newTestSeedService(store)

	require.NoError(t, svc.EnsureSeeded(c))
	require.Equal(t, 1, store.countCalls)

	*now = now.Add(4 * time.Minute)
	require.NoError(t, svc.EnsureSeeded(c))
	assert.Equal(t, 1, store.countCalls, "fresh cache should skip the database")
	assert.True(t, svc.Status().CacheValid)

	*now = now.Add(2 * time.Minute)
	assert.False(t, svc.Status().CacheValid)
	require.NoError(t, svc.EnsureSeeded(c))
	assert.Equal(t, 2, store.countCalls, "stale cache should consult the database again")
}

func TestEnsureSeededResetForcesRecheck(t *testing.T) {
	c := context.Background()
	store := &fakeSeedStore{count: int64(len(seed.Products))}
	svc, _ := newTestSeedService(store)

	require.NoError(t, svc.EnsureSeeded(c))
	require.Equal(t, 1, store.countCalls)

	svc.Reset()
	assert.False(t, svc.Status().Initialized)

	require.NoError(t, svc.EnsureSeeded(c))
	assert.Equal(t, 2, store.countCalls)
}

func TestEnsureSeededPropagatesCountError(t *testing.T) {
	c := context.Background()
	store := &fakeSeedStore{countErr: errors.New("connection refused")}
	svc, _ := newTestSeedService(store)

	assert.Error(t, svc.EnsureSeeded(c))
	assert.False(t, svc.Status().Initialized)
}

func TestEnsureSeededPropagatesUpsertError(t *testing.T) {
	c := context.Background()
	store := &fakeSeedStore{failUpsertCategory: errors.New("syntax error")}
	svc, _ := newTestSeedService(store)

	assert.Error(t, svc.EnsureSeeded(c))
	assert.False(t, svc.Status().Initialized)
	assert.Zero(t, store.upsertedProducts, "categories seed before products")
}

func TestForceSeedUpsertsUnconditionally(t *testing.T) {
	c := context.Background()
	store := &fakeSeedStore{count: int64(len(seed.Products))}
	svc, _ := newTestSeedService(store)

	require.NoError(t, svc.EnsureSeeded(c))
	require.NoError(t, svc.ForceSeed(c))

	assert.Equal(t, len(seed.Categories), store.upsertedCategories)
	assert.Equal(t, len(seed.Products), store.upsertedProducts)
	assert.True(t, svc.Status().Initialized)
}
