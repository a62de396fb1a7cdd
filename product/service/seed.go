package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/freshcart/freshcart/internal/log"
	inOtel "github.com/freshcart/freshcart/internal/otel"
	"github.com/freshcart/freshcart/internal/repository"
	"github.com/freshcart/freshcart/product/otel"
	"github.com/freshcart/freshcart/product/seed"
)

// SeedStore is the persistence surface seeding writes to.
// *repository.Queries implements it.
type SeedStore interface {
	CountProducts(c context.Context) (int64, error)
	UpsertCategory(c context.Context, arg repository.UpsertCategoryParams) error
	UpsertProduct(c context.Context, arg repository.UpsertProductParams) error
}

// SeedStatus reports the initialization cache state.
type SeedStatus struct {
	Initialized bool      `json:"initialized"`
	LastChecked time.Time `json:"lastChecked"`
	CacheValid  bool      `json:"cacheValid"`
}

// SeedService initializes the catalog from static reference data. A
// positive initialization check is cached for ttl so the database is not
// consulted on every request; the cache is owned by the process
// lifecycle and starts cold.
type SeedService struct {
	store SeedStore
	ttl   time.Duration
	now   func() time.Time

	mu          sync.Mutex
	initialized bool
	lastChecked time.Time
}

func NewSeedService(store SeedStore, ttl time.Duration) *SeedService {
	return &SeedService{store: store, ttl: ttl, now: time.Now}
}

// EnsureSeeded makes sure the catalog exists, seeding it when needed.
// Within the TTL window after a positive check it is a no-op.
func (svc *SeedService) EnsureSeeded(c context.Context) error {
	c, span := otel.Tracer.Start(c, "SeedService EnsureSeeded")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "SeedService EnsureSeeded").
		Logger()

	svc.mu.Lock()
	defer svc.mu.Unlock()

	now := svc.now()
	if svc.initialized && now.Sub(svc.lastChecked) < svc.ttl {
		logger.Debug().Msg("database already initialized (cached)")
		return nil
	}

	logger = logger.With().Str(log.KeyProcess, "counting products").Logger()
	logger.Info().Msg("counting products")
	count, err := svc.store.CountProducts(c)
	if err == nil && count >= int64(len(seed.Products)) {
		logger.Info().Msgf("database already contains %d products", count)
		svc.initialized = true
		svc.lastChecked = now
		return nil
	}
	if err != nil {
		err = fmt.Errorf("failed counting products with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}

	err = svc.upsertAll(c)
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}

	logger.Info().Msg("database initialized")
	svc.initialized = true
	svc.lastChecked = now
	return nil
}

// ForceSeed upserts the full reference catalog unconditionally. Used by
// the admin seeding endpoint.
func (svc *SeedService) ForceSeed(c context.Context) error {
	c, span := otel.Tracer.Start(c, "SeedService ForceSeed")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "SeedService ForceSeed").
		Logger()

	svc.mu.Lock()
	defer svc.mu.Unlock()

	err := svc.upsertAll(c)
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}

	svc.initialized = true
	svc.lastChecked = svc.now()
	return nil
}

// upsertAll writes categories first so product rows can reference them.
// Called with the mutex held.
func (svc *SeedService) upsertAll(c context.Context) error {
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "SeedService upsertAll").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "seeding categories").Logger()
	logger.Info().Msg("seeding categories")
	for _, cat := range seed.Categories {
		err := svc.store.UpsertCategory(c, repository.UpsertCategoryParams{
			ID:          cat.ID,
			Name:        cat.Name,
			Description: cat.Description,
			Icon:        cat.Icon,
		})
		if err != nil {
			return fmt.Errorf("failed seeding categories with error=%w", err)
		}
	}
	logger.Info().Msgf("seeded %d categories", len(seed.Categories))

	logger = logger.With().Str(log.KeyProcess, "seeding products").Logger()
	logger.Info().Msg("seeding products")
	for _, prod := range seed.Products {
		err := svc.store.UpsertProduct(c, repository.UpsertProductParams{
			ID:           prod.ID,
			Name:         prod.Name,
			Description:  prod.Description,
			Price:        repository.NumericFromDecimal(prod.Price),
			CategoryID:   prod.CategoryID,
			ImageURL:     prod.ImageURL,
			Stock:        prod.Stock,
			Rating:       prod.Rating,
			ReviewsCount: prod.ReviewsCount,
			IsFeatured:   prod.IsFeatured,
		})
		if err != nil {
			return fmt.Errorf("failed seeding products with error=%w", err)
		}
	}
	logger.Info().Msgf("seeded %d products", len(seed.Products))

	return nil
}

// Reset drops the cached initialization state so the next EnsureSeeded
// consults the database again.
func (svc *SeedService) Reset() {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.initialized = false
	svc.lastChecked = time.Time{}
}

func (svc *SeedService) Status() SeedStatus {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	return SeedStatus{
		Initialized: svc.initialized,
		LastChecked: svc.lastChecked,
		CacheValid:  svc.initialized && svc.now().Sub(svc.lastChecked) < svc.ttl,
	}
}
