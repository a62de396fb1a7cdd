package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/freshcart/freshcart/cart/otel"
	"github.com/freshcart/freshcart/cart/store"
	"github.com/freshcart/freshcart/cart/pkg/request"
	"github.com/freshcart/freshcart/cart/pkg/response"
	"github.com/freshcart/freshcart/internal/log"
	inOtel "github.com/freshcart/freshcart/internal/otel"
)

// CartService owns one Store per browser session, created empty on first
// access and hydrated from durable storage.
type CartService struct {
	persister store.Persister

	mu     sync.Mutex
	stores map[string]*store.Store
}

func NewCartService(persister store.Persister) *CartService {
	return &CartService{persister: persister, stores: map[string]*store.Store{}}
}

func (svc *CartService) storeFor(c context.Context, session string) *store.Store {
	svc.mu.Lock()
	s, ok := svc.stores[session]
	if !ok {
		s = store.New(session, svc.persister)
		svc.stores[session] = s
	}
	svc.mu.Unlock()

	err := s.Hydrate(c)
	if err != nil {
		err = fmt.Errorf("failed hydrating cart with error=%w", err)
		zerolog.Ctx(c).
			Error().
			Err(err).
			Str(log.KeyTag, "CartService storeFor").
			Str(log.KeySessionID, session).
			Msg(err.Error())
	}
	return s
}

func (svc *CartService) GetCart(c context.Context, session string) response.Cart {
	c, span := otel.Tracer.Start(c, "CartService GetCart")
	defer span.End()

	s := svc.storeFor(c, session)
	return response.CartFromItems(s.Items(), s.Total(), s.ItemCount())
}

func (svc *CartService) AddItem(
	c context.Context,
	session string,
	param request.AddItem,
) response.Cart {
	c, span := otel.Tracer.Start(c, "CartService AddItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService AddItem").
		Str(log.KeySessionID, session).
		Str(log.KeyProductID, param.ID).
		Int32(log.KeyQuantity, param.Quantity).
		Logger()

	logger.Info().Msg("adding item to cart")
	c = logger.WithContext(c)
	s := svc.storeFor(c, session)
	s.AddItem(c, store.Item{
		ID:       param.ID,
		Name:     param.Name,
		Price:    param.Price,
		Quantity: param.Quantity,
		ImageURL: param.ImageURL,
	})
	logger.Info().Msg("added item to cart")

	return response.CartFromItems(s.Items(), s.Total(), s.ItemCount())
}

func (svc *CartService) RemoveItem(c context.Context, session string, productId string) response.Cart {
	c, span := otel.Tracer.Start(c, "CartService RemoveItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService RemoveItem").
		Str(log.KeySessionID, session).
		Str(log.KeyProductID, productId).
		Logger()

	logger.Info().Msg("removing item from cart")
	c = logger.WithContext(c)
	s := svc.storeFor(c, session)
	s.RemoveItem(c, productId)
	logger.Info().Msg("removed item from cart")

	return response.CartFromItems(s.Items(), s.Total(), s.ItemCount())
}

func (svc *CartService) UpdateQuantity(
	c context.Context,
	session string,
	productId string,
	quantity int32,
) response.Cart {
	c, span := otel.Tracer.Start(c, "CartService UpdateQuantity")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService UpdateQuantity").
		Str(log.KeySessionID, session).
		Str(log.KeyProductID, productId).
		Int32(log.KeyQuantity, quantity).
		Logger()

	logger.Info().Msg("updating item quantity")
	c = logger.WithContext(c)
	s := svc.storeFor(c, session)
	s.UpdateQuantity(c, productId, quantity)
	logger.Info().Msg("updated item quantity")

	return response.CartFromItems(s.Items(), s.Total(), s.ItemCount())
}

func (svc *CartService) ClearCart(c context.Context, session string) error {
	c, span := otel.Tracer.Start(c, "CartService ClearCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService ClearCart").
		Str(log.KeySessionID, session).
		Logger()

	logger.Info().Msg("clearing cart")
	c = logger.WithContext(c)
	s := svc.storeFor(c, session)
	s.Clear(c)

	err := svc.persister.Delete(c, session)
	if err != nil {
		err = fmt.Errorf("failed deleting persisted cart with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("cleared cart")
	return nil
}
