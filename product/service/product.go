package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	inErrors "github.com/freshcart/freshcart/internal/errors"
	"github.com/freshcart/freshcart/internal/log"
	inOtel "github.com/freshcart/freshcart/internal/otel"
	"github.com/freshcart/freshcart/internal/repository"
	"github.com/freshcart/freshcart/product/otel"
	"github.com/freshcart/freshcart/product/pkg/response"
)

type ProductService struct {
	queries *repository.Queries
}

func NewProductService(queries *repository.Queries) *ProductService {
	return &ProductService{queries: queries}
}

// FindProducts lists the catalog, optionally filtered by category.
func (svc *ProductService) FindProducts(
	c context.Context,
	categoryId uuid.NullUUID,
) ([]response.Product, error) {
	c, span := otel.Tracer.Start(c, "ProductService FindProducts")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ProductService FindProducts").
		Str(log.KeyProcess, "finding products").
		Logger()

	logger.Info().Msg("finding products")
	var products []repository.Product
	var err error
	if categoryId.Valid {
		products, err = svc.queries.FindProductsByCategory(c, categoryId.UUID)
	} else {
		products, err = svc.queries.FindProducts(c)
	}
	if err != nil {
		err = fmt.Errorf("failed finding products with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Info().Msgf("found products count=%d", len(products))

	res := make([]response.Product, 0, len(products))
	for _, p := range products {
		res = append(res, response.ProductFromRepository(p))
	}
	return res, nil
}

func (svc *ProductService) FindProductById(
	c context.Context,
	id uuid.UUID,
) (response.Product, error) {
	c, span := otel.Tracer.Start(c, "ProductService FindProductById")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ProductService FindProductById").
		Str(log.KeyProductID, id.String()).
		Logger()

	logger.Info().Msg("finding product by id")
	product, err := svc.queries.FindProductById(c, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = fmt.Errorf("%w: id=%s", inErrors.ErrProductNotFound, id)
		} else {
			err = fmt.Errorf("failed finding product by id=%s with error=%w", id, err)
		}
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Product{}, err
	}
	logger.Info().Msg("found product by id")

	return response.ProductFromRepository(product), nil
}

func (svc *ProductService) FindCategories(c context.Context) ([]response.Category, error) {
	c, span := otel.Tracer.Start(c, "ProductService FindCategories")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ProductService FindCategories").
		Logger()

	logger.Info().Msg("finding categories")
	categories, err := svc.queries.FindCategories(c)
	if err != nil {
		err = fmt.Errorf("failed finding categories with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Info().Msgf("found categories count=%d", len(categories))

	res := make([]response.Category, 0, len(categories))
	for _, cat := range categories {
		res = append(res, response.CategoryFromRepository(cat))
	}
	return res, nil
}
