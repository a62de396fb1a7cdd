package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	inErrors "github.com/freshcart/freshcart/internal/errors"
	"github.com/freshcart/freshcart/internal/log"
	"github.com/freshcart/freshcart/internal/metric"
	inOtel "github.com/freshcart/freshcart/internal/otel"
	"github.com/freshcart/freshcart/internal/repository"
	"github.com/freshcart/freshcart/order/otel"
	"github.com/freshcart/freshcart/order/pkg/request"
	"github.com/freshcart/freshcart/order/pkg/response"
)

// OrderStore is the persistence surface the submission flow writes to.
// *repository.Queries implements it.
type OrderStore interface {
	InsertOrder(c context.Context, arg repository.InsertOrderParams) (repository.Order, error)
	InsertOrderItems(c context.Context, args []repository.InsertOrderItemParams) (int64, error)
	DeleteOrder(c context.Context, id uuid.UUID) error
	FindOrderById(c context.Context, id uuid.UUID) (repository.Order, error)
	FindOrderItemsByOrderId(c context.Context, orderId uuid.UUID) ([]repository.OrderItem, error)
}

type OrderService struct {
	store OrderStore
	now   func() time.Time
}

func NewOrderService(store OrderStore) *OrderService {
	return &OrderService{store: store, now: time.Now}
}

// CreateOrder records an order and its line items, or fails with no
// partial visible state. The order row and the item batch are two
// dependent writes; when the batch fails the order row is deleted again
// so an order without line items is never observable. Resubmission after
// a failure mints a new order number; idempotency is not guaranteed.
func (svc *OrderService) CreateOrder(
	c context.Context,
	param request.CreateOrder,
) (response.CreateOrder, error) {
	c, span := otel.Tracer.Start(c, "OrderService CreateOrder")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderService CreateOrder").
		Str(log.KeyEmail, param.Email).
		Int(log.KeyOrderItems, len(param.Items)).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "validating checkout request").Logger()
	logger.Info().Msg("validating checkout request")
	err := svc.validate(c, param)
	if err != nil {
		metric.OrderFailures.WithLabelValues("validation").Inc()
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.CreateOrder{}, err
	}
	logger.Info().Msg("validated checkout request")

	submittedAt := svc.now()
	number := orderNumber(submittedAt)
	logger = logger.With().
		Str(log.KeyProcess, "inserting order").
		Str(log.KeyOrderNumber, number).
		Logger()

	logger.Info().Msg("inserting order")
	order, err := svc.store.InsertOrder(c, repository.InsertOrderParams{
		OrderNumber:     number,
		CustomerName:    customerName(param.FirstName, param.LastName),
		CustomerEmail:   param.Email,
		CustomerPhone:   param.Phone,
		DeliveryAddress: deliveryAddress(param.Address, param.City, param.ZipCode),
		TotalAmount:     repository.NumericFromDecimal(param.Total),
		Status:          "pending",
	})
	if err != nil {
		err = fmt.Errorf("failed inserting order with error=%w", err)
		metric.OrderFailures.WithLabelValues("order_insert").Inc()
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.CreateOrder{}, err
	}
	logger = logger.With().Str(log.KeyOrderID, order.ID.String()).Logger()
	logger.Info().Msg("inserted order")

	logger = logger.With().Str(log.KeyProcess, "inserting order items").Logger()
	logger.Info().Msg("preparing order items")
	args := make([]repository.InsertOrderItemParams, len(param.Items))
	for i, item := range param.Items {
		resolved := ResolveProductID(item.ID)
		if !IsRecognizedProductID(item.ID) {
			logger.Warn().
				Str(log.KeyProductID, item.ID).
				Msg("unrecognized product identifier format, passing through unchanged")
		}
		args[i] = repository.InsertOrderItemParams{
			OrderID:         order.ID,
			ProductID:       resolved,
			Quantity:        item.Quantity,
			PriceAtPurchase: repository.NumericFromDecimal(item.Price),
		}
	}
	logger.Info().Msg("prepared order items")

	logger.Info().Msg("inserting order items")
	inserted, err := svc.store.InsertOrderItems(c, args)
	if err != nil {
		err = fmt.Errorf("failed inserting order items with error=%w", err)
		metric.OrderFailures.WithLabelValues("order_items_insert").Inc()
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())

		logger = logger.With().Str(log.KeyProcess, "compensating order insert").Logger()
		logger.Info().Msg("deleting order without line items")
		span.AddEvent("compensating order insert")
		metric.OrderCompensations.Inc()
		if delErr := svc.store.DeleteOrder(c, order.ID); delErr != nil {
			delErr = fmt.Errorf("failed deleting order during compensation with error=%w", delErr)
			inOtel.RecordError(delErr, span)
			logger.Error().Err(delErr).Msg(delErr.Error())
		} else {
			logger.Info().Msg("deleted order without line items")
		}

		return response.CreateOrder{}, err
	}
	logger.Info().Msgf("inserted order items count=%d", inserted)

	metric.OrdersCreated.Inc()
	return response.CreateOrder{
		Success:     true,
		OrderNumber: number,
		OrderId:     order.ID,
		ItemsCount:  len(args),
	}, nil
}

func (svc *OrderService) validate(c context.Context, param request.CreateOrder) error {
	if len(param.Items) == 0 {
		return inErrors.ErrCartEmpty
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	err := validate.StructCtx(c, param)
	if err != nil {
		return fmt.Errorf("%w with error=%s", inErrors.ErrMissingFields, err.Error())
	}
	return nil
}

func (svc *OrderService) FindOrderById(
	c context.Context,
	orderId uuid.UUID,
) (response.Order, error) {
	c, span := otel.Tracer.Start(c, "OrderService FindOrderById")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderService FindOrderById").
		Str(log.KeyOrderID, orderId.String()).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding order by id").Logger()
	logger.Info().Msg("finding order by id")
	order, err := svc.store.FindOrderById(c, orderId)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = fmt.Errorf("%w: id=%s", inErrors.ErrOrderNotFound, orderId)
		} else {
			err = fmt.Errorf("failed finding order by id=%s with error=%w", orderId, err)
		}
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger.Info().Msg("found order by id")

	logger = logger.With().Str(log.KeyProcess, "finding order items").Logger()
	logger.Info().Msg("finding order items")
	items, err := svc.store.FindOrderItemsByOrderId(c, orderId)
	if err != nil {
		err = fmt.Errorf("failed finding order items by orderId=%s with error=%w", orderId, err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger.Info().Msgf("found order items count=%d", len(items))

	orderItems := make([]response.OrderItem, 0, len(items))
	for _, item := range items {
		orderItems = append(orderItems, response.OrderItem{
			ID:              item.ID,
			OrderId:         item.OrderID,
			ProductId:       item.ProductID,
			Quantity:        item.Quantity,
			PriceAtPurchase: repository.DecimalFromNumeric(item.PriceAtPurchase),
		})
	}
	return response.Order{
		ID:              order.ID,
		OrderNumber:     order.OrderNumber,
		CustomerName:    order.CustomerName,
		CustomerEmail:   order.CustomerEmail,
		CustomerPhone:   order.CustomerPhone,
		DeliveryAddress: order.DeliveryAddress,
		TotalAmount:     repository.DecimalFromNumeric(order.TotalAmount),
		Status:          order.Status,
		OrderItems:      orderItems,
		CreatedAt:       order.CreatedAt.Time,
	}, nil
}
