package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	inErrors "github.com/freshcart/freshcart/internal/errors"
	inHttp "github.com/freshcart/freshcart/internal/http"
	"github.com/freshcart/freshcart/internal/log"
	inOtel "github.com/freshcart/freshcart/internal/otel"
	"github.com/freshcart/freshcart/order/otel"
	"github.com/freshcart/freshcart/order/service"
	"github.com/freshcart/freshcart/order/pkg/request"
)

type OrderController struct {
	service *service.OrderService
}

func AttachOrderController(mux *mux.Router, service *service.OrderService) {
	controller := OrderController{service: service}

	router := mux.PathPrefix("/orders").Subrouter()
	router.HandleFunc("", controller.CreateOrder).Methods(http.MethodPost)
	router.HandleFunc("/{orderId}", controller.FindOrderById).Methods(http.MethodGet)
}

func (ctrl *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "OrderController CreateOrder")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderController CreateOrder").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "decoding request body").Logger()
	logger.Info().Msg("decoding request body")
	param := request.CreateOrder{}
	err := json.NewDecoder(r.Body).Decode(&param)
	if err != nil {
		err = fmt.Errorf("failed decoding request body with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteErrorResponse(c, w, http.StatusBadRequest, "Invalid request body")
		return
	}
	logger.Info().Msg("decoded request body")

	logger = logger.With().Str(log.KeyProcess, "creating order").Logger()
	logger.Info().Msg("creating order")
	c = logger.WithContext(c)
	order, err := ctrl.service.CreateOrder(c, param)
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())

		statusCode := http.StatusInternalServerError
		message := "Failed to create order"
		switch {
		case errors.Is(err, inErrors.ErrCartEmpty):
			statusCode = http.StatusBadRequest
			message = "Cart is empty"
		case errors.Is(err, inErrors.ErrValidation):
			statusCode = http.StatusBadRequest
			message = "Missing required fields"
		}
		inHttp.WriteErrorResponse(c, w, statusCode, message)
		return
	}
	logger.Info().Str(log.KeyOrderNumber, order.OrderNumber).Msg("created order")

	inHttp.WriteJsonResponse(c, w, http.StatusCreated, order)
}

func (ctrl *OrderController) FindOrderById(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "OrderController FindOrderById")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderController FindOrderById").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "validating orderId").Logger()
	logger.Info().Msg("validating orderId")
	orderId, err := uuid.Parse(mux.Vars(r)["orderId"])
	if err != nil {
		err = fmt.Errorf("failed validating orderId with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteErrorResponse(c, w, http.StatusBadRequest, "Invalid order id")
		return
	}
	logger = logger.With().Str(log.KeyOrderID, orderId.String()).Logger()
	logger.Info().Msg("validated orderId")

	logger = logger.With().Str(log.KeyProcess, "finding order").Logger()
	logger.Info().Msg("finding order")
	c = logger.WithContext(c)
	order, err := ctrl.service.FindOrderById(c, orderId)
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		if errors.Is(err, inErrors.ErrOrderNotFound) {
			inHttp.WriteErrorResponse(
				c,
				w,
				http.StatusNotFound,
				fmt.Sprintf("order with id=%s not found", orderId),
			)
			return
		}
		inHttp.WriteErrorResponse(c, w, http.StatusInternalServerError, "Failed to fetch order")
		return
	}
	logger.Info().Msg("found order")

	inHttp.WriteJsonResponse(c, w, http.StatusOK, order)
}
