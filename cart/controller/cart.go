package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/freshcart/freshcart/cart/otel"
	"github.com/freshcart/freshcart/cart/service"
	"github.com/freshcart/freshcart/cart/pkg/request"
	"github.com/freshcart/freshcart/internal/constants"
	inHttp "github.com/freshcart/freshcart/internal/http"
	"github.com/freshcart/freshcart/internal/log"
	inOtel "github.com/freshcart/freshcart/internal/otel"
)

type CartController struct {
	service *service.CartService
}

func AttachCartController(mux *mux.Router, service *service.CartService) {
	controller := CartController{service: service}

	router := mux.PathPrefix("/carts").Subrouter()
	router.HandleFunc("", controller.GetCart).Methods(http.MethodGet)
	router.HandleFunc("", controller.ClearCart).Methods(http.MethodDelete)
	router.HandleFunc("/items", controller.AddItem).Methods(http.MethodPost)
	router.HandleFunc("/items/{productId}", controller.UpdateQuantity).Methods(http.MethodPut)
	router.HandleFunc("/items/{productId}", controller.RemoveItem).Methods(http.MethodDelete)
}

// session returns the cart session id from the request cookie, minting a
// new one when absent.
func session(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie(constants.SessionCookie)
	if err == nil && cookie.Value != "" {
		return cookie.Value
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     constants.SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

func (ctrl *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CartController GetCart")
	defer span.End()

	cart := ctrl.service.GetCart(c, session(w, r))
	inHttp.WriteJsonResponse(c, w, http.StatusOK, cart)
}

func (ctrl *CartController) AddItem(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CartController AddItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartController AddItem").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "decoding request body").Logger()
	logger.Info().Msg("decoding request body")
	param := request.AddItem{}
	err := json.NewDecoder(r.Body).Decode(&param)
	if err != nil {
		err = fmt.Errorf("failed decoding request body with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteErrorResponse(c, w, http.StatusBadRequest, "request body is invalid")
		return
	}
	logger.Info().Msg("decoded request body")

	logger = logger.With().Str(log.KeyProcess, "validating request body").Logger()
	logger.Info().Msg("validating request body")
	validate := validator.New(validator.WithRequiredStructEnabled())
	err = validate.StructCtx(c, param)
	if err != nil {
		err = fmt.Errorf("failed validating request body with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteErrorResponse(c, w, http.StatusBadRequest, "request body is invalid")
		return
	}
	logger.Info().Msg("validated request body")

	c = logger.WithContext(c)
	cart := ctrl.service.AddItem(c, session(w, r), param)
	inHttp.WriteJsonResponse(c, w, http.StatusOK, cart)
}

func (ctrl *CartController) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CartController UpdateQuantity")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartController UpdateQuantity").
		Logger()

	productId := mux.Vars(r)["productId"]

	logger = logger.With().Str(log.KeyProcess, "decoding request body").Logger()
	logger.Info().Msg("decoding request body")
	param := request.UpdateQuantity{}
	err := json.NewDecoder(r.Body).Decode(&param)
	if err != nil {
		err = fmt.Errorf("failed decoding request body with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteErrorResponse(c, w, http.StatusBadRequest, "request body is invalid")
		return
	}
	logger.Info().Msg("decoded request body")

	c = logger.WithContext(c)
	cart := ctrl.service.UpdateQuantity(c, session(w, r), productId, param.Quantity)
	inHttp.WriteJsonResponse(c, w, http.StatusOK, cart)
}

func (ctrl *CartController) RemoveItem(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CartController RemoveItem")
	defer span.End()

	productId := mux.Vars(r)["productId"]
	cart := ctrl.service.RemoveItem(c, session(w, r), productId)
	inHttp.WriteJsonResponse(c, w, http.StatusOK, cart)
}

func (ctrl *CartController) ClearCart(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CartController ClearCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartController ClearCart").
		Logger()

	c = logger.WithContext(c)
	err := ctrl.service.ClearCart(c, session(w, r))
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteErrorResponse(c, w, http.StatusInternalServerError, "failed clearing cart")
		return
	}
	inHttp.WriteJsonResponse(c, w, http.StatusOK, ctrl.service.GetCart(c, session(w, r)))
}
