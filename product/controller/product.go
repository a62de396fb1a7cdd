package controller

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/freshcart/freshcart/internal/constants"
	inErrors "github.com/freshcart/freshcart/internal/errors"
	inHttp "github.com/freshcart/freshcart/internal/http"
	"github.com/freshcart/freshcart/internal/log"
	inOtel "github.com/freshcart/freshcart/internal/otel"
	"github.com/freshcart/freshcart/product/otel"
	"github.com/freshcart/freshcart/product/service"
)

type ProductController struct {
	service    *service.ProductService
	seeder     *service.SeedService
	pool       *pgxpool.Pool
	seedSecret string
	startedAt  time.Time
}

func AttachProductController(
	router *mux.Router,
	productService *service.ProductService,
	seeder *service.SeedService,
	pool *pgxpool.Pool,
	seedSecret string,
) {
	controller := ProductController{
		service:    productService,
		seeder:     seeder,
		pool:       pool,
		seedSecret: seedSecret,
		startedAt:  time.Now(),
	}

	router.HandleFunc("/products", controller.FindProducts).Methods(http.MethodGet)
	router.HandleFunc("/products/{productId}", controller.FindProductById).Methods(http.MethodGet)
	router.HandleFunc("/categories", controller.FindCategories).Methods(http.MethodGet)
	router.HandleFunc("/admin/seed", controller.Seed).Methods(http.MethodPost)
	router.HandleFunc("/healthz", controller.Health).Methods(http.MethodGet)
}

func (ctrl *ProductController) FindProducts(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "ProductController FindProducts")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ProductController FindProducts").
		Logger()

	categoryId := uuid.NullUUID{}
	if raw := r.URL.Query().Get("category"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			err = fmt.Errorf("failed validating category=%s with error=%w", raw, err)
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			inHttp.WriteErrorResponse(c, w, http.StatusBadRequest, "Invalid category id")
			return
		}
		categoryId = uuid.NullUUID{UUID: parsed, Valid: true}
	}

	c = logger.WithContext(c)
	products, err := ctrl.service.FindProducts(c, categoryId)
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteErrorResponse(c, w, http.StatusInternalServerError, "Failed to fetch products")
		return
	}

	inHttp.WriteJsonResponse(c, w, http.StatusOK, map[string]interface{}{"products": products})
}

func (ctrl *ProductController) FindProductById(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "ProductController FindProductById")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ProductController FindProductById").
		Logger()

	productId, err := uuid.Parse(mux.Vars(r)["productId"])
	if err != nil {
		err = fmt.Errorf("failed validating productId with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteErrorResponse(c, w, http.StatusBadRequest, "Invalid product id")
		return
	}

	c = logger.WithContext(c)
	product, err := ctrl.service.FindProductById(c, productId)
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		if errors.Is(err, inErrors.ErrProductNotFound) {
			inHttp.WriteErrorResponse(
				c,
				w,
				http.StatusNotFound,
				fmt.Sprintf("product with id=%s not found", productId),
			)
			return
		}
		inHttp.WriteErrorResponse(c, w, http.StatusInternalServerError, "Failed to fetch product")
		return
	}

	inHttp.WriteJsonResponse(c, w, http.StatusOK, product)
}

func (ctrl *ProductController) FindCategories(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "ProductController FindCategories")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ProductController FindCategories").
		Logger()

	c = logger.WithContext(c)
	categories, err := ctrl.service.FindCategories(c)
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteErrorResponse(c, w, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}

	inHttp.WriteJsonResponse(c, w, http.StatusOK, map[string]interface{}{"categories": categories})
}

// Seed reseeds the catalog. Gated by a shared secret header so only the
// operator can trigger it; disabled entirely when no secret is
// configured.
func (ctrl *ProductController) Seed(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "ProductController Seed")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ProductController Seed").
		Logger()

	if ctrl.seedSecret == "" {
		logger.Error().Msg("seed secret not configured")
		inHttp.WriteErrorResponse(c, w, http.StatusServiceUnavailable, "Seed endpoint not available")
		return
	}

	provided := r.Header.Get(constants.HeaderSeedSecret)
	if subtle.ConstantTimeCompare([]byte(provided), []byte(ctrl.seedSecret)) != 1 {
		logger.Warn().Msg("unauthorized seed attempt")
		inHttp.WriteErrorResponse(c, w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	logger = logger.With().Str(log.KeyProcess, "seeding database").Logger()
	logger.Info().Msg("seeding database")
	c = logger.WithContext(c)
	err := ctrl.seeder.ForceSeed(c)
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteErrorResponse(c, w, http.StatusInternalServerError, "Failed to seed database")
		return
	}
	logger.Info().Msg("seeded database")

	inHttp.WriteJsonResponse(c, w, http.StatusOK, map[string]interface{}{
		"success": true,
		"seeding": ctrl.seeder.Status(),
	})
}

// Health reports database connectivity and catalog initialization for
// monitoring and deployment verification.
func (ctrl *ProductController) Health(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "ProductController Health")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ProductController Health").
		Logger()

	started := time.Now()
	health := map[string]interface{}{
		"status":    "ok",
		"timestamp": started.UTC().Format(time.RFC3339),
		"uptime":    time.Since(ctrl.startedAt).String(),
	}

	healthy := true
	err := ctrl.pool.Ping(c)
	if err != nil {
		err = fmt.Errorf("failed pinging database with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		healthy = false
		health["database"] = map[string]interface{}{
			"status":     "error",
			"accessible": false,
			"error":      err.Error(),
		}
	} else {
		health["database"] = map[string]interface{}{
			"status":     "connected",
			"accessible": true,
		}
	}

	c = logger.WithContext(c)
	err = ctrl.seeder.EnsureSeeded(c)
	if err != nil {
		healthy = false
		health["seeding"] = map[string]interface{}{
			"initialized": false,
			"error":       err.Error(),
		}
	} else {
		health["seeding"] = ctrl.seeder.Status()
	}

	statusCode := http.StatusOK
	if !healthy {
		health["status"] = "degraded"
		statusCode = http.StatusServiceUnavailable
	}
	health["responseTime"] = time.Since(started).String()

	inHttp.WriteJsonResponse(c, w, statusCode, health)
}
