package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	domproduct "example.com/storeman/internal/domain/product"
	domstore "example.com/storeman/internal/domain/store"
	"example.com/storeman/internal/infra/logger"
	"example.com/storeman/internal/infra/metrics"
	"example.com/storeman/internal/infra/restapi"
	"example.com/storeman/internal/interface/render"
	productuc "example.com/storeman/internal/usecase/product"
	storeuc "example.com/storeman/internal/usecase/store"
)

var (
	errNoStoreSelected = errors.New("no store selected")
	errBadRequest      = errors.New("bad request")
)

type API struct {
	storeSvc   *storeuc.Service
	productSvc *productuc.Service
	renderer   *render.Renderer
	log        *zap.Logger
	metrics    *metrics.Metrics
	gatherer   prometheus.Gatherer
}

type Dependencies struct {
	StoreService   *storeuc.Service
	ProductService *productuc.Service
	Renderer       *render.Renderer
	Logger         *zap.Logger
	Metrics        *metrics.Metrics
	Gatherer       prometheus.Gatherer
}

func NewAPI(deps Dependencies) *API {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	renderer := deps.Renderer
	if renderer == nil {
		renderer = render.New("", 0)
	}
	return &API{
		storeSvc:   deps.StoreService,
		productSvc: deps.ProductService,
		renderer:   renderer,
		log:        log,
		metrics:    deps.Metrics,
		gatherer:   deps.Gatherer,
	}
}

func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(logger.Middleware(a.log))
	r.Use(chimw.Recoverer)
	r.Use(a.metrics.Middleware)
	r.Use(chimw.AllowContentType("application/json", "application/x-www-form-urlencoded", "multipart/form-data", "text/plain"))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if a.gatherer != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler(a.gatherer))
	}

	r.Get("/", a.handleIndex)
	r.Post("/events", a.handleEvent)

	r.Route("/stores", func(r chi.Router) {
		r.Post("/", a.handleCreateStore)

		r.Route("/{storeID}", func(r chi.Router) {
			r.Get("/", a.handleStoreDetail)
			r.Post("/delete", a.handleDeleteStore)

			r.Route("/products", func(r chi.Router) {
				r.Post("/", a.handleCreateProduct)
				r.Get("/{productID}", a.handleGetProduct)
				r.Put("/{productID}", a.handleUpdateProduct)
				r.Post("/{productID}", a.handleUpdateProduct)
				r.Post("/{productID}/delete", a.handleDeleteProduct)
			})
		})
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type errorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func respondError(w http.ResponseWriter, status int, err error) {
	resp := errorResponse{Error: err.Error()}
	var httpErr *restapi.HTTPError
	if errors.As(err, &httpErr) && len(httpErr.Payload) > 0 {
		if json.Valid(httpErr.Payload) {
			resp.Details = json.RawMessage(httpErr.Payload)
		} else {
			resp.Details = string(httpErr.Payload)
		}
	}
	writeJSON(w, status, resp)
}

// statusFor maps domain and upstream errors onto console status codes.
func statusFor(err error) int {
	var (
		httpErr      *restapi.HTTPError
		transportErr *restapi.TransportError
	)
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, errNoStoreSelected):
		return http.StatusBadRequest
	case errors.Is(err, domstore.ErrStoreNotFound),
		errors.Is(err, domproduct.ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, domstore.ErrStoreInvalid),
		errors.Is(err, domproduct.ErrProductInvalid),
		errors.Is(err, domproduct.ErrInvalidStatus):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domstore.ErrStoreDeleteFailed),
		errors.As(err, &httpErr),
		errors.As(err, &transportErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func handleDomainError(w http.ResponseWriter, err error) {
	respondError(w, statusFor(err), err)
}

// renderError answers page requests with the alert page and API-style
// requests with JSON.
func (a *API) renderError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.FromContext(r.Context()).Error("request failed", zap.Error(err), zap.Int("status", status))
	}
	if wantsJSON(r) {
		respondError(w, status, err)
		return
	}

	alert := render.Alert{Title: http.StatusText(status), Message: err.Error(), Back: "/"}
	var httpErr *restapi.HTTPError
	if errors.As(err, &httpErr) {
		alert.Detail = string(httpErr.Payload)
	}
	if errors.Is(err, domstore.ErrStoreDeleteFailed) {
		alert.Title = "Store deletion failed"
		alert.Message = "The store could not be deleted. Some of its data may already be gone; refresh to see what is left."
		alert.Detail = err.Error()
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := a.renderer.AlertPage(w, alert); err != nil {
		logger.FromContext(r.Context()).Error("render alert", zap.Error(err))
	}
}

func wantsJSON(r *http.Request) bool {
	return isJSON(r.Header.Get("Content-Type")) || isJSON(r.Header.Get("Accept"))
}
