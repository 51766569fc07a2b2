package features

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/saasfoundry/controlplane/pkg/logger"
)

// featuresResponse is the payload of a successful evaluation.
type featuresResponse struct {
	FullName string   `json:"fullname"`
	Tenant   string   `json:"tenant"`
	Tier     string   `json:"tier"`
	Features []string `json:"features"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// Handler exposes feature evaluation over HTTP.
type Handler struct {
	svc *Service
	log *slog.Logger
}

// NewHandler returns a Handler for the given service.
func NewHandler(svc *Service, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{svc: svc, log: log.With(logger.Component("features"))}
}

// Router mounts the feature evaluation endpoint with its CORS policy and
// identity middleware.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet},
		AllowedHeaders: []string{"Authorization"},
	}))
	r.Use(IdentityMiddleware)
	r.Get("/", h.getFeatures)
	return r
}

func (h *Handler) getFeatures(w http.ResponseWriter, r *http.Request) {
	id, ok := IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Message: "missing tenant identity"})
		return
	}

	log := h.log.With(logger.TenantID(id.TenantID))

	enabled, err := h.svc.EnabledFeatures(r.Context(), id.Tier)
	if err != nil {
		log.ErrorContext(r.Context(), "feature evaluation failed",
			logger.Operation("get_features"),
			logger.Error(err),
		)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "unable to evaluate features"})
		return
	}

	log.InfoContext(r.Context(), "enabled features resolved",
		slog.Any("features", enabled),
	)
	writeJSON(w, http.StatusOK, featuresResponse{
		FullName: id.FullName,
		Tenant:   id.TenantName,
		Tier:     id.Tier,
		Features: enabled,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
