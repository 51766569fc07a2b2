package registration

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/saasfoundry/controlplane/pkg/logger"
)

type messageResponse struct {
	Message string `json:"message"`
}

// Handler exposes tenant registration over HTTP. The endpoint is
// unauthenticated; prospective tenants have no identity yet.
type Handler struct {
	svc *Service
	log *slog.Logger
}

// NewHandler returns a Handler for the given service.
func NewHandler(svc *Service, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{svc: svc, log: log.With(logger.Component("registration"))}
}

// Router mounts the registration endpoint with its CORS policy.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	}))
	r.Post("/", h.register)
	return r
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var reg Registration
	if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
		h.log.ErrorContext(r.Context(), "unreadable registration request", logger.Error(err))
		writeJSON(w, http.StatusInternalServerError, messageResponse{
			Message: fmt.Sprintf("An error occurred: %v", err),
		})
		return
	}

	tenantID, err := h.svc.Register(r.Context(), reg)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, messageResponse{
			Message: fmt.Sprintf("An error occurred: %v", err),
		})
		return
	}

	h.log.InfoContext(r.Context(), "registration completed", logger.TenantID(tenantID))
	writeJSON(w, http.StatusOK, messageResponse{
		Message: fmt.Sprintf("User registered successfully. Please check your email at %s for the password.", reg.Email),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
