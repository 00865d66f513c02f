package handler

import (
	"log/slog"
	"net/http"

	"sitenav/internal/domain"
	models "sitenav/internal/domain/models/navigation"
	"sitenav/internal/domain/services"
	"sitenav/internal/httputil"
)

// NavigationHandler handles HTTP requests for navigation hierarchies
type NavigationHandler struct {
	navService services.NavigationService
	logger     *slog.Logger
}

// NewNavigationHandler creates a new navigation handler
func NewNavigationHandler(navService services.NavigationService, logger *slog.Logger) *NavigationHandler {
	return &NavigationHandler{
		navService: navService,
		logger:     logger,
	}
}

// RegisterRoutes mounts the navigation API on mux
func (h *NavigationHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.HealthCheck)
	mux.HandleFunc("GET /api/navigation", h.GetHierarchy)
	mux.HandleFunc("GET /api/navigation/validate", h.Validate)
	mux.HandleFunc("GET /api/navigation/paths", h.GetPaths)
	mux.HandleFunc("GET /api/navigation/resolve", h.Resolve)
	mux.HandleFunc("POST /api/navigation/build", h.Build)
	mux.HandleFunc("POST /api/navigation/lint", h.Lint)
	mux.HandleFunc("POST /api/navigation/reload", h.Reload)
}

// HealthCheck reports that the server is up
func (h *NavigationHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// GetHierarchy returns the navigation tree for ?path= and ?locale=
func (h *NavigationHandler) GetHierarchy(w http.ResponseWriter, r *http.Request) {
	hierarchy, err := h.navService.Hierarchy(r.Context(), requestContext(r))
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, r, http.StatusOK, hierarchy)
}

// Validate returns the structural report for the served items
func (h *NavigationHandler) Validate(w http.ResponseWriter, r *http.Request) {
	report, err := h.navService.Validate(r.Context())
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, r, http.StatusOK, report)
}

// GetPaths returns the normalized path to item id map
func (h *NavigationHandler) GetPaths(w http.ResponseWriter, r *http.Request) {
	paths, err := h.navService.Paths(r.Context())
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, r, http.StatusOK, paths)
}

// Resolve returns the flat item that owns ?path=
func (h *NavigationHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		handleError(w, r, h.logger, &domain.ValidationError{Message: "path query parameter is required"})
		return
	}

	item, err := h.navService.Resolve(r.Context(), path)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, r, http.StatusOK, item)
}

// Build returns the hierarchy for items posted in the body.
// Malformed entries are dropped; a body that is not an array yields an
// empty hierarchy.
func (h *NavigationHandler) Build(w http.ResponseWriter, r *http.Request) {
	var raw any
	if err := httputil.ParseJSON(w, r, &raw); err != nil {
		handleError(w, r, h.logger, bodyError(err))
		return
	}

	httputil.RespondJSON(w, r, http.StatusOK, h.navService.BuildFrom(raw, requestContext(r)))
}

// Lint returns the structural report for items posted in the body
func (h *NavigationHandler) Lint(w http.ResponseWriter, r *http.Request) {
	var raw any
	if err := httputil.ParseJSON(w, r, &raw); err != nil {
		handleError(w, r, h.logger, bodyError(err))
		return
	}

	httputil.RespondJSON(w, r, http.StatusOK, h.navService.Lint(raw))
}

// Reload re-reads the item source. Admin only.
func (h *NavigationHandler) Reload(w http.ResponseWriter, r *http.Request) {
	if httputil.GetUserRole(r) != models.RoleAdmin {
		handleError(w, r, h.logger, &domain.ForbiddenError{Message: "reload requires the admin role"})
		return
	}

	report, err := h.navService.Reload(r.Context())
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	h.logger.Info("navigation reloaded via API",
		"user_id", httputil.GetUserID(r),
		"request_id", httputil.GetRequestID(r.Context()),
	)
	httputil.RespondJSON(w, r, http.StatusOK, report)
}

// requestContext maps query parameters and the caller's role onto a
// navigation context. Empty fields are filled in by the service.
func requestContext(r *http.Request) *models.Context {
	query := r.URL.Query()
	return &models.Context{
		CurrentPath: query.Get("path"),
		Locale:      query.Get("locale"),
		UserRole:    httputil.GetUserRole(r),
	}
}
