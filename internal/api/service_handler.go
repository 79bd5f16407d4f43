package api

import (
	"log/slog"
	"net/http"

	"github.com/pacificaway/pacificaway-api/internal/api/shared"
	"github.com/pacificaway/pacificaway-api/internal/service"
)

// ServiceHandler serves /services.
type ServiceHandler struct {
	catalog service.CatalogService
	logger  *slog.Logger
}

// NewServiceHandler creates a ServiceHandler.
func NewServiceHandler(catalog service.CatalogService, logger *slog.Logger) *ServiceHandler {
	if logger == nil {
		panic("logger cannot be nil for ServiceHandler")
	}
	return &ServiceHandler{catalog: catalog, logger: logger.With("component", "service_handler")}
}

// List handles GET /services.
func (h *ServiceHandler) List(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalog.ListServices(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, ResourceService, "Failed to list services")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, shared.Envelope{"services": servicesToResponse(services)})
}

// Create handles POST /services.
func (h *ServiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	providerID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	var req ServiceRequest
	if !decodeBody(w, r, &req) {
		return
	}

	svc, err := h.catalog.CreateService(r.Context(), providerID, req.toInput())
	if err != nil {
		HandleAPIError(w, r, err, ResourceService, "Failed to create service")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, shared.Envelope{"service": serviceToResponse(*svc)})
}

// Update handles PATCH /services/{id}.
func (h *ServiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	providerID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	var req ServiceRequest
	if !decodeBody(w, r, &req) {
		return
	}
	in := req.toInput()
	if err := in.ValidateUpdate(); err != nil {
		HandleAPIError(w, r, err, ResourceService, "")
		return
	}
	id, ok := pathID(w, r, ResourceService)
	if !ok {
		return
	}

	svc, err := h.catalog.UpdateService(r.Context(), id, providerID, in)
	if err != nil {
		HandleAPIError(w, r, err, ResourceService, "Failed to update service")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, shared.Envelope{"service": serviceToResponse(*svc)})
}

// Delete handles DELETE /services/{id}.
func (h *ServiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	providerID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, ResourceService)
	if !ok {
		return
	}

	if err := h.catalog.DeleteService(r.Context(), id, providerID); err != nil {
		HandleAPIError(w, r, err, ResourceService, "Failed to delete service")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, shared.Envelope{"deleted": id})
}
