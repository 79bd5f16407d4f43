package api

import (
	"log/slog"
	"net/http"

	"github.com/pacificaway/pacificaway-api/internal/api/shared"
	"github.com/pacificaway/pacificaway-api/internal/service"
)

// ItemHandler serves /items.
type ItemHandler struct {
	catalog service.CatalogService
	logger  *slog.Logger
}

// NewItemHandler creates an ItemHandler.
func NewItemHandler(catalog service.CatalogService, logger *slog.Logger) *ItemHandler {
	if logger == nil {
		panic("logger cannot be nil for ItemHandler")
	}
	return &ItemHandler{catalog: catalog, logger: logger.With("component", "item_handler")}
}

// List handles GET /items.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.ListItems(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, ResourceItem, "Failed to list items")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, shared.Envelope{"items": items})
}

// Create handles POST /items.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	providerID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	var req ItemRequest
	if !decodeBody(w, r, &req) {
		return
	}

	item, err := h.catalog.CreateItem(r.Context(), providerID, service.ItemInput(req))
	if err != nil {
		HandleAPIError(w, r, err, ResourceItem, "Failed to create item")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, shared.Envelope{"item": item})
}

// Update handles PATCH /items/{id}.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	providerID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	var req ItemRequest
	if !decodeBody(w, r, &req) {
		return
	}
	id, ok := pathID(w, r, ResourceItem)
	if !ok {
		return
	}

	item, err := h.catalog.UpdateItem(r.Context(), id, providerID, service.ItemInput(req))
	if err != nil {
		HandleAPIError(w, r, err, ResourceItem, "Failed to update item")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, shared.Envelope{"item": item})
}

// Delete handles DELETE /items/{id}.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	providerID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, ResourceItem)
	if !ok {
		return
	}

	if err := h.catalog.DeleteItem(r.Context(), id, providerID); err != nil {
		HandleAPIError(w, r, err, ResourceItem, "Failed to delete item")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, shared.Envelope{"deleted": id})
}
