package api

import (
	"log/slog"
	"net/http"

	"github.com/pacificaway/pacificaway-api/internal/api/shared"
	"github.com/pacificaway/pacificaway-api/internal/domain"
	"github.com/pacificaway/pacificaway-api/internal/service"
)

// CategoryHandler serves /categories.
type CategoryHandler struct {
	categories service.CategoryService
	logger     *slog.Logger
}

// NewCategoryHandler creates a CategoryHandler.
func NewCategoryHandler(categories service.CategoryService, logger *slog.Logger) *CategoryHandler {
	if logger == nil {
		panic("logger cannot be nil for CategoryHandler")
	}
	return &CategoryHandler{categories: categories, logger: logger.With("component", "category_handler")}
}

// List handles GET /categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, ResourceCategory, "Failed to list categories")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, shared.Envelope{"categories": categories})
}

// Create handles POST /categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if !decodeBody(w, r, &req) {
		return
	}

	category, err := h.categories.Create(r.Context(), req.Name.Value(), req.Description.Ptr())
	if err != nil {
		HandleAPIError(w, r, err, ResourceCategory, "Failed to create category")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, shared.Envelope{"category": category})
}

// Update handles PATCH /categories/{id}.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if !decodeBody(w, r, &req) {
		return
	}
	changes, err := domain.CategoryChanges{
		Name:        req.Name,
		Description: req.Description,
	}.Normalize()
	if err != nil {
		HandleAPIError(w, r, err, ResourceCategory, "")
		return
	}
	id, ok := pathID(w, r, ResourceCategory)
	if !ok {
		return
	}

	category, err := h.categories.Update(r.Context(), id, changes)
	if err != nil {
		HandleAPIError(w, r, err, ResourceCategory, "Failed to update category")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, shared.Envelope{"category": category})
}

// Delete handles DELETE /categories/{id}.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, ResourceCategory)
	if !ok {
		return
	}
	if err := h.categories.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, ResourceCategory, "Failed to delete category")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, shared.Envelope{"deleted": id})
}
