package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/shoplist/shoplist-go/internal/middleware"
	"github.com/shoplist/shoplist-go/internal/model"
	"github.com/shoplist/shoplist-go/internal/service"
)

// ItemHandler handles HTTP requests for shopping list item operations.
type ItemHandler struct {
	service *service.ItemService
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(svc *service.ItemService) *ItemHandler {
	return &ItemHandler{service: svc}
}

// HandleCreate handles POST /shoppinglists/{id}/items/ requests.
func (h *ItemHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, messageResponse("unauthorized"))
		return
	}

	listID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req model.ItemRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Create(r.Context(), userID, listID, req.Name)
	if err != nil {
		writeItemError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleList handles GET /shoppinglists/{id}/items/ requests.
func (h *ItemHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, messageResponse("unauthorized"))
		return
	}

	listID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	items, err := h.service.List(r.Context(), userID, listID)
	if err != nil {
		writeItemError(w, err)
		return
	}

	// An empty list is informational, not an error.
	if len(items) == 0 {
		writeJSON(w, http.StatusOK, messageResponse("no items in this shopping list"))
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// HandleGet handles GET /shoppinglists/items/{id} requests.
func (h *ItemHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, messageResponse("unauthorized"))
		return
	}

	itemID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	resp, err := h.service.Get(r.Context(), userID, itemID)
	if err != nil {
		writeItemError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleUpdate handles PUT /shoppinglists/items/{id} requests.
func (h *ItemHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, messageResponse("unauthorized"))
		return
	}

	itemID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req model.ItemRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Update(r.Context(), userID, itemID, req.Name)
	if err != nil {
		writeItemError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleDelete handles DELETE /shoppinglists/items/{id} requests.
func (h *ItemHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, messageResponse("unauthorized"))
		return
	}

	itemID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), userID, itemID); err != nil {
		writeItemError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse(fmt.Sprintf("item %d deleted", itemID)))
}

// writeItemError maps item service errors onto status codes. Parent list
// resolution can surface the list service's ownership errors.
func writeItemError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNameEmpty), errors.Is(err, service.ErrNameInvalid):
		writeJSON(w, http.StatusBadRequest, messageResponse(err.Error()))
	case errors.Is(err, service.ErrListNotFound), errors.Is(err, service.ErrItemNotFound):
		writeJSON(w, http.StatusNotFound, messageResponse(err.Error()))
	case errors.Is(err, service.ErrNoPermission):
		writeJSON(w, http.StatusForbidden, messageResponse(err.Error()))
	case errors.Is(err, service.ErrDuplicateItem):
		writeJSON(w, http.StatusConflict, messageResponse(err.Error()))
	default:
		writeJSON(w, http.StatusInternalServerError, messageResponse("internal server error"))
	}
}
