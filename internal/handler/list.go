package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shoplist/shoplist-go/internal/middleware"
	"github.com/shoplist/shoplist-go/internal/model"
	"github.com/shoplist/shoplist-go/internal/service"
)

// ListHandler handles HTTP requests for shopping list operations.
type ListHandler struct {
	service *service.ListService
}

// NewListHandler creates a new ListHandler.
func NewListHandler(svc *service.ListService) *ListHandler {
	return &ListHandler{service: svc}
}

// HandleCreate handles POST /shoppinglists/ requests.
func (h *ListHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, messageResponse("unauthorized"))
		return
	}

	var req model.ListRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Create(r.Context(), userID, req.Name)
	if err != nil {
		writeListError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleBrowse handles GET /shoppinglists/ requests. With a q parameter
// it performs an unpaginated case-insensitive search; otherwise it
// returns one name-ordered page.
func (h *ListHandler) HandleBrowse(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, messageResponse("unauthorized"))
		return
	}

	if query := r.URL.Query().Get("q"); query != "" {
		results, err := h.service.Search(r.Context(), userID, query)
		if err != nil {
			if errors.Is(err, service.ErrNoMatchingList) {
				writeJSON(w, http.StatusNotFound, messageResponse(err.Error()))
				return
			}
			writeJSON(w, http.StatusInternalServerError, messageResponse("internal server error"))
			return
		}
		writeJSON(w, http.StatusOK, results)
		return
	}

	page := queryInt(r, "page", service.DefaultPage)
	limit := queryInt(r, "limit", service.DefaultLimit)

	resp, err := h.service.Page(r.Context(), userID, page, limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, messageResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleGet handles GET /shoppinglists/{id} requests.
func (h *ListHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, messageResponse("unauthorized"))
		return
	}

	listID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	resp, err := h.service.Get(r.Context(), userID, listID)
	if err != nil {
		writeListError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleUpdate handles PUT /shoppinglists/{id} requests.
func (h *ListHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, messageResponse("unauthorized"))
		return
	}

	listID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req model.ListRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Update(r.Context(), userID, listID, req.Name)
	if err != nil {
		writeListError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleDelete handles DELETE /shoppinglists/{id} requests.
func (h *ListHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, messageResponse("unauthorized"))
		return
	}

	listID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), userID, listID); err != nil {
		writeListError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse(fmt.Sprintf("shoppinglist %d deleted", listID)))
}

// writeListError maps list service errors onto status codes.
func writeListError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNameEmpty), errors.Is(err, service.ErrNameInvalid):
		writeJSON(w, http.StatusBadRequest, messageResponse(err.Error()))
	case errors.Is(err, service.ErrListNotFound):
		writeJSON(w, http.StatusNotFound, messageResponse(err.Error()))
	case errors.Is(err, service.ErrNoPermission):
		writeJSON(w, http.StatusForbidden, messageResponse(err.Error()))
	case errors.Is(err, service.ErrDuplicateList):
		writeJSON(w, http.StatusConflict, messageResponse(err.Error()))
	default:
		writeJSON(w, http.StatusInternalServerError, messageResponse("internal server error"))
	}
}

// pathID parses a numeric URL parameter, writing the error response
// itself when the value is not a valid id.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id < 1 {
		writeJSON(w, http.StatusBadRequest, messageResponse("invalid "+name))
		return 0, false
	}
	return id, true
}

// queryInt parses an optional positive integer query parameter, falling
// back to the default on absent or malformed values.
func queryInt(r *http.Request, name string, fallback int) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
