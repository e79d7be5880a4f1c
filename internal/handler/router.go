package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shoplist/shoplist-go/internal/middleware"
)

// NewRouter assembles the full route table. Everything under
// /shoppinglists/ plus the password change endpoint sits behind the
// bearer-token gate; registration, login and reset do not.
func NewRouter(jwtSecret string, auth *AuthHandler, lists *ListHandler, items *ItemHandler) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, messageResponse("Page not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, messageResponse("Method not allowed"))
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Post("/auth/register", auth.HandleRegister)
	r.Post("/auth/login", auth.HandleLogin)
	r.Put("/auth/passreset", auth.HandleResetPassword)

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(jwtSecret))

		r.Put("/auth/ccpas", auth.HandleChangePassword)

		r.Get("/shoppinglists/", lists.HandleBrowse)
		r.Post("/shoppinglists/", lists.HandleCreate)
		r.Get("/shoppinglists/{id}", lists.HandleGet)
		r.Put("/shoppinglists/{id}", lists.HandleUpdate)
		r.Delete("/shoppinglists/{id}", lists.HandleDelete)

		r.Get("/shoppinglists/{id}/items/", items.HandleList)
		r.Post("/shoppinglists/{id}/items/", items.HandleCreate)
		r.Get("/shoppinglists/items/{id}", items.HandleGet)
		r.Put("/shoppinglists/items/{id}", items.HandleUpdate)
		r.Delete("/shoppinglists/items/{id}", items.HandleDelete)
	})

	return r
}
