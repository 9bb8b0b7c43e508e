package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"tableorders/internal/handler"
)

// New builds the route table. Dispatch is declarative: four registered
// routes plus the catch-all, which also covers known paths hit with the
// wrong method. Non-integer path segments (e.g. /orders/not-a-number)
// resolve to the same not-found response.
func New(store handler.OrderStore) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Post("/orders", handler.CreateOrderHandler(store))
	r.Get("/orders", handler.GetOrderHandler(store))
	r.Get("/orders/{tableNumber}", handler.ListTableOrdersHandler(store))
	r.Delete("/orders/{orderID}", handler.RemoveOrderHandler(store))

	r.NotFound(handler.NotFoundHandler())
	r.MethodNotAllowed(handler.NotFoundHandler())

	return r
}
