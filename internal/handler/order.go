package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"tableorders/internal/model"
	"tableorders/internal/service"
)

// OrderStore is the slice of the order service the handlers need.
type OrderStore interface {
	Create(ctx context.Context, tableNumber int, item string) (model.Order, error)
	ListByTable(ctx context.Context, tableNumber int) ([]model.Order, error)
	GetOne(ctx context.Context, tableNumber int, id int64) (model.Order, error)
	Delete(ctx context.Context, id int64) error
}

type createOrderRequest struct {
	TableNumber *int    `json:"table_number"`
	Item        *string `json:"item"`
}

func CreateOrderHandler(store OrderStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON body", http.StatusBadRequest)
			return
		}
		if req.TableNumber == nil || req.Item == nil {
			http.Error(w, "table_number and item are required", http.StatusBadRequest)
			return
		}

		order, err := store.Create(r.Context(), *req.TableNumber, *req.Item)
		if err != nil {
			slog.Error("order create failed", "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		writeJSON(w, order)
	}
}

func ListTableOrdersHandler(store OrderStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tableNumber, err := strconv.Atoi(chi.URLParam(r, "tableNumber"))
		if err != nil {
			// A non-integer segment names no known resource.
			notFound(w)
			return
		}

		orders, err := store.ListByTable(r.Context(), tableNumber)
		if err != nil {
			slog.Error("order list failed", "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		writeJSON(w, orders)
	}
}

func GetOrderHandler(store OrderStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tableNumber, err := strconv.Atoi(r.URL.Query().Get("table_number"))
		if err != nil {
			http.Error(w, "table_number query parameter must be an integer", http.StatusBadRequest)
			return
		}
		orderID, err := strconv.ParseInt(r.URL.Query().Get("order_id"), 10, 64)
		if err != nil {
			http.Error(w, "order_id query parameter must be an integer", http.StatusBadRequest)
			return
		}

		order, err := store.GetOne(r.Context(), tableNumber, orderID)
		if err != nil {
			if errors.Is(err, service.ErrOrderNotFound) {
				http.Error(w, "Order not found", http.StatusNotFound)
				return
			}
			slog.Error("order get failed", "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		writeJSON(w, order)
	}
}

func RemoveOrderHandler(store OrderStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, err := strconv.ParseInt(chi.URLParam(r, "orderID"), 10, 64)
		if err != nil {
			notFound(w)
			return
		}

		if err := store.Delete(r.Context(), orderID); err != nil {
			slog.Error("order delete failed", "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("Order removed successfully"))
	}
}

// NotFoundHandler is the catch-all for every method+path combination that
// matches no registered route.
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		notFound(w)
	}
}

func notFound(w http.ResponseWriter) {
	http.Error(w, "404 Not Found: The requested resource does not exist.", http.StatusNotFound)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "encode error", http.StatusInternalServerError)
	}
}
