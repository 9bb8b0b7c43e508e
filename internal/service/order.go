package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tableorders/internal/model"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderService owns all reads and writes against the orders table.
// Consistency for concurrent access is delegated to the database; every
// operation is a single statement.
type OrderService struct {
	db       *sql.DB
	cookTime CookTimer
}

func NewOrderService(db *sql.DB, cookTime CookTimer) *OrderService {
	return &OrderService{db: db, cookTime: cookTime}
}

// Create inserts a new order with a freshly drawn cook time and returns it
// with the database-assigned id. Either the row exists and the full order is
// returned, or nothing at all was inserted.
func (s *OrderService) Create(ctx context.Context, tableNumber int, item string) (model.Order, error) {
	cookTime := s.cookTime()

	var id int64
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO orders (table_number, item, cook_time) VALUES ($1, $2, $3) RETURNING id`,
		tableNumber, item, cookTime,
	).Scan(&id)
	if err != nil {
		return model.Order{}, fmt.Errorf("insert order: %w", err)
	}

	return model.Order{
		ID:          &id,
		TableNumber: tableNumber,
		Item:        item,
		CookTime:    cookTime,
	}, nil
}

// ListByTable returns every order for the table in ascending id order.
// An unknown table yields an empty slice, not an error.
func (s *OrderService) ListByTable(ctx context.Context, tableNumber int) ([]model.Order, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, table_number, item, cook_time
		FROM orders
		WHERE table_number = $1
		ORDER BY id ASC
	`, tableNumber)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	orders := make([]model.Order, 0)
	for rows.Next() {
		var o model.Order
		var id int64
		if err := rows.Scan(&id, &o.TableNumber, &o.Item, &o.CookTime); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		o.ID = &id
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return orders, nil
}

// GetOne returns the order matching both id and table number, or
// ErrOrderNotFound when no row satisfies both predicates.
func (s *OrderService) GetOne(ctx context.Context, tableNumber int, id int64) (model.Order, error) {
	var o model.Order
	var rowID int64
	err := s.db.QueryRowContext(ctx, `
		SELECT id, table_number, item, cook_time
		FROM orders
		WHERE id = $1 AND table_number = $2
	`, id, tableNumber).Scan(&rowID, &o.TableNumber, &o.Item, &o.CookTime)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Order{}, ErrOrderNotFound
		}
		return model.Order{}, fmt.Errorf("query order: %w", err)
	}
	o.ID = &rowID

	return o, nil
}

// Delete removes the order with the given id. Deleting an id that does not
// exist is not an error; the operation is idempotent.
func (s *OrderService) Delete(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}
