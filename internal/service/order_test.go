package service_test

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"tableorders/internal/database"
	"tableorders/internal/service"
)

// openTestDB connects to the database named by TABLEORDERS_TEST_DATABASE_URI
// and resets the orders table. Tests are skipped when the variable is unset.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := os.Getenv("TABLEORDERS_TEST_DATABASE_URI")
	if dsn == "" {
		t.Skip("TABLEORDERS_TEST_DATABASE_URI not set")
	}

	db, err := database.NewDB(dsn)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	require.NoError(t, database.InitSchema(db))

	_, err = db.Exec("TRUNCATE orders RESTART IDENTITY")
	require.NoError(t, err)

	return db
}

func fixedCookTime(minutes int) service.CookTimer {
	return func() int { return minutes }
}

func TestOrderServiceCreate(t *testing.T) {
	db := openTestDB(t)
	svc := service.NewOrderService(db, fixedCookTime(7))
	ctx := context.Background()

	order, err := svc.Create(ctx, 1, "Pizza")
	require.NoError(t, err)
	require.NotNil(t, order.ID)
	require.Equal(t, 1, order.TableNumber)
	require.Equal(t, "Pizza", order.Item)
	require.Equal(t, 7, order.CookTime)

	got, err := svc.GetOne(ctx, 1, *order.ID)
	require.NoError(t, err)
	require.Equal(t, order, got)
}

func TestOrderServiceListByTable(t *testing.T) {
	db := openTestDB(t)
	svc := service.NewOrderService(db, fixedCookTime(12))
	ctx := context.Background()

	first, err := svc.Create(ctx, 3, "Burger")
	require.NoError(t, err)
	second, err := svc.Create(ctx, 3, "Fries")
	require.NoError(t, err)
	_, err = svc.Create(ctx, 4, "Sushi")
	require.NoError(t, err)

	orders, err := svc.ListByTable(ctx, 3)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	require.Equal(t, *first.ID, *orders[0].ID)
	require.Equal(t, *second.ID, *orders[1].ID)
	require.Equal(t, "Burger", orders[0].Item)
	require.Equal(t, "Fries", orders[1].Item)

	empty, err := svc.ListByTable(ctx, 99)
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestOrderServiceGetOneRequiresBothPredicates(t *testing.T) {
	db := openTestDB(t)
	svc := service.NewOrderService(db, fixedCookTime(5))
	ctx := context.Background()

	order, err := svc.Create(ctx, 2, "Sushi")
	require.NoError(t, err)

	_, err = svc.GetOne(ctx, 7, *order.ID)
	require.True(t, errors.Is(err, service.ErrOrderNotFound))

	_, err = svc.GetOne(ctx, 2, *order.ID+1000)
	require.True(t, errors.Is(err, service.ErrOrderNotFound))
}

func TestOrderServiceDeleteIdempotent(t *testing.T) {
	db := openTestDB(t)
	svc := service.NewOrderService(db, fixedCookTime(5))
	ctx := context.Background()

	order, err := svc.Create(ctx, 2, "Sushi")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, *order.ID))

	_, err = svc.GetOne(ctx, 2, *order.ID)
	require.True(t, errors.Is(err, service.ErrOrderNotFound))

	// Deleting the same id again still reports success.
	require.NoError(t, svc.Delete(ctx, *order.ID))
}
