package database

import (
	"database/sql"
	"fmt"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS orders (
    id BIGSERIAL PRIMARY KEY,
    table_number INTEGER NOT NULL,
    item TEXT NOT NULL,
    cook_time INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_orders_table_number ON orders(table_number);
`

func InitSchema(db *sql.DB) error {
	_, err := db.Exec(schemaSQL)
	if err != nil {
		return fmt.Errorf("failed to init schema: %w", err)
	}
	return nil
}
