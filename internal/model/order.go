package model

// Order is a single food request tied to a table. ID is nil until the
// database assigns it, and serializes as JSON null.
type Order struct {
	ID          *int64 `json:"id"`
	TableNumber int    `json:"table_number"`
	Item        string `json:"item"`
	CookTime    int    `json:"cook_time"` // minutes, 5..15
}
