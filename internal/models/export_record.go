package models

import "time"

// ExportRecord is a row of the export_history table.
type ExportRecord struct {
	ExportID  string    `db:"export_id"`
	UserID    int64     `db:"user_id"`
	Username  string    `db:"username"`
	Kind      string    `db:"kind"`
	Format    string    `db:"format"`
	Filename  string    `db:"filename"`
	RowCount  int       `db:"row_count"`
	CreatedAt time.Time `db:"created_at"`
}
