package sqlutil

import (
	"database/sql"
	"time"
)

// Helper functions for converting between Go values and sql.Null* types

// ToNullString maps the empty string to NULL
func ToNullString(val string) sql.NullString {
	if val == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: val, Valid: true}
}

// FromNullString maps NULL back to the empty string
func FromNullString(val sql.NullString) string {
	if !val.Valid {
		return ""
	}
	return val.String
}

// ToNullTime maps the zero time to NULL
func ToNullTime(val time.Time) sql.NullTime {
	if val.IsZero() {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: val, Valid: true}
}
