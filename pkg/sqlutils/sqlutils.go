package sqlutils

import (
	"database/sql"
	"time"
)

var nullTime = time.Time{}

func GetNullableSqlTime(u time.Time) sql.NullTime {
	if nullTime.Equal(u) {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: u, Valid: true}
}

func GetNullableSqlString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}

func GetNullableSqlInt64(i int64) sql.NullInt64 {
	if i == 0 {
		return sql.NullInt64{Valid: false}
	}
	return sql.NullInt64{Int64: i, Valid: true}
}
