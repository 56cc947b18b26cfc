package sqlutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetNullableSqlTime(t *testing.T) {
	assert.False(t, GetNullableSqlTime(time.Time{}).Valid)

	moment := time.Date(2024, 10, 12, 0, 0, 0, 0, time.UTC)
	nullable := GetNullableSqlTime(moment)
	assert.True(t, nullable.Valid)
	assert.Equal(t, moment, nullable.Time)
}

func TestGetNullableSqlString(t *testing.T) {
	assert.False(t, GetNullableSqlString("").Valid)

	nullable := GetNullableSqlString("golang")
	assert.True(t, nullable.Valid)
	assert.Equal(t, "golang", nullable.String)
}

func TestGetNullableSqlInt64(t *testing.T) {
	assert.False(t, GetNullableSqlInt64(0).Valid)

	nullable := GetNullableSqlInt64(42)
	assert.True(t, nullable.Valid)
	assert.Equal(t, int64(42), nullable.Int64)
}
