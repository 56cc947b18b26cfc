package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQueryString(t *testing.T) {
	t.Run("full timestamp", func(t *testing.T) {
		parsed, err := ParseQueryString("2024-10-12T10:01:30")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 10, 12, 10, 1, 30, 0, time.UTC), parsed)
	})

	t.Run("minute precision", func(t *testing.T) {
		parsed, err := ParseQueryString("2024-10-12T10:01")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 10, 12, 10, 1, 0, 0, time.UTC), parsed)
	})

	t.Run("date only", func(t *testing.T) {
		parsed, err := ParseQueryString("2024-10-12")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 10, 12, 0, 0, 0, 0, time.UTC), parsed)
	})

	t.Run("unsupported format", func(t *testing.T) {
		_, err := ParseQueryString("12/10/2024")
		assert.ErrorIs(t, err, ErrUnsupportedDateFormat)
	})
}

func TestStringRoundTrip(t *testing.T) {
	moment := time.Date(2024, 10, 12, 10, 1, 30, 0, time.UTC)

	parsed, err := ParseString(ToString(moment))
	require.NoError(t, err)
	assert.True(t, moment.Equal(parsed))
}

func TestPretify(t *testing.T) {
	moment := time.Date(2024, 10, 12, 10, 1, 30, 0, time.UTC)
	assert.Equal(t, "10:01 2024-10-12", Pretify(moment))
}
