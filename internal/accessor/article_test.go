package accessor

import (
	"database/sql"
	"testing"
	"time"

	"github.com/reactpress/reactpress/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newArticleRow() storage.ArticleRow {
	return storage.ArticleRow{
		ID:            1,
		Title:         "Hello world",
		Summary:       "First post",
		Content:       "Full body",
		Status:        "publish",
		Views:         10,
		Likes:         3,
		CategoryLabel: sql.NullString{String: "Tech", Valid: true},
		CategoryValue: sql.NullString{String: "tech", Valid: true},
		Tags:          []byte(`[{"label":"Go","value":"go"}]`),
		PublishedAt:   sql.NullTime{Time: time.Date(2024, 10, 12, 9, 30, 0, 0, time.UTC), Valid: true},
		CreatedAt:     time.Date(2024, 10, 11, 8, 0, 0, 0, time.UTC),
		UpdatedAt:     time.Date(2024, 10, 12, 9, 0, 0, 0, time.UTC),
	}
}

func TestArticleFromArticleRow(t *testing.T) {
	t.Run("maps aggregated tags", func(t *testing.T) {
		article, err := ArticleFromArticleRow(newArticleRow())
		require.NoError(t, err)

		require.Len(t, article.Tags, 1)
		assert.Equal(t, "Go", article.Tags[0].Label)
		assert.Equal(t, "go", article.Tags[0].Value)
		assert.Equal(t, "tech", article.CategoryValue)
		assert.Equal(t, "09:30 2024-10-12", article.PublishedAt)
	})

	t.Run("empty tag aggregate", func(t *testing.T) {
		row := newArticleRow()
		row.Tags = []byte(`[]`)

		article, err := ArticleFromArticleRow(row)
		require.NoError(t, err)
		assert.Empty(t, article.Tags)
	})

	t.Run("malformed tag aggregate", func(t *testing.T) {
		row := newArticleRow()
		row.Tags = []byte(`{broken`)

		_, err := ArticleFromArticleRow(row)
		assert.ErrorIs(t, err, ErrUnableGetArticle)
	})

	t.Run("protected article hides content", func(t *testing.T) {
		row := newArticleRow()
		row.Password = sql.NullString{String: "$2a$10$hash", Valid: true}

		article, err := ArticleFromArticleRow(row)
		require.NoError(t, err)
		assert.True(t, article.NeedPassword)
		assert.Empty(t, article.Content)
	})
}

func TestUnlockedArticleFromArticleRow(t *testing.T) {
	row := newArticleRow()
	row.Password = sql.NullString{String: "$2a$10$hash", Valid: true}

	article, err := UnlockedArticleFromArticleRow(row)
	require.NoError(t, err)
	assert.True(t, article.NeedPassword)
	assert.Equal(t, "Full body", article.Content)
}

func TestArchivesFromArchiveRows(t *testing.T) {
	entries := ArchivesFromArchiveRows([]storage.ArticleArchiveRow{
		{Year: 2024, Month: 10, ID: 1, Title: "Hello world"},
		{Year: 2024, Month: 9, ID: 2, Title: "Older"},
	})

	require.Len(t, entries, 2)
	assert.Equal(t, 10, entries[0].Month)
	assert.Equal(t, "Older", entries[1].Title)
}
