package storage

import (
	"context"
	"database/sql"
	"time"
)

// ArticleRow carries an article with its category and a JSON array of
// attached tags, aggregated in SQL.
type ArticleRow struct {
	ID            int64
	Title         string
	Summary       string
	Content       string
	Cover         string
	Status        string
	Views         int32
	Likes         int32
	Password      sql.NullString
	IsRecommended bool
	IsCommentable bool
	CategoryLabel sql.NullString
	CategoryValue sql.NullString
	Tags          []byte
	PublishedAt   sql.NullTime
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

const articleColumns = `
    a.id, a.title, a.summary, a.content, a.cover, a.status,
    a.views, a.likes, a.password, a.is_recommended, a.is_commentable,
    c.label, c.value,
    (SELECT COALESCE(JSON_ARRAYAGG(JSON_OBJECT('label', t.label, 'value', t.value)), JSON_ARRAY())
       FROM article_tags at
       JOIN tags t ON t.id = at.tag_id
      WHERE at.article_id = a.id) AS tags,
    a.published_at, a.created_at, a.updated_at
`

func scanArticleRow(scanner interface{ Scan(...interface{}) error }) (ArticleRow, error) {
	var row ArticleRow
	err := scanner.Scan(
		&row.ID, &row.Title, &row.Summary, &row.Content, &row.Cover, &row.Status,
		&row.Views, &row.Likes, &row.Password, &row.IsRecommended, &row.IsCommentable,
		&row.CategoryLabel, &row.CategoryValue,
		&row.Tags,
		&row.PublishedAt, &row.CreatedAt, &row.UpdatedAt,
	)
	return row, err
}

const newArticle = `
INSERT INTO articles (title, summary, content, cover, status, password,
                      is_recommended, is_commentable, category_id, published_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

type NewArticleParams struct {
	Title         string
	Summary       string
	Content       string
	Cover         string
	Status        string
	Password      sql.NullString
	IsRecommended bool
	IsCommentable bool
	CategoryID    sql.NullInt64
	PublishedAt   sql.NullTime
}

func (q *Queries) NewArticle(ctx context.Context, params NewArticleParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, newArticle,
		params.Title, params.Summary, params.Content, params.Cover, params.Status,
		params.Password, params.IsRecommended, params.IsCommentable,
		params.CategoryID, params.PublishedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

const getArticleByID = `
SELECT ` + articleColumns + `
  FROM articles a
  LEFT JOIN categories c ON c.id = a.category_id
 WHERE a.id = ?
`

func (q *Queries) GetArticleByID(ctx context.Context, id int64) (ArticleRow, error) {
	return scanArticleRow(q.db.QueryRowContext(ctx, getArticleByID, id))
}

const articlesFilter = `
   (? = '' OR a.status = ?)
   AND (? = '' OR c.value = ?)
   AND (? = '' OR EXISTS (SELECT 1 FROM article_tags at2
                            JOIN tags t2 ON t2.id = at2.tag_id
                           WHERE at2.article_id = a.id AND t2.value = ?))
   AND (? = '' OR a.title LIKE CONCAT('%', ?, '%')
              OR a.summary LIKE CONCAT('%', ?, '%')
              OR a.content LIKE CONCAT('%', ?, '%'))
`

const articles = `
SELECT ` + articleColumns + `
  FROM articles a
  LEFT JOIN categories c ON c.id = a.category_id
 WHERE ` + articlesFilter + `
 ORDER BY
    CASE WHEN ? = 'oldest' THEN COALESCE(a.published_at, a.created_at) END ASC,
    CASE WHEN ? <> 'oldest' THEN COALESCE(a.published_at, a.created_at) END DESC
 LIMIT ? OFFSET ?
`

type ArticlesParams struct {
	Status         string
	CategoryValue  string
	TagValue       string
	Keyword        string
	ArticleSorting string
	PageSize       int64
	Page           int64
}

func (q *Queries) Articles(ctx context.Context, params ArticlesParams) ([]ArticleRow, error) {
	rows, err := q.db.QueryContext(ctx, articles,
		params.Status, params.Status,
		params.CategoryValue, params.CategoryValue,
		params.TagValue, params.TagValue,
		params.Keyword, params.Keyword, params.Keyword, params.Keyword,
		params.ArticleSorting, params.ArticleSorting,
		params.PageSize, params.Page,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []ArticleRow
	for rows.Next() {
		row, err := scanArticleRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

const getArticleCount = `
SELECT COUNT(*)
  FROM articles a
  LEFT JOIN categories c ON c.id = a.category_id
 WHERE ` + articlesFilter

type GetArticleCountParams struct {
	Status        string
	CategoryValue string
	TagValue      string
	Keyword       string
}

func (q *Queries) GetArticleCount(ctx context.Context, params GetArticleCountParams) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, getArticleCount,
		params.Status, params.Status,
		params.CategoryValue, params.CategoryValue,
		params.TagValue, params.TagValue,
		params.Keyword, params.Keyword, params.Keyword, params.Keyword,
	).Scan(&count)
	return count, err
}

const updateArticle = `
UPDATE articles
   SET title = ?, summary = ?, content = ?, cover = ?, status = ?,
       password = ?, is_recommended = ?, is_commentable = ?,
       category_id = ?, published_at = ?
 WHERE id = ?
`

type UpdateArticleParams struct {
	Title         string
	Summary       string
	Content       string
	Cover         string
	Status        string
	Password      sql.NullString
	IsRecommended bool
	IsCommentable bool
	CategoryID    sql.NullInt64
	PublishedAt   sql.NullTime
	ID            int64
}

func (q *Queries) UpdateArticle(ctx context.Context, params UpdateArticleParams) error {
	_, err := q.db.ExecContext(ctx, updateArticle,
		params.Title, params.Summary, params.Content, params.Cover, params.Status,
		params.Password, params.IsRecommended, params.IsCommentable,
		params.CategoryID, params.PublishedAt, params.ID,
	)
	return err
}

const deleteArticle = `DELETE FROM articles WHERE id = ?`

func (q *Queries) DeleteArticle(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteArticle, id)
	return err
}

const incrementArticleViews = `UPDATE articles SET views = views + ? WHERE id = ?`

type IncrementArticleViewsParams struct {
	Delta int64
	ID    int64
}

func (q *Queries) IncrementArticleViews(ctx context.Context, params IncrementArticleViewsParams) error {
	_, err := q.db.ExecContext(ctx, incrementArticleViews, params.Delta, params.ID)
	return err
}

const incrementArticleLikes = `UPDATE articles SET likes = GREATEST(likes + ?, 0) WHERE id = ?`

type IncrementArticleLikesParams struct {
	Delta int64
	ID    int64
}

func (q *Queries) IncrementArticleLikes(ctx context.Context, params IncrementArticleLikesParams) error {
	_, err := q.db.ExecContext(ctx, incrementArticleLikes, params.Delta, params.ID)
	return err
}

const getArticlePassword = `SELECT password FROM articles WHERE id = ?`

func (q *Queries) GetArticlePassword(ctx context.Context, id int64) (sql.NullString, error) {
	var password sql.NullString
	err := q.db.QueryRowContext(ctx, getArticlePassword, id).Scan(&password)
	return password, err
}

const recommendedArticles = `
SELECT ` + articleColumns + `
  FROM articles a
  LEFT JOIN categories c ON c.id = a.category_id
 WHERE a.status = 'publish' AND a.is_recommended = TRUE
 ORDER BY COALESCE(a.published_at, a.created_at) DESC
 LIMIT ?
`

func (q *Queries) RecommendedArticles(ctx context.Context, limit int64) ([]ArticleRow, error) {
	rows, err := q.db.QueryContext(ctx, recommendedArticles, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []ArticleRow
	for rows.Next() {
		row, err := scanArticleRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

const relatedArticles = `
SELECT ` + articleColumns + `
  FROM articles a
  LEFT JOIN categories c ON c.id = a.category_id
 WHERE a.status = 'publish'
   AND a.id <> ?
   AND a.category_id = (SELECT category_id FROM articles WHERE id = ?)
 ORDER BY COALESCE(a.published_at, a.created_at) DESC
 LIMIT ?
`

type RelatedArticlesParams struct {
	ArticleID int64
	Limit     int64
}

func (q *Queries) RelatedArticles(ctx context.Context, params RelatedArticlesParams) ([]ArticleRow, error) {
	rows, err := q.db.QueryContext(ctx, relatedArticles, params.ArticleID, params.ArticleID, params.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []ArticleRow
	for rows.Next() {
		row, err := scanArticleRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

const articleArchives = `
SELECT YEAR(a.published_at), MONTH(a.published_at), a.id, a.title
  FROM articles a
 WHERE a.status = 'publish' AND a.published_at IS NOT NULL
 ORDER BY a.published_at DESC
`

type ArticleArchiveRow struct {
	Year  int
	Month int
	ID    int64
	Title string
}

func (q *Queries) ArticleArchives(ctx context.Context) ([]ArticleArchiveRow, error) {
	rows, err := q.db.QueryContext(ctx, articleArchives)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []ArticleArchiveRow
	for rows.Next() {
		var row ArticleArchiveRow
		if err := rows.Scan(&row.Year, &row.Month, &row.ID, &row.Title); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

const attachArticleTag = `INSERT IGNORE INTO article_tags (article_id, tag_id) VALUES (?, ?)`

type AttachArticleTagParams struct {
	ArticleID int64
	TagID     int64
}

func (q *Queries) AttachArticleTag(ctx context.Context, params AttachArticleTagParams) error {
	_, err := q.db.ExecContext(ctx, attachArticleTag, params.ArticleID, params.TagID)
	return err
}

const detachArticleTags = `DELETE FROM article_tags WHERE article_id = ?`

func (q *Queries) DetachArticleTags(ctx context.Context, articleID int64) error {
	_, err := q.db.ExecContext(ctx, detachArticleTags, articleID)
	return err
}
