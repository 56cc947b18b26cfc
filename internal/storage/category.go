package storage

import (
	"context"
	"time"
)

type CategoryRow struct {
	ID           int64
	Label        string
	Value        string
	ArticleCount int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

const newCategory = `INSERT INTO categories (label, value) VALUES (?, ?)`

type NewCategoryParams struct {
	Label string
	Value string
}

func (q *Queries) NewCategory(ctx context.Context, params NewCategoryParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, newCategory, params.Label, params.Value)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

const categories = `
SELECT c.id, c.label, c.value,
       (SELECT COUNT(*) FROM articles a WHERE a.category_id = c.id) AS article_count,
       c.created_at, c.updated_at
  FROM categories c
 ORDER BY c.created_at ASC
`

func (q *Queries) Categories(ctx context.Context) ([]CategoryRow, error) {
	rows, err := q.db.QueryContext(ctx, categories)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []CategoryRow
	for rows.Next() {
		var row CategoryRow
		if err := rows.Scan(&row.ID, &row.Label, &row.Value, &row.ArticleCount, &row.CreatedAt, &row.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

const getCategoryByValue = `
SELECT c.id, c.label, c.value,
       (SELECT COUNT(*) FROM articles a WHERE a.category_id = c.id) AS article_count,
       c.created_at, c.updated_at
  FROM categories c
 WHERE c.value = ?
`

func (q *Queries) GetCategoryByValue(ctx context.Context, value string) (CategoryRow, error) {
	var row CategoryRow
	err := q.db.QueryRowContext(ctx, getCategoryByValue, value).
		Scan(&row.ID, &row.Label, &row.Value, &row.ArticleCount, &row.CreatedAt, &row.UpdatedAt)
	return row, err
}

const getCategoryIDByValue = `SELECT id FROM categories WHERE value = ?`

func (q *Queries) GetCategoryIDByValue(ctx context.Context, value string) (int64, error) {
	var id int64
	err := q.db.QueryRowContext(ctx, getCategoryIDByValue, value).Scan(&id)
	return id, err
}

const updateCategory = `UPDATE categories SET label = ?, value = ? WHERE id = ?`

type UpdateCategoryParams struct {
	Label string
	Value string
	ID    int64
}

func (q *Queries) UpdateCategory(ctx context.Context, params UpdateCategoryParams) error {
	_, err := q.db.ExecContext(ctx, updateCategory, params.Label, params.Value, params.ID)
	return err
}

const deleteCategory = `DELETE FROM categories WHERE id = ?`

func (q *Queries) DeleteCategory(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteCategory, id)
	return err
}
