package storage

import (
	"context"
	"time"
)

type TagRow struct {
	ID           int64
	Label        string
	Value        string
	ArticleCount int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

const newTag = `INSERT INTO tags (label, value) VALUES (?, ?)`

type NewTagParams struct {
	Label string
	Value string
}

func (q *Queries) NewTag(ctx context.Context, params NewTagParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, newTag, params.Label, params.Value)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

const tags = `
SELECT t.id, t.label, t.value,
       (SELECT COUNT(*) FROM article_tags at WHERE at.tag_id = t.id) AS article_count,
       t.created_at, t.updated_at
  FROM tags t
 ORDER BY t.created_at ASC
`

func (q *Queries) Tags(ctx context.Context) ([]TagRow, error) {
	rows, err := q.db.QueryContext(ctx, tags)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []TagRow
	for rows.Next() {
		var row TagRow
		if err := rows.Scan(&row.ID, &row.Label, &row.Value, &row.ArticleCount, &row.CreatedAt, &row.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

const getTagIDByValue = `SELECT id FROM tags WHERE value = ?`

func (q *Queries) GetTagIDByValue(ctx context.Context, value string) (int64, error) {
	var id int64
	err := q.db.QueryRowContext(ctx, getTagIDByValue, value).Scan(&id)
	return id, err
}

const updateTag = `UPDATE tags SET label = ?, value = ? WHERE id = ?`

type UpdateTagParams struct {
	Label string
	Value string
	ID    int64
}

func (q *Queries) UpdateTag(ctx context.Context, params UpdateTagParams) error {
	_, err := q.db.ExecContext(ctx, updateTag, params.Label, params.Value, params.ID)
	return err
}

const deleteTag = `DELETE FROM tags WHERE id = ?`

func (q *Queries) DeleteTag(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteTag, id)
	return err
}
