package storage

import (
	"context"
	"time"
)

type SearchRecordRow struct {
	ID        int64
	Keyword   string
	Count     int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

const upsertSearchRecord = `
INSERT INTO search_records (keyword)
VALUES (?)
ON DUPLICATE KEY UPDATE count = count + 1
`

func (q *Queries) UpsertSearchRecord(ctx context.Context, keyword string) error {
	_, err := q.db.ExecContext(ctx, upsertSearchRecord, keyword)
	return err
}

const searchRecords = `
SELECT id, keyword, count, created_at, updated_at
  FROM search_records
 ORDER BY count DESC, updated_at DESC
 LIMIT ? OFFSET ?
`

type SearchRecordsParams struct {
	PageSize int64
	Page     int64
}

func (q *Queries) SearchRecords(ctx context.Context, params SearchRecordsParams) ([]SearchRecordRow, error) {
	rows, err := q.db.QueryContext(ctx, searchRecords, params.PageSize, params.Page)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []SearchRecordRow
	for rows.Next() {
		var row SearchRecordRow
		if err := rows.Scan(&row.ID, &row.Keyword, &row.Count, &row.CreatedAt, &row.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

const getSearchRecordCount = `SELECT COUNT(*) FROM search_records`

func (q *Queries) GetSearchRecordCount(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, getSearchRecordCount).Scan(&count)
	return count, err
}

const deleteSearchRecord = `DELETE FROM search_records WHERE id = ?`

func (q *Queries) DeleteSearchRecord(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteSearchRecord, id)
	return err
}
