package storage

import (
	"context"
	"time"
)

type FileRow struct {
	ID           int64
	OriginalName string
	Filename     string
	Type         string
	Size         int64
	URL          string
	CreatedAt    time.Time
}

const fileColumns = `id, original_name, filename, type, size, url, created_at`

func scanFileRow(scanner interface{ Scan(...interface{}) error }) (FileRow, error) {
	var row FileRow
	err := scanner.Scan(
		&row.ID, &row.OriginalName, &row.Filename, &row.Type,
		&row.Size, &row.URL, &row.CreatedAt,
	)
	return row, err
}

const newFile = `
INSERT INTO files (original_name, filename, type, size, url)
VALUES (?, ?, ?, ?, ?)
`

type NewFileParams struct {
	OriginalName string
	Filename     string
	Type         string
	Size         int64
	URL          string
}

func (q *Queries) NewFile(ctx context.Context, params NewFileParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, newFile,
		params.OriginalName, params.Filename, params.Type, params.Size, params.URL,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

const getFileByID = `SELECT ` + fileColumns + ` FROM files WHERE id = ?`

func (q *Queries) GetFileByID(ctx context.Context, id int64) (FileRow, error) {
	return scanFileRow(q.db.QueryRowContext(ctx, getFileByID, id))
}

const files = `
SELECT ` + fileColumns + `
  FROM files
 ORDER BY created_at DESC
 LIMIT ? OFFSET ?
`

type FilesParams struct {
	PageSize int64
	Page     int64
}

func (q *Queries) Files(ctx context.Context, params FilesParams) ([]FileRow, error) {
	rows, err := q.db.QueryContext(ctx, files, params.PageSize, params.Page)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []FileRow
	for rows.Next() {
		row, err := scanFileRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

const getFileCount = `SELECT COUNT(*) FROM files`

func (q *Queries) GetFileCount(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, getFileCount).Scan(&count)
	return count, err
}

const deleteFile = `DELETE FROM files WHERE id = ?`

func (q *Queries) DeleteFile(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteFile, id)
	return err
}
