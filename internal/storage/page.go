package storage

import (
	"context"
	"database/sql"
	"time"
)

type PageRow struct {
	ID          int64
	Name        string
	Path        string
	Cover       string
	Content     string
	Status      string
	Order       int32
	Views       int32
	PublishedAt sql.NullTime
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

const pageColumns = "id, name, path, cover, content, status, `order`, views, published_at, created_at, updated_at"

func scanPageRow(scanner interface{ Scan(...interface{}) error }) (PageRow, error) {
	var row PageRow
	err := scanner.Scan(
		&row.ID, &row.Name, &row.Path, &row.Cover, &row.Content, &row.Status,
		&row.Order, &row.Views, &row.PublishedAt, &row.CreatedAt, &row.UpdatedAt,
	)
	return row, err
}

const newPage = "INSERT INTO pages (name, path, cover, content, status, `order`, published_at) VALUES (?, ?, ?, ?, ?, ?, ?)"

type NewPageParams struct {
	Name        string
	Path        string
	Cover       string
	Content     string
	Status      string
	Order       int32
	PublishedAt sql.NullTime
}

func (q *Queries) NewPage(ctx context.Context, params NewPageParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, newPage,
		params.Name, params.Path, params.Cover, params.Content,
		params.Status, params.Order, params.PublishedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

const getPageByID = `SELECT ` + pageColumns + ` FROM pages WHERE id = ?`

func (q *Queries) GetPageByID(ctx context.Context, id int64) (PageRow, error) {
	return scanPageRow(q.db.QueryRowContext(ctx, getPageByID, id))
}

const getPageByPath = `SELECT ` + pageColumns + ` FROM pages WHERE path = ?`

func (q *Queries) GetPageByPath(ctx context.Context, path string) (PageRow, error) {
	return scanPageRow(q.db.QueryRowContext(ctx, getPageByPath, path))
}

const pages = `
SELECT ` + pageColumns + `
  FROM pages
 WHERE (? = '' OR status = ?)
 ORDER BY ` + "`order`" + ` ASC, created_at DESC
 LIMIT ? OFFSET ?
`

type PagesParams struct {
	Status   string
	PageSize int64
	Page     int64
}

func (q *Queries) Pages(ctx context.Context, params PagesParams) ([]PageRow, error) {
	rows, err := q.db.QueryContext(ctx, pages, params.Status, params.Status, params.PageSize, params.Page)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []PageRow
	for rows.Next() {
		row, err := scanPageRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

const getPageCount = `SELECT COUNT(*) FROM pages WHERE (? = '' OR status = ?)`

func (q *Queries) GetPageCount(ctx context.Context, status string) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, getPageCount, status, status).Scan(&count)
	return count, err
}

const updatePage = "UPDATE pages SET name = ?, path = ?, cover = ?, content = ?, status = ?, `order` = ?, published_at = ? WHERE id = ?"

type UpdatePageParams struct {
	Name        string
	Path        string
	Cover       string
	Content     string
	Status      string
	Order       int32
	PublishedAt sql.NullTime
	ID          int64
}

func (q *Queries) UpdatePage(ctx context.Context, params UpdatePageParams) error {
	_, err := q.db.ExecContext(ctx, updatePage,
		params.Name, params.Path, params.Cover, params.Content,
		params.Status, params.Order, params.PublishedAt, params.ID,
	)
	return err
}

const deletePage = `DELETE FROM pages WHERE id = ?`

func (q *Queries) DeletePage(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deletePage, id)
	return err
}

const incrementPageViews = `UPDATE pages SET views = views + ? WHERE id = ?`

type IncrementPageViewsParams struct {
	Delta int64
	ID    int64
}

func (q *Queries) IncrementPageViews(ctx context.Context, params IncrementPageViewsParams) error {
	_, err := q.db.ExecContext(ctx, incrementPageViews, params.Delta, params.ID)
	return err
}
