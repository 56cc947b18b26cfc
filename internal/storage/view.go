package storage

import (
	"context"
	"time"
)

type ViewRow struct {
	ID        int64
	IP        string
	UserAgent string
	URL       string
	Count     int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

const viewColumns = `id, ip, user_agent, url, count, created_at, updated_at`

func scanViewRow(scanner interface{ Scan(...interface{}) error }) (ViewRow, error) {
	var row ViewRow
	err := scanner.Scan(
		&row.ID, &row.IP, &row.UserAgent, &row.URL, &row.Count,
		&row.CreatedAt, &row.UpdatedAt,
	)
	return row, err
}

const upsertView = `
INSERT INTO views (ip, user_agent, url, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE count = count + 1, updated_at = VALUES(updated_at)
`

type UpsertViewParams struct {
	IP        string
	UserAgent string
	URL       string
	VisitedAt time.Time
}

// UpsertView records one sighting: first insert starts the counter at 1,
// repeat sightings of the same visitor and url bump it.
func (q *Queries) UpsertView(ctx context.Context, params UpsertViewParams) error {
	_, err := q.db.ExecContext(ctx, upsertView,
		params.IP, params.UserAgent, params.URL, params.VisitedAt, params.VisitedAt,
	)
	return err
}

const views = `
SELECT ` + viewColumns + `
  FROM views
 ORDER BY updated_at DESC
 LIMIT ? OFFSET ?
`

type ViewsParams struct {
	PageSize int64
	Page     int64
}

func (q *Queries) Views(ctx context.Context, params ViewsParams) ([]ViewRow, error) {
	rows, err := q.db.QueryContext(ctx, views, params.PageSize, params.Page)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []ViewRow
	for rows.Next() {
		row, err := scanViewRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

const getViewCount = `SELECT COUNT(*) FROM views`

func (q *Queries) GetViewCount(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, getViewCount).Scan(&count)
	return count, err
}

const getViewCountByURL = `SELECT COALESCE(SUM(count), 0) FROM views WHERE url = ?`

func (q *Queries) GetViewCountByURL(ctx context.Context, url string) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, getViewCountByURL, url).Scan(&count)
	return count, err
}

const deleteView = `DELETE FROM views WHERE id = ?`

func (q *Queries) DeleteView(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteView, id)
	return err
}
