package storage

import (
	"context"
	"database/sql"
	"time"
)

type CommentRow struct {
	ID        int64
	Name      string
	Email     string
	Content   string
	Pass      bool
	UserAgent string
	HostID    string
	URL       string
	ParentID  sql.NullInt64
	CreatedAt time.Time
	UpdatedAt time.Time
}

const commentColumns = `
    id, name, email, content, pass, user_agent, host_id, url, parent_id,
    created_at, updated_at
`

func scanCommentRow(scanner interface{ Scan(...interface{}) error }) (CommentRow, error) {
	var row CommentRow
	err := scanner.Scan(
		&row.ID, &row.Name, &row.Email, &row.Content, &row.Pass,
		&row.UserAgent, &row.HostID, &row.URL, &row.ParentID,
		&row.CreatedAt, &row.UpdatedAt,
	)
	return row, err
}

const newComment = `
INSERT INTO comments (name, email, content, user_agent, host_id, url, parent_id)
VALUES (?, ?, ?, ?, ?, ?, ?)
`

type NewCommentParams struct {
	Name      string
	Email     string
	Content   string
	UserAgent string
	HostID    string
	URL       string
	ParentID  sql.NullInt64
}

func (q *Queries) NewComment(ctx context.Context, params NewCommentParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, newComment,
		params.Name, params.Email, params.Content, params.UserAgent,
		params.HostID, params.URL, params.ParentID,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

const getCommentByID = `SELECT ` + commentColumns + ` FROM comments WHERE id = ?`

func (q *Queries) GetCommentByID(ctx context.Context, id int64) (CommentRow, error) {
	return scanCommentRow(q.db.QueryRowContext(ctx, getCommentByID, id))
}

const comments = `
SELECT ` + commentColumns + `
  FROM comments
 WHERE (? = -1 OR pass = ?)
 ORDER BY created_at DESC
 LIMIT ? OFFSET ?
`

type CommentsParams struct {
	// Pass filters moderation state: 0 pending, 1 passed, -1 any.
	Pass     int64
	PageSize int64
	Page     int64
}

func (q *Queries) Comments(ctx context.Context, params CommentsParams) ([]CommentRow, error) {
	rows, err := q.db.QueryContext(ctx, comments, params.Pass, params.Pass, params.PageSize, params.Page)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []CommentRow
	for rows.Next() {
		row, err := scanCommentRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

const getCommentCount = `SELECT COUNT(*) FROM comments WHERE (? = -1 OR pass = ?)`

func (q *Queries) GetCommentCount(ctx context.Context, pass int64) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, getCommentCount, pass, pass).Scan(&count)
	return count, err
}

const commentsByHost = `
SELECT ` + commentColumns + `
  FROM comments
 WHERE host_id = ? AND pass = TRUE
 ORDER BY created_at ASC
`

func (q *Queries) CommentsByHost(ctx context.Context, hostID string) ([]CommentRow, error) {
	rows, err := q.db.QueryContext(ctx, commentsByHost, hostID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []CommentRow
	for rows.Next() {
		row, err := scanCommentRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

const updateCommentPass = `UPDATE comments SET pass = ? WHERE id = ?`

type UpdateCommentPassParams struct {
	Pass bool
	ID   int64
}

func (q *Queries) UpdateCommentPass(ctx context.Context, params UpdateCommentPassParams) error {
	_, err := q.db.ExecContext(ctx, updateCommentPass, params.Pass, params.ID)
	return err
}

const deleteComment = `DELETE FROM comments WHERE id = ?`

// DeleteComment removes a comment; replies cascade through the
// parent_id foreign key.
func (q *Queries) DeleteComment(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteComment, id)
	return err
}
