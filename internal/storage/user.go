package storage

import (
	"context"
	"time"
)

type UserRow struct {
	ID        int64
	Name      string
	Password  string
	Email     string
	Avatar    string
	Role      string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

const userColumns = `id, name, password, email, avatar, role, status, created_at, updated_at`

func scanUserRow(scanner interface{ Scan(...interface{}) error }) (UserRow, error) {
	var row UserRow
	err := scanner.Scan(
		&row.ID, &row.Name, &row.Password, &row.Email, &row.Avatar,
		&row.Role, &row.Status, &row.CreatedAt, &row.UpdatedAt,
	)
	return row, err
}

const newUser = `
INSERT INTO users (name, password, email, avatar, role, status)
VALUES (?, ?, ?, ?, ?, ?)
`

type NewUserParams struct {
	Name     string
	Password string
	Email    string
	Avatar   string
	Role     string
	Status   string
}

func (q *Queries) NewUser(ctx context.Context, params NewUserParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, newUser,
		params.Name, params.Password, params.Email, params.Avatar,
		params.Role, params.Status,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

const getUserByID = `SELECT ` + userColumns + ` FROM users WHERE id = ?`

func (q *Queries) GetUserByID(ctx context.Context, id int64) (UserRow, error) {
	return scanUserRow(q.db.QueryRowContext(ctx, getUserByID, id))
}

const getUserByName = `SELECT ` + userColumns + ` FROM users WHERE name = ?`

func (q *Queries) GetUserByName(ctx context.Context, name string) (UserRow, error) {
	return scanUserRow(q.db.QueryRowContext(ctx, getUserByName, name))
}

const users = `
SELECT ` + userColumns + `
  FROM users
 ORDER BY created_at DESC
 LIMIT ? OFFSET ?
`

type UsersParams struct {
	PageSize int64
	Page     int64
}

func (q *Queries) Users(ctx context.Context, params UsersParams) ([]UserRow, error) {
	rows, err := q.db.QueryContext(ctx, users, params.PageSize, params.Page)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []UserRow
	for rows.Next() {
		row, err := scanUserRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

const getUserCount = `SELECT COUNT(*) FROM users`

func (q *Queries) GetUserCount(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, getUserCount).Scan(&count)
	return count, err
}

const updateUser = `
UPDATE users
   SET email = ?, avatar = ?, role = ?, status = ?
 WHERE id = ?
`

type UpdateUserParams struct {
	Email  string
	Avatar string
	Role   string
	Status string
	ID     int64
}

func (q *Queries) UpdateUser(ctx context.Context, params UpdateUserParams) error {
	_, err := q.db.ExecContext(ctx, updateUser,
		params.Email, params.Avatar, params.Role, params.Status, params.ID,
	)
	return err
}

const updateUserPassword = `UPDATE users SET password = ? WHERE id = ?`

type UpdateUserPasswordParams struct {
	Password string
	ID       int64
}

func (q *Queries) UpdateUserPassword(ctx context.Context, params UpdateUserPasswordParams) error {
	_, err := q.db.ExecContext(ctx, updateUserPassword, params.Password, params.ID)
	return err
}

const deleteUser = `DELETE FROM users WHERE id = ?`

func (q *Queries) DeleteUser(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteUser, id)
	return err
}
