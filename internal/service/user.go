package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/reactpress/reactpress/internal/accessor"
	"github.com/reactpress/reactpress/internal/model"
	"github.com/reactpress/reactpress/internal/storage"
	"go.uber.org/fx"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrUserNameExists = errors.New("user name already exists")
)

type UserService struct {
	queries *storage.Queries
}

type GetUsersParams struct {
	Page     int
	PageSize int
}

func (s *UserService) GetUsers(ctx context.Context, params GetUsersParams) ([]model.User, error) {
	rows, err := s.queries.Users(ctx, storage.UsersParams{
		Page:     int64((params.Page - 1) * params.PageSize),
		PageSize: int64(params.PageSize),
	})
	if err != nil {
		return nil, err
	}
	return accessor.UsersFromUserRows(rows), nil
}

func (s *UserService) GetUsersCount(ctx context.Context) (int, error) {
	count, err := s.queries.GetUserCount(ctx)
	return int(count), err
}

func (s *UserService) GetUserByID(ctx context.Context, id int64) (model.User, error) {
	row, err := s.queries.GetUserByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NilUser, ErrUserNotFound
	}
	if err != nil {
		return model.NilUser, err
	}
	return accessor.UserFromUserRow(row), nil
}

type NewUserParams struct {
	Name     string
	Password string
	Email    string
	Avatar   string
	Role     string
	Status   string
}

func (s *UserService) NewUser(ctx context.Context, params NewUserParams) (int64, error) {
	if _, err := s.queries.GetUserByName(ctx, params.Name); err == nil {
		return 0, ErrUserNameExists
	} else if !errors.Is(err, sql.ErrNoRows) {
		return 0, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	role := params.Role
	if role == "" {
		role = model.USER_ROLE_VISITOR
	}
	status := params.Status
	if status == "" {
		status = model.USER_STATUS_ACTIVE
	}

	return s.queries.NewUser(ctx, storage.NewUserParams{
		Name:     params.Name,
		Password: string(hash),
		Email:    params.Email,
		Avatar:   params.Avatar,
		Role:     role,
		Status:   status,
	})
}

type UpdateUserParams struct {
	ID     int64
	Email  string
	Avatar string
	Role   string
	Status string
}

func (s *UserService) UpdateUser(ctx context.Context, params UpdateUserParams) error {
	if _, err := s.GetUserByID(ctx, params.ID); err != nil {
		return err
	}

	return s.queries.UpdateUser(ctx, storage.UpdateUserParams{
		Email:  params.Email,
		Avatar: params.Avatar,
		Role:   params.Role,
		Status: params.Status,
		ID:     params.ID,
	})
}

func (s *UserService) UpdateUserPassword(ctx context.Context, id int64, password string) error {
	if _, err := s.GetUserByID(ctx, id); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.queries.UpdateUserPassword(ctx, storage.UpdateUserPasswordParams{
		Password: string(hash),
		ID:       id,
	})
}

func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	if _, err := s.GetUserByID(ctx, id); err != nil {
		return err
	}
	return s.queries.DeleteUser(ctx, id)
}

type NewUserServiceParams struct {
	fx.In

	DB *sql.DB
}

func NewUserService(params NewUserServiceParams) *UserService {
	return &UserService{
		queries: storage.New(params.DB),
	}
}
