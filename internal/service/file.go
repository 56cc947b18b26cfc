package service

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/reactpress/reactpress/internal/accessor"
	"github.com/reactpress/reactpress/internal/config"
	"github.com/reactpress/reactpress/internal/model"
	"github.com/reactpress/reactpress/internal/storage"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	ErrFileNotFound     = errors.New("file not found")
	ErrUnableStoreFile  = errors.New("unable store the file")
	ErrUnableRemoveFile = errors.New("unable remove the file")
)

type FileService struct {
	queries *storage.Queries
	config  *config.FileConfig
	log     *zap.Logger
}

type NewFileParams struct {
	OriginalName string
	ContentType  string
	Body         io.Reader
}

// NewFile streams the upload to disk under a uuid name and records its
// metadata. The disk write happens first so a failed insert never leaves
// a dangling row.
func (s *FileService) NewFile(ctx context.Context, params NewFileParams) (model.File, error) {
	if err := os.MkdirAll(s.config.Dir, 0o755); err != nil {
		return model.NilFile, errors.Join(ErrUnableStoreFile, err)
	}

	filename := uuid.NewString() + strings.ToLower(filepath.Ext(params.OriginalName))
	path := filepath.Join(s.config.Dir, filename)

	dst, err := os.Create(path)
	if err != nil {
		return model.NilFile, errors.Join(ErrUnableStoreFile, err)
	}

	size, err := io.Copy(dst, params.Body)
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return model.NilFile, errors.Join(ErrUnableStoreFile, err)
	}

	url := strings.TrimSuffix(s.config.BaseURL, "/") + "/" + filename

	id, err := s.queries.NewFile(ctx, storage.NewFileParams{
		OriginalName: params.OriginalName,
		Filename:     filename,
		Type:         params.ContentType,
		Size:         size,
		URL:          url,
	})
	if err != nil {
		_ = os.Remove(path)
		return model.NilFile, errors.Join(ErrUnableStoreFile, err)
	}

	return s.GetFileByID(ctx, id)
}

type GetFilesParams struct {
	Page     int
	PageSize int
}

func (s *FileService) GetFiles(ctx context.Context, params GetFilesParams) ([]model.File, error) {
	rows, err := s.queries.Files(ctx, storage.FilesParams{
		Page:     int64((params.Page - 1) * params.PageSize),
		PageSize: int64(params.PageSize),
	})
	if err != nil {
		return nil, err
	}
	return accessor.FilesFromFileRows(rows), nil
}

func (s *FileService) GetFilesCount(ctx context.Context) (int, error) {
	count, err := s.queries.GetFileCount(ctx)
	return int(count), err
}

func (s *FileService) GetFileByID(ctx context.Context, id int64) (model.File, error) {
	row, err := s.queries.GetFileByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NilFile, ErrFileNotFound
	}
	if err != nil {
		return model.NilFile, err
	}
	return accessor.FileFromFileRow(row), nil
}

// DeleteFile removes the metadata row first, then the blob. A missing
// blob is logged, not surfaced: the row is already gone.
func (s *FileService) DeleteFile(ctx context.Context, id int64) error {
	file, err := s.GetFileByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.queries.DeleteFile(ctx, id); err != nil {
		return errors.Join(ErrUnableRemoveFile, err)
	}

	path := filepath.Join(s.config.Dir, file.Filename)
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.log.Warn("unable remove stored file", zap.String("path", path), zap.Error(err))
	}
	return nil
}

type NewFileServiceParams struct {
	fx.In

	DB     *sql.DB
	Config *config.FileConfig
	Log    *zap.Logger
}

func NewFileService(params NewFileServiceParams) *FileService {
	return &FileService{
		queries: storage.New(params.DB),
		config:  params.Config,
		log:     params.Log,
	}
}
