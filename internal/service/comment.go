package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/reactpress/reactpress/internal/accessor"
	"github.com/reactpress/reactpress/internal/mail"
	"github.com/reactpress/reactpress/internal/model"
	"github.com/reactpress/reactpress/internal/storage"
	"github.com/reactpress/reactpress/pkg/sqlutils"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	ErrCommentNotFound       = errors.New("comment not found")
	ErrCommentParentNotFound = errors.New("parent comment not found")
	ErrCommentsDisabled      = errors.New("comments are disabled for this article")
)

type CommentService struct {
	queries        *storage.Queries
	settingService *SettingService
	mailer         *mail.Mailer
	log            *zap.Logger
}

type NewCommentParams struct {
	Name      string
	Email     string
	Content   string
	UserAgent string
	HostID    string
	URL       string
	ParentID  int64
}

func (s *CommentService) NewComment(ctx context.Context, params NewCommentParams) (int64, error) {
	// Article hosts carry a numeric id; page hosts use the page path.
	if articleID, err := strconv.ParseInt(params.HostID, 10, 64); err == nil {
		article, err := s.queries.GetArticleByID(ctx, articleID)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return 0, err
		}
		if err == nil && !article.IsCommentable {
			return 0, ErrCommentsDisabled
		}
	}

	if params.ParentID != 0 {
		if _, err := s.queries.GetCommentByID(ctx, params.ParentID); errors.Is(err, sql.ErrNoRows) {
			return 0, ErrCommentParentNotFound
		} else if err != nil {
			return 0, err
		}
	}

	return s.queries.NewComment(ctx, storage.NewCommentParams{
		Name:      params.Name,
		Email:     params.Email,
		Content:   params.Content,
		UserAgent: params.UserAgent,
		HostID:    params.HostID,
		URL:       params.URL,
		ParentID:  sqlutils.GetNullableSqlInt64(params.ParentID),
	})
}

// Comment moderation filter values.
const (
	COMMENT_PASS_ANY     int64 = -1
	COMMENT_PASS_PENDING int64 = 0
	COMMENT_PASS_PASSED  int64 = 1
)

type GetCommentsParams struct {
	Pass     int64
	Page     int
	PageSize int
}

func (s *CommentService) GetComments(ctx context.Context, params GetCommentsParams) ([]model.Comment, error) {
	rows, err := s.queries.Comments(ctx, storage.CommentsParams{
		Pass:     params.Pass,
		Page:     int64((params.Page - 1) * params.PageSize),
		PageSize: int64(params.PageSize),
	})
	if err != nil {
		return nil, err
	}
	return accessor.CommentsFromCommentRows(rows), nil
}

func (s *CommentService) GetCommentsCount(ctx context.Context, pass int64) (int, error) {
	count, err := s.queries.GetCommentCount(ctx, pass)
	return int(count), err
}

// GetCommentsByHost returns the approved comment tree for an article or
// page, replies grouped under their parents.
func (s *CommentService) GetCommentsByHost(ctx context.Context, hostID string) ([]model.Comment, error) {
	rows, err := s.queries.CommentsByHost(ctx, hostID)
	if err != nil {
		return nil, err
	}
	return accessor.CommentTreeFromCommentRows(rows), nil
}

// UpdateCommentPass flips the moderation flag. Approving a reply sends a
// best-effort notification to the parent comment's author.
func (s *CommentService) UpdateCommentPass(ctx context.Context, id int64, pass bool) error {
	row, err := s.queries.GetCommentByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrCommentNotFound
	}
	if err != nil {
		return err
	}

	if err := s.queries.UpdateCommentPass(ctx, storage.UpdateCommentPassParams{
		Pass: pass,
		ID:   id,
	}); err != nil {
		return err
	}

	if pass && row.ParentID.Valid {
		s.notifyParent(ctx, row)
	}
	return nil
}

func (s *CommentService) notifyParent(ctx context.Context, reply storage.CommentRow) {
	parent, err := s.queries.GetCommentByID(ctx, reply.ParentID.Int64)
	if err != nil || parent.Email == "" {
		return
	}

	smtp, err := s.settingService.GetSMTPConfig(ctx)
	if err != nil {
		return
	}

	msg := mail.Message{
		To:      parent.Email,
		Subject: fmt.Sprintf("%s replied to your comment", reply.Name),
		Body:    fmt.Sprintf("Your comment received a reply:\r\n\r\n%s\r\n\r\nView it at: %s", reply.Content, reply.URL),
	}
	if err := s.mailer.Send(smtp, msg); err != nil && !errors.Is(err, mail.ErrSMTPNotConfigured) {
		s.log.Warn("unable send comment reply notification", zap.Int64("comment_id", reply.ID), zap.Error(err))
	}
}

func (s *CommentService) DeleteComment(ctx context.Context, id int64) error {
	if _, err := s.queries.GetCommentByID(ctx, id); errors.Is(err, sql.ErrNoRows) {
		return ErrCommentNotFound
	} else if err != nil {
		return err
	}
	return s.queries.DeleteComment(ctx, id)
}

type NewCommentServiceParams struct {
	fx.In

	DB             *sql.DB
	SettingService *SettingService
	Mailer         *mail.Mailer
	Log            *zap.Logger
}

func NewCommentService(params NewCommentServiceParams) *CommentService {
	return &CommentService{
		queries:        storage.New(params.DB),
		settingService: params.SettingService,
		mailer:         params.Mailer,
		log:            params.Log,
	}
}
