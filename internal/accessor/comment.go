package accessor

import (
	"github.com/reactpress/reactpress/internal/model"
	"github.com/reactpress/reactpress/internal/storage"
	"github.com/reactpress/reactpress/pkg/dateutils"
)

func CommentFromCommentRow(row storage.CommentRow) model.Comment {
	return model.Comment{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		Content:   row.Content,
		Pass:      row.Pass,
		UserAgent: row.UserAgent,
		HostID:    row.HostID,
		URL:       row.URL,
		ParentID:  row.ParentID.Int64,
		CreatedAt: dateutils.ToString(row.CreatedAt),
		UpdatedAt: dateutils.ToString(row.UpdatedAt),
	}
}

func CommentsFromCommentRows(rows []storage.CommentRow) []model.Comment {
	comments := make([]model.Comment, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, CommentFromCommentRow(row))
	}
	return comments
}

// CommentTreeFromCommentRows groups replies under their top-level parent.
// Rows arrive ordered by creation time, so both levels stay chronological.
// Replies whose parent is missing (not passed or deleted) are dropped.
func CommentTreeFromCommentRows(rows []storage.CommentRow) []model.Comment {
	var roots []model.Comment
	rootIndex := make(map[int64]int)

	for _, row := range rows {
		if !row.ParentID.Valid {
			roots = append(roots, CommentFromCommentRow(row))
			rootIndex[row.ID] = len(roots) - 1
		}
	}

	for _, row := range rows {
		if !row.ParentID.Valid {
			continue
		}
		if i, ok := rootIndex[row.ParentID.Int64]; ok {
			roots[i].Children = append(roots[i].Children, CommentFromCommentRow(row))
		}
	}

	return roots
}
