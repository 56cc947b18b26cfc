package accessor

import (
	"database/sql"
	"testing"
	"time"

	"github.com/reactpress/reactpress/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func commentRow(id int64, parentID int64, name string, createdAt time.Time) storage.CommentRow {
	row := storage.CommentRow{
		ID:        id,
		Name:      name,
		Content:   name + " says hi",
		Pass:      true,
		HostID:    "42",
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	if parentID != 0 {
		row.ParentID = sql.NullInt64{Int64: parentID, Valid: true}
	}
	return row
}

func TestCommentTreeFromCommentRows(t *testing.T) {
	base := time.Date(2024, 10, 12, 10, 0, 0, 0, time.UTC)

	rows := []storage.CommentRow{
		commentRow(1, 0, "alice", base),
		commentRow(2, 0, "bob", base.Add(time.Minute)),
		commentRow(3, 1, "carol", base.Add(2*time.Minute)),
		commentRow(4, 1, "dave", base.Add(3*time.Minute)),
		commentRow(5, 99, "orphan", base.Add(4*time.Minute)),
	}

	tree := CommentTreeFromCommentRows(rows)

	require.Len(t, tree, 2)
	assert.Equal(t, "alice", tree[0].Name)
	assert.Equal(t, "bob", tree[1].Name)

	require.Len(t, tree[0].Children, 2)
	assert.Equal(t, "carol", tree[0].Children[0].Name)
	assert.Equal(t, "dave", tree[0].Children[1].Name)
	assert.Equal(t, int64(1), tree[0].Children[0].ParentID)

	// The orphan reply points at a parent that is not in the result set.
	assert.Empty(t, tree[1].Children)
}

func TestCommentTreeFromCommentRowsEmpty(t *testing.T) {
	assert.Empty(t, CommentTreeFromCommentRows(nil))
}
