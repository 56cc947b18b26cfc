package accessor

import (
	"encoding/json"
	"errors"

	"github.com/reactpress/reactpress/internal/model"
	"github.com/reactpress/reactpress/internal/storage"
	"github.com/reactpress/reactpress/pkg/dateutils"
)

var ErrUnableGetArticle = errors.New("unable get article")

func ArticleFromArticleRow(row storage.ArticleRow) (model.Article, error) {
	var tags []model.ArticleTag
	if len(row.Tags) > 0 {
		if err := json.Unmarshal(row.Tags, &tags); err != nil {
			return model.NilArticle, ErrUnableGetArticle
		}
	}

	article := model.Article{
		ID:            row.ID,
		Title:         row.Title,
		Summary:       row.Summary,
		Content:       row.Content,
		Cover:         row.Cover,
		Status:        row.Status,
		Views:         row.Views,
		Likes:         row.Likes,
		NeedPassword:  row.Password.Valid,
		IsRecommended: row.IsRecommended,
		IsCommentable: row.IsCommentable,
		CategoryLabel: row.CategoryLabel.String,
		CategoryValue: row.CategoryValue.String,
		Tags:          tags,
		CreatedAt:     dateutils.ToString(row.CreatedAt),
		UpdatedAt:     dateutils.ToString(row.UpdatedAt),
	}

	if row.PublishedAt.Valid {
		article.PublishedAt = dateutils.Pretify(row.PublishedAt.Time)
	}

	// Protected articles hide their body until the password check passes.
	if article.NeedPassword {
		article.Content = ""
	}

	return article, nil
}

func ArticlesFromArticleRows(rows []storage.ArticleRow) ([]model.Article, error) {
	var articles []model.Article
	for _, row := range rows {
		article, err := ArticleFromArticleRow(row)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}
	return articles, nil
}

// UnlockedArticleFromArticleRow keeps the content of a protected article,
// for responses issued after a successful password check.
func UnlockedArticleFromArticleRow(row storage.ArticleRow) (model.Article, error) {
	article, err := ArticleFromArticleRow(row)
	if err != nil {
		return model.NilArticle, err
	}
	article.Content = row.Content
	return article, nil
}

func ArchivesFromArchiveRows(rows []storage.ArticleArchiveRow) []model.ArchiveEntry {
	entries := make([]model.ArchiveEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, model.ArchiveEntry{
			Year:  row.Year,
			Month: row.Month,
			ID:    row.ID,
			Title: row.Title,
		})
	}
	return entries
}
