// Package accessor maps storage rows onto API models.
package accessor

import (
	"github.com/reactpress/reactpress/internal/model"
	"github.com/reactpress/reactpress/internal/storage"
	"github.com/reactpress/reactpress/pkg/dateutils"
)

func CategoryFromCategoryRow(row storage.CategoryRow) model.Category {
	return model.Category{
		ID:           row.ID,
		Label:        row.Label,
		Value:        row.Value,
		ArticleCount: row.ArticleCount,
		CreatedAt:    dateutils.ToString(row.CreatedAt),
		UpdatedAt:    dateutils.ToString(row.UpdatedAt),
	}
}

func CategoriesFromCategoryRows(rows []storage.CategoryRow) []model.Category {
	result := make([]model.Category, 0, len(rows))
	for _, row := range rows {
		result = append(result, CategoryFromCategoryRow(row))
	}
	return result
}

func TagFromTagRow(row storage.TagRow) model.Tag {
	return model.Tag{
		ID:           row.ID,
		Label:        row.Label,
		Value:        row.Value,
		ArticleCount: row.ArticleCount,
		CreatedAt:    dateutils.ToString(row.CreatedAt),
		UpdatedAt:    dateutils.ToString(row.UpdatedAt),
	}
}

func TagsFromTagRows(rows []storage.TagRow) []model.Tag {
	result := make([]model.Tag, 0, len(rows))
	for _, row := range rows {
		result = append(result, TagFromTagRow(row))
	}
	return result
}

func PageFromPageRow(row storage.PageRow) model.Page {
	page := model.Page{
		ID:        row.ID,
		Name:      row.Name,
		Path:      row.Path,
		Cover:     row.Cover,
		Content:   row.Content,
		Status:    row.Status,
		Order:     row.Order,
		Views:     row.Views,
		CreatedAt: dateutils.ToString(row.CreatedAt),
		UpdatedAt: dateutils.ToString(row.UpdatedAt),
	}
	if row.PublishedAt.Valid {
		page.PublishedAt = dateutils.Pretify(row.PublishedAt.Time)
	}
	return page
}

func PagesFromPageRows(rows []storage.PageRow) []model.Page {
	result := make([]model.Page, 0, len(rows))
	for _, row := range rows {
		result = append(result, PageFromPageRow(row))
	}
	return result
}

func UserFromUserRow(row storage.UserRow) model.User {
	return model.User{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		Avatar:    row.Avatar,
		Role:      row.Role,
		Status:    row.Status,
		CreatedAt: dateutils.ToString(row.CreatedAt),
		UpdatedAt: dateutils.ToString(row.UpdatedAt),
	}
}

func UsersFromUserRows(rows []storage.UserRow) []model.User {
	result := make([]model.User, 0, len(rows))
	for _, row := range rows {
		result = append(result, UserFromUserRow(row))
	}
	return result
}

func FileFromFileRow(row storage.FileRow) model.File {
	return model.File{
		ID:           row.ID,
		OriginalName: row.OriginalName,
		Filename:     row.Filename,
		Type:         row.Type,
		Size:         row.Size,
		URL:          row.URL,
		CreatedAt:    dateutils.ToString(row.CreatedAt),
	}
}

func FilesFromFileRows(rows []storage.FileRow) []model.File {
	result := make([]model.File, 0, len(rows))
	for _, row := range rows {
		result = append(result, FileFromFileRow(row))
	}
	return result
}

func ViewFromViewRow(row storage.ViewRow) model.View {
	return model.View{
		ID:        row.ID,
		IP:        row.IP,
		UserAgent: row.UserAgent,
		URL:       row.URL,
		Count:     row.Count,
		CreatedAt: dateutils.ToString(row.CreatedAt),
		UpdatedAt: dateutils.ToString(row.UpdatedAt),
	}
}

func ViewsFromViewRows(rows []storage.ViewRow) []model.View {
	result := make([]model.View, 0, len(rows))
	for _, row := range rows {
		result = append(result, ViewFromViewRow(row))
	}
	return result
}

func SearchRecordFromRow(row storage.SearchRecordRow) model.SearchRecord {
	return model.SearchRecord{
		ID:        row.ID,
		Keyword:   row.Keyword,
		Count:     row.Count,
		CreatedAt: dateutils.ToString(row.CreatedAt),
		UpdatedAt: dateutils.ToString(row.UpdatedAt),
	}
}

func SearchRecordsFromRows(rows []storage.SearchRecordRow) []model.SearchRecord {
	result := make([]model.SearchRecord, 0, len(rows))
	for _, row := range rows {
		result = append(result, SearchRecordFromRow(row))
	}
	return result
}

// SettingFromSettingRow masks the SMTP password on the way out.
func SettingFromSettingRow(row storage.SettingRow) model.Setting {
	setting := model.Setting{
		SystemURL:         row.SystemURL,
		SystemTitle:       row.SystemTitle,
		SystemLogo:        row.SystemLogo,
		SystemFavicon:     row.SystemFavicon,
		SystemFooter:      row.SystemFooter,
		SeoKeyword:        row.SeoKeyword,
		SeoDesc:           row.SeoDesc,
		GoogleAnalyticsID: row.GoogleAnalyticsID,
		SMTPHost:          row.SMTPHost,
		SMTPPort:          row.SMTPPort,
		SMTPUser:          row.SMTPUser,
		SMTPFrom:          row.SMTPFrom,
		UpdatedAt:         dateutils.ToString(row.UpdatedAt),
	}
	if row.SMTPPass != "" {
		setting.SMTPPass = model.SMTP_PASS_MASK
	}
	return setting
}
