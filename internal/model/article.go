package model

// Article status values an article moves through.
const (
	ARTICLE_STATUS_DRAFT   = "draft"
	ARTICLE_STATUS_PUBLISH = "publish"
)

type ArticleTag struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Article struct {
	ID            int64        `json:"id"`
	Title         string       `json:"title"`
	Summary       string       `json:"summary"`
	Content       string       `json:"content,omitempty"`
	Cover         string       `json:"cover,omitempty"`
	Status        string       `json:"status"`
	Views         int32        `json:"views"`
	Likes         int32        `json:"likes"`
	NeedPassword  bool         `json:"need_password"`
	IsRecommended bool         `json:"is_recommended"`
	IsCommentable bool         `json:"is_commentable"`
	CategoryLabel string       `json:"category_label,omitempty"`
	CategoryValue string       `json:"category_value,omitempty"`
	Tags          []ArticleTag `json:"tags,omitempty"`
	PublishedAt   string       `json:"published_at,omitempty"`
	CreatedAt     string       `json:"created_at"`
	UpdatedAt     string       `json:"updated_at"`
}

var NilArticle = Article{}

// ArchiveEntry is one article in the year/month archives listing.
type ArchiveEntry struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	ID    int64  `json:"id"`
	Title string `json:"title"`
}
