package model

type Category struct {
	ID           int64  `json:"id"`
	Label        string `json:"label"`
	Value        string `json:"value"`
	ArticleCount int64  `json:"article_count"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

var NilCategory = Category{}

type Tag struct {
	ID           int64  `json:"id"`
	Label        string `json:"label"`
	Value        string `json:"value"`
	ArticleCount int64  `json:"article_count"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

var NilTag = Tag{}
