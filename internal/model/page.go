package model

type Page struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Path        string `json:"path"`
	Cover       string `json:"cover,omitempty"`
	Content     string `json:"content,omitempty"`
	Status      string `json:"status"`
	Order       int32  `json:"order"`
	Views       int32  `json:"views"`
	PublishedAt string `json:"published_at,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

var NilPage = Page{}
