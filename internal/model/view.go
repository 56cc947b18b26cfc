package model

type View struct {
	ID        int64  `json:"id"`
	IP        string `json:"ip"`
	UserAgent string `json:"user_agent"`
	URL       string `json:"url"`
	Count     int64  `json:"count"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

var NilView = View{}

type SearchRecord struct {
	ID        int64  `json:"id"`
	Keyword   string `json:"keyword"`
	Count     int64  `json:"count"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

var NilSearchRecord = SearchRecord{}
