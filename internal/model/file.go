package model

type File struct {
	ID           int64  `json:"id"`
	OriginalName string `json:"original_name"`
	Filename     string `json:"filename"`
	Type         string `json:"type"`
	Size         int64  `json:"size"`
	URL          string `json:"url"`
	CreatedAt    string `json:"created_at"`
}

var NilFile = File{}
