package model

type Comment struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Content   string    `json:"content"`
	Pass      bool      `json:"pass"`
	UserAgent string    `json:"user_agent,omitempty"`
	HostID    string    `json:"host_id"`
	URL       string    `json:"url,omitempty"`
	ParentID  int64     `json:"parent_id,omitempty"`
	Children  []Comment `json:"children,omitempty"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

var NilComment = Comment{}
