package model

// User roles and account states.
const (
	USER_ROLE_ADMIN   = "admin"
	USER_ROLE_VISITOR = "visitor"

	USER_STATUS_ACTIVE = "active"
	USER_STATUS_LOCKED = "locked"
)

// User never carries the password hash: the hash stays in storage rows.
type User struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Avatar    string `json:"avatar,omitempty"`
	Role      string `json:"role"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

var NilUser = User{}
