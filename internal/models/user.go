package models

// User is an account allowed into setup mode (map editing and import).
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"` // bcrypt hash
	Email    string `json:"email,omitempty"`
}
