package models

// Session struct for storing session data. Only public user fields go in
// here; the password hash never leaves the database layer.
type Session struct {
	Token     string `json:"token"`
	Username  string `json:"username"`
	CreatedAt string `json:"created_at"`
	ExpiresAt string `json:"expires_at"`
	UserAgent string `json:"user_agent"`
	IPAddress string `json:"ip_address"`
}
