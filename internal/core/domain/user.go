package domain

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User models a provisioned account. Passwords are stored only as bcrypt
// hashes; the hash never leaves the server.
type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}
