package domain

// User is an application account. Password holds the bcrypt hash at rest; the
// one-time migration rehashes any legacy plaintext value on first load.
type User struct {
	Meta
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
