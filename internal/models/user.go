package models

// ValidRoles defines allowed user roles
var ValidRoles = map[string]bool{
	"admin": true,
	"user":  true,
}

// User represents an account in the users collection.
//
// Password is stored and compared in plain text. That is the persisted
// contract of the existing users.json files; do not reuse this type for
// anything that needs real credential handling.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
}

// PublicUser is the API-facing view of a User with the password stripped
type PublicUser struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
}

// Public returns the user without its password
func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
