package domain

// Role is the closed set of access levels a user can hold. Keeping it typed
// prevents typo-class privilege bugs that a raw string field would allow.
type Role string

const (
	RoleGuest Role = "guest"
	RoleAdmin Role = "admin"
)

// User models a registered account. Email is the natural key: registration is
// idempotent by email and carts are scoped to it.
type User struct {
	ID    string `json:"id" bson:"_id,omitempty"`
	Email string `json:"email" bson:"email"`
	Name  string `json:"name,omitempty" bson:"name,omitempty"`
	Role  Role   `json:"role" bson:"role"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
