package models

// UserRole represents the available roles for the RBAC system.
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleTeacher UserRole = "teacher"
	RoleStudent UserRole = "student"
)

// Valid reports whether the role is one of the recognized literals.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleTeacher, RoleStudent:
		return true
	}
	return false
}

// User represents an application account stored in the users table.
// The password hash is never serialized.
type User struct {
	ID           int64    `db:"id" json:"id"`
	Username     string   `db:"username" json:"username"`
	PasswordHash string   `db:"password" json:"-"`
	Role         UserRole `db:"role" json:"role"`
	FullName     string   `db:"full_name" json:"fullName"`
	Email        *string  `db:"email" json:"email"`
}
