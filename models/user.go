// user.go - Defines the User model and the role enumeration

package models

// User roles. Every user is exactly one of these.
const (
	RoleAdmin    = "admin"    // Full CRUD on every resource
	RoleCustomer = "customer" // Self-scoped access
)

var validRoles = []string{RoleAdmin, RoleCustomer}

// ValidRole reports whether r is a recognized role value.
func ValidRole(r string) bool {
	for _, v := range validRoles {
		if v == r {
			return true
		}
	}
	return false
}

type User struct { // User struct represents a user row in the database
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:100;not null" json:"name"`
	Email    string `gorm:"size:150;uniqueIndex;not null" json:"email"` // Must be lowercase, unique
	Password string `gorm:"not null" json:"-"`                          // bcrypt hash, never serialized
	Phone    string `gorm:"size:50" json:"phone"`
	Role     string `gorm:"size:20;not null;default:'customer'" json:"role"`
}
