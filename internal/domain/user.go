package domain

import "time"

// UserRole represents the role assigned to a user
type UserRole string

const (
	RoleClient   UserRole = "client"
	RolePromoter UserRole = "promoter"
	RoleAdmin    UserRole = "admin"
)

// User represents a registered user of the booking site
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Phone        *string
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
