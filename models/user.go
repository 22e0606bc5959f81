package models

import "time"

const (
	RoleOwner    = "owner"
	RoleOperator = "operator"
)

// User is a dashboard account: the restaurant owner or an invited
// viewing operator. Operators can read everything but mutate nothing.
type User struct {
	ID           string     `json:"id" gorm:"primaryKey"`
	RestaurantID string     `json:"restaurant_id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"` // owner | operator
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// OperatorInvite is a pending email invite to view a restaurant's dashboard
type OperatorInvite struct {
	ID           string     `json:"id" gorm:"primaryKey"`
	RestaurantID string     `json:"restaurant_id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	TokenHash    string     `json:"-"`
	ExpiresAt    time.Time  `json:"expires_at"`
	AcceptedAt   *time.Time `json:"accepted_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func (OperatorInvite) TableName() string {
	return "operator_invites"
}

// RegisterRequest creates an owner account together with its restaurant
type RegisterRequest struct {
	RestaurantName string `json:"restaurant_name" binding:"required,min=2"`
	Email          string `json:"email" binding:"required,email"`
	Name           string `json:"name" binding:"required,min=2"`
	Password       string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateInviteRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name" binding:"required,min=2"`
}

type AcceptInviteRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}
