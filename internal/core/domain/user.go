package domain

import "github.com/go-openapi/strfmt"

type UserRole string

const (
	Admin    UserRole = "ADMIN"
	Customer UserRole = "CUSTOMER"
)

var UserRoles = []UserRole{Admin, Customer}

// swagger:model domain.UserProfile
type UserProfile struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Role      UserRole        `json:"role"`
	Phone     string          `json:"phone,omitempty"`
	Address   string          `json:"address,omitempty"`
	CreatedAt strfmt.DateTime `json:"createdAt"`
}

func (u *UserProfile) IsAdmin() bool {
	return u != nil && u.Role == Admin
}

type UserPayload struct {
	Name    string   `json:"name"`
	Phone   string   `json:"phone,omitempty"`
	Address string   `json:"address,omitempty"`
	Role    UserRole `json:"role"`
}

type RegisterPayload struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Phone    string `json:"phone,omitempty"`
}
