package models

import "time"

type AdminRole string

const (
	RoleAdmin   AdminRole = "admin"
	RoleManager AdminRole = "manager"
)

type Admin struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      AdminRole `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is what a successful login returns: an opaque bearer
// token plus the authenticated admin's identity.
type AuthResponse struct {
	Token string `json:"token"`
	Admin Admin  `json:"admin"`
}
