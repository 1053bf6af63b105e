package models

import "time"

// User represents a registered account.
// The password hash never leaves the server: it is excluded from JSON and
// every outward-facing response is built from [PublicUser] instead.
type User struct {
	// ID is the UUID identifier of the user.
	ID string `json:"id"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	// Email is unique across all accounts and stored lower-cased.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user password.
	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PublicUser is the credential-free projection of [User] returned to clients.
type PublicUser struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// Public returns the public view of the user.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}

// RegisterRequest is the payload of POST /api/auth/register.
type RegisterRequest struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// LoginRequest is the payload of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse is returned after a successful registration.
type RegisterResponse struct {
	Message string     `json:"message"`
	User    PublicUser `json:"user"`
	Token   string     `json:"token"`
}

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	Message string     `json:"message"`
	Token   string     `json:"token"`
	User    PublicUser `json:"user"`
}

// Dashboard aggregates the owner's name with shipment counters.
type Dashboard struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	TotalShipments int64  `json:"totalShipments"`
	TotalExports   int64  `json:"totalExports"`
	TotalImports   int64  `json:"totalImports"`
}
