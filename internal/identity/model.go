package identity

import "time"

// User represents a registered account.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
}

// RegisterInput is the payload accepted by Service.Register.
type RegisterInput struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// Credentials request structure.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
