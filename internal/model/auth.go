package model

import "time"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"dateOfBirth"`
	BloodGroup  string `json:"bloodGroup"`
}

// TokenResponse is the body of successful login and register calls.
type TokenResponse struct {
	Token string       `json:"token"`
	User  *UserProfile `json:"user"`
}

// TokenClaims is the identity extracted from a verified bearer token.
type TokenClaims struct {
	UserID    int64
	Email     string
	TokenID   string
	ExpiresAt time.Time
}
