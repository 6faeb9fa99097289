package model

import "time"

type User struct {
	UserID       int64     `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	DisplayName  string    `json:"name" db:"display_name"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Roles        []string  `json:"roles" db:"roles"`
	Capabilities []string  `json:"-" db:"capabilities"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Roles     []string `json:"roles"`
	IsManager bool     `json:"is_manager"`
}

type TokenResponse struct {
	Token     string       `json:"token"`
	ExpiresAt int64        `json:"expires_at"` // unix seconds
	User      UserResponse `json:"user"`
}
