package user

import "time"

type User struct {
	ID           int64     `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,max=255" example:"user@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"user@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

type RegisterResponse struct {
	Message string `json:"message" example:"User registered successfully."`
	UserID  int64  `json:"userId" example:"1"`
}

type LoginResponse struct {
	Message string `json:"message" example:"Login successful."`
	Token   string `json:"token"`
}
