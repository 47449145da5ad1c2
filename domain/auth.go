package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessLogin = "login successful"
	MessageSuccessGetMe = "success get profile"

	MessageFailedLogin = "failed to login"
	MessageFailedGetMe = "failed to get profile"

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAdminNotFound      = errors.New("admin not found")
)

type (
	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	AdminResponse struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		Email     string    `json:"email"`
		Role      string    `json:"role"`
		CreatedAt time.Time `json:"created_at"`
	}

	LoginResponse struct {
		Token string        `json:"token"`
		Admin AdminResponse `json:"admin"`
	}
)
