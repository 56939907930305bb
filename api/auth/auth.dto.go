package auth

import (
	"fitstack.dev/api/api/user"
	"github.com/golang-jwt/jwt/v5"
)

type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	ClientIP string `json:"-"` // Not from request body, set by controller
}

type RegisterDTO struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type OAuthLoginDTO struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type JWTData struct {
	ID    string `json:"uid"`
	Email string `json:"email"`
	Role  string `json:"role"`
	JTI   string `json:"jti,omitempty"`
	jwt.RegisteredClaims
}

type LoginResponse struct {
	AuthToken    string     `json:"authToken"`
	RefreshToken string     `json:"refreshToken"`
	User         *user.User `json:"user"`
	RefreshJTI   string     `json:"-"`
}

type CookieData struct {
	Name  string
	Value string
}
