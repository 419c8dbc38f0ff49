package domain

import "github.com/golang-jwt/jwt/v5"

// TokenClaims is the identity payload embedded in both access and refresh
// tokens. Two tokens issued together share identical claims and differ only in
// signing secret and expiry.
type TokenClaims struct {
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
	jwt.RegisteredClaims
}

// TokenPair is the access/refresh pair returned on register, login and refresh.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
