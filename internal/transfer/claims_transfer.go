package transfer

import "github.com/golang-jwt/jwt/v5"

type CustomClaims struct {
	Subject string `json:"sub_name"`
	jwt.RegisteredClaims
}
