package api

import (
	"github.com/nekocare/backend/pkg/entity"
	jwtservice "github.com/nekocare/backend/pkg/jwt_service"
)

type JWTServiceI interface {
	GenerateToken(user *entity.User) (string, error)
	ParseToken(tokenString string) (*jwtservice.Claims, error)
}
