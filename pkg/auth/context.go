package auth

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/liora/internal/domain/user"
)

type contextKey string

const (
	// userKey é a chave usada para armazenar o usuário no contexto
	userKey contextKey = "current_user"

	ginUserKey = "current_user"
)

// SetUserContext define o usuário autenticado no contexto
func SetUserContext(ctx context.Context, u *user.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// UserFromContext obtém o usuário autenticado do contexto, ou nil
func UserFromContext(ctx context.Context) *user.User {
	if u, ok := ctx.Value(userKey).(*user.User); ok {
		return u
	}
	return nil
}

// GetCurrentUser obtém o usuário autenticado de um contexto do Gin, ou nil
func GetCurrentUser(c *gin.Context) *user.User {
	if val, exists := c.Get(ginUserKey); exists {
		if u, ok := val.(*user.User); ok {
			return u
		}
	}
	return UserFromContext(c.Request.Context())
}
