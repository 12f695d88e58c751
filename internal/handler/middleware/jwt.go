package middleware

import (
	"net/http"
	"strings"

	"caterfind/internal/service/auth"
	"github.com/gin-gonic/gin"
)

const uidKey = "uid"

// UID 从请求上下文取登录用户ID，登录中间件之后才有值
func UID(ctx *gin.Context) int64 {
	return ctx.GetInt64(uidKey)
}

// NewJWTAuth 登录校验中间件。从 Authorization 头取 Bearer 令牌，
// 校验通过后把用户ID放进请求上下文。
func NewJWTAuth(svc auth.Service) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		uid, err := svc.VerifyToken(token)
		if err != nil {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		ctx.Set(uidKey, uid)
		ctx.Next()
	}
}
