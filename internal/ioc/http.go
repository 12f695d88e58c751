package ioc

import (
	"caterfind/internal/handler/middleware"
	"caterfind/internal/service/auth"
	"github.com/ecodeclub/ginx"
	"github.com/gotomicro/ego/server/egin"
)

// InitWebServer 组装HTTP服务。公开路由先注册，
// 然后挂登录中间件，之后注册的私有路由都要带令牌访问。
func InitWebServer(authSvc auth.Service, handlers []ginx.Handler) *egin.Component {
	server := egin.Load("server.http").Build()
	for _, h := range handlers {
		h.PublicRoutes(server.Engine)
	}
	server.Use(middleware.NewJWTAuth(authSvc))
	for _, h := range handlers {
		h.PrivateRoutes(server.Engine)
	}
	return server
}
