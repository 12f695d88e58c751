package auth

import (
	"errors"
	"net/http"

	"caterfind/internal/errs"
	authsvc "caterfind/internal/service/auth"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc authsvc.Service
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/api/auth/register", ginx.B(h.Register))
	server.POST("/api/auth/login", ginx.B(h.Login))
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

// Register 注册商家账号
func (h *Handler) Register(ctx *ginx.Context, req RegisterReq) (ginx.Result, error) {
	user, err := h.svc.Register(ctx.Request.Context(), req.Email, req.Password, req.BusinessName)
	if err != nil {
		if errors.Is(err, errs.ErrUserDuplicate) {
			return ginx.Result{Code: http.StatusConflict, Msg: "邮箱已注册"}, nil
		}
		if errors.Is(err, errs.ErrInvalidParameter) {
			return invalidParameterResult, nil
		}
		return systemErrorResult, err
	}
	return ginx.Result{Data: UserVO{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role.String(),
	}}, nil
}

// Login 登录并签发令牌
func (h *Handler) Login(ctx *ginx.Context, req LoginReq) (ginx.Result, error) {
	user, token, err := h.svc.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidCredentials) {
			return ginx.Result{Code: http.StatusUnauthorized, Msg: "邮箱或口令不正确"}, nil
		}
		return systemErrorResult, err
	}
	return ginx.Result{Data: LoginResp{
		Token: token,
		User: UserVO{
			ID:    user.ID,
			Email: user.Email,
			Role:  user.Role.String(),
		},
	}}, nil
}

func NewHandler(svc authsvc.Service) *Handler {
	return &Handler{svc: svc}
}
