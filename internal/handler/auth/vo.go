package auth

import (
	"net/http"

	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult      = ginx.Result{Code: http.StatusInternalServerError, Msg: "系统错误"}
	invalidParameterResult = ginx.Result{Code: http.StatusBadRequest, Msg: "参数非法"}
)

type RegisterReq struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	BusinessName string `json:"businessName"`
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserVO struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type LoginResp struct {
	Token string `json:"token"`
	User  UserVO `json:"user"`
}
