package contact

import (
	"net/http"

	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult      = ginx.Result{Code: http.StatusInternalServerError, Msg: "系统错误"}
	invalidParameterResult = ginx.Result{Code: http.StatusBadRequest, Msg: "参数非法"}
	notFoundResult         = ginx.Result{Code: http.StatusNotFound, Msg: "联系人不存在"}
)

type SaveContactReq struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	// PreferredContactMethod EMAIL/SMS/CALL
	PreferredContactMethod string   `json:"preferredContactMethod"`
	Labels                 []string `json:"labels"`
}

type ContactVO struct {
	ID                     int64    `json:"id"`
	Name                   string   `json:"name"`
	Phone                  string   `json:"phone"`
	Email                  string   `json:"email"`
	PreferredContactMethod string   `json:"preferredContactMethod"`
	Labels                 []string `json:"labels"`
	Ctime                  int64    `json:"ctime"`
	Utime                  int64    `json:"utime"`
}
