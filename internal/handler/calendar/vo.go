package calendar

import (
	"net/http"

	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult      = ginx.Result{Code: http.StatusInternalServerError, Msg: "系统错误"}
	invalidParameterResult = ginx.Result{Code: http.StatusBadRequest, Msg: "参数非法"}
	notFoundResult         = ginx.Result{Code: http.StatusNotFound, Msg: "日程不存在"}
	pastDateResult         = ginx.Result{Code: http.StatusBadRequest, Msg: "不能操作过去的日期"}
)

type CreateEventReq struct {
	// EventDate 格式 2006-01-02
	EventDate     string `json:"eventDate"`
	EventHostName string `json:"eventHostName"`
	ManagedBy     string `json:"managedBy"`
	Location      string `json:"location"`
}

type EventVO struct {
	ID            int64  `json:"id"`
	EventDate     string `json:"eventDate"`
	EventHostName string `json:"eventHostName"`
	ManagedBy     string `json:"managedBy"`
	Location      string `json:"location"`
	Ctime         int64  `json:"ctime"`
}

type SetAvailabilityReq struct {
	Date string `json:"date"`
	// Status available/busy，空串表示清除标记
	Status string `json:"status"`
}

type AvailabilityVO struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}
