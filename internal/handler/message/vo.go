package message

import (
	"net/http"

	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult      = ginx.Result{Code: http.StatusInternalServerError, Msg: "系统错误"}
	invalidParameterResult = ginx.Result{Code: http.StatusBadRequest, Msg: "参数非法"}
	sendFailedResult       = ginx.Result{Code: http.StatusBadGateway, Msg: "所选渠道没有可用的联系方式或发送失败"}
)

type SendReq struct {
	Message    string  `json:"message"`
	ContactIDs []int64 `json:"contactIds"`
}

type SendResp struct {
	SentCount int64 `json:"sentCount"`
}

type ReorderReq struct {
	DealerName  string `json:"dealerName"`
	DealerPhone string `json:"dealerPhone"`
	// LinkedContactID 关联的经销商联系人，0表示手工填写
	LinkedContactID int64  `json:"linkedContactId"`
	Message         string `json:"message"`
}

type ReorderResp struct {
	Sent bool `json:"sent"`
}

type MessageVO struct {
	ID             int64  `json:"id"`
	ContactID      int64  `json:"contactId"`
	RecipientName  string `json:"recipientName"`
	RecipientPhone string `json:"recipientPhone"`
	Message        string `json:"message"`
	ContactMethod  string `json:"contactMethod"`
	Status         string `json:"status"`
	SentAt         int64  `json:"sentAt"`
}
