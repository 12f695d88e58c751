package inventory

import (
	"net/http"

	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult      = ginx.Result{Code: http.StatusInternalServerError, Msg: "系统错误"}
	invalidParameterResult = ginx.Result{Code: http.StatusBadRequest, Msg: "参数非法"}
	notFoundResult         = ginx.Result{Code: http.StatusNotFound, Msg: "库存条目不存在"}
	dealerNotFoundResult   = ginx.Result{Code: http.StatusBadRequest, Msg: "关联的经销商联系人不存在"}
)

type SaveItemReq struct {
	ItemName string `json:"itemName"`
	// Category GRAINS/VEGETABLES/SPICES/DAIRY/EQUIPMENT/OTHER
	Category     string  `json:"category"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	MinThreshold float64 `json:"minThreshold"`
	// DealerContactID 非0时经销商姓名和号码以该联系人为准
	DealerContactID int64  `json:"dealerContactId"`
	DealerName      string `json:"dealerName"`
	DealerPhone     string `json:"dealerPhone"`
}

type ItemVO struct {
	ID              int64   `json:"id"`
	ItemName        string  `json:"itemName"`
	Category        string  `json:"category"`
	Quantity        float64 `json:"quantity"`
	Unit            string  `json:"unit"`
	MinThreshold    float64 `json:"minThreshold"`
	LowStock        bool    `json:"lowStock"`
	DealerContactID int64   `json:"dealerContactId"`
	DealerName      string  `json:"dealerName"`
	DealerPhone     string  `json:"dealerPhone"`
	Ctime           int64   `json:"ctime"`
	Utime           int64   `json:"utime"`
}
