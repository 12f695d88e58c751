package dashboard

import (
	"net/http"

	"caterfind/internal/handler/middleware"
	dashboardsvc "caterfind/internal/service/dashboard"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

var systemErrorResult = ginx.Result{Code: http.StatusInternalServerError, Msg: "系统错误"}

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc dashboardsvc.Service
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.GET("/api/dashboard/summary", ginx.W(h.Summary))
}

func (h *Handler) Summary(ctx *ginx.Context) (ginx.Result, error) {
	summary, err := h.svc.Summary(ctx.Request.Context(), middleware.UID(ctx.Context))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: SummaryVO{
		TotalContacts: summary.TotalContacts,
		LowStockCount: summary.LowStockCount,
		TotalMessages: summary.TotalMessages,
	}}, nil
}

type SummaryVO struct {
	TotalContacts int64 `json:"totalContacts"`
	LowStockCount int64 `json:"lowStockCount"`
	TotalMessages int64 `json:"totalMessages"`
}

func NewHandler(svc dashboardsvc.Service) *Handler {
	return &Handler{svc: svc}
}
