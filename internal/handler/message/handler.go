package message

import (
	"fmt"

	"caterfind/internal/domain"
	"caterfind/internal/handler/middleware"
	messagesvc "caterfind/internal/service/message"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc messagesvc.Service
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/api/messages/send", ginx.B(h.Send))
	server.POST("/api/messages/reorder", ginx.B(h.Reorder))
	server.GET("/api/messages/logs", ginx.W(h.Logs))
}

// Send 群发。不管部分失败，统一回一句发了几条。
func (h *Handler) Send(ctx *ginx.Context, req SendReq) (ginx.Result, error) {
	if req.Message == "" || len(req.ContactIDs) == 0 {
		return invalidParameterResult, nil
	}
	sentCount, err := h.svc.SendBroadcast(ctx.Request.Context(),
		middleware.UID(ctx.Context), req.Message, req.ContactIDs)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg:  fmt.Sprintf("%d message(s) sent", sentCount),
		Data: SendResp{SentCount: sentCount},
	}, nil
}

func (h *Handler) Reorder(ctx *ginx.Context, req ReorderReq) (ginx.Result, error) {
	if req.Message == "" {
		return invalidParameterResult, nil
	}
	ok, err := h.svc.SendReorder(ctx.Request.Context(), domain.ReorderRequest{
		CatererID:       middleware.UID(ctx.Context),
		DealerName:      req.DealerName,
		DealerPhone:     req.DealerPhone,
		LinkedContactID: req.LinkedContactID,
		MessageText:     req.Message,
	})
	if err != nil {
		return systemErrorResult, err
	}
	if !ok {
		return sendFailedResult, nil
	}
	return ginx.Result{Msg: "OK", Data: ReorderResp{Sent: true}}, nil
}

func (h *Handler) Logs(ctx *ginx.Context) (ginx.Result, error) {
	msgs, err := h.svc.ListHistory(ctx.Request.Context(), middleware.UID(ctx.Context))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(msgs, func(_ int, src domain.Message) MessageVO {
			return MessageVO{
				ID:             src.ID,
				ContactID:      src.ContactID,
				RecipientName:  src.RecipientName,
				RecipientPhone: src.RecipientPhone,
				Message:        src.MessageText,
				ContactMethod:  src.ContactMethod.String(),
				Status:         src.Status.String(),
				SentAt:         src.SentAt.UnixMilli(),
			}
		}),
	}, nil
}

func NewHandler(svc messagesvc.Service) *Handler {
	return &Handler{svc: svc}
}
