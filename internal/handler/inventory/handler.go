package inventory

import (
	"errors"
	"strconv"

	"caterfind/internal/domain"
	"caterfind/internal/errs"
	"caterfind/internal/handler/middleware"
	inventorysvc "caterfind/internal/service/inventory"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc inventorysvc.Service
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.GET("/api/inventory", ginx.W(h.List))
	server.GET("/api/inventory/low-stock", ginx.W(h.ListLowStock))
	server.POST("/api/inventory", ginx.B(h.Create))
	server.PUT("/api/inventory/:id", ginx.B(h.Update))
	server.DELETE("/api/inventory/:id", ginx.W(h.Delete))
}

func (h *Handler) List(ctx *ginx.Context) (ginx.Result, error) {
	items, err := h.svc.List(ctx.Request.Context(), middleware.UID(ctx.Context))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: h.toVOs(items)}, nil
}

func (h *Handler) ListLowStock(ctx *ginx.Context) (ginx.Result, error) {
	items, err := h.svc.ListLowStock(ctx.Request.Context(), middleware.UID(ctx.Context))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: h.toVOs(items)}, nil
}

func (h *Handler) Create(ctx *ginx.Context, req SaveItemReq) (ginx.Result, error) {
	item, err := h.svc.Create(ctx.Request.Context(), h.toDomain(req, 0, middleware.UID(ctx.Context)))
	if err != nil {
		return h.errResult(err)
	}
	return ginx.Result{Data: h.toVO(item)}, nil
}

func (h *Handler) Update(ctx *ginx.Context, req SaveItemReq) (ginx.Result, error) {
	id, err := strconv.ParseInt(ctx.Context.Param("id"), 10, 64)
	if err != nil {
		return invalidParameterResult, nil
	}
	if err := h.svc.Update(ctx.Request.Context(), h.toDomain(req, id, middleware.UID(ctx.Context))); err != nil {
		return h.errResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Delete(ctx *ginx.Context) (ginx.Result, error) {
	id, err := strconv.ParseInt(ctx.Context.Param("id"), 10, 64)
	if err != nil {
		return invalidParameterResult, nil
	}
	if err := h.svc.Delete(ctx.Request.Context(), middleware.UID(ctx.Context), id); err != nil {
		return h.errResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) errResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, errs.ErrInvalidParameter):
		return invalidParameterResult, nil
	case errors.Is(err, errs.ErrInventoryItemNotFound):
		return notFoundResult, nil
	case errors.Is(err, errs.ErrContactNotFound), errors.Is(err, errs.ErrContactOwnership):
		return dealerNotFoundResult, nil
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) toDomain(req SaveItemReq, id, catererID int64) domain.InventoryItem {
	return domain.InventoryItem{
		ID:              id,
		CatererID:       catererID,
		ItemName:        req.ItemName,
		Category:        domain.ItemCategory(req.Category),
		Quantity:        req.Quantity,
		Unit:            req.Unit,
		MinThreshold:    req.MinThreshold,
		DealerContactID: req.DealerContactID,
		DealerName:      req.DealerName,
		DealerPhone:     req.DealerPhone,
	}
}

func (h *Handler) toVOs(items []domain.InventoryItem) []ItemVO {
	return slice.Map(items, func(_ int, src domain.InventoryItem) ItemVO {
		return h.toVO(src)
	})
}

func (h *Handler) toVO(src domain.InventoryItem) ItemVO {
	return ItemVO{
		ID:              src.ID,
		ItemName:        src.ItemName,
		Category:        src.Category.String(),
		Quantity:        src.Quantity,
		Unit:            src.Unit,
		MinThreshold:    src.MinThreshold,
		LowStock:        src.IsLowStock(),
		DealerContactID: src.DealerContactID,
		DealerName:      src.DealerName,
		DealerPhone:     src.DealerPhone,
		Ctime:           src.Ctime,
		Utime:           src.Utime,
	}
}

func NewHandler(svc inventorysvc.Service) *Handler {
	return &Handler{svc: svc}
}
