package contact

import (
	"errors"
	"strconv"

	"caterfind/internal/domain"
	"caterfind/internal/errs"
	"caterfind/internal/handler/middleware"
	contactsvc "caterfind/internal/service/contact"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc contactsvc.Service
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.GET("/api/contacts", ginx.W(h.List))
	server.GET("/api/contacts/:id", ginx.W(h.Get))
	server.POST("/api/contacts", ginx.B(h.Create))
	server.PUT("/api/contacts/:id", ginx.B(h.Update))
	server.DELETE("/api/contacts/:id", ginx.W(h.Delete))
}

func (h *Handler) List(ctx *ginx.Context) (ginx.Result, error) {
	contacts, err := h.svc.List(ctx.Request.Context(), middleware.UID(ctx.Context))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(contacts, func(_ int, src domain.Contact) ContactVO {
			return toVO(src)
		}),
	}, nil
}

func (h *Handler) Get(ctx *ginx.Context) (ginx.Result, error) {
	id, err := pathID(ctx)
	if err != nil {
		return invalidParameterResult, nil
	}
	contact, err := h.svc.Get(ctx.Request.Context(), middleware.UID(ctx.Context), id)
	if err != nil {
		if isNotFound(err) {
			return notFoundResult, nil
		}
		return systemErrorResult, err
	}
	return ginx.Result{Data: toVO(contact)}, nil
}

func (h *Handler) Create(ctx *ginx.Context, req SaveContactReq) (ginx.Result, error) {
	contact, err := h.svc.Create(ctx.Request.Context(), domain.Contact{
		CatererID: middleware.UID(ctx.Context),
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		Preferred: domain.ContactMethod(req.PreferredContactMethod),
		Labels:    req.Labels,
	})
	if err != nil {
		if errors.Is(err, errs.ErrInvalidParameter) {
			return invalidParameterResult, nil
		}
		return systemErrorResult, err
	}
	return ginx.Result{Data: toVO(contact)}, nil
}

func (h *Handler) Update(ctx *ginx.Context, req SaveContactReq) (ginx.Result, error) {
	id, err := pathID(ctx)
	if err != nil {
		return invalidParameterResult, nil
	}
	err = h.svc.Update(ctx.Request.Context(), domain.Contact{
		ID:        id,
		CatererID: middleware.UID(ctx.Context),
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		Preferred: domain.ContactMethod(req.PreferredContactMethod),
		Labels:    req.Labels,
	})
	if err != nil {
		if errors.Is(err, errs.ErrInvalidParameter) {
			return invalidParameterResult, nil
		}
		if isNotFound(err) {
			return notFoundResult, nil
		}
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Delete(ctx *ginx.Context) (ginx.Result, error) {
	id, err := pathID(ctx)
	if err != nil {
		return invalidParameterResult, nil
	}
	err = h.svc.Delete(ctx.Request.Context(), middleware.UID(ctx.Context), id)
	if err != nil {
		if isNotFound(err) {
			return notFoundResult, nil
		}
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

// isNotFound 越权访问对外也按不存在处理，不泄露联系人归属
func isNotFound(err error) bool {
	return errors.Is(err, errs.ErrContactNotFound) || errors.Is(err, errs.ErrContactOwnership)
}

func pathID(ctx *ginx.Context) (int64, error) {
	return strconv.ParseInt(ctx.Context.Param("id"), 10, 64)
}

func toVO(src domain.Contact) ContactVO {
	return ContactVO{
		ID:                     src.ID,
		Name:                   src.Name,
		Phone:                  src.Phone,
		Email:                  src.Email,
		PreferredContactMethod: src.Preferred.String(),
		Labels:                 src.Labels,
		Ctime:                  src.Ctime,
		Utime:                  src.Utime,
	}
}

func NewHandler(svc contactsvc.Service) *Handler {
	return &Handler{svc: svc}
}
