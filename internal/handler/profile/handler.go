package profile

import (
	"errors"
	"net/http"

	"caterfind/internal/domain"
	"caterfind/internal/errs"
	"caterfind/internal/handler/middleware"
	profilesvc "caterfind/internal/service/profile"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

var (
	systemErrorResult = ginx.Result{Code: http.StatusInternalServerError, Msg: "系统错误"}
	notFoundResult    = ginx.Result{Code: http.StatusNotFound, Msg: "经营资料不存在"}
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc profilesvc.Service
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.GET("/api/profile", ginx.W(h.Get))
	server.PUT("/api/profile", ginx.B(h.Save))
}

func (h *Handler) Get(ctx *ginx.Context) (ginx.Result, error) {
	profile, err := h.svc.Get(ctx.Request.Context(), middleware.UID(ctx.Context))
	if err != nil {
		if errors.Is(err, errs.ErrProfileNotFound) {
			return notFoundResult, nil
		}
		return systemErrorResult, err
	}
	return ginx.Result{Data: toVO(profile)}, nil
}

// Save 评分不从请求里收，商家改不了自己的评分
func (h *Handler) Save(ctx *ginx.Context, req SaveProfileReq) (ginx.Result, error) {
	profile, err := h.svc.Save(ctx.Request.Context(), domain.CateringProfile{
		UserID:         middleware.UID(ctx.Context),
		BusinessName:   req.BusinessName,
		Description:    req.Description,
		PrimaryPhone:   req.PrimaryPhone,
		AlternatePhone: req.AlternatePhone,
		Email:          req.Email,
		StreetAddress:  req.StreetAddress,
		Area:           req.Area,
		City:           req.City,
		Landmark:       req.Landmark,
		ServiceRadius:  req.ServiceRadius,
		ImageURL:       req.ImageURL,
		BusinessPhotos: req.BusinessPhotos,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: toVO(profile)}, nil
}

func toVO(src domain.CateringProfile) ProfileVO {
	return ProfileVO{
		ID:             src.ID,
		BusinessName:   src.BusinessName,
		Description:    src.Description,
		PrimaryPhone:   src.PrimaryPhone,
		AlternatePhone: src.AlternatePhone,
		Email:          src.Email,
		StreetAddress:  src.StreetAddress,
		Area:           src.Area,
		City:           src.City,
		Landmark:       src.Landmark,
		ServiceRadius:  src.ServiceRadius,
		Rating:         src.Rating,
		ImageURL:       src.ImageURL,
		BusinessPhotos: src.BusinessPhotos,
	}
}

func NewHandler(svc profilesvc.Service) *Handler {
	return &Handler{svc: svc}
}
