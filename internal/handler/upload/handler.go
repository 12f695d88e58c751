package upload

import (
	"net/http"

	"caterfind/internal/handler/middleware"
	uploadsvc "caterfind/internal/service/upload"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var (
	systemErrorResult = ginx.Result{Code: http.StatusInternalServerError, Msg: "系统错误"}
	badFileResult     = ginx.Result{Code: http.StatusBadRequest, Msg: "文件缺失或非法"}
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc    uploadsvc.Service
	logger *elog.Component
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/api/files/upload", ginx.W(h.Upload))
	server.DELETE("/api/files", ginx.W(h.Delete))
}

// Upload multipart 表单上传，字段名 file
func (h *Handler) Upload(ctx *ginx.Context) (ginx.Result, error) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil || fileHeader.Size == 0 {
		return badFileResult, nil
	}
	src, err := fileHeader.Open()
	if err != nil {
		return badFileResult, nil
	}
	defer func() { _ = src.Close() }()

	path, err := h.svc.Save(ctx.Request.Context(), fileHeader.Filename, src)
	if err != nil {
		h.logger.Error("文件上传失败",
			elog.Int64("userID", middleware.UID(ctx.Context)),
			elog.String("filename", fileHeader.Filename),
			elog.FieldErr(err))
		return systemErrorResult, err
	}
	return ginx.Result{Data: UploadResp{URL: path}}, nil
}

// Delete 按上传时返回的URL删除文件，url 放查询参数
func (h *Handler) Delete(ctx *ginx.Context) (ginx.Result, error) {
	fileURL := ctx.Context.Query("url")
	if fileURL == "" {
		return badFileResult, nil
	}
	if err := h.svc.Delete(ctx.Request.Context(), fileURL); err != nil {
		h.logger.Error("文件删除失败",
			elog.Int64("userID", middleware.UID(ctx.Context)),
			elog.String("url", fileURL),
			elog.FieldErr(err))
		return badFileResult, nil
	}
	return ginx.Result{Msg: "OK"}, nil
}

type UploadResp struct {
	URL string `json:"url"`
}

func NewHandler(svc uploadsvc.Service) *Handler {
	return &Handler{svc: svc, logger: elog.DefaultLogger}
}
