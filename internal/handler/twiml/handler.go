package twiml

import (
	"encoding/xml"
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

// Handler 语音回调。Twilio接通被叫后回调这个地址，
// 拿到的XML决定电话里播报什么。必须是公开路由，
// Twilio不会带我们的登录态。
type Handler struct{}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.GET("/twiml", h.Twiml)
	server.POST("/twiml", h.Twiml)
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

// twimlResponse Twilio的语音指令文档
type twimlResponse struct {
	XMLName xml.Name `xml:"Response"`
	Say     struct {
		Voice string `xml:"voice,attr"`
		Text  string `xml:",chardata"`
	} `xml:"Say"`
}

func (h *Handler) Twiml(ctx *gin.Context) {
	msg := ctx.Query("msg")
	if msg == "" {
		msg = "You have a new message from your caterer."
	}
	resp := twimlResponse{}
	resp.Say.Voice = "alice"
	resp.Say.Text = msg
	ctx.XML(http.StatusOK, resp)
}

func NewHandler() *Handler {
	return &Handler{}
}
