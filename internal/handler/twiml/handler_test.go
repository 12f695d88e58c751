package twiml

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestTwiml(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	server := gin.New()
	NewHandler().PublicRoutes(server)

	t.Run("带消息参数", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/twiml?msg=Delivery+tomorrow+9am", nil)
		recorder := httptest.NewRecorder()
		server.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Header().Get("Content-Type"), "xml")
		assert.Contains(t, recorder.Body.String(), `<Say voice="alice">Delivery tomorrow 9am</Say>`)
	})

	t.Run("缺消息参数_播报兜底文案", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/twiml", nil)
		recorder := httptest.NewRecorder()
		server.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "You have a new message from your caterer.")
	})

	t.Run("消息里的XML保留字符被转义", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/twiml?msg=a+%3C+b+%26+c", nil)
		recorder := httptest.NewRecorder()
		server.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "a &lt; b &amp; c")
	})
}
