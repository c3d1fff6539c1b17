package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"rss-summarizer/internal/trace"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestTraceGeneratesID(t *testing.T) {
	r := gin.New()
	r.Use(RequestTrace())

	var seen string
	r.GET("/", func(c *gin.Context) {
		seen = trace.RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Len(t, seen, 32)
	assert.Equal(t, seen, w.Header().Get(trace.HeaderRequestID))
	assert.Equal(t, "0", w.Header().Get(trace.HeaderSpanID))
}

func TestRequestTraceKeepsIncomingIDAndBody(t *testing.T) {
	r := gin.New()
	r.Use(RequestTrace())

	var body string
	r.POST("/", func(c *gin.Context) {
		b, _ := c.GetRawData()
		body = string(b)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"url":"x"}`))
	req.Header.Set(trace.HeaderRequestID, "abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc", w.Header().Get(trace.HeaderRequestID))
	assert.Equal(t, `{"url":"x"}`, body)
}
