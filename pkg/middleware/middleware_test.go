package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/narasux/chemreact/pkg/common/errcode"
	"github.com/narasux/chemreact/pkg/utils/ctxx"
	"github.com/narasux/chemreact/pkg/utils/ginx"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(middlewares ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(middlewares...)
	r.GET("/ping", func(c *gin.Context) {
		ginx.SetResp(c, http.StatusOK, ctxx.GetRequestID(c.Request.Context()))
	})
	return r
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	r := newEngine(RequestID())

	w := serve(r, httptest.NewRequest(http.MethodGet, "/ping", nil))
	generated := w.Header().Get(ginx.RequestIDHeaderKey)
	assert.Len(t, generated, 32)
	assert.Contains(t, w.Body.String(), `"data":"`+generated+`"`)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(ginx.RequestIDHeaderKey, "0123456789abcdef0123456789abcdef")
	w = serve(r, req)
	assert.Equal(t, "0123456789abcdef0123456789abcdef", w.Header().Get(ginx.RequestIDHeaderKey))

	// 长度不合法时重新生成
	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(ginx.RequestIDHeaderKey, "short")
	w = serve(r, req)
	assert.NotEqual(t, "short", w.Header().Get(ginx.RequestIDHeaderKey))
}

func TestRateLimit(t *testing.T) {
	r := newEngine(RateLimit(2))

	newReq := func(ip string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = ip + ":12345"
		return req
	}

	assert.Equal(t, http.StatusOK, serve(r, newReq("10.0.0.1")).Code)
	assert.Equal(t, http.StatusOK, serve(r, newReq("10.0.0.1")).Code)

	w := serve(r, newReq("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "30", w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), `"code":`+strconv.Itoa(errcode.TooManyRequests))

	// 不同客户端单独计数
	assert.Equal(t, http.StatusOK, serve(r, newReq("10.0.0.2")).Code)
}

func TestRateLimitDisabled(t *testing.T) {
	r := newEngine(RateLimit(0))
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, "/ping", nil)).Code)
	}
}

func TestCors(t *testing.T) {
	r := newEngine(Cors([]string{"http://localhost:5173"}))

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := serve(r, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	w = serve(r, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCorsAllowAll(t *testing.T) {
	r := newEngine(Cors([]string{"*"}))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://any.example.com")
	w := serve(r, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestLogger(t *testing.T) {
	r := newEngine(RequestID(), Logger())
	r.GET("/fail", func(c *gin.Context) {
		ginx.SetErrResp(c, http.StatusBadRequest, errcode.InvalidParams, "bad input")
	})

	assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, "/ping?x=1", nil)).Code)
	w := serve(r, httptest.NewRequest(http.MethodGet, "/fail", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "bad input")
}
