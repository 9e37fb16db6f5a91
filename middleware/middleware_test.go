package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Youssef-M-Salama/E-Commerce-Website/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func signedInRequest(t *testing.T, store *auth.SessionStore, role auth.Role, id uint) *http.Request {
	t.Helper()
	rec := httptest.NewRecorder()
	require.NoError(t, store.SignIn(rec, httptest.NewRequest(http.MethodGet, "/", nil), role, id))

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func guardedRouter(guard gin.HandlerFunc, role auth.Role) *gin.Engine {
	r := gin.New()
	r.GET("/guarded", guard, func(c *gin.Context) {
		p, ok := auth.CurrentPrincipal(c, role)
		c.JSON(http.StatusOK, gin.H{"id": p.ID, "ok": ok})
	})
	return r
}

func TestRequireCustomer(t *testing.T) {
	store := auth.NewSessionStore("secret", time.Hour, false)
	r := guardedRouter(RequireCustomer(store), auth.RoleCustomer)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/guarded", nil))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/Customer/CustomerLogin", rec.Header().Get("Location"))

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, signedInRequest(t, store, auth.RoleCustomer, 5))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":5,"ok":true}`, rec.Body.String())
}

func TestRequireAdmin_IgnoresCustomerSession(t *testing.T) {
	store := auth.NewSessionStore("secret", time.Hour, false)
	r := guardedRouter(RequireAdmin(store), auth.RoleAdmin)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, signedInRequest(t, store, auth.RoleCustomer, 5))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/Admin/Login", rec.Header().Get("Location"))

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, signedInRequest(t, store, auth.RoleAdmin, 1))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoadCustomer_Anonymous(t *testing.T) {
	store := auth.NewSessionStore("secret", time.Hour, false)
	r := guardedRouter(LoadCustomer(store), auth.RoleCustomer)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/guarded", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":0,"ok":false}`, rec.Body.String())
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := gin.New()
	r.Use(RequestLogger(zap.New(core)))
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zap.WarnLevel, entries[0].Level)
	assert.Equal(t, "/missing", entries[0].ContextMap()["path"])
	assert.EqualValues(t, 404, entries[0].ContextMap()["status"])
}
