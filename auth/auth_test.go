package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("Admin@123")
	require.NoError(t, err)

	assert.NotEqual(t, "Admin@123", hash)
	assert.True(t, CheckPassword(hash, "Admin@123"))
	assert.False(t, CheckPassword(hash, "admin@123"))
	assert.False(t, CheckPassword("not-a-hash", "Admin@123"))
}

// carry copies cookies set on rec into a fresh request.
func carry(rec *httptest.ResponseRecorder) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestSessionStore_SignInSignOut(t *testing.T) {
	store := NewSessionStore("test-secret", time.Hour, false)

	rec := httptest.NewRecorder()
	require.NoError(t, store.SignIn(rec, httptest.NewRequest(http.MethodPost, "/", nil), RoleCustomer, 42))

	req := carry(rec)
	id, ok := store.PrincipalID(req, RoleCustomer)
	require.True(t, ok)
	assert.Equal(t, uint(42), id)

	_, ok = store.PrincipalID(req, RoleAdmin)
	assert.False(t, ok, "customer sign-in must not authenticate an admin")

	rec = httptest.NewRecorder()
	require.NoError(t, store.SignOut(rec, req, RoleCustomer))
	_, ok = store.PrincipalID(carry(rec), RoleCustomer)
	assert.False(t, ok)
}

func TestSessionStore_RejectsForeignCookie(t *testing.T) {
	signer := NewSessionStore("one-secret", time.Hour, false)
	reader := NewSessionStore("other-secret", time.Hour, false)

	rec := httptest.NewRecorder()
	require.NoError(t, signer.SignIn(rec, httptest.NewRequest(http.MethodPost, "/", nil), RoleAdmin, 7))

	_, ok := reader.PrincipalID(carry(rec), RoleAdmin)
	assert.False(t, ok)
}

func TestSessionStore_Flashes(t *testing.T) {
	store := NewSessionStore("test-secret", time.Hour, false)

	rec := httptest.NewRecorder()
	require.NoError(t, store.AddFlash(rec, httptest.NewRequest(http.MethodPost, "/", nil), "success", "Category added."))

	req := carry(rec)
	assert.Equal(t, []string{"Category added."}, store.Flashes(httptest.NewRecorder(), req, "success"))
	assert.Empty(t, store.Flashes(httptest.NewRecorder(), req, "error"))
}

func TestPrincipalContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Zero(t, CustomerID(c))

	SetPrincipal(c, Principal{Role: RoleCustomer, ID: 3})
	assert.Equal(t, uint(3), CustomerID(c))
	assert.Zero(t, AdminID(c))
}

func TestRolePaths(t *testing.T) {
	assert.Equal(t, "adminSession", RoleAdmin.SessionKey())
	assert.Equal(t, "customerSession", RoleCustomer.SessionKey())
	assert.Equal(t, "/Admin/Login", RoleAdmin.LoginPath())
	assert.Equal(t, "/Customer/CustomerLogin", RoleCustomer.LoginPath())
}
