package middleware

import (
	"net/http"

	"github.com/Youssef-M-Salama/E-Commerce-Website/auth"
	"github.com/gin-gonic/gin"
)

// RequireAdmin redirects to the admin login page unless the session carries
// an admin id.
func RequireAdmin(store *auth.SessionStore) gin.HandlerFunc {
	return requireRole(store, auth.RoleAdmin)
}

// RequireCustomer redirects to the customer login page unless the session
// carries a customer id.
func RequireCustomer(store *auth.SessionStore) gin.HandlerFunc {
	return requireRole(store, auth.RoleCustomer)
}

func requireRole(store *auth.SessionStore, role auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := store.PrincipalID(c.Request, role)
		if !ok {
			c.Redirect(http.StatusFound, role.LoginPath())
			c.Abort()
			return
		}

		auth.SetPrincipal(c, auth.Principal{Role: role, ID: id})
		c.Next()
	}
}

// LoadCustomer sets the customer principal when one is signed in and
// otherwise lets the request through anonymously.
func LoadCustomer(store *auth.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id, ok := store.PrincipalID(c.Request, auth.RoleCustomer); ok {
			auth.SetPrincipal(c, auth.Principal{Role: auth.RoleCustomer, ID: id})
		}
		c.Next()
	}
}
