package auth

import "github.com/gin-gonic/gin"

// Principal is the authenticated caller, resolved once per request by the
// session middleware.
type Principal struct {
	Role Role
	ID   uint
}

func contextKey(role Role) string {
	return "principal:" + string(role)
}

// SetPrincipal stores p on the request context.
func SetPrincipal(c *gin.Context, p Principal) {
	c.Set(contextKey(p.Role), p)
}

// CurrentPrincipal returns the role's principal for this request.
func CurrentPrincipal(c *gin.Context, role Role) (Principal, bool) {
	v, ok := c.Get(contextKey(role))
	if !ok {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}

// CustomerID is the signed-in customer's id, or 0.
func CustomerID(c *gin.Context) uint {
	p, _ := CurrentPrincipal(c, RoleCustomer)
	return p.ID
}

// AdminID is the signed-in admin's id, or 0.
func AdminID(c *gin.Context) uint {
	p, _ := CurrentPrincipal(c, RoleAdmin)
	return p.ID
}
