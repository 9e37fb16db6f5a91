package adminController

import (
	"errors"
	"net/http"

	"github.com/Youssef-M-Salama/E-Commerce-Website/auth"
	"github.com/Youssef-M-Salama/E-Commerce-Website/controllers/web"
	"github.com/Youssef-M-Salama/E-Commerce-Website/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GET /Admin/Index
func Index(env *web.Env, dashboard *services.DashboardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		counts, err := dashboard.Counts(c.Request.Context())
		if err != nil {
			status, msg := env.Failed(c, err, "load dashboard")
			env.Render(c, status, "error.html", gin.H{"Title": "Dashboard", "Message": msg})
			return
		}

		env.Render(c, http.StatusOK, "admin_index.html", gin.H{
			"Title":      "Dashboard",
			"Customers":  counts.Customers,
			"Categories": counts.Categories,
			"Products":   counts.Products,
			"Feedback":   counts.Feedback,
		})
	}
}

// GET /Admin/Login
func LoginForm(env *web.Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := env.Sessions.PrincipalID(c.Request, auth.RoleAdmin); ok {
			c.Redirect(http.StatusFound, "/Admin/Index")
			return
		}
		env.Render(c, http.StatusOK, "admin_login.html", gin.H{"Title": "Admin login"})
	}
}

// POST /Admin/Login
func Login(env *web.Env, accounts *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.PostForm("adminEmail")
		password := c.PostForm("adminPassword")

		if email == "" || password == "" {
			env.Render(c, http.StatusBadRequest, "admin_login.html", gin.H{
				"Title": "Admin login",
				"Email": email,
				"Error": "Email and password are required.",
			})
			return
		}

		admin, err := accounts.AuthenticateAdmin(c.Request.Context(), email, password)
		if err != nil {
			status, msg := env.Failed(c, err, "admin login")
			env.Render(c, status, "admin_login.html", gin.H{"Title": "Admin login", "Email": email, "Error": msg})
			return
		}

		if err := env.Sessions.SignIn(c.Writer, c.Request, auth.RoleAdmin, admin.ID); err != nil {
			env.Logger.Error("admin session not saved", zap.Error(err))
			env.Render(c, http.StatusInternalServerError, "admin_login.html", gin.H{"Title": "Admin login", "Error": web.Message(err)})
			return
		}

		env.Logger.Info("admin signed in", zap.Uint("admin_id", admin.ID))
		c.Redirect(http.StatusFound, "/Admin/Index")
	}
}

// GET /Admin/Logout
func Logout(env *web.Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := env.Sessions.SignOut(c.Writer, c.Request, auth.RoleAdmin); err != nil {
			env.Logger.Warn("admin sign-out not saved", zap.Error(err))
		}
		c.Redirect(http.StatusFound, "/Admin/Login")
	}
}

// currentAdmin loads the signed-in admin. A session that points at a
// removed admin is signed out.
func currentAdmin(env *web.Env, accounts *services.AccountService, c *gin.Context) (gin.H, bool) {
	admin, err := accounts.GetAdmin(c.Request.Context(), auth.AdminID(c))
	if errors.Is(err, services.ErrNotFound) {
		_ = env.Sessions.SignOut(c.Writer, c.Request, auth.RoleAdmin)
		c.Redirect(http.StatusFound, "/Admin/Login")
		return nil, false
	}
	if err != nil {
		status, msg := env.Failed(c, err, "load admin")
		env.Render(c, status, "error.html", gin.H{"Title": "Profile", "Message": msg})
		return nil, false
	}
	return gin.H{"Title": "Profile", "Admin": admin}, true
}
