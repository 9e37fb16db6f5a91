package adminController

import (
	"net/http"

	"github.com/Youssef-M-Salama/E-Commerce-Website/auth"
	"github.com/Youssef-M-Salama/E-Commerce-Website/controllers/web"
	"github.com/Youssef-M-Salama/E-Commerce-Website/services"
	"github.com/gin-gonic/gin"
)

// GET /Admin/Profile
func Profile(env *web.Env, accounts *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, ok := currentAdmin(env, accounts, c)
		if !ok {
			return
		}
		env.Render(c, http.StatusOK, "admin_profile.html", data)
	}
}

// POST /Admin/Profile
func UpdateProfile(env *web.Env, accounts *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input services.AdminUpdate
		if err := c.ShouldBind(&input); err != nil {
			renderProfileError(env, accounts, c, http.StatusBadRequest, web.BindMessage(err))
			return
		}

		if _, err := accounts.UpdateAdminProfile(c.Request.Context(), auth.AdminID(c), input); err != nil {
			status, msg := env.Failed(c, err, "update admin profile")
			renderProfileError(env, accounts, c, status, msg)
			return
		}

		env.Redirect(c, "/Admin/Profile", web.FlashSuccess, "Profile updated successfully!")
	}
}

// POST /Admin/ChangeProfileImage
func ChangeProfileImage(env *web.Env, accounts *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, _ := c.FormFile("imageFile")

		if _, err := accounts.ChangeAdminImage(c.Request.Context(), auth.AdminID(c), file); err != nil {
			status, msg := env.Failed(c, err, "change admin image")
			renderProfileError(env, accounts, c, status, msg)
			return
		}

		env.Redirect(c, "/Admin/Profile", web.FlashSuccess, "Profile image updated!")
	}
}

func renderProfileError(env *web.Env, accounts *services.AccountService, c *gin.Context, status int, msg string) {
	data, ok := currentAdmin(env, accounts, c)
	if !ok {
		return
	}
	data["Error"] = msg
	env.Render(c, status, "admin_profile.html", data)
}
