package customercontroller

import (
	"errors"
	"net/http"

	"github.com/Youssef-M-Salama/E-Commerce-Website/auth"
	"github.com/Youssef-M-Salama/E-Commerce-Website/controllers/web"
	"github.com/Youssef-M-Salama/E-Commerce-Website/models"
	"github.com/Youssef-M-Salama/E-Commerce-Website/services"
	"github.com/gin-gonic/gin"
)

// currentCustomer loads the signed-in customer; a session pointing at a
// deleted account is signed out.
func currentCustomer(env *web.Env, accounts *services.AccountService, c *gin.Context) (*models.Customer, bool) {
	customer, err := accounts.GetCustomer(c.Request.Context(), auth.CustomerID(c))
	if errors.Is(err, services.ErrNotFound) {
		_ = env.Sessions.SignOut(c.Writer, c.Request, auth.RoleCustomer)
		c.Redirect(http.StatusFound, auth.RoleCustomer.LoginPath())
		return nil, false
	}
	if err != nil {
		status, msg := env.Failed(c, err, "load customer")
		env.Render(c, status, "error.html", gin.H{"Title": "My profile", "Message": msg})
		return nil, false
	}
	return customer, true
}

// GET /Customer/CustomerProfile
func CustomerProfile(env *web.Env, accounts *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		customer, ok := currentCustomer(env, accounts, c)
		if !ok {
			return
		}
		env.Render(c, http.StatusOK, "customer_profile.html", gin.H{"Title": "My profile", "Customer": customer})
	}
}

// POST /Customer/CustomerProfile
// Only the profile fields are taken from the form; the account is always
// the signed-in one.
func UpdateCustomerProfile(env *web.Env, accounts *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		customer, ok := currentCustomer(env, accounts, c)
		if !ok {
			return
		}

		var input services.CustomerUpdate
		if err := c.ShouldBind(&input); err != nil {
			env.Render(c, http.StatusBadRequest, "customer_profile.html", gin.H{
				"Title": "My profile", "Customer": customer, "Error": web.BindMessage(err),
			})
			return
		}

		if _, err := accounts.UpdateCustomer(c.Request.Context(), customer.ID, input); err != nil {
			status, msg := env.Failed(c, err, "update customer profile")
			env.Render(c, status, "customer_profile.html", gin.H{
				"Title": "My profile", "Customer": customer, "Error": msg,
			})
			return
		}

		env.Redirect(c, "/Customer/Index", web.FlashSuccess, "Profile updated.")
	}
}

// POST /Customer/ChangeProfileImage
func ChangeProfileImage(env *web.Env, accounts *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, _ := c.FormFile("customerImage")

		if _, err := accounts.ChangeCustomerImage(c.Request.Context(), auth.CustomerID(c), file); err != nil {
			_, msg := env.Failed(c, err, "change customer image")
			env.Redirect(c, "/Customer/CustomerProfile", web.FlashError, msg)
			return
		}

		env.Redirect(c, "/Customer/CustomerProfile", web.FlashSuccess, "Profile image updated!")
	}
}
