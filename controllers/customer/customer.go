package customercontroller

import (
	"net/http"

	"github.com/Youssef-M-Salama/E-Commerce-Website/auth"
	"github.com/Youssef-M-Salama/E-Commerce-Website/controllers/web"
	"github.com/Youssef-M-Salama/E-Commerce-Website/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GET /Customer/Index
func Index(env *web.Env, catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		categories, err := catalog.ListCategories(ctx)
		if err != nil {
			status, msg := env.Failed(c, err, "list categories")
			env.Render(c, status, "error.html", gin.H{"Title": "Shop", "Message": msg})
			return
		}
		products, err := catalog.ListProducts(ctx)
		if err != nil {
			status, msg := env.Failed(c, err, "list products")
			env.Render(c, status, "error.html", gin.H{"Title": "Shop", "Message": msg})
			return
		}

		env.Render(c, http.StatusOK, "customer_index.html", gin.H{
			"Title":      "Shop",
			"Categories": categories,
			"Products":   products,
		})
	}
}

// GET /Customer/ProductDetails/:id
func ProductDetails(env *web.Env, catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := web.ParamID(c)
		product, err := catalog.GetProduct(c.Request.Context(), id)
		if err != nil {
			status, msg := env.Failed(c, err, "load product")
			env.Render(c, status, "error.html", gin.H{"Title": "Product", "Message": msg})
			return
		}
		env.Render(c, http.StatusOK, "customer_product_details.html", gin.H{"Title": product.Name, "Product": product})
	}
}

func renderLogin(env *web.Env, c *gin.Context, status int, data gin.H) {
	data["Title"] = "Login"
	if _, ok := data["Registration"]; !ok {
		data["Registration"] = services.Registration{}
	}
	env.Render(c, status, "customer_login.html", data)
}

// GET /Customer/CustomerLogin
func CustomerLoginForm(env *web.Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		renderLogin(env, c, http.StatusOK, gin.H{})
	}
}

// POST /Customer/CustomerLogin
func CustomerLogin(env *web.Env, accounts *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.PostForm("customerEmail")
		password := c.PostForm("customerPassword")

		customer, err := accounts.AuthenticateCustomer(c.Request.Context(), email, password)
		if err != nil {
			status, msg := env.Failed(c, err, "customer login")
			renderLogin(env, c, status, gin.H{"Email": email, "Error": msg})
			return
		}

		if err := env.Sessions.SignIn(c.Writer, c.Request, auth.RoleCustomer, customer.ID); err != nil {
			env.Logger.Error("customer session not saved", zap.Error(err))
			renderLogin(env, c, http.StatusInternalServerError, gin.H{"Email": email, "Error": web.Message(err)})
			return
		}

		c.Redirect(http.StatusFound, "/Customer/Index")
	}
}

// POST /Customer/CustomerRegistration
func CustomerRegistration(env *web.Env, accounts *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input services.Registration
		if err := c.ShouldBind(&input); err != nil {
			input.Password = ""
			renderLogin(env, c, http.StatusBadRequest, gin.H{"Registration": input, "Error": web.BindMessage(err)})
			return
		}

		if _, err := accounts.RegisterCustomer(c.Request.Context(), input); err != nil {
			status, msg := env.Failed(c, err, "register customer")
			input.Password = ""
			renderLogin(env, c, status, gin.H{"Registration": input, "Error": msg})
			return
		}

		env.Redirect(c, "/Customer/CustomerLogin", web.FlashSuccess, "Registration complete. Please log in.")
	}
}

// GET /Customer/CustomerLogout
func CustomerLogout(env *web.Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := env.Sessions.SignOut(c.Writer, c.Request, auth.RoleCustomer); err != nil {
			env.Logger.Warn("customer sign-out not saved", zap.Error(err))
		}
		c.Redirect(http.StatusFound, "/Customer/Index")
	}
}
