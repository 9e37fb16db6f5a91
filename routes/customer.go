package routes

import (
	cartControllers "github.com/Youssef-M-Salama/E-Commerce-Website/controllers/cart"
	customercontroller "github.com/Youssef-M-Salama/E-Commerce-Website/controllers/customer"
	"github.com/Youssef-M-Salama/E-Commerce-Website/middleware"
	"github.com/gin-gonic/gin"
)

// SetupCustomerRoutes registers all "/Customer/*" endpoints. The storefront
// is public; profile and cart pages need a customer session.
func SetupCustomerRoutes(r *gin.Engine, h *Handlers) {
	env := h.Env

	customerGroup := r.Group("/Customer")
	customerGroup.Use(middleware.LoadCustomer(h.Sessions))
	{
		customerGroup.GET("/Index", customercontroller.Index(env, h.Catalog))
		customerGroup.GET("/ProductDetails/:id", customercontroller.ProductDetails(env, h.Catalog))
		customerGroup.GET("/Faqs", customercontroller.Faqs(env, h.Feedback))
		customerGroup.GET("/Feedback", customercontroller.FeedbackForm(env))
		customerGroup.POST("/Feedback", customercontroller.SubmitFeedback(env, h.Feedback))

		// ──────────────── Account ────────────────
		customerGroup.GET("/CustomerLogin", customercontroller.CustomerLoginForm(env))
		customerGroup.POST("/CustomerLogin", customercontroller.CustomerLogin(env, h.Accounts))
		customerGroup.POST("/CustomerRegistration", customercontroller.CustomerRegistration(env, h.Accounts))
		customerGroup.GET("/CustomerLogout", customercontroller.CustomerLogout(env))
		customerGroup.GET("/GetCartCount", cartControllers.GetCartCount(env, h.Carts))
	}

	guarded := customerGroup.Group("")
	guarded.Use(middleware.RequireCustomer(h.Sessions))
	{
		guarded.GET("/CustomerProfile", customercontroller.CustomerProfile(env, h.Accounts))
		guarded.POST("/CustomerProfile", customercontroller.UpdateCustomerProfile(env, h.Accounts))
		guarded.POST("/ChangeProfileImage", customercontroller.ChangeProfileImage(env, h.Accounts))

		// ──────────────── Cart ────────────────
		guarded.POST("/AddToCart", cartControllers.AddToCart(env, h.Carts))
		guarded.GET("/ViewCart", cartControllers.ViewCart(env, h.Carts))
		guarded.POST("/UpdateCartItem", cartControllers.UpdateCartItem(env, h.Carts))
		guarded.POST("/RemoveFromCart", cartControllers.RemoveFromCart(env, h.Carts))
	}
}
