package routes

import (
	adminController "github.com/Youssef-M-Salama/E-Commerce-Website/controllers/admin"
	feedbackcontroller "github.com/Youssef-M-Salama/E-Commerce-Website/controllers/feedback"
	productcontroller "github.com/Youssef-M-Salama/E-Commerce-Website/controllers/product"
	"github.com/Youssef-M-Salama/E-Commerce-Website/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes registers all "/Admin/*" endpoints. Everything but the
// login pages requires an admin session.
func SetupAdminRoutes(r *gin.Engine, h *Handlers) {
	env := h.Env

	adminGroup := r.Group("/Admin")
	adminGroup.GET("/Login", adminController.LoginForm(env))
	adminGroup.POST("/Login", adminController.Login(env, h.Accounts))
	adminGroup.GET("/Logout", adminController.Logout(env))

	guarded := adminGroup.Group("")
	guarded.Use(middleware.RequireAdmin(h.Sessions))
	{
		guarded.GET("", adminController.Index(env, h.Dashboard))
		guarded.GET("/Index", adminController.Index(env, h.Dashboard))

		// ─────────── Profile ───────────
		guarded.GET("/Profile", adminController.Profile(env, h.Accounts))
		guarded.POST("/Profile", adminController.UpdateProfile(env, h.Accounts))
		guarded.POST("/ChangeProfileImage", adminController.ChangeProfileImage(env, h.Accounts))

		// ─────────── Customer Management ───────────
		guarded.GET("/FetchCustomer", adminController.FetchCustomer(env, h.Accounts))
		guarded.GET("/CustomerDetails/:id", adminController.CustomerDetails(env, h.Accounts))
		guarded.GET("/UpdateCustomer/:id", adminController.UpdateCustomerForm(env, h.Accounts))
		guarded.POST("/UpdateCustomer/:id", adminController.UpdateCustomer(env, h.Accounts))
		guarded.GET("/DeletePermission/:id", adminController.DeleteCustomerConfirm(env, h.Accounts))
		guarded.POST("/DeleteCustomer/:id", adminController.DeleteCustomer(env, h.Accounts))

		// ─────────── Category Management ───────────
		guarded.GET("/FetchCategory", productcontroller.FetchCategory(env, h.Catalog))
		guarded.GET("/AddCategory", productcontroller.AddCategoryForm(env))
		guarded.POST("/AddCategory", productcontroller.AddCategory(env, h.Catalog))
		guarded.GET("/UpdateCategory/:id", productcontroller.UpdateCategoryForm(env, h.Catalog))
		guarded.POST("/UpdateCategory/:id", productcontroller.UpdateCategory(env, h.Catalog))
		guarded.GET("/DeletePermissionCategory/:id", productcontroller.DeleteCategoryConfirm(env, h.Catalog))
		guarded.POST("/DeleteCategory/:id", productcontroller.DeleteCategory(env, h.Catalog))

		// ─────────── Product Management ───────────
		guarded.GET("/FetchProduct", productcontroller.FetchProduct(env, h.Catalog))
		guarded.GET("/ProductDetails/:id", productcontroller.ProductDetails(env, h.Catalog))
		guarded.GET("/AddProduct", productcontroller.AddProductForm(env, h.Catalog))
		guarded.POST("/AddProduct", productcontroller.AddProduct(env, h.Catalog))
		guarded.GET("/UpdateProduct/:id", productcontroller.UpdateProductForm(env, h.Catalog))
		guarded.POST("/UpdateProduct/:id", productcontroller.UpdateProduct(env, h.Catalog))
		guarded.GET("/DeletePermissionProduct/:id", productcontroller.DeleteProductConfirm(env, h.Catalog))
		guarded.POST("/DeleteProduct/:id", productcontroller.DeleteProduct(env, h.Catalog))
		guarded.GET("/ExportProducts", productcontroller.ExportProductsToExcel(env, h.Catalog))
		guarded.POST("/ImportProducts", productcontroller.ImportProductsFromExcel(env, h.Catalog))

		// ─────────── Feedback ───────────
		guarded.GET("/FetchFeedback", adminController.FetchFeedback(env, h.Feedback))
		guarded.GET("/DeletePermissionFeedback/:id", adminController.DeleteFeedbackConfirm(env))
		guarded.POST("/DeleteFeedback/:id", adminController.DeleteFeedback(env, h.Feedback))
		guarded.GET("/FeedbackFeed", feedbackcontroller.FeedbackWebSocketHandler(h.Hub))
	}
}
