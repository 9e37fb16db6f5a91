package productcontroller

import (
	"net/http"

	"github.com/Youssef-M-Salama/E-Commerce-Website/controllers/web"
	"github.com/Youssef-M-Salama/E-Commerce-Website/services"
	"github.com/gin-gonic/gin"
)

// GET /Admin/FetchProduct
func FetchProduct(env *web.Env, catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := catalog.ListProducts(c.Request.Context())
		if err != nil {
			status, msg := env.Failed(c, err, "list products")
			env.Render(c, status, "error.html", gin.H{"Title": "Products", "Message": msg})
			return
		}
		env.Render(c, http.StatusOK, "admin_products.html", gin.H{"Title": "Products", "Products": products})
	}
}
