package productcontroller

import (
	"net/http"

	"github.com/Youssef-M-Salama/E-Commerce-Website/controllers/web"
	"github.com/Youssef-M-Salama/E-Commerce-Website/models"
	"github.com/Youssef-M-Salama/E-Commerce-Website/services"
	"github.com/gin-gonic/gin"
)

// loadProduct resolves :id or renders the failure itself.
func loadProduct(env *web.Env, catalog *services.CatalogService, c *gin.Context) (*models.Product, bool) {
	id, _ := web.ParamID(c)
	product, err := catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		status, msg := env.Failed(c, err, "load product")
		env.Render(c, status, "error.html", gin.H{"Title": "Product", "Message": msg})
		return nil, false
	}
	return product, true
}

// GET /Admin/ProductDetails/:id
func ProductDetails(env *web.Env, catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, ok := loadProduct(env, catalog, c)
		if !ok {
			return
		}
		env.Render(c, http.StatusOK, "admin_product_details.html", gin.H{"Title": product.Name, "Product": product})
	}
}
