package productcontroller

import (
	"fmt"
	"net/http"

	"github.com/Youssef-M-Salama/E-Commerce-Website/controllers/web"
	"github.com/Youssef-M-Salama/E-Commerce-Website/services"
	"github.com/gin-gonic/gin"
)

// GET /Admin/DeletePermissionProduct/:id
func DeleteProductConfirm(env *web.Env, catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, ok := loadProduct(env, catalog, c)
		if !ok {
			return
		}
		env.Render(c, http.StatusOK, "admin_confirm_delete.html", gin.H{
			"Title":  "Delete product",
			"Kind":   "product",
			"Label":  product.Name,
			"Action": fmt.Sprintf("/Admin/DeleteProduct/%d", product.ID),
			"Back":   "/Admin/FetchProduct",
		})
	}
}

// POST /Admin/DeleteProduct/:id
// Cart rows holding the product and its image go with it.
func DeleteProduct(env *web.Env, catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := web.ParamID(c)

		if err := catalog.DeleteProduct(c.Request.Context(), id); err != nil {
			_, msg := env.Failed(c, err, "delete product")
			env.Redirect(c, "/Admin/FetchProduct", web.FlashError, msg)
			return
		}

		env.Redirect(c, "/Admin/FetchProduct", web.FlashSuccess, "Product deleted.")
	}
}
