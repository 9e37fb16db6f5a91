package productcontroller

import (
	"fmt"
	"net/http"

	"github.com/Youssef-M-Salama/E-Commerce-Website/controllers/web"
	"github.com/Youssef-M-Salama/E-Commerce-Website/services"
	"github.com/gin-gonic/gin"
)

// GET /Admin/UpdateProduct/:id
func UpdateProductForm(env *web.Env, catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, ok := loadProduct(env, catalog, c)
		if !ok {
			return
		}
		renderProductForm(env, catalog, c, http.StatusOK, productForm{
			Title:  "Edit product",
			Action: fmt.Sprintf("/Admin/UpdateProduct/%d", product.ID),
			Input: services.ProductInput{
				Name:        product.Name,
				Price:       product.Price,
				Description: product.Description,
				CategoryID:  product.CategoryID,
			},
			Image: product.Image,
		})
	}
}

// POST /Admin/UpdateProduct/:id
// Without a new image the current one is kept.
func UpdateProduct(env *web.Env, catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, ok := loadProduct(env, catalog, c)
		if !ok {
			return
		}
		form := productForm{
			Title:  "Edit product",
			Action: fmt.Sprintf("/Admin/UpdateProduct/%d", product.ID),
			Image:  product.Image,
		}

		if err := c.ShouldBind(&form.Input); err != nil {
			form.Error = web.BindMessage(err)
			renderProductForm(env, catalog, c, http.StatusBadRequest, form)
			return
		}
		image, err := c.FormFile("ProductImage")
		if err != nil {
			image = nil
		}

		if _, err := catalog.UpdateProduct(c.Request.Context(), product.ID, form.Input, image); err != nil {
			var status int
			status, form.Error = env.Failed(c, err, "update product")
			renderProductForm(env, catalog, c, status, form)
			return
		}

		env.Redirect(c, "/Admin/FetchProduct", web.FlashSuccess, "Product updated!")
	}
}
