package productcontroller

import (
	"fmt"
	"net/http"

	"github.com/Youssef-M-Salama/E-Commerce-Website/controllers/web"
	"github.com/Youssef-M-Salama/E-Commerce-Website/services"
	"github.com/gin-gonic/gin"
)

// productForm carries what the add/edit page needs.
type productForm struct {
	Title  string
	Action string
	Input  services.ProductInput
	Image  string
	Error  string
}

func renderProductForm(env *web.Env, catalog *services.CatalogService, c *gin.Context, status int, form productForm) {
	categories, err := catalog.ListCategories(c.Request.Context())
	if err != nil {
		code, msg := env.Failed(c, err, "list categories")
		env.Render(c, code, "error.html", gin.H{"Title": form.Title, "Message": msg})
		return
	}
	env.Render(c, status, "admin_product_form.html", gin.H{
		"Title":      form.Title,
		"Action":     form.Action,
		"Input":      form.Input,
		"Image":      form.Image,
		"Error":      form.Error,
		"Categories": categories,
	})
}

// GET /Admin/AddProduct
func AddProductForm(env *web.Env, catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		renderProductForm(env, catalog, c, http.StatusOK, productForm{Title: "Add product", Action: "/Admin/AddProduct"})
	}
}

// POST /Admin/AddProduct
// The image is required.
func AddProduct(env *web.Env, catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		form := productForm{Title: "Add product", Action: "/Admin/AddProduct"}

		if err := c.ShouldBind(&form.Input); err != nil {
			form.Error = web.BindMessage(err)
			renderProductForm(env, catalog, c, http.StatusBadRequest, form)
			return
		}
		image, _ := c.FormFile("ProductImage")

		product, err := catalog.CreateProduct(c.Request.Context(), form.Input, image)
		if err != nil {
			var status int
			status, form.Error = env.Failed(c, err, "create product")
			renderProductForm(env, catalog, c, status, form)
			return
		}

		env.Redirect(c, "/Admin/FetchProduct", web.FlashSuccess, fmt.Sprintf("%s added.", product.Name))
	}
}
