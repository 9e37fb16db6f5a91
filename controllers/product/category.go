package productcontroller

import (
	"fmt"
	"net/http"

	"github.com/Youssef-M-Salama/E-Commerce-Website/controllers/web"
	"github.com/Youssef-M-Salama/E-Commerce-Website/services"
	"github.com/gin-gonic/gin"
)

// GET /Admin/FetchCategory
func FetchCategory(env *web.Env, catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := catalog.ListCategories(c.Request.Context())
		if err != nil {
			status, msg := env.Failed(c, err, "list categories")
			env.Render(c, status, "error.html", gin.H{"Title": "Categories", "Message": msg})
			return
		}
		env.Render(c, http.StatusOK, "admin_categories.html", gin.H{"Title": "Categories", "Categories": categories})
	}
}

func renderCategoryForm(env *web.Env, c *gin.Context, status int, id uint, name, msg string) {
	data := gin.H{"Title": "Add category", "Action": "/Admin/AddCategory", "Name": name, "Error": msg}
	if id != 0 {
		data["Title"] = "Edit category"
		data["Action"] = fmt.Sprintf("/Admin/UpdateCategory/%d", id)
	}
	env.Render(c, status, "admin_category_form.html", data)
}

// GET /Admin/AddCategory
func AddCategoryForm(env *web.Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		renderCategoryForm(env, c, http.StatusOK, 0, "", "")
	}
}

// POST /Admin/AddCategory
func AddCategory(env *web.Env, catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input services.CategoryInput
		if err := c.ShouldBind(&input); err != nil {
			renderCategoryForm(env, c, http.StatusBadRequest, 0, input.Name, web.BindMessage(err))
			return
		}

		category, err := catalog.CreateCategory(c.Request.Context(), input)
		if err != nil {
			status, msg := env.Failed(c, err, "create category")
			renderCategoryForm(env, c, status, 0, input.Name, msg)
			return
		}

		env.Redirect(c, "/Admin/FetchCategory", web.FlashSuccess, fmt.Sprintf("Category '%s' added.", category.Name))
	}
}

// GET /Admin/UpdateCategory/:id
func UpdateCategoryForm(env *web.Env, catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := web.ParamID(c)
		category, err := catalog.GetCategory(c.Request.Context(), id)
		if err != nil {
			status, msg := env.Failed(c, err, "load category")
			env.Render(c, status, "error.html", gin.H{"Title": "Category", "Message": msg})
			return
		}
		renderCategoryForm(env, c, http.StatusOK, category.ID, category.Name, "")
	}
}

// POST /Admin/UpdateCategory/:id
func UpdateCategory(env *web.Env, catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := web.ParamID(c)

		var input services.CategoryInput
		if err := c.ShouldBind(&input); err != nil {
			renderCategoryForm(env, c, http.StatusBadRequest, id, input.Name, web.BindMessage(err))
			return
		}

		if _, err := catalog.UpdateCategory(c.Request.Context(), id, input); err != nil {
			status, msg := env.Failed(c, err, "update category")
			if status == http.StatusNotFound {
				env.Render(c, status, "error.html", gin.H{"Title": "Category", "Message": msg})
				return
			}
			renderCategoryForm(env, c, status, id, input.Name, msg)
			return
		}

		env.Redirect(c, "/Admin/FetchCategory", web.FlashSuccess, "Category updated.")
	}
}

// GET /Admin/DeletePermissionCategory/:id
func DeleteCategoryConfirm(env *web.Env, catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := web.ParamID(c)
		category, err := catalog.GetCategory(c.Request.Context(), id)
		if err != nil {
			status, msg := env.Failed(c, err, "load category")
			env.Render(c, status, "error.html", gin.H{"Title": "Category", "Message": msg})
			return
		}
		env.Render(c, http.StatusOK, "admin_confirm_delete.html", gin.H{
			"Title":  "Delete category",
			"Kind":   "category",
			"Label":  category.Name,
			"Action": fmt.Sprintf("/Admin/DeleteCategory/%d", category.ID),
			"Back":   "/Admin/FetchCategory",
		})
	}
}

// POST /Admin/DeleteCategory/:id
// A category that still has products is kept.
func DeleteCategory(env *web.Env, catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := web.ParamID(c)

		if err := catalog.DeleteCategory(c.Request.Context(), id); err != nil {
			_, msg := env.Failed(c, err, "delete category")
			env.Redirect(c, "/Admin/FetchCategory", web.FlashError, msg)
			return
		}

		env.Redirect(c, "/Admin/FetchCategory", web.FlashSuccess, "Category deleted.")
	}
}
