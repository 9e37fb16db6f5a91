package cartControllers

import (
	"net/http"
	"strconv"

	"github.com/Youssef-M-Salama/E-Commerce-Website/auth"
	"github.com/Youssef-M-Salama/E-Commerce-Website/controllers/web"
	"github.com/Youssef-M-Salama/E-Commerce-Website/services"
	"github.com/gin-gonic/gin"
)

// quantity reads the quantity field; a missing one means 1.
func quantity(c *gin.Context) (int, bool) {
	raw := c.PostForm("quantity")
	if raw == "" {
		return 1, true
	}
	q, err := strconv.Atoi(raw)
	return q, err == nil
}

// POST /Customer/AddToCart
// An optional returnTo field sends the customer back to the page the form
// was on, such as the product details page.
func AddToCart(env *web.Env, carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		back := web.LocalPath(c.PostForm("returnTo"), "/Customer/", "/Customer/Index")

		productID, ok := web.FormID(c, "productId")
		if !ok {
			env.Redirect(c, back, web.FlashError, "Product not found.")
			return
		}
		q, ok := quantity(c)
		if !ok {
			env.Redirect(c, back, web.FlashError, web.Message(services.ErrInvalidQuantity))
			return
		}

		if _, err := carts.AddToCart(c.Request.Context(), auth.CustomerID(c), productID, q); err != nil {
			_, msg := env.Failed(c, err, "add to cart")
			env.Redirect(c, back, web.FlashError, msg)
			return
		}

		env.Redirect(c, back, web.FlashSuccess, "Added to cart.")
	}
}

// GET /Customer/ViewCart
func ViewCart(env *web.Env, carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := carts.ListActive(c.Request.Context(), auth.CustomerID(c))
		if err != nil {
			status, msg := env.Failed(c, err, "view cart")
			env.Render(c, status, "error.html", gin.H{"Title": "My cart", "Message": msg})
			return
		}

		env.Render(c, http.StatusOK, "customer_cart.html", gin.H{
			"Title": "My cart",
			"Items": items,
			"Total": services.CartTotal(items),
		})
	}
}

// POST /Customer/UpdateCartItem
func UpdateCartItem(env *web.Env, carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID, ok := web.FormID(c, "cartId")
		if !ok {
			env.Redirect(c, "/Customer/ViewCart", web.FlashError, "Cart item not found.")
			return
		}
		q, ok := quantity(c)
		if !ok {
			env.Redirect(c, "/Customer/ViewCart", web.FlashError, web.Message(services.ErrInvalidQuantity))
			return
		}

		if err := carts.UpdateQuantity(c.Request.Context(), cartID, auth.CustomerID(c), q); err != nil {
			status, msg := env.Failed(c, err, "update cart item")
			if status == http.StatusForbidden {
				c.AbortWithStatus(http.StatusForbidden)
				return
			}
			env.Redirect(c, "/Customer/ViewCart", web.FlashError, msg)
			return
		}

		env.Redirect(c, "/Customer/ViewCart", web.FlashSuccess, "Cart updated.")
	}
}

// POST /Customer/RemoveFromCart
func RemoveFromCart(env *web.Env, carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID, ok := web.FormID(c, "cartId")
		if !ok {
			env.Redirect(c, "/Customer/ViewCart", web.FlashError, "Cart item not found.")
			return
		}

		if err := carts.RemoveFromCart(c.Request.Context(), cartID, auth.CustomerID(c)); err != nil {
			status, msg := env.Failed(c, err, "remove cart item")
			if status == http.StatusForbidden {
				c.AbortWithStatus(http.StatusForbidden)
				return
			}
			env.Redirect(c, "/Customer/ViewCart", web.FlashError, msg)
			return
		}

		env.Redirect(c, "/Customer/ViewCart", web.FlashSuccess, "Item removed.")
	}
}

// GET /Customer/GetCartCount
// Anonymous callers get a count of 0.
func GetCartCount(env *web.Env, carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		count, err := carts.CountItems(c.Request.Context(), auth.CustomerID(c))
		if err != nil {
			status, _ := env.Failed(c, err, "count cart items")
			c.JSON(status, gin.H{"error": "Failed to count cart items"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": count})
	}
}
