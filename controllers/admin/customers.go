package adminController

import (
	"fmt"
	"net/http"

	"github.com/Youssef-M-Salama/E-Commerce-Website/controllers/web"
	"github.com/Youssef-M-Salama/E-Commerce-Website/models"
	"github.com/Youssef-M-Salama/E-Commerce-Website/services"
	"github.com/gin-gonic/gin"
)

// GET /Admin/FetchCustomer
func FetchCustomer(env *web.Env, accounts *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		customers, err := accounts.ListCustomers(c.Request.Context())
		if err != nil {
			status, msg := env.Failed(c, err, "list customers")
			env.Render(c, status, "error.html", gin.H{"Title": "Customers", "Message": msg})
			return
		}
		env.Render(c, http.StatusOK, "admin_customers.html", gin.H{"Title": "Customers", "Customers": customers})
	}
}

// loadCustomer resolves :id or renders the failure itself.
func loadCustomer(env *web.Env, accounts *services.AccountService, c *gin.Context) (*models.Customer, bool) {
	id, ok := web.ParamID(c)
	if !ok {
		env.Render(c, http.StatusNotFound, "error.html", gin.H{"Title": "Customer", "Message": "Customer not found."})
		return nil, false
	}
	customer, err := accounts.GetCustomer(c.Request.Context(), id)
	if err != nil {
		status, msg := env.Failed(c, err, "load customer")
		env.Render(c, status, "error.html", gin.H{"Title": "Customer", "Message": msg})
		return nil, false
	}
	return customer, true
}

// GET /Admin/CustomerDetails/:id
func CustomerDetails(env *web.Env, accounts *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		customer, ok := loadCustomer(env, accounts, c)
		if !ok {
			return
		}
		env.Render(c, http.StatusOK, "admin_customer_details.html", gin.H{"Title": customer.Name, "Customer": customer})
	}
}

// GET /Admin/UpdateCustomer/:id
func UpdateCustomerForm(env *web.Env, accounts *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		customer, ok := loadCustomer(env, accounts, c)
		if !ok {
			return
		}
		env.Render(c, http.StatusOK, "admin_customer_form.html", gin.H{"Title": "Edit customer", "Customer": customer})
	}
}

// POST /Admin/UpdateCustomer/:id
func UpdateCustomer(env *web.Env, accounts *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		customer, ok := loadCustomer(env, accounts, c)
		if !ok {
			return
		}

		var input services.CustomerUpdate
		if err := c.ShouldBind(&input); err != nil {
			renderCustomerForm(env, c, http.StatusBadRequest, customer, input, web.BindMessage(err))
			return
		}

		if _, err := accounts.UpdateCustomer(c.Request.Context(), customer.ID, input); err != nil {
			status, msg := env.Failed(c, err, "update customer")
			renderCustomerForm(env, c, status, customer, input, msg)
			return
		}

		env.Redirect(c, "/Admin/FetchCustomer", web.FlashSuccess, "Customer updated!")
	}
}

// renderCustomerForm shows the submitted values again next to msg.
func renderCustomerForm(env *web.Env, c *gin.Context, status int, customer *models.Customer, input services.CustomerUpdate, msg string) {
	edited := *customer
	edited.Name = input.Name
	edited.Email = input.Email
	edited.Phone = input.Phone
	edited.Gender = input.Gender
	edited.Country = input.Country
	edited.City = input.City
	edited.Address = input.Address

	env.Render(c, status, "admin_customer_form.html", gin.H{
		"Title":    "Edit customer",
		"Customer": &edited,
		"Error":    msg,
	})
}

// GET /Admin/DeletePermission/:id
func DeleteCustomerConfirm(env *web.Env, accounts *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		customer, ok := loadCustomer(env, accounts, c)
		if !ok {
			return
		}
		env.Render(c, http.StatusOK, "admin_confirm_delete.html", gin.H{
			"Title":  "Delete customer",
			"Kind":   "customer",
			"Label":  customer.Name + " (" + customer.Email + ")",
			"Action": fmt.Sprintf("/Admin/DeleteCustomer/%d", customer.ID),
			"Back":   "/Admin/FetchCustomer",
		})
	}
}

// POST /Admin/DeleteCustomer/:id
func DeleteCustomer(env *web.Env, accounts *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := web.ParamID(c)
		if !ok {
			env.Redirect(c, "/Admin/FetchCustomer", web.FlashError, "Customer not found.")
			return
		}

		if err := accounts.DeleteCustomer(c.Request.Context(), id); err != nil {
			_, msg := env.Failed(c, err, "delete customer")
			env.Redirect(c, "/Admin/FetchCustomer", web.FlashError, msg)
			return
		}

		env.Redirect(c, "/Admin/FetchCustomer", web.FlashSuccess, "Customer deleted.")
	}
}
