package adminController

import (
	"fmt"
	"net/http"

	"github.com/Youssef-M-Salama/E-Commerce-Website/controllers/web"
	"github.com/Youssef-M-Salama/E-Commerce-Website/services"
	"github.com/gin-gonic/gin"
)

// GET /Admin/FetchFeedback
func FetchFeedback(env *web.Env, feedback *services.FeedbackService) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries, err := feedback.List(c.Request.Context())
		if err != nil {
			status, msg := env.Failed(c, err, "list feedback")
			env.Render(c, status, "error.html", gin.H{"Title": "Feedback", "Message": msg})
			return
		}
		env.Render(c, http.StatusOK, "admin_feedback.html", gin.H{"Title": "Feedback", "Feedback": entries})
	}
}

// GET /Admin/DeletePermissionFeedback/:id
func DeleteFeedbackConfirm(env *web.Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := web.ParamID(c)
		if !ok {
			env.Render(c, http.StatusNotFound, "error.html", gin.H{"Title": "Feedback", "Message": "Feedback not found."})
			return
		}
		env.Render(c, http.StatusOK, "admin_confirm_delete.html", gin.H{
			"Title":  "Delete feedback",
			"Kind":   "feedback",
			"Label":  fmt.Sprintf("feedback #%d", id),
			"Action": fmt.Sprintf("/Admin/DeleteFeedback/%d", id),
			"Back":   "/Admin/FetchFeedback",
		})
	}
}

// POST /Admin/DeleteFeedback/:id
func DeleteFeedback(env *web.Env, feedback *services.FeedbackService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := web.ParamID(c)
		if !ok {
			env.Redirect(c, "/Admin/FetchFeedback", web.FlashError, "Feedback not found.")
			return
		}

		if err := feedback.Delete(c.Request.Context(), id); err != nil {
			_, msg := env.Failed(c, err, "delete feedback")
			env.Redirect(c, "/Admin/FetchFeedback", web.FlashError, msg)
			return
		}

		env.Redirect(c, "/Admin/FetchFeedback", web.FlashSuccess, "Feedback deleted.")
	}
}
