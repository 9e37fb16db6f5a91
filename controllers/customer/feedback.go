package customercontroller

import (
	"fmt"
	"net/http"

	"github.com/Youssef-M-Salama/E-Commerce-Website/controllers/web"
	"github.com/Youssef-M-Salama/E-Commerce-Website/services"
	"github.com/gin-gonic/gin"
)

// GET /Customer/Feedback
func FeedbackForm(env *web.Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		env.Render(c, http.StatusOK, "customer_feedback.html", gin.H{
			"Title": "Feedback",
			"Input": services.FeedbackInput{},
		})
	}
}

// POST /Customer/Feedback
func SubmitFeedback(env *web.Env, feedback *services.FeedbackService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input services.FeedbackInput
		if err := c.ShouldBind(&input); err != nil {
			env.Render(c, http.StatusBadRequest, "customer_feedback.html", gin.H{
				"Title": "Feedback", "Input": input, "Error": web.BindMessage(err),
			})
			return
		}

		entry, err := feedback.Submit(c.Request.Context(), input)
		if err != nil {
			status, msg := env.Failed(c, err, "submit feedback")
			env.Render(c, status, "customer_feedback.html", gin.H{
				"Title": "Feedback", "Input": input, "Error": msg,
			})
			return
		}

		env.Redirect(c, "/Customer/Feedback", web.FlashSuccess,
			fmt.Sprintf("Thank you, %s! Your feedback has been received.", entry.UserName))
	}
}

// GET /Customer/Faqs
func Faqs(env *web.Env, feedback *services.FeedbackService) gin.HandlerFunc {
	return func(c *gin.Context) {
		faqs, err := feedback.ListFaqs(c.Request.Context())
		if err != nil {
			status, msg := env.Failed(c, err, "list faqs")
			env.Render(c, status, "error.html", gin.H{"Title": "FAQs", "Message": msg})
			return
		}
		env.Render(c, http.StatusOK, "customer_faqs.html", gin.H{"Title": "FAQs", "Faqs": faqs})
	}
}
