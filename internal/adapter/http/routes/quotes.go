package routes

import (
	"yuanli_transport/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathInquiries = "/inquiries"
	PathQuotes    = "/quotes"
	PathDashboard = "/dashboard"
	PathEmails    = "/emails"
)

func addInquiryRoutes(rg *gin.RouterGroup, inquiryHandler *handlers.InquiryHandler) {
	inquiries := rg.Group(PathInquiries)
	{
		// Public quote-request form + its single autosave slot.
		inquiries.POST("", inquiryHandler.SubmitInquiry)
		inquiries.GET("/draft", inquiryHandler.GetDraft)
		inquiries.PUT("/draft", inquiryHandler.SaveDraft)
		inquiries.DELETE("/draft", inquiryHandler.ClearDraft)
	}
}

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.GET("", quoteHandler.ListQuotes)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.GET("/:id/document", quoteHandler.GetQuoteDocument)
		quotes.PATCH("/:id/status", quoteHandler.UpdateStatus)
		quotes.PATCH("/:id/assignee", quoteHandler.AssignHandler)
		quotes.PATCH("/:id/business", quoteHandler.UpdateBusiness)
		quotes.POST("/:id/quick-quote", quoteHandler.QuickQuote)
		quotes.POST("/:id/advance", quoteHandler.AdvanceQuote)
		quotes.DELETE("/:id", quoteHandler.DeleteQuote)
	}
}

func addDashboardRoutes(rg *gin.RouterGroup, dashboardHandler *handlers.DashboardHandler) {
	dashboard := rg.Group(PathDashboard)
	{
		dashboard.GET("/overview", dashboardHandler.GetOverview)
		dashboard.GET("/kanban", dashboardHandler.GetKanban)
	}
}

func addEmailRoutes(rg *gin.RouterGroup, emailHandler *handlers.EmailTriageHandler) {
	emails := rg.Group(PathEmails)
	{
		emails.GET("", emailHandler.ListEmails)
		emails.GET("/:id", emailHandler.OpenEmail)
		emails.POST("/:id/analyze", emailHandler.AnalyzeEmail)
		emails.POST("/:id/quote", emailHandler.CreateQuoteFromEmail)
	}
}
