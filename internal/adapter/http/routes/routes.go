package routes

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"

	"yuanli_transport/internal/adapter/http/handlers"
	repository2 "yuanli_transport/internal/adapter/persistence/repository"
	"yuanli_transport/internal/infrastructure/database"
	"yuanli_transport/internal/infrastructure/documents"
	"yuanli_transport/internal/infrastructure/extraction"
	"yuanli_transport/internal/usecase"
	"yuanli_transport/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ctx := context.Background()

	ddb := database.ConnectDynamoDB()
	if os.Getenv("DYNAMODB_ENDPOINT") != "" {
		// Local DynamoDB starts empty; create the tables on boot.
		if err := database.EnsureTable(ctx, ddb, getenvDefault("QUOTES_TABLE", "yuanli_quotes"), "id"); err != nil {
			log.Fatalf("Failed to ensure quotes table: %v", err)
		}
		if err := database.EnsureTable(ctx, ddb, getenvDefault("DRAFTS_TABLE", "yuanli_inquiry_drafts"), "slot"); err != nil {
			log.Fatalf("Failed to ensure drafts table: %v", err)
		}
	}

	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	draftRepo := repository2.NewDraftDynamoRepository(ddb)
	emailRepo := repository2.NewEmailMemoryRepository()

	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, draftRepo)
	dashboardUseCase := usecase.NewDashboardUseCase(quoteRepo)

	var extractor interfaces.IEmailExtractor
	geminiExtractor, err := extraction.NewGeminiExtractor(ctx, os.Getenv("GEMINI_API_KEY"))
	if err != nil {
		log.Printf("Email extractor not configured: %v", err)
	} else {
		extractor = geminiExtractor
	}

	triageUseCase := usecase.NewEmailTriageUseCase(quoteRepo, emailRepo, extractor)

	renderer := documents.NewQuotationPDFRenderer(os.Getenv("QUOTATION_FONT_PATH"))

	inquiryHandler := handlers.NewInquiryHandler(quoteUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase, renderer)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)
	emailHandler := handlers.NewEmailTriageHandler(triageUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addInquiryRoutes(v1, inquiryHandler)
	addQuoteRoutes(v1, quoteHandler)
	addDashboardRoutes(v1, dashboardHandler)
	addEmailRoutes(v1, emailHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(requestID())
}

// requestID tags every request so log lines from one call can be correlated.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set("request_id", rid)
		c.Writer.Header().Set("X-Request-ID", rid)
		c.Next()
	}
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
