package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"rss-summarizer/api/handlers"
	"rss-summarizer/api/middleware"
	"rss-summarizer/api/templates"
	_ "rss-summarizer/docs"
)

type Deps struct {
	Runner handlers.SummaryRunner
	Page   handlers.PageOptions
}

func New(d Deps) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestTrace())

	tmpl, err := templates.Parse()
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(tmpl)

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Page
	r.GET("/", handlers.IndexPageHandler(d.Page))
	r.POST("/", handlers.SubmitPageHandler(d.Runner, d.Page))

	// v1 routes
	api := r.Group("/api/v1")
	{
		api.POST("/summaries", handlers.CreateSummaryHandler(d.Runner))
	}

	return r, nil
}

// NewHandler wraps the engine with CORS for the given origins.
// With no origins configured the engine is returned as is and browsers keep
// their same-origin default.
func NewHandler(d Deps, allowedOrigins []string) (http.Handler, error) {
	r, err := New(d)
	if err != nil {
		return nil, err
	}
	if len(allowedOrigins) == 0 {
		return r, nil
	}
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id", "X-Span-Id"},
	})
	return c.Handler(r), nil
}
