package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"actioninbox/internal/mq"
)

type Router struct {
	Engine *gin.Engine
}

func NewRouter(
	authHandler *AuthHandler,
	analyzeHandler *AnalyzeHandler,
	ingestHandler *IngestHandler,
	queryHandler *MessageQueryHandler,
	publisher *mq.Publisher,
	jwtSecret string,
) *Router {
	r := gin.Default()
	r.Use(MetricsMiddleware())

	// Public
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/healthz", func(c *gin.Context) {
		if publisher != nil && !publisher.IsConnected() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "mq disconnected"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Protected
	auth := r.Group("/")
	auth.Use(AuthMiddleware(jwtSecret))
	{
		auth.POST("/analyze", analyzeHandler.Analyze)
		auth.POST("/scan", analyzeHandler.Scan)
		auth.POST("/inbox/messages", ingestHandler.IngestMessage)
		auth.GET("/inbox/messages", queryHandler.GetMessages)
		auth.GET("/inbox/messages/:id", queryHandler.GetMessage)
	}

	return &Router{Engine: r}
}

func (r *Router) Run(port string) error {
	return r.Engine.Run(port)
}
