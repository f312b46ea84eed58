package api

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"actioninbox/internal/inbox"
	"actioninbox/internal/scanner"
	"actioninbox/pkg/metrics"
)

// AnalyzeHandler exposes the stateless engine endpoints: analysis without
// persistence, and the standalone security scan.
type AnalyzeHandler struct {
	agent  *inbox.Agent
	logger *zap.Logger
}

func NewAnalyzeHandler(agent *inbox.Agent, logger *zap.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{
		agent:  agent,
		logger: logger,
	}
}

// Analyze handles POST /analyze. The request body is one serialized message
// object; the response body is the analysis object and the reply envelope,
// newline-joined. Malformed input comes back as an error object, not a 5xx:
// that conversion is the engine's contract.
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}

	start := time.Now()
	result := h.agent.ProcessJSON(body)
	metrics.RecordAnalyzeDuration("api", time.Since(start))

	c.Data(http.StatusOK, "application/json", []byte(result))
}

// Scan handles POST /scan.
func (h *AnalyzeHandler) Scan(c *gin.Context) {
	var req struct {
		Subject   string `json:"subject"`
		Body      string `json:"body"`
		FromEmail string `json:"from_email"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result := scanner.Scan(req.Subject, req.Body, req.FromEmail)

	h.logger.Debug("Security scan completed",
		zap.String("risk_level", string(result.RiskLevel)),
		zap.Int("security_score", result.SecurityScore),
	)

	c.JSON(http.StatusOK, result)
}
