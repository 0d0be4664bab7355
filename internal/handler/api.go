// Package handler exposes the classification HTTP API.
package handler

import (
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SyedHashirA/Email-Spam-Detection/internal/extractor"
	"github.com/SyedHashirA/Email-Spam-Detection/internal/inference"
)

// minTextLength is the minimum number of extracted characters required
// before a document is worth classifying.
const minTextLength = 10

// Handler handles HTTP requests
type Handler struct {
	engine      *inference.Engine
	extractor   *extractor.PDFExtractor
	metricsPath string
	logger      *zap.Logger
}

// NewHandler creates a new API handler
func NewHandler(engine *inference.Engine, ext *extractor.PDFExtractor, metricsPath string, logger *zap.Logger) *Handler {
	return &Handler{
		engine:      engine,
		extractor:   ext,
		metricsPath: metricsPath,
		logger:      logger,
	}
}

// RegisterRoutes registers all API routes
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/metrics", h.Metrics)
		api.POST("/predict", h.Predict)
	}
}

// Health reports service liveness. It never touches the model.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Metrics returns the evaluation report of the last training run.
func (h *Handler) Metrics(c *gin.Context) {
	data, err := os.ReadFile(h.metricsPath)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "No metrics saved yet."})
		return
	}
	c.Data(http.StatusOK, "application/json", data)
}

// Predict accepts a PDF upload in multipart field "file", extracts its
// text, and returns the spam classification.
func (h *Handler) Predict(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		writeError(c, h.logger, errValidation("No file part 'file' uploaded."))
		return
	}
	if fileHeader.Filename == "" {
		writeError(c, h.logger, errValidation("Empty filename."))
		return
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
		writeError(c, h.logger, errValidation("Only PDF files are supported."))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	text, err := h.extractor.Extract(data)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	if len(text) < minTextLength {
		writeError(c, h.logger, errValidation("Could not extract enough text from the PDF."))
		return
	}

	result, err := h.engine.Classify(text)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
