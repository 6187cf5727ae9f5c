package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"pdfsummarizer/internal/models"
	"pdfsummarizer/internal/pdf"
)

const (
	serviceName    = "pdf-summarizer-agent"
	serviceVersion = "1.0.0"
)

// Extractor turns a staged PDF into its text and page count.
type Extractor interface {
	Extract(path string) (*models.Document, error)
}

// Summarizer produces a natural-language summary of document text.
type Summarizer interface {
	Summarize(ctx context.Context, documentText string) (string, error)
}

// Handler wires HTTP routes to the extraction and summarization services.
type Handler struct {
	extractor   Extractor
	summarizer  Summarizer
	maxUploadMB int
}

// NewHandler constructs a Handler instance.
func NewHandler(extractor Extractor, summarizer Summarizer, maxUploadMB int) *Handler {
	return &Handler{
		extractor:   extractor,
		summarizer:  summarizer,
		maxUploadMB: maxUploadMB,
	}
}

// RegisterRoutes attaches all HTTP routes to the router.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())
	router.GET("/", h.root)
	router.GET("/health", h.healthCheck)
	router.POST("/upload", h.uploadPDF)
}

func (h *Handler) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "PDF Summarizer Agent API",
		"version": serviceVersion,
		"docs":    "/docs",
	})
}

func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": serviceName,
	})
}

// uploadPDF runs the whole request pipeline: validate, stage to a temp file,
// extract, summarize, respond. The staged file is removed on every exit path.
func (h *Handler) uploadPDF(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "file is required"})
		return
	}
	// Validation gates run before any filesystem or model work.
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Only PDF files are allowed"})
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "open uploaded file failed"})
		return
	}
	content, err := io.ReadAll(src)
	_ = src.Close()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": fmt.Sprintf("Unexpected error: %s", err)})
		return
	}
	if len(content) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Uploaded file is empty"})
		return
	}
	if int64(len(content)) > int64(h.maxUploadMB)<<20 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": fmt.Sprintf("File size exceeds maximum allowed size of %dMB", h.maxUploadMB)})
		return
	}

	tmpPath, err := stageUpload(content)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": fmt.Sprintf("Unexpected error: %s", err)})
		return
	}
	defer func() {
		// Cleanup failures are housekeeping only and must never mask the
		// request's outcome.
		if err := os.Remove(tmpPath); err != nil && !os.IsNotExist(err) {
			log.Printf("remove temp file %s: %v", tmpPath, err)
		}
	}()

	doc, err := h.extractor.Extract(tmpPath)
	if err != nil {
		if errors.Is(err, pdf.ErrInvalidDocument) || errors.Is(err, pdf.ErrEmptyDocument) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": fmt.Sprintf("Error processing PDF: %s", err)})
		return
	}

	summary, err := h.summarizer.Summarize(c.Request.Context(), doc.Text)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": fmt.Sprintf("Error generating summary: %s", err)})
		return
	}

	c.JSON(http.StatusOK, models.SummaryResult{
		Summary:   summary,
		PageCount: doc.PageCount,
		FileName:  filepath.Base(fileHeader.Filename),
	})
}

// stageUpload writes the validated bytes to a uniquely named temp file owned
// exclusively by the current request.
func stageUpload(content []byte) (string, error) {
	tmp, err := os.CreateTemp("", "upload-*.pdf")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	path := tmp.Name()
	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("close temp file: %w", err)
	}
	return path, nil
}
