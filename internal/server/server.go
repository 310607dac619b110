// Package server is the HTTP request adapter: it decodes the multipart
// upload, hands (filename, bytes) to the pipeline and wraps the result into a
// transport response. No extraction logic lives here.
package server

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nicoyogi/netlify-invoice-parser/constants"
	"github.com/nicoyogi/netlify-invoice-parser/internal/common"
	"github.com/nicoyogi/netlify-invoice-parser/internal/export"
	"github.com/nicoyogi/netlify-invoice-parser/internal/pipeline"
)

type Server struct {
	pipeline       *pipeline.Pipeline
	exporter       *export.Service
	maxUploadBytes int64
	logger         *slog.Logger
}

func New(p *pipeline.Pipeline, e *export.Service, cfg common.ServerConfig, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		pipeline:       p,
		exporter:       e,
		maxUploadBytes: cfg.MaxUploadBytes,
		logger:         logger,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.GET("/healthz", s.health)
	r.POST("/process-invoice", s.processInvoice)
	return r
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) processInvoice(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart field \"file\" is required"})
		return
	}
	if s.maxUploadBytes > 0 && fh.Size > s.maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "uploaded file too large"})
		return
	}

	filename := fh.Filename
	if filename == "" {
		filename = constants.DefaultFilename
	}

	src, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read upload"})
		return
	}
	defer func() {
		if err := src.Close(); err != nil {
			s.logger.Warn("upload close failed", "error", err)
		}
	}()

	content, err := io.ReadAll(src)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read upload"})
		return
	}

	rows, err := s.pipeline.Process(c.Request.Context(), filename, content)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	artifact, err := s.exporter.WriteXLSX(rows, constants.ColumnOrder)
	if err != nil {
		s.logger.Error("export failed", "file", filename, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not build workbook"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", constants.ParsedFilename(filename)))
	c.Data(http.StatusOK, constants.ContentTypeXLSX, artifact)
}

// statusFor maps the pipeline's typed failures onto HTTP status codes. The
// two no-usable-data conditions are client-fixable (wrong document variant),
// not server faults.
func statusFor(err error) int {
	switch {
	case errors.Is(err, common.ErrUnreadableDocument):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrCostRegionNotFound),
		errors.Is(err, common.ErrNoCostData):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
